package broker

import (
	"encoding/json"
	"strings"

	"proteus/pkg/api"
	"proteus/pkg/events"
	"proteus/pkg/util/context"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	// HTTPType Broker type HTTP: events are POSTed to a webhook endpoint.
	// Mostly useful for development, together with the sink application.
	HTTPType Type = "http"
)

func init() {
	f := func(ctx context.Context, c interface{}) (Broker, error) {
		asHTTPConf, isHTTPConf := c.(*HTTPConfig)
		if !isHTTPConf {
			return nil, errors.Errorf("given configuration struct is not type %v", HTTPConfig{})
		}
		return NewHTTPBroker(ctx, *asHTTPConf)
	}
	register(HTTPType, f, &HTTPConfig{})
}

// HTTPConfig is configuration for the http broker implementation
type HTTPConfig struct {
	URI string `json:"uri" env:"BROKER_HTTP_URI"`
}

type httpBroker struct {
	httpcli *retryablehttp.Client
	uri     string
}

// NewHTTPBroker returns a Broker implementation that POSTs events to an HTTP endpoint.
func NewHTTPBroker(ctx context.Context, conf HTTPConfig) (Broker, error) {
	if conf.URI == "" {
		return nil, errors.New("http broker requires a uri")
	}
	cli := retryablehttp.NewClient()
	cli.Logger = nil
	return &httpBroker{
		httpcli: cli,
		uri:     strings.TrimRight(conf.URI, "/"),
	}, nil
}

// Publish POSTs the event to <uri>/<qname>. The routing key is ignored.
func (b *httpBroker) Publish(ctx context.Context, evt events.Event, qname, routingkey string) error {
	ctx.Logger().Tracef("publishing event %s to %s", evt, b.uri)
	body, err := json.Marshal(evt)
	if err != nil {
		return errors.Wrap(err, "cannot marshal event")
	}

	req, err := retryablehttp.NewRequest("POST", b.uri+"/"+qname, body)
	if err != nil {
		return errors.Wrap(err, "cannot create request")
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set(api.HeaderProcessID, evt.ProcessID)
	req.Header.Set(api.HeaderCorrelationID, evt.CorrelationID)
	req.Header.Set(api.HeaderType, string(evt.Type))

	resp, err := b.httpcli.Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "cannot do request")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return errors.Errorf("event %s rejected with status %d", evt, resp.StatusCode)
	}
	return nil
}

func (b *httpBroker) Close() error {
	return nil
}
