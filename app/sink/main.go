// The sink is a development endpoint for the HTTP broker. It accepts
// dispatched events on POST /:queue and logs them, so a plan can be
// dispatched and inspected without a RabbitMQ instance.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"proteus/pkg/api"
	"proteus/pkg/events"
	"proteus/pkg/util/context"

	"github.com/gorilla/mux"
)

const envSinkPort = "SINK_PORT" //http port used by the sink, if not set 9090 is used

func main() {
	ctx := context.Background()

	port := os.Getenv(envSinkPort)
	if port == "" {
		port = "9090"
	}

	r := mux.NewRouter()
	r.HandleFunc("/{queue}", handleEvent(ctx)).Methods(http.MethodPost)
	ctx.Logger().Infof("sink server started on 127.0.0.1:%s", port)
	ctx.Logger().Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), r))
}

func handleEvent(ctx context.Context) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var evt events.Event
		if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c := contextFromHeaders(ctx, r.Header)
		c = context.WithPipelineName(c, evt.Pipeline)
		c.Logger().WithField("queue", mux.Vars(r)["queue"]).Infof("received event %s", evt)

		w.WriteHeader(http.StatusNoContent)
	}
}

func contextFromHeaders(ctx context.Context, headers http.Header) context.Context {
	c := context.WithProcessID(ctx, headers.Get(api.HeaderProcessID))
	c = context.WithCorrelationID(c, headers.Get(api.HeaderCorrelationID))
	return c
}
