package context

import (
	gocontext "context"

	"github.com/sirupsen/logrus"
)

// Context extends the regular golang context.Context interface with access to
// the logger and to the identifiers of the pipeline being processed.
type Context interface {
	gocontext.Context
	Logger() *logrus.Entry
	ProcessID() string
	CorrelationID() string
	PipelineName() string
}

// Background returns a non-nil, empty Context.
func Background() Context {
	return ctx{
		Context: gocontext.Background(),
	}
}

// FromContext returns a new context from the given go context.
func FromContext(c gocontext.Context) Context {
	return ctx{
		Context: c,
	}
}

// WithProcessID returns a copy of the context with a processID.
func WithProcessID(c Context, pid string) Context {
	return ctx{
		c,
		pid,
		c.CorrelationID(),
		c.PipelineName(),
	}
}

// WithCorrelationID returns a copy of the context with a correlationID.
func WithCorrelationID(c Context, correlationID string) Context {
	return ctx{
		c,
		c.ProcessID(),
		correlationID,
		c.PipelineName(),
	}
}

// WithPipelineName returns a copy of the context with a pipeline name.
func WithPipelineName(c Context, name string) Context {
	return ctx{
		c,
		c.ProcessID(),
		c.CorrelationID(),
		name,
	}
}

type ctx struct {
	gocontext.Context
	processID     string
	correlationID string
	pipelineName  string
}

func (c ctx) Logger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	e := logrus.NewEntry(l)
	if c.ProcessID() != "" {
		e = e.WithField("process_id", c.ProcessID())
	}
	if c.CorrelationID() != "" {
		e = e.WithField("correlation_id", c.CorrelationID())
	}
	if c.PipelineName() != "" {
		e = e.WithField("pipeline", c.PipelineName())
	}
	return e
}

func (c ctx) ProcessID() string {
	return c.processID
}

func (c ctx) CorrelationID() string {
	return c.correlationID
}

func (c ctx) PipelineName() string {
	return c.pipelineName
}
