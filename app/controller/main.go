package main

import (
	"fmt"
	"net/http"
	"os"

	"proteus/pkg/broker"
	"proteus/pkg/client"
	"proteus/pkg/pipeline"
	"proteus/pkg/store"
	"proteus/pkg/util/config"
	"proteus/pkg/util/context"

	"github.com/labstack/echo/v4"
	"github.com/neko-neko/echo-logrus/v2/log"
	"github.com/pkg/errors"
)

const defaultPort = "8080"

func main() {
	// Create context, echo object and set logger
	e := echo.New()
	ctx := context.Background()
	l := log.MyLogger{Logger: ctx.Logger().Logger}
	e.Logger = &l

	if cf := os.Getenv("CONFIG_FILE"); cf != "" {
		config.SetConfigFile(cf)
		if err := config.ReadInConfig(); err != nil {
			e.Logger.Fatal(errors.Wrapf(err, "cannot read config file %s", cf))
			os.Exit(1)
		}
	}

	s, err := store.NewInMemoryStore()
	if err != nil {
		e.Logger.Fatal(errors.Wrap(err, "failed to instantiate store"))
		os.Exit(1)
	}

	// The broker is optional: without one the controller still resolves and
	// serves plans, only dispatch is disabled.
	b, err := broker.NewFromEnv(ctx)
	if err != nil {
		e.Logger.Warn(errors.Wrap(err, "no broker available, dispatch is disabled"))
		b = nil
	}

	p, err := pipeline.NewService(s, b, queueName())
	if err != nil {
		e.Logger.Fatal(errors.Wrap(err, "failed to instantiate pipeline service"))
		os.Exit(1)
	}

	//Setup routes
	h := handlers{
		p: p,
	}
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, World!")
	})
	e.Add(client.SubmitMethod, client.SubmitPath, h.Submit)
	e.Add(client.ListPipelinesMethod, client.ListPipelinesPath, h.ListPipelines)
	e.Add(client.PlanMethod, client.PlanPath, h.Plan)
	e.Add(client.DispatchMethod, client.DispatchPath, h.Dispatch)

	e.HideBanner = true
	e.HidePort = true

	port := serverPort()
	e.Logger.Infof("http server started on 127.0.0.1:%s", port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", port)))
}

func serverPort() string {
	if s, ok := config.Get("server.port").(string); ok && s != "" {
		return s
	}
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return defaultPort
}

func queueName() string {
	if s, ok := config.Get("queue").(string); ok && s != "" {
		return s
	}
	if q := os.Getenv("DISPATCH_QUEUE"); q != "" {
		return q
	}
	return "proteus.q.plans"
}

type handlers struct {
	p pipeline.Service
}
