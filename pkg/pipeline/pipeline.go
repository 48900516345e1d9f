package pipeline

import (
	"time"

	"proteus/pkg/api"
	"proteus/pkg/broker"
	"proteus/pkg/events"
	"proteus/pkg/store"
	"proteus/pkg/util/context"

	"github.com/pkg/errors"
)

// Service exposes the pipeline building operations to the transport layers.
type Service interface {
	// Submit resolves the given specification, stores the resulting plan
	// under the context's process ID and returns it.
	Submit(ctx context.Context, spec api.PipelineSpec) (api.ResolvedPipeline, error)

	// Plan returns the stored plan of the given process.
	Plan(ctx context.Context, processID string) (api.ResolvedPipeline, error)

	// List returns the pipelines known to the service.
	List(ctx context.Context) ([]api.PipelineInfo, error)

	// Dispatch publishes the plan of the given process to the broker, one
	// event per batch, and marks the pipeline DISPATCHED.
	Dispatch(ctx context.Context, processID string) error
}

// NewService returns a new pipeline Service backed by the given store.
// The broker may be nil, in which case Dispatch is disabled.
func NewService(s store.Store, b broker.Broker, queue string) (Service, error) {
	if s == nil {
		return nil, errors.New("a store is required")
	}
	return &service{
		s:     s,
		b:     b,
		queue: queue,
	}, nil
}

type service struct {
	s     store.Store
	b     broker.Broker
	queue string
}

func (svc *service) Submit(ctx context.Context, spec api.PipelineSpec) (api.ResolvedPipeline, error) {
	ctx = context.WithPipelineName(ctx, spec.Name)
	ctx.Logger().Infof("resolving pipeline %s", spec.Name)

	plan, err := Resolve(spec)
	if err != nil {
		return api.ResolvedPipeline{}, err
	}
	if err := svc.s.CreatePipeline(ctx, ctx.ProcessID(), spec, plan); err != nil {
		return api.ResolvedPipeline{}, errors.Wrapf(err, "cannot store pipeline %s", spec.Name)
	}
	ctx.Logger().Infof("pipeline %s resolved into %d elements", spec.Name, len(plan.Elements))
	return plan, nil
}

func (svc *service) Plan(ctx context.Context, pid string) (api.ResolvedPipeline, error) {
	return svc.s.GetPlan(ctx, pid)
}

func (svc *service) List(ctx context.Context) ([]api.PipelineInfo, error) {
	infos, err := svc.s.ListPipelines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "cannot list pipelines")
	}
	return infos, nil
}

func (svc *service) Dispatch(ctx context.Context, pid string) error {
	if svc.b == nil {
		return errors.New("no broker configured, dispatch is disabled")
	}
	plan, err := svc.s.GetPlan(ctx, pid)
	if err != nil {
		return errors.Wrapf(err, "cannot get plan for process %s", pid)
	}
	ctx = context.WithPipelineName(ctx, plan.Name)

	batches := Batches(plan)
	for i := range batches {
		evt := events.Event{
			Type:          events.TypeBatch,
			ProcessID:     pid,
			CorrelationID: ctx.CorrelationID(),
			Pipeline:      plan.Name,
			Batch:         &batches[i],
			Time:          time.Now(),
		}
		if err := svc.b.Publish(ctx, evt, svc.queue, ""); err != nil {
			return errors.Wrapf(err, "cannot publish batch %d of pipeline %s", batches[i].Seq, plan.Name)
		}
	}
	if err := svc.b.Publish(ctx, events.Event{
		Type:          events.TypePipeline,
		ProcessID:     pid,
		CorrelationID: ctx.CorrelationID(),
		Pipeline:      plan.Name,
		Batches:       len(batches),
		Time:          time.Now(),
	}, svc.queue, ""); err != nil {
		return errors.Wrapf(err, "cannot publish end of dispatch for pipeline %s", plan.Name)
	}

	if err := svc.s.SetPipelineStatus(ctx, pid, api.StatusDispatched); err != nil {
		return errors.Wrapf(err, "cannot set pipeline status to %s", api.StatusDispatched)
	}
	ctx.Logger().Infof("pipeline %s dispatched in %d batches", plan.Name, len(batches))
	return nil
}
