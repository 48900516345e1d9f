package pipeline

import (
	"testing"

	"proteus/pkg/api"
	"proteus/pkg/events"
	"proteus/pkg/store"
	"proteus/pkg/util/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBroker keeps published events in memory.
type recordingBroker struct {
	published []events.Event
	queues    []string
}

func (b *recordingBroker) Publish(ctx context.Context, evt events.Event, qname, routingkey string) error {
	b.published = append(b.published, evt)
	b.queues = append(b.queues, qname)
	return nil
}

func (b *recordingBroker) Close() error { return nil }

func newTestService(t *testing.T, b *recordingBroker) Service {
	t.Helper()
	s, err := store.NewInMemoryStore()
	require.NoError(t, err)
	svc, err := NewService(s, b, "proteus.q.plans")
	require.NoError(t, err)
	return svc
}

func TestServiceSubmitAndPlan(t *testing.T) {
	svc := newTestService(t, &recordingBroker{})
	ctx := context.WithProcessID(context.Background(), "pid-1")

	spec := api.PipelineSpec{
		Name: "release",
		Steps: []api.StepSpec{
			{Name: "build"},
			{Name: "test", DependsOn: []string{"build"}},
		},
	}
	plan, err := svc.Submit(ctx, spec)
	require.NoError(t, err)
	require.Equal(t, 3, len(plan.Elements))

	stored, err := svc.Plan(ctx, "pid-1")
	require.NoError(t, err)
	assert.Equal(t, plan, stored)

	infos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, len(infos))
	assert.Equal(t, "release", infos[0].Name)
	assert.Equal(t, api.StatusCreated, infos[0].Status)
}

func TestServiceSubmitInvalid(t *testing.T) {
	svc := newTestService(t, &recordingBroker{})
	ctx := context.WithProcessID(context.Background(), "pid-1")

	_, err := svc.Submit(ctx, api.PipelineSpec{
		Name: "broken",
		Steps: []api.StepSpec{
			{Name: "a", DependsOn: []string{"a"}},
		},
	})
	require.Error(t, err)

	// Nothing stored for a failed submission.
	_, err = svc.Plan(ctx, "pid-1")
	require.Error(t, err)
}

func TestServiceDispatch(t *testing.T) {
	b := &recordingBroker{}
	svc := newTestService(t, b)
	ctx := context.WithProcessID(context.Background(), "pid-1")
	ctx = context.WithCorrelationID(ctx, "corr-1")

	_, err := svc.Submit(ctx, api.PipelineSpec{
		Name: "release",
		Steps: []api.StepSpec{
			{Name: "build"},
			{Name: "test", DependsOn: []string{"build"}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, svc.Dispatch(ctx, "pid-1"))

	// Two batch events followed by the terminal pipeline event.
	require.Equal(t, 3, len(b.published))
	assert.Equal(t, events.TypeBatch, b.published[0].Type)
	assert.Equal(t, 1, b.published[0].Batch.Seq)
	assert.Equal(t, "build", b.published[0].Batch.Steps[0].Name)
	assert.Equal(t, events.TypeBatch, b.published[1].Type)
	assert.Equal(t, 2, b.published[1].Batch.Seq)
	assert.Equal(t, events.TypePipeline, b.published[2].Type)
	assert.Equal(t, 2, b.published[2].Batches)
	for _, evt := range b.published {
		assert.Equal(t, "pid-1", evt.ProcessID)
		assert.Equal(t, "corr-1", evt.CorrelationID)
	}
	assert.Equal(t, "proteus.q.plans", b.queues[0])

	infos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, api.StatusDispatched, infos[0].Status)
}

func TestServiceDispatchWithoutBroker(t *testing.T) {
	s, err := store.NewInMemoryStore()
	require.NoError(t, err)
	svc, err := NewService(s, nil, "")
	require.NoError(t, err)

	ctx := context.WithProcessID(context.Background(), "pid-1")
	_, err = svc.Submit(ctx, api.PipelineSpec{Name: "p", Steps: []api.StepSpec{{Name: "a"}}})
	require.NoError(t, err)

	err = svc.Dispatch(ctx, "pid-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no broker configured")
}

func TestServiceDispatchUnknownProcess(t *testing.T) {
	svc := newTestService(t, &recordingBroker{})
	err := svc.Dispatch(context.Background(), "missing")
	require.Error(t, err)
}
