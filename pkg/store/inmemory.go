package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"proteus/pkg/api"
)

type pipeline struct {
	spec         api.PipelineSpec
	plan         api.ResolvedPipeline
	status       api.Status
	createTime   *time.Time
	dispatchTime *time.Time
}

// NewInMemoryStore returns a new InMemory store
func NewInMemoryStore() (Store, error) {
	return &inMemory{
		pipelines: make(map[string]*pipeline),
	}, nil
}

type inMemory struct {
	mu        sync.RWMutex
	pipelines map[string]*pipeline
	order     []string // processIDs in creation order, for deterministic listing
}

func (s *inMemory) CreatePipeline(ctx context.Context, pid string, spec api.PipelineSpec, plan api.ResolvedPipeline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if _, exists := s.pipelines[pid]; !exists {
		s.order = append(s.order, pid)
	}
	s.pipelines[pid] = &pipeline{
		spec:       spec,
		plan:       plan,
		status:     api.StatusCreated,
		createTime: &now,
	}
	return nil
}

func (s *inMemory) GetPipelineSpec(ctx context.Context, pid string) (api.PipelineSpec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, exists := s.pipelines[pid]
	if !exists {
		return api.PipelineSpec{}, NotFoundError(fmt.Sprintf("process %s", pid))
	}
	return p.spec, nil
}

func (s *inMemory) GetPlan(ctx context.Context, pid string) (api.ResolvedPipeline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, exists := s.pipelines[pid]
	if !exists {
		return api.ResolvedPipeline{}, NotFoundError(fmt.Sprintf("process %s", pid))
	}
	return p.plan, nil
}

func (s *inMemory) GetPipelineStatus(ctx context.Context, pid string) (api.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, exists := s.pipelines[pid]
	if !exists {
		return "", NotFoundError(fmt.Sprintf("process %s", pid))
	}
	return p.status, nil
}

func (s *inMemory) SetPipelineStatus(ctx context.Context, pid string, status api.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.pipelines[pid]
	if !exists {
		return NotFoundError(fmt.Sprintf("process %s", pid))
	}
	p.status = status
	if status == api.StatusDispatched {
		now := time.Now()
		p.dispatchTime = &now
	}
	return nil
}

func (s *inMemory) ListPipelines(ctx context.Context) ([]api.PipelineInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infos := make([]api.PipelineInfo, 0, len(s.pipelines))
	ids := append([]string(nil), s.order...)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.pipelines[ids[i]].createTime.Before(*s.pipelines[ids[j]].createTime)
	})
	for _, pid := range ids {
		p := s.pipelines[pid]
		infos = append(infos, api.PipelineInfo{
			ProcessID: pid,
			Name:      p.spec.Name,
			Status:    p.status,
		})
	}
	return infos, nil
}
