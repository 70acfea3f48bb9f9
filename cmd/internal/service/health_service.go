package service

import (
	"context"
	"time"

	"codcoz/cmd/internal/contract"

	"golang.org/x/sync/errgroup"
)

const HealthCheckTimeout = 3 * time.Second

type HealthService struct {
	DocStore Pinger
	RelStore Pinger
}

func NewHealthService(docStore, relStore Pinger) *HealthService {
	return &HealthService{DocStore: docStore, RelStore: relStore}
}

// CheckUpstreams pings both APIs in parallel, each with its own timeout.
func (s *HealthService) CheckUpstreams(ctx context.Context) *contract.UpstreamHealthResponse {
	resp := &contract.UpstreamHealthResponse{}

	var g errgroup.Group
	g.Go(func() error {
		resp.DocStore = ping(ctx, s.DocStore)
		return nil
	})
	g.Go(func() error {
		resp.RelStore = ping(ctx, s.RelStore)
		return nil
	})
	_ = g.Wait()

	return resp
}

func ping(ctx context.Context, p Pinger) bool {
	if p == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()
	return p.Ping(ctx)
}
