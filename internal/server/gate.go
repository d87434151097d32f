package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport"
)

// gatedServer delays Start until ready is closed.
type gatedServer struct {
	transport.Server
	ready <-chan struct{}
}

// StartAfter wraps srv so it only starts once ready is closed.
func StartAfter(srv transport.Server, ready <-chan struct{}) transport.Server {
	return &gatedServer{Server: srv, ready: ready}
}

func (s *gatedServer) Start(ctx context.Context) error {
	select {
	case <-s.ready:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.Server.Start(ctx)
}
