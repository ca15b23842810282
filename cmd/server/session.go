package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"

	mandel "github.com/marben/deepzoom_mandel"
	"github.com/marben/irpc"
)

// sessionServer gives every accepted connection an engine of its own,
// served as a SessionIrpcService on the connection's irpc endpoint.
// The engine is torn down when the endpoint closes.
type sessionServer struct {
	newSession func() (*mandel.Engine, error)

	wg sync.WaitGroup
}

// Serve accepts connections until l is closed. It returns nil once l
// is closed and waits for the open sessions to end.
func (s *sessionServer) Serve(l net.Listener) error {
	defer s.wg.Wait()
	for {
		conn, err := l.Accept()
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("listener.Accept(): %w", err)
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.serveConn(conn)
		}()
	}
}

func (s *sessionServer) serveConn(conn net.Conn) {
	engine, err := s.newSession()
	if err != nil {
		log.Printf("err: new session for %s: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}
	defer engine.Teardown()

	// one worker keeps a session's calls in arrival order
	ep := irpc.NewEndpoint(conn,
		irpc.WithEndpointServices(mandel.NewSessionIrpcService(engine)),
		irpc.WithLocalAddress(conn.LocalAddr()),
		irpc.WithRemoteAddress(conn.RemoteAddr()),
		irpc.WithParallelWorkers(1),
	)
	log.Printf("got connection from: %s", ep.RemoteAddr())

	<-ep.Context().Done()
	switch cause := context.Cause(ep.Context()); {
	case errors.Is(cause, irpc.ErrEndpointClosedByCounterpart):
		log.Printf("session %s closed", ep.RemoteAddr())
	default:
		log.Printf("session %s ended: %v", ep.RemoteAddr(), cause)
	}
}
