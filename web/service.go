package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/zeptools/billgen/svc"
)

const DefaultShutdownTimeout = 10 * time.Second

type Service struct {
	Ctx             context.Context    // Service Context
	cancel          context.CancelFunc // Service Context CancelFunc
	state           int                // internal service state
	done            chan error         // Shutdown Error Channel
	Server          *http.Server
	ShutdownTimeout time.Duration
}

func (s *Service) Name() string {
	return "WebService"
}

func NewService(parentCtx context.Context, addr string, router http.Handler) *Service {
	svcCtx, svcCancel := context.WithCancel(parentCtx)
	return &Service{
		Ctx:    svcCtx,
		cancel: svcCancel,
		state:  svc.StateREADY,
		done:   make(chan error, 1),
		Server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Start the HTTP server in the background.
// Bootstrapping errors (bad listen address, port in use) are returned immediately.
// Runtime errors are pushed into Done().
func (s *Service) Start() error {
	if s.state == svc.StateRUNNING {
		return fmt.Errorf("already started")
	}
	if s.state != svc.StateREADY {
		return fmt.Errorf("cannot start. not ready")
	}
	listener, err := net.Listen("tcp", s.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen(%q) failed: %v", s.Server.Addr, err)
	}
	s.state = svc.StateRUNNING
	go s.run(listener)
	return nil
}

func (s *Service) Stop() {
	if s.state != svc.StateRUNNING {
		log.Println("[ERROR][WEB] cannot stop. not running")
		return
	}
	s.cancel()
	s.state = svc.StateSTOPPED
	log.Println("[INFO][WEB] service stopped")
}

func (s *Service) Done() <-chan error {
	return s.done
}

// run - internal run loop
func (s *Service) run(listener net.Listener) {
	serveErrChan := make(chan error, 1) // error channel

	go func() {
		log.Printf("[INFO][WEB] listening on %s ...", s.Server.Addr)
		if err := s.Server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrChan <- err
		} else {
			serveErrChan <- nil
		}
	}()

	select {
	case err := <-serveErrChan:
		s.done <- err
		return
	case <-s.Ctx.Done():
	}

	// Server Shutdown to Stop Accepting New HTTP Requests Immediately
	// But with the context with timeout, requests already being processed get time to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer shutdownCancel()
	if err := s.Server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR][WEB] server shutdown failed: %v", err)
	}

	// Wait for server goroutine to return
	if err := <-serveErrChan; err != nil {
		s.done <- err
		return
	}
	log.Println("[INFO][WEB] shutdown complete")
	s.done <- nil
}
