package tcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/exp/slog"

	"icecreams/internal/app/server/api/router"
)

const DefaultReadBufferSize = 1024

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Dispatcher routes a parsed request to a handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, req router.Request) router.Response
}

// Server accepts one connection at a time and serves it to completion before
// accepting the next. A request must fit in a single read of bufSize bytes.
type Server struct {
	addr       string
	dispatcher Dispatcher
	bufSize    int
	log        *slog.Logger
}

func NewServer(addr string, dispatcher Dispatcher, bufSize int, log *slog.Logger) *Server {
	if bufSize <= 0 {
		bufSize = DefaultReadBufferSize
	}
	return &Server{
		addr:       addr,
		dispatcher: dispatcher,
		bufSize:    bufSize,
		log:        log.With("component", "tcp_server"),
	}
}

// ListenAndServe binds the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the accept loop on ln until ctx is done or ln is closed.
// Accept errors are logged and the loop keeps going after a pause that doubles
// while they repeat.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-stop:
		}
	}()

	s.log.Info("server started", "address", ln.Addr().String())

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.log.Info("server stopped")
				return nil
			}
			delay = nextAcceptDelay(delay)
			s.log.Error("failed to accept connection", "error", err, "retry_in", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
			continue
		}
		delay = 0
		s.handle(ctx, conn)
	}
}

func nextAcceptDelay(d time.Duration) time.Duration {
	if d == 0 {
		return minAcceptDelay
	}
	d *= 2
	if d > maxAcceptDelay {
		return maxAcceptDelay
	}
	return d
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	remoteAddr := conn.RemoteAddr().String()

	buf := make([]byte, s.bufSize)
	n, err := conn.Read(buf)
	if err != nil {
		s.log.Error("failed to read request", "remote_addr", remoteAddr, "error", err)
		return
	}

	req := Parse(buf[:n])
	resp := s.dispatcher.Dispatch(ctx, req)

	if _, err := conn.Write(Encode(resp)); err != nil {
		s.log.Error("failed to write response", "remote_addr", remoteAddr, "error", err)
		return
	}

	s.log.Info("request served",
		slog.String("transport", "tcp"),
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", int(resp.Status)),
		slog.Duration("duration", time.Since(start)),
		slog.String("remote_addr", remoteAddr),
	)
}
