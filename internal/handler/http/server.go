package http

import (
	"context"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/ha0himanshuarora/QuickDesk/internal/handler/middleware"
)

type ServerOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server owns the ginext engine and the underlying http.Server so main can
// start and stop it gracefully.
type Server struct {
	engine *ginext.Engine
	srv    *http.Server
	opts   ServerOptions
}

// RouteRegistrar is implemented by every handler in this package.
type RouteRegistrar interface {
	RegisterRoutes(engine *ginext.Engine, authMW ginext.HandlerFunc)
}

func NewServer(opts ServerOptions, authMW ginext.HandlerFunc, handlers ...RouteRegistrar) *Server {
	engine := ginext.New()
	engine.Use(middleware.LoggerMiddleware())

	for _, h := range handlers {
		h.RegisterRoutes(engine, authMW)
	}

	return &Server{engine: engine, opts: opts}
}

func (s *Server) Start(addr string) error {
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
