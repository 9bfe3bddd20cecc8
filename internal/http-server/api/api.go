package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"odooclient/internal/config"
	"odooclient/internal/http-server/handlers/errors"
	"odooclient/internal/http-server/handlers/health"
	"odooclient/internal/http-server/handlers/odoo"
	"odooclient/internal/http-server/middleware/requestlog"
	"odooclient/internal/http-server/middleware/timeout"
	"odooclient/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	odoo.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(35))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(requestlog.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	// The odoo:// routes mirror the resource names of the MCP surface
	// this facade replaces, colons and all.
	router.Get("/health", health.Health(log))
	router.Get("/odoo://models", odoo.Models(log, handler))
	router.Get("/odoo://model/{model}", odoo.ModelInfo(log))
	router.Get("/odoo://search/{model}/{domain}", odoo.Search(log, handler))
	router.Post("/api/execute", odoo.Execute(log, handler))

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
