// Routes served by both transports:
//
//	POST   /icecreams       create
//	GET    /icecreams       list
//	GET    /icecreams/{id}  find
//	PUT    /icecreams/{id}  update
//	DELETE /icecreams/{id}  delete
//
// The HTTP transport also serves GET /health.
//
// The raw TCP router matches by prefix, so GET /icecreams/5/extra reaches find
// with id 5. chi matches whole paths and answers 404 for it.
package api

import (
	healthAPI "icecreams/internal/app/server/api/http/health"
	icecreamAPI "icecreams/internal/app/server/api/http/icecream"
	"icecreams/internal/app/server/api/http/middleware/logger"
	"icecreams/internal/app/server/api/router"
	"icecreams/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	IceCream *icecreamAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(store *storage.Store, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	API := humachi.New(mux, huma.DefaultConfig("Icecreams API", "1.0.0"))

	h := handlers(store, log)
	h.Health.SetupRoutes(API)
	h.IceCream.SetupRoutes(API)

	return mux
}

// NewRouter builds the dispatcher used by the raw TCP transport.
func NewRouter(store *storage.Store, log *slog.Logger) *router.Router {
	h := icecreamAPI.NewHandler(store.IceCreams, log, nil)
	return router.New(log, h.Routes()...)
}

func handlers(store *storage.Store, log *slog.Logger) *Handlers {
	mws := huma.Middlewares{logger.New(log).Middleware()}

	return &Handlers{
		Health:   healthAPI.NewHandler(store, log, mws),
		IceCream: icecreamAPI.NewHandler(store.IceCreams, log, mws),
	}
}
