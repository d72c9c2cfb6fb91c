package icecream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"icecreams/internal/app/server/api/router"
	"icecreams/internal/domain/icecream"
)

const (
	msgCreated  = "Ice cream created"
	msgUpdated  = "Ice cream updated"
	msgDeleted  = "Ice cream deleted"
	msgNotFound = "Ice cream not found"
	msgError    = "Error"
)

type Handler struct {
	repo       icecream.Repository
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(repo icecream.Repository, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		repo:       repo,
		log:        log.With("component", "icecream_handler"),
		middleware: mws,
	}
}

// Routes is the route table served by the raw TCP transport.
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{Method: http.MethodPost, Pattern: "/icecreams", Handle: h.create},
		{Method: http.MethodGet, Pattern: "/icecreams/{id}", Handle: h.find},
		{Method: http.MethodGet, Pattern: "/icecreams", Handle: h.list},
		{Method: http.MethodPut, Pattern: "/icecreams/{id}", Handle: h.update},
		{Method: http.MethodDelete, Pattern: "/icecreams/{id}", Handle: h.delete},
	}
}

func (h *Handler) create(ctx context.Context, req router.Request) router.Response {
	ic, err := icecream.Decode([]byte(req.Body))
	if err != nil {
		h.log.Warn("rejected create body", "error", err)
		return router.InternalError(msgError)
	}

	id, err := h.repo.Insert(ctx, ic.Flavor, ic.Quantity)
	if err != nil {
		h.log.Error("failed to create icecream", "error", err)
		return router.InternalError(msgError)
	}

	h.log.Info("icecream created", "id", id, "sabor", ic.Flavor)
	return router.OK(msgCreated)
}

func (h *Handler) find(ctx context.Context, req router.Request) router.Response {
	id, err := parseID(req.Param("id"))
	if err != nil {
		h.log.Warn("rejected id", "error", err)
		return router.InternalError(msgError)
	}

	ic, err := h.repo.FetchOne(ctx, id)
	if err != nil {
		if errors.Is(err, icecream.ErrNotFound) {
			return router.NotFound(msgNotFound)
		}
		h.log.Error("failed to find icecream", "id", id, "error", err)
		return router.InternalError(msgError)
	}

	body, err := icecream.Encode(*ic)
	if err != nil {
		h.log.Error("failed to encode icecream", "id", id, "error", err)
		return router.InternalError(msgError)
	}
	return router.OK(string(body))
}

func (h *Handler) list(ctx context.Context, _ router.Request) router.Response {
	items, err := h.repo.FetchAll(ctx)
	if err != nil {
		h.log.Error("failed to list icecreams", "error", err)
		return router.InternalError(msgError)
	}

	body, err := icecream.EncodeList(items)
	if err != nil {
		h.log.Error("failed to encode icecreams", "error", err)
		return router.InternalError(msgError)
	}
	return router.OK(string(body))
}

func (h *Handler) update(ctx context.Context, req router.Request) router.Response {
	id, err := parseID(req.Param("id"))
	if err != nil {
		h.log.Warn("rejected id", "error", err)
		return router.InternalError(msgError)
	}

	ic, err := icecream.Decode([]byte(req.Body))
	if err != nil {
		h.log.Warn("rejected update body", "id", id, "error", err)
		return router.InternalError(msgError)
	}

	n, err := h.repo.Update(ctx, id, ic.Flavor, ic.Quantity)
	if err != nil {
		h.log.Error("failed to update icecream", "id", id, "error", err)
		return router.InternalError(msgError)
	}
	if n == 0 {
		return router.NotFound(msgNotFound)
	}

	return router.OK(msgUpdated)
}

func (h *Handler) delete(ctx context.Context, req router.Request) router.Response {
	id, err := parseID(req.Param("id"))
	if err != nil {
		h.log.Warn("rejected id", "error", err)
		return router.InternalError(msgError)
	}

	n, err := h.repo.Delete(ctx, id)
	if err != nil {
		h.log.Error("failed to delete icecream", "id", id, "error", err)
		return router.InternalError(msgError)
	}
	if n == 0 {
		return router.NotFound(msgNotFound)
	}

	return router.OK(msgDeleted)
}

// parseID accepts the int32 range, matching the SERIAL column.
func parseID(s string) (int, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	return int(id), nil
}
