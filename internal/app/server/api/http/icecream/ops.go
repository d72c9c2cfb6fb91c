package icecream

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"icecreams/internal/app/server/api/router"
)

const (
	collectionPath = "/icecreams"
	itemPath       = "/icecreams/{id}"
)

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), func(ctx context.Context, in *bodyInput) (*output, error) {
		return toOutput(h.create(ctx, router.Request{
			Method: http.MethodPost,
			Path:   collectionPath,
			Body:   string(in.RawBody),
		})), nil
	})
	huma.Register(api, h.findOp(), func(ctx context.Context, in *idInput) (*output, error) {
		return toOutput(h.find(ctx, itemRequest(http.MethodGet, in.ID, nil))), nil
	})
	huma.Register(api, h.listOp(), func(ctx context.Context, _ *struct{}) (*output, error) {
		return toOutput(h.list(ctx, router.Request{Method: http.MethodGet, Path: collectionPath})), nil
	})
	huma.Register(api, h.updateOp(), func(ctx context.Context, in *idBodyInput) (*output, error) {
		return toOutput(h.update(ctx, itemRequest(http.MethodPut, in.ID, in.RawBody))), nil
	})
	huma.Register(api, h.deleteOp(), func(ctx context.Context, in *idInput) (*output, error) {
		return toOutput(h.delete(ctx, itemRequest(http.MethodDelete, in.ID, nil))), nil
	})
}

func itemRequest(method, id string, body []byte) router.Request {
	return router.Request{
		Method: method,
		Path:   collectionPath + "/" + id,
		Body:   string(body),
	}.WithParam("id", id)
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "icecreams-create",
		Method:      http.MethodPost,
		Path:        collectionPath,
		Summary:     "Create an ice cream",
		Tags:        []string{"icecreams"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "icecreams-find",
		Method:      http.MethodGet,
		Path:        itemPath,
		Summary:     "Get an ice cream",
		Tags:        []string{"icecreams"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "icecreams-list",
		Method:      http.MethodGet,
		Path:        collectionPath,
		Summary:     "List ice creams",
		Tags:        []string{"icecreams"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "icecreams-update",
		Method:      http.MethodPut,
		Path:        itemPath,
		Summary:     "Update an ice cream",
		Tags:        []string{"icecreams"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "icecreams-delete",
		Method:      http.MethodDelete,
		Path:        itemPath,
		Summary:     "Delete an ice cream",
		Tags:        []string{"icecreams"},
		Middlewares: h.middleware,
	}
}
