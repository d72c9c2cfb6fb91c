package icecream

import (
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"icecreams/internal/domain/icecream"
)

func TestSetupRoutes(t *testing.T) {
	h, repo := newTestHandler()
	_, api := humatest.New(t)
	h.SetupRoutes(api)

	id := 1
	repo.On("Insert", mock.Anything, "vanilla", 10).Return(1, nil)
	repo.On("FetchOne", mock.Anything, 1).Return(&icecream.IceCream{ID: &id, Flavor: "vanilla", Quantity: 10}, nil)
	repo.On("FetchOne", mock.Anything, 2).Return(nil, icecream.ErrNotFound)
	repo.On("FetchAll", mock.Anything).Return([]icecream.IceCream{}, nil)
	repo.On("Update", mock.Anything, 1, "chocolate", 3).Return(int64(1), nil)
	repo.On("Delete", mock.Anything, 1).Return(int64(1), nil)

	resp := api.Post("/icecreams", strings.NewReader(`{"sabor":"vanilla","quantity":10}`))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, msgCreated, resp.Body.String())

	resp = api.Get("/icecreams/1")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.Equal(t, `{"id":1,"sabor":"vanilla","cantidad":10}`, resp.Body.String())

	resp = api.Get("/icecreams/2")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, msgNotFound, resp.Body.String())

	resp = api.Get("/icecreams/abc")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	resp = api.Get("/icecreams")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `[]`, resp.Body.String())

	resp = api.Put("/icecreams/1", strings.NewReader(`{"sabor":"chocolate","quantity":3}`))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, msgUpdated, resp.Body.String())

	resp = api.Delete("/icecreams/1")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, msgDeleted, resp.Body.String())

	repo.AssertExpectations(t)
}
