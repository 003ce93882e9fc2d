package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/axionlabs/axion-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedService(s *fakeStore[*types.Service]) *types.Service {
	svc := &types.Service{
		Name:        "Applied ML",
		Description: "Production model delivery",
		Image:       "https://cdn.example.com/ml.png",
		Features:    []string{"mlops", "serving"},
	}
	_ = s.Create(context.Background(), svc)
	return svc
}

func mountServices(h *ResourceHandler[*types.Service]) func(*gin.RouterGroup) {
	return func(api *gin.RouterGroup) {
		api.GET("/services", h.List)
		api.POST("/services", h.Create)
		api.GET("/services/:id", h.Get)
		api.PUT("/services/:id", h.Update)
		api.PATCH("/services/:id", h.Update)
		api.DELETE("/services/:id", h.Delete)
	}
}

func TestResourceHandler_List(t *testing.T) {
	t.Run("public listing omits updated_at", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		seedService(fs)
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodGet, "/api/services", nil)

		require.Equal(t, http.StatusOK, w.Code)
		items := decodeList(t, w)
		require.Len(t, items, 1)
		assert.Equal(t, "Applied ML", items[0]["name"])
		assert.Contains(t, items[0], "created_at")
		assert.NotContains(t, items[0], "updated_at")
	})

	t.Run("authenticated listing includes updated_at", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		seedService(fs)
		r := setupRouter(true, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodGet, "/api/services", nil)

		require.Equal(t, http.StatusOK, w.Code)
		items := decodeList(t, w)
		require.Len(t, items, 1)
		assert.Contains(t, items[0], "updated_at")
	})

	t.Run("empty collection returns empty array", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodGet, "/api/services", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("query parameters reach the filter engine", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodGet, "/api/services?name=Applied+ML&ordering=name", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "name::text = $1", fs.lastQuery.Where)
		assert.Equal(t, []interface{}{"Applied ML"}, fs.lastQuery.Args)
		assert.Equal(t, "name ASC, id ASC", fs.lastQuery.OrderBy)
	})
}

func TestResourceHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		svc := seedService(fs)
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodGet, "/api/services/"+svc.ID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeMap(t, w)
		assert.Equal(t, svc.ID, body["id"])
	})

	t.Run("not found", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodGet, "/api/services/missing", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeMap(t, w)
		assert.Equal(t, "NOT_FOUND", body["type"])
	})
}

func TestResourceHandler_Create(t *testing.T) {
	payload := map[string]interface{}{
		"name":        "Data Platforms",
		"description": "Lakehouse build-outs",
		"image":       "https://cdn.example.com/dp.png",
	}

	t.Run("unauthenticated create rejected", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodPost, "/api/services", payload)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeMap(t, w)
		assert.Equal(t, "AUTHENTICATION_ERROR", body["type"])
		assert.Empty(t, fs.items)
	})

	t.Run("authenticated create persists and returns 201", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(true, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodPost, "/api/services", payload)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeMap(t, w)
		assert.NotEmpty(t, body["id"])
		assert.Len(t, fs.items, 1)
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(true, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodPost, "/api/services", map[string]interface{}{
			"name": "No description or image",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeMap(t, w)
		assert.Equal(t, "VALIDATION_ERROR", body["type"])
	})
}

func TestResourceHandler_Update(t *testing.T) {
	t.Run("partial body keeps stored values and identity", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		svc := seedService(fs)
		originalID := svc.ID
		originalCreated := svc.CreatedAt
		r := setupRouter(true, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodPatch, "/api/services/"+originalID, map[string]interface{}{
			"id":   "attacker-chosen",
			"name": "Applied ML v2",
		})

		require.Equal(t, http.StatusOK, w.Code)
		updated := fs.items[originalID]
		require.NotNil(t, updated)
		assert.Equal(t, "Applied ML v2", updated.Name)
		assert.Equal(t, "Production model delivery", updated.Description)
		assert.Equal(t, originalID, updated.ID)
		assert.Equal(t, originalCreated, updated.CreatedAt)
	})

	t.Run("unauthenticated update rejected", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		svc := seedService(fs)
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodPut, "/api/services/"+svc.ID, map[string]interface{}{
			"name": "x",
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing record", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(true, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodPut, "/api/services/missing", map[string]interface{}{
			"name": "x",
		})

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestResourceHandler_Delete(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		svc := seedService(fs)
		r := setupRouter(true, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodDelete, "/api/services/"+svc.ID, nil)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, fs.items)
	})

	t.Run("missing record", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		r := setupRouter(true, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodDelete, "/api/services/missing", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated delete rejected", func(t *testing.T) {
		fs := newFakeStore[*types.Service]()
		svc := seedService(fs)
		r := setupRouter(false, mountServices(NewServiceHandler(fs)))

		w := doJSON(t, r, http.MethodDelete, "/api/services/"+svc.ID, nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Len(t, fs.items, 1)
	})
}
