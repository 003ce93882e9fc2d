// Package handlers exposes the HTTP surface of the API. Each resource
// collection is served by a ResourceHandler instantiated with its static
// policy and query spec; feedback and contacts layer their extra behavior
// on top of the generic handler.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/axionlabs/axion-backend/errors"
	"github.com/axionlabs/axion-backend/internal/query"
	"github.com/axionlabs/axion-backend/internal/store"
	"github.com/axionlabs/axion-backend/middleware"
	"github.com/axionlabs/axion-backend/types"
	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the uniform CRUD surface of one resource
// collection. Behavior is driven entirely by the policy and query spec;
// the optional hooks cover resource-specific normalization and the
// narrowing of unauthenticated listings.
type ResourceHandler[T types.Entity] struct {
	store  store.ResourceStore[T]
	policy types.Policy
	spec   query.Spec

	newEntity func() T
	// normalize runs after a successful bind and before any write.
	normalize func(T) error
	// scopePublic narrows list options for unauthenticated callers.
	scopePublic func(*query.Options)
}

// authorize enforces the static policy, attaching a 401 when the action is
// not open to the caller.
func (h *ResourceHandler[T]) authorize(c *gin.Context, action types.Action) bool {
	if h.policy.Allows(action, middleware.IsAuthenticated(c)) {
		return true
	}
	_ = c.Error(apperrors.AuthenticationFailed("Authentication credentials were not provided"))
	c.Abort()
	return false
}

// projectPublic renders an entity as a map with the policy's omitted
// fields stripped. Used for unauthenticated responses only.
func projectPublic(entity interface{}, omit []string) map[string]interface{} {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	for _, field := range omit {
		delete(out, field)
	}
	return out
}

func (h *ResourceHandler[T]) render(c *gin.Context, status int, entity T) {
	if middleware.IsAuthenticated(c) {
		c.JSON(status, entity)
		return
	}
	c.JSON(status, projectPublic(entity, h.policy.PublicOmit))
}

func (h *ResourceHandler[T]) renderList(c *gin.Context, entities []T) {
	if middleware.IsAuthenticated(c) {
		if entities == nil {
			entities = []T{}
		}
		c.JSON(http.StatusOK, entities)
		return
	}
	out := make([]map[string]interface{}, 0, len(entities))
	for _, entity := range entities {
		out = append(out, projectPublic(entity, h.policy.PublicOmit))
	}
	c.JSON(http.StatusOK, out)
}

// List serves GET on the collection.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	if !h.authorize(c, types.ActionList) {
		return
	}

	opts := query.ParseOptions(c.Request.URL.Query(), h.spec)
	if !middleware.IsAuthenticated(c) && h.scopePublic != nil {
		h.scopePublic(&opts)
	}

	entities, err := h.store.List(c.Request.Context(), query.Build(h.spec, opts))
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	h.renderList(c, entities)
}

// Get serves GET on a single record.
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	if !h.authorize(c, types.ActionRetrieve) {
		return
	}

	id := c.Param("id")
	entity, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound(string(h.policy.Resource), id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	h.render(c, http.StatusOK, entity)
}

// Create serves POST on the collection.
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	if !h.authorize(c, types.ActionCreate) {
		return
	}

	entity := h.newEntity()
	if err := c.ShouldBindJSON(entity); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	if h.normalize != nil {
		if err := h.normalize(entity); err != nil {
			_ = c.Error(err)
			return
		}
	}

	if err := h.store.Create(c.Request.Context(), entity); err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	h.render(c, http.StatusCreated, entity)
}

// Update serves PUT and PATCH on a single record. The request body is
// bound over the stored record, so absent fields keep their stored values
// and the result is re-validated as a whole before the full write.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	if !h.authorize(c, types.ActionUpdate) {
		return
	}

	id := c.Param("id")
	entity, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound(string(h.policy.Resource), id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	// Identity and creation time are immutable regardless of the payload.
	rec := entity.RecordRef()
	recordID, createdAt := rec.ID, rec.CreatedAt

	if err := c.ShouldBindJSON(entity); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	rec.ID, rec.CreatedAt = recordID, createdAt

	if h.normalize != nil {
		if err := h.normalize(entity); err != nil {
			_ = c.Error(err)
			return
		}
	}

	if err := h.store.Update(c.Request.Context(), entity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound(string(h.policy.Resource), id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	h.render(c, http.StatusOK, entity)
}

// Delete serves DELETE on a single record.
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	if !h.authorize(c, types.ActionDelete) {
		return
	}

	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound(string(h.policy.Resource), id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
