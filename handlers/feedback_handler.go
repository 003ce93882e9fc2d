package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/axionlabs/axion-backend/errors"
	"github.com/axionlabs/axion-backend/internal/query"
	"github.com/axionlabs/axion-backend/internal/store"
	"github.com/axionlabs/axion-backend/types"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler serves the feedback collection. It layers the moderation
// actions on the generic handler and narrows unauthenticated listings to
// approved entries.
type FeedbackHandler struct {
	*ResourceHandler[*types.Feedback]
	feedbackStore store.FeedbackStore
}

func NewFeedbackHandler(s store.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{
		ResourceHandler: &ResourceHandler[*types.Feedback]{
			store:     s,
			policy:    types.PolicyFor(types.ResourceFeedback),
			spec:      feedbackSpec,
			newEntity: func() *types.Feedback { return &types.Feedback{} },
			normalize: normalizeFeedback,
			scopePublic: func(opts *query.Options) {
				opts.Filters["approved"] = "true"
			},
		},
		feedbackStore: s,
	}
}

// normalizeFeedback trims surrounding whitespace from the free-text fields
// and rejects values that are blank once trimmed.
func normalizeFeedback(f *types.Feedback) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Company = strings.TrimSpace(f.Company)
	f.Review = strings.TrimSpace(f.Review)

	if f.Name == "" || f.Review == "" {
		return apperrors.ValidationFailed("Invalid request body", "name and review must not be blank")
	}
	return nil
}

// Approve marks a feedback entry as approved.
func (h *FeedbackHandler) Approve(c *gin.Context) {
	h.moderate(c, true)
}

// Reject returns a feedback entry to the pending state.
func (h *FeedbackHandler) Reject(c *gin.Context) {
	h.moderate(c, false)
}

func (h *FeedbackHandler) moderate(c *gin.Context, approved bool) {
	if !h.authorize(c, types.ActionModerate) {
		return
	}

	id := c.Param("id")
	if err := h.feedbackStore.SetApproved(c.Request.Context(), id, approved); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound(string(types.ResourceFeedback), id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	status := "rejected"
	if approved {
		status = "approved"
	}
	c.JSON(http.StatusOK, types.StatusResponse{Status: status})
}
