package handlers

import (
	"net/http"

	apperrors "github.com/axionlabs/axion-backend/errors"
	"github.com/axionlabs/axion-backend/internal/store"
	"github.com/axionlabs/axion-backend/logger"
	"github.com/axionlabs/axion-backend/services"
	"github.com/axionlabs/axion-backend/types"
	"github.com/gin-gonic/gin"
)

// ContactHandler serves the contact collection and notifies the operator
// inbox after each new inquiry. Notification is best effort: the create
// response is identical whether or not the email went out.
type ContactHandler struct {
	*ResourceHandler[*types.Contact]
	mailer services.Mailer
}

func NewContactHandler(s store.ResourceStore[*types.Contact], mailer services.Mailer) *ContactHandler {
	return &ContactHandler{
		ResourceHandler: &ResourceHandler[*types.Contact]{
			store:     s,
			policy:    types.PolicyFor(types.ResourceContact),
			spec:      contactSpec,
			newEntity: func() *types.Contact { return &types.Contact{} },
		},
		mailer: mailer,
	}
}

// Create serves POST on the collection, then sends the operator
// notification before responding.
func (h *ContactHandler) Create(c *gin.Context) {
	if !h.authorize(c, types.ActionCreate) {
		return
	}

	contact := &types.Contact{}
	if err := c.ShouldBindJSON(contact); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	if err := h.store.Create(c.Request.Context(), contact); err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	if h.mailer != nil {
		if err := h.mailer.SendContactNotification(c.Request.Context(), contact); err != nil {
			// Swallowed on purpose: the submission is already persisted
			// and the caller's response must not depend on delivery.
			svcErr := apperrors.NewExternalServiceError("resend", err)
			logger.GetLogger().Warnw("Contact notification failed",
				"error", svcErr,
				"contact_id", contact.ID)
		}
	}

	h.render(c, http.StatusCreated, contact)
}
