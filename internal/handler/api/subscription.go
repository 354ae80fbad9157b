package api

import (
	"net/http"

	"maya-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	q queries.SubscriptionQueries
}

func NewSubscriptionHandler(q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{q: q}
}

// @Summary Subscription status
// @Tags subscriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SubscriptionStatusView
// @Failure 401 {object} httperr.Response
// @Router /subscriptions/status [get]
func (h *SubscriptionHandler) Status(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.q.Status(c.Request.Context(), s.AccessToken())
	if err != nil {
		abortWithError(c, err, "Failed to load subscription")
		return
	}
	c.JSON(http.StatusOK, view)
}
