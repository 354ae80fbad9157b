package api

import (
	"net/http"

	reqdto "maya-connect/internal/handler/dto/request"
	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Partner dashboard
// @Description Scans and revenue per day for the signed-in partner
// @Tags partner
// @Security BearerAuth
// @Produce json
// @Param days query int false "Days to cover, 1 to 90"
// @Success 200 {object} dashboard.Dashboard
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /partner/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var query reqdto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid range", nil)
		return
	}
	d, err := h.q.ForPartner(c.Request.Context(), s.CurrentUser(), query.Value())
	if err != nil {
		abortWithError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, d)
}
