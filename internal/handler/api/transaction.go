package api

import (
	"net/http"
	"time"

	reqdto "maya-connect/internal/handler/dto/request"
	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	q queries.TransactionQueries
}

func NewTransactionHandler(q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{q: q}
}

// @Summary List transactions
// @Description The member's transactions, newest first as returned by the backend
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size, at most 100"
// @Success 200 {object} queries.TransactionPageView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging", nil)
		return
	}
	page, pageSize := query.Values()
	view, err := h.q.List(c.Request.Context(), s.AccessToken(), s.CurrentUser().ID, page, pageSize)
	if err != nil {
		abortWithError(c, err, "Failed to load transactions")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Savings summary
// @Description Totals and per month and per partner groups
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param tz query string false "IANA time zone for month boundaries"
// @Success 200 {object} queries.TransactionSummaryView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /transactions/summary [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var query reqdto.SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	loc := time.UTC
	if query.TimeZone != "" {
		l, err := time.LoadLocation(query.TimeZone)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown time zone", nil)
			return
		}
		loc = l
	}
	view, err := h.q.Summary(c.Request.Context(), s.AccessToken(), s.CurrentUser().ID, loc)
	if err != nil {
		abortWithError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, view)
}
