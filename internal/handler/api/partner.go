package api

import (
	"context"
	"net/http"

	reqdto "maya-connect/internal/handler/dto/request"
	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	q queries.PartnerQueries
}

func NewPartnerHandler(q queries.PartnerQueries) *PartnerHandler {
	return &PartnerHandler{q: q}
}

// @Summary Nearby offers
// @Description Open partners with an active promotion close to the member, best first
// @Tags partners
// @Security BearerAuth
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radiusKm query number false "Search radius in km"
// @Success 200 {object} queries.NearbyView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /partners/nearby-offers [get]
func (h *PartnerHandler) NearbyOffers(c *gin.Context) {
	h.nearby(c, h.q.NearbyOffers)
}

// @Summary Nearby stores
// @Description Stores close to the member, best first
// @Tags stores
// @Security BearerAuth
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radiusKm query number false "Search radius in km"
// @Success 200 {object} queries.NearbyView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /stores/nearby [get]
func (h *PartnerHandler) NearbyStores(c *gin.Context) {
	h.nearby(c, h.q.NearbyStores)
}

func (h *PartnerHandler) nearby(c *gin.Context, find func(ctx context.Context, token string, p queries.NearbyParams) (*queries.NearbyView, error)) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	var query reqdto.NearbyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location", nil)
		return
	}
	view, err := find(c.Request.Context(), s.AccessToken(), query.ToParams())
	if err != nil {
		abortWithError(c, err, "Failed to load nearby partners")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get partner
// @Description Partner details
// @Tags partners
// @Security BearerAuth
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} partner.Partner
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /partners/{id} [get]
func (h *PartnerHandler) Get(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	p, err := h.q.GetByID(c.Request.Context(), s.AccessToken(), c.Param("id"))
	if err != nil {
		abortWithError(c, err, "Failed to load partner")
		return
	}
	c.JSON(http.StatusOK, p)
}
