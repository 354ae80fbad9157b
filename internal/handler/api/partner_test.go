//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"maya-connect/internal/domain/partner"
	"maya-connect/internal/handler/api"
	"maya-connect/internal/infra"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/validation"
	"maya-connect/internal/usecase/queries"
	"maya-connect/tests/common/builder"
	"maya-connect/tests/common/httptest"
	queriesmock "maya-connect/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PartnerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPartnerQueries
}

func (s *PartnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.RegisterBinding()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPartnerQueries(s.mockCtrl)
	h := api.NewPartnerHandler(s.mockQueries)

	authed := s.router.Group("", withSession(newSession(s.T(), builder.NewUserBuilder().BuildProfile())))
	authed.GET("/partners/nearby-offers", h.NearbyOffers)
	authed.GET("/partners/:id", h.Get)
	authed.GET("/stores/nearby", h.NearbyStores)
}

func (s *PartnerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPartnerHandlerSuite(t *testing.T) {
	suite.Run(t, new(PartnerHandlerTestSuite))
}

func (s *PartnerHandlerTestSuite) TestNearbyOffers() {
	s.Run("success: passes the location through", func() {
		view := &queries.NearbyView{
			Items:      []partner.Partner{builder.NewPartnerBuilder().WithName("Chez Awa").BuildDomain()},
			Considered: 4,
		}
		s.mockQueries.EXPECT().
			NearbyOffers(gomock.Any(), "access-token", queries.NearbyParams{Latitude: 48.8566, Longitude: 2.3522, RadiusKm: 5}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/nearby-offers?lat=48.8566&lng=2.3522&radiusKm=5", nil, "")

		var got queries.NearbyView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(4, got.Considered)
		s.Require().Len(got.Items, 1)
		s.Equal("Chez Awa", got.Items[0].Name)
	})

	s.Run("error: 400 on bad coordinates", func() {
		testCases := []struct {
			name  string
			query string
		}{
			{name: "missing latitude", query: "lng=2.35"},
			{name: "missing longitude", query: "lat=48.85"},
			{name: "latitude out of range", query: "lat=91&lng=2.35"},
			{name: "longitude out of range", query: "lat=48.85&lng=181"},
			{name: "radius too large", query: "lat=48.85&lng=2.35&radiusKm=500"},
			{name: "not a number", query: "lat=north&lng=2.35"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/nearby-offers?"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid location")
			})
		}
	})

	s.Run("error: upstream failure maps to 502", func() {
		s.mockQueries.EXPECT().NearbyOffers(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapErr(discard, infra.KindUpstream, "search partners", &backend.APIError{StatusCode: 500}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/nearby-offers?lat=1&lng=1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})
}

func (s *PartnerHandlerTestSuite) TestNearbyStores() {
	s.mockQueries.EXPECT().
		NearbyStores(gomock.Any(), "access-token", queries.NearbyParams{Latitude: 1.5, Longitude: -3}).
		Return(&queries.NearbyView{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/nearby?lat=1.5&lng=-3", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *PartnerHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		p := builder.NewPartnerBuilder().WithName("Chez Awa").BuildDomain()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "access-token", p.ID).Return(&p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/"+p.ID, nil, "")

		var got partner.Partner
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("Chez Awa", got.Name)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "access-token", "missing").
			Return(nil, errs.Mark(errs.New("no such partner"), queries.ErrPartnerNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
