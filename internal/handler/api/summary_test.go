//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"adslot-panel/internal/handler/api"
	resdto "adslot-panel/internal/handler/dto/response"
	"adslot-panel/internal/usecase/queries"
	"adslot-panel/tests/common/httptest"
	queriesmock "adslot-panel/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SummaryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.SummaryHandler
}

func (s *SummaryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewSummaryHandler(s.mockQueries)

	s.router.GET("/dashboard", s.handler.Dashboard)
	s.router.GET("/summaries/monthly", s.handler.MonthlySummary)
	s.router.GET("/summaries/yearly", s.handler.YearlySummary)
	s.router.GET("/summaries/clients", s.handler.ClientSummary)
}

func (s *SummaryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerTestSuite))
}

func (s *SummaryHandlerTestSuite) TestDashboard() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any()).
			Return(&queries.DashboardView{Active: 3, Expired: 2, Total: 5, RevenueCents: 123400}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, "")

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Active)
		s.Equal(2, body.Expired)
		s.Equal(5, body.Total)
		s.Equal(int64(123400), body.RevenueCents)
	})

	s.Run("error: 502 when the store is unreachable", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any()).
			Return(nil, queries.ErrStoreReadFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Record store unavailable")
	})
}

func (s *SummaryHandlerTestSuite) TestSummaries() {
	s.Run("monthly", func() {
		s.mockQueries.EXPECT().MonthlySummary(gomock.Any()).
			Return([]queries.PeriodSummaryView{{Period: "2025-01", TotalCents: 30000}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/summaries/monthly", nil, "")

		var body []resdto.PeriodSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("2025-01", body[0].Period)
	})

	s.Run("yearly", func() {
		s.mockQueries.EXPECT().YearlySummary(gomock.Any()).
			Return([]queries.PeriodSummaryView{{Period: "2025", TotalCents: 90000}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/summaries/yearly", nil, "")

		var body []resdto.PeriodSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(90000), body[0].TotalCents)
	})

	s.Run("clients", func() {
		s.mockQueries.EXPECT().ClientSummary(gomock.Any()).
			Return([]queries.ClientSummaryView{{Client: "grande", TotalCents: 50000}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/summaries/clients", nil, "")

		var body []resdto.ClientSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("grande", body[0].Client)
	})
}
