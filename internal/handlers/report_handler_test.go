package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifeos-finance/internal/models"
	"lifeos-finance/internal/services"
	"lifeos-finance/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	echo                  *echo.Echo
	mockSettlementService *service_mocks.MockSettlementServiceInterface
	handler               *ReportHandler
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockSettlementService = service_mocks.NewMockSettlementServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockSettlementService)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerTestSuite) newPeriodContext(year, month string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("year", "month")
	c.SetParamValues(year, month)
	return c, rec
}

func (s *ReportHandlerTestSuite) TestGetMonthlySummary_Success() {
	summary := &models.MonthlySummary{
		PeriodLabel:      "03/2025",
		Year:             2025,
		Month:            3,
		TransactionCount: 2,
		TotalDebits:      decimal.NewFromFloat(180.00),
		NetSharedBalance: decimal.NewFromFloat(180.00),
		IndividualShare:  decimal.NewFromFloat(90.00),
		GeneratedAt:      time.Now().UTC(),
	}

	s.mockSettlementService.EXPECT().GetMonthlySummary(2025, 3).Return(summary, nil)

	c, rec := s.newPeriodContext("2025", "3")
	s.Require().NoError(s.handler.GetMonthlySummary(c))

	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	s.Contains(string(data), "03/2025")
}

func (s *ReportHandlerTestSuite) TestGetMonthlySummary_InvalidMonth() {
	s.mockSettlementService.EXPECT().GetMonthlySummary(2025, 13).Return(nil, services.ErrInvalidMonth)

	c, rec := s.newPeriodContext("2025", "13")
	s.Require().NoError(s.handler.GetMonthlySummary(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "PERIOD_001")
}

func (s *ReportHandlerTestSuite) TestGetMonthlySummary_InvalidYear() {
	s.mockSettlementService.EXPECT().GetMonthlySummary(1990, 5).Return(nil, services.ErrInvalidYear)

	c, rec := s.newPeriodContext("1990", "5")
	s.Require().NoError(s.handler.GetMonthlySummary(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "PERIOD_002")
}

func (s *ReportHandlerTestSuite) TestGetMonthlySummary_MalformedParams() {
	c, rec := s.newPeriodContext("twenty", "3")
	s.Require().NoError(s.handler.GetMonthlySummary(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ReportHandlerTestSuite) TestGetMonthlySummary_ServiceFailure() {
	s.mockSettlementService.EXPECT().GetMonthlySummary(2025, 3).Return(nil, errors.New("database unavailable"))

	c, rec := s.newPeriodContext("2025", "3")
	s.Require().NoError(s.handler.GetMonthlySummary(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	// Internal detail must not leak
	s.NotContains(rec.Body.String(), "database unavailable")
}

func (s *ReportHandlerTestSuite) TestGetCurrentMonthSummary_Success() {
	summary := &models.MonthlySummary{PeriodLabel: "08/2026"}
	s.mockSettlementService.EXPECT().GetCurrentMonthSummary().Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetCurrentMonthSummary(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerTestSuite) TestGetComprehensiveReport_Success() {
	report := &models.ComprehensiveReport{
		Summary: models.MonthlySummary{PeriodLabel: "03/2025"},
		PreviousComparison: models.PeriodComparison{
			PreviousLabel: "02/2025",
			Trend:         models.TrendRising,
		},
		Insights: []string{"Each party owes 90.00 for this period."},
	}

	s.mockSettlementService.EXPECT().GetComprehensiveReport(2025, 3).Return(report, nil)

	c, rec := s.newPeriodContext("2025", "3")
	s.Require().NoError(s.handler.GetComprehensiveReport(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "rising")
}

func (s *ReportHandlerTestSuite) TestGetAnnualSummary_Success() {
	annual := &models.AnnualSummary{
		Year:        2025,
		TotalDebits: decimal.NewFromFloat(4200.00),
	}

	s.mockSettlementService.EXPECT().GetAnnualSummary(2025).Return(annual, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("year")
	c.SetParamValues("2025")

	s.Require().NoError(s.handler.GetAnnualSummary(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerTestSuite) TestGetSettlement_Success() {
	settlement := &models.Settlement{
		PeriodLabel:        "03/2025",
		SplitMethod:        models.SplitMethodEvenSplit,
		TotalSharedAmount:  decimal.NewFromFloat(160.00),
		AmountOwedByPartyA: decimal.NewFromFloat(80.00),
		AmountOwedByPartyB: decimal.NewFromFloat(80.00),
	}

	s.mockSettlementService.EXPECT().GetSettlement(2025, 3).Return(settlement, nil)

	c, rec := s.newPeriodContext("2025", "3")
	s.Require().NoError(s.handler.GetSettlement(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "50/50")
}
