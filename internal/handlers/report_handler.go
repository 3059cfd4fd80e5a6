package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "lifeos-finance/internal/errors"
	"lifeos-finance/internal/services"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	settlementService services.SettlementServiceInterface
}

func NewReportHandler(settlementService services.SettlementServiceInterface) *ReportHandler {
	return &ReportHandler{
		settlementService: settlementService,
	}
}

// GetMonthlySummary returns the shared-expense summary of one month
//
// Method: GET /api/v1/reports/summary/:year/:month
//
// Success Response: 200 OK with the monthly summary
// Error Responses:
//   - 400: Invalid year or month
//   - 500: Internal server error
func (h *ReportHandler) GetMonthlySummary(c echo.Context) error {
	year, month, err := parsePeriodParams(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	summary, err := h.settlementService.GetMonthlySummary(year, month)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
	})
}

// GetCurrentMonthSummary returns the running month's summary
//
// Method: GET /api/v1/reports/summary/current
func (h *ReportHandler) GetCurrentMonthSummary(c echo.Context) error {
	summary, err := h.settlementService.GetCurrentMonthSummary()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
	})
}

// GetComprehensiveReport returns a monthly summary enriched with the previous
// period comparison, top expenses and insights
//
// Method: GET /api/v1/reports/comprehensive/:year/:month
func (h *ReportHandler) GetComprehensiveReport(c echo.Context) error {
	year, month, err := parsePeriodParams(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	report, err := h.settlementService.GetComprehensiveReport(year, month)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report,
	})
}

// GetAnnualSummary returns the twelve-month rollup of one year
//
// Method: GET /api/v1/reports/annual/:year
func (h *ReportHandler) GetAnnualSummary(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid year format"))
	}

	annual, err := h.settlementService.GetAnnualSummary(year)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: annual,
	})
}

// GetSettlement returns the 50/50 settlement of one month
//
// Method: GET /api/v1/reports/settlement/:year/:month
func (h *ReportHandler) GetSettlement(c echo.Context) error {
	year, month, err := parsePeriodParams(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	settlement, err := h.settlementService.GetSettlement(year, month)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: settlement,
	})
}

func parsePeriodParams(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, errors.New("invalid year format")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, errors.New("invalid month format")
	}

	return year, month, nil
}

func (h *ReportHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidMonth) {
		return SendError(c, apierrors.PeriodInvalidMonth)
	}

	if errors.Is(err, services.ErrInvalidYear) {
		return SendError(c, apierrors.PeriodInvalidYear)
	}

	return SendSystemError(c, err)
}
