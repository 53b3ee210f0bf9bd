package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spendtrack/internal/auth"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/service"
)

// SummaryHandler serves the dashboard aggregates.
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// Get godoc
// @Summary Dashboard summary for the caller
// @Description Balance, current-month totals and expense totals per category.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 500 {object} Response
// @Router /summary [get]
func (h *SummaryHandler) Get(c echo.Context) error {
	summary, err := h.summaryService.Summarize(c.Request().Context(), auth.UserID(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Summary fetched successfully",
		Data:    summary,
	})
}
