package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"spendtrack/internal/auth"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/service"
)

// TransactionHandler handles the CRUD endpoints of one transaction variant.
// One instance is registered for incomes and one for expenses.
type TransactionHandler struct {
	service service.TransactionService
	kind    model.TransactionKind
}

// NewTransactionHandler creates a handler for the given variant.
func NewTransactionHandler(svc service.TransactionService, kind model.TransactionKind) *TransactionHandler {
	return &TransactionHandler{service: svc, kind: kind}
}

// AddTransactionRequest represents an add-income / add-expense request. The
// amount accepts both JSON numbers and numeric strings.
type AddTransactionRequest struct {
	Title       string          `json:"title" validate:"required,max=50"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Date        string          `json:"date" validate:"required"`
}

// UpdateTransactionRequest represents a partial update. Pointer fields
// distinguish "omitted" from "supplied"; supplied empty or non-positive values
// are still skipped, so no field can be blanked out through this endpoint.
type UpdateTransactionRequest struct {
	Title       *string          `json:"title"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
}

// parseDate accepts the dashboard's plain calendar dates and RFC3339 stamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *TransactionHandler) mapError(err error) *echo.HTTPError {
	if errors.Is(err, apperrors.ErrTransactionNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, h.kind.Label()+" not found")
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
}

// Add godoc
// @Summary Add a transaction record
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddTransactionRequest true "Transaction data"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 500 {object} Response
// @Router /add-income [post]
func (h *TransactionHandler) Add(c echo.Context) error {
	var req AddTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date")
	}

	txn, err := h.service.Add(c.Request().Context(), auth.UserID(c), service.NewTransaction{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return h.mapError(err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: h.kind.Label() + " added successfully",
		Data:    txn,
	})
}

// List godoc
// @Summary List the caller's transaction records
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 500 {object} Response
// @Router /get-income [get]
func (h *TransactionHandler) List(c echo.Context) error {
	txns, err := h.service.List(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return h.mapError(err)
	}
	if txns == nil {
		txns = []model.Transaction{}
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: h.kind.Label() + " fetched successfully",
		Data:    txns,
	})
}

// Update godoc
// @Summary Update a transaction record in place
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Param request body UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /update-income/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, h.kind.Label()+" not found")
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	update := service.TransactionUpdate{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid date")
		}
		update.Date = &date
	}

	txn, err := h.service.Update(c.Request().Context(), auth.UserID(c), id, update)
	if err != nil {
		return h.mapError(err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: h.kind.Label() + " updated successfully",
		Data:    txn,
	})
}

// Delete godoc
// @Summary Delete a transaction record
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /delete-income/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, h.kind.Label()+" not found")
	}

	txn, err := h.service.Delete(c.Request().Context(), auth.UserID(c), id)
	if err != nil {
		return h.mapError(err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: h.kind.Label() + " deleted successfully",
		Data:    txn,
	})
}
