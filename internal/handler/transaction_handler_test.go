package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spendtrack/internal/auth"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/service"
)

func TestTransactionRoutesRequireToken(t *testing.T) {
	env := newTestEnv()

	t.Run("missing token", func(t *testing.T) {
		rec := env.request(http.MethodGet, "/api/get-expense", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "No token provided", body["message"])
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := env.request(http.MethodGet, "/api/get-expense", "garbage", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", decodeBody(t, rec)["message"])
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign, err := auth.NewJWTService("another-secret").GenerateToken(uuid.New(), "a@x.com")
		assert.NoError(t, err)

		rec := env.request(http.MethodGet, "/api/get-expense", foreign, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", decodeBody(t, rec)["message"])
	})
}

func TestAddExpense(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)

		created := &model.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       "Coffee",
			Amount:      decimal.NewFromFloat(4.5),
			Type:        model.KindExpense,
			Category:    "Food",
			Description: "morning",
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		env.expenseSvc.On("Add", mock.Anything, userID, service.NewTransaction{
			Title:       "Coffee",
			Amount:      decimal.NewFromFloat(4.5),
			Category:    "Food",
			Description: "morning",
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}).Return(created, nil)

		rec := env.request(http.MethodPost, "/api/add-expense", token,
			`{"title":"Coffee","amount":4.5,"category":"Food","description":"morning","date":"2024-01-01"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Expense added successfully", body["message"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Coffee", data["title"])
		env.expenseSvc.AssertExpectations(t)
	})

	t.Run("missing fields answer 400", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)

		rec := env.request(http.MethodPost, "/api/add-expense", token,
			`{"amount":4.5,"date":"2024-01-01"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "All fields are required", decodeBody(t, rec)["message"])
		env.expenseSvc.AssertNotCalled(t, "Add")
	})

	t.Run("non-positive amount answers 400", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)
		env.expenseSvc.On("Add", mock.Anything, userID, mock.Anything).
			Return(nil, apperrors.ErrInvalidAmount)

		rec := env.request(http.MethodPost, "/api/add-expense", token,
			`{"title":"Coffee","amount":-1,"category":"Food","description":"morning","date":"2024-01-01"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid amount", decodeBody(t, rec)["message"])
	})

	t.Run("unparseable date answers 400", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)

		rec := env.request(http.MethodPost, "/api/add-expense", token,
			`{"title":"Coffee","amount":4.5,"category":"Food","description":"morning","date":"January 1st"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid date", decodeBody(t, rec)["message"])
		env.expenseSvc.AssertNotCalled(t, "Add")
	})
}

func TestListIncome(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the caller's records", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)
		env.incomeSvc.On("List", mock.Anything, userID).Return([]model.Transaction{
			{ID: uuid.New(), UserID: userID, Title: "Salary", Amount: decimal.NewFromInt(3200), Type: model.KindIncome},
		}, nil)

		rec := env.request(http.MethodGet, "/api/get-income", token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Income fetched successfully", body["message"])
		data := body["data"].([]interface{})
		assert.Len(t, data, 1)
	})

	t.Run("empty result is success with an empty array", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)
		env.incomeSvc.On("List", mock.Anything, userID).Return([]model.Transaction{}, nil)

		rec := env.request(http.MethodGet, "/api/get-income", token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		data, ok := body["data"].([]interface{})
		assert.True(t, ok, "data should be an array, body: %s", rec.Body.String())
		assert.Empty(t, data)
	})
}

func TestUpdateExpense(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()

	t.Run("success", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)

		updated := &model.Transaction{ID: recordID, UserID: userID, Title: "Coffee", Amount: decimal.NewFromFloat(5.0), Type: model.KindExpense}
		env.expenseSvc.On("Update", mock.Anything, userID, recordID, mock.MatchedBy(func(u service.TransactionUpdate) bool {
			return u.Amount != nil && u.Amount.Equal(decimal.NewFromFloat(5.0)) && u.Title == nil
		})).Return(updated, nil)

		rec := env.request(http.MethodPut, "/api/update-expense/"+recordID.String(), token, `{"amount":5.0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Expense updated successfully", decodeBody(t, rec)["message"])
		env.expenseSvc.AssertExpectations(t)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)
		env.expenseSvc.On("Update", mock.Anything, userID, recordID, mock.Anything).
			Return(nil, apperrors.ErrTransactionNotFound)

		rec := env.request(http.MethodPut, "/api/update-expense/"+recordID.String(), token, `{"title":"x"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Expense not found", decodeBody(t, rec)["message"])
	})

	t.Run("malformed id answers 404", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)

		rec := env.request(http.MethodPut, "/api/update-expense/not-a-uuid", token, `{"title":"x"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env.expenseSvc.AssertNotCalled(t, "Update")
	})
}

func TestDeleteIncome(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()

	t.Run("success returns the deleted snapshot", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)

		deleted := &model.Transaction{ID: recordID, UserID: userID, Title: "Salary", Amount: decimal.NewFromInt(3200), Type: model.KindIncome}
		env.incomeSvc.On("Delete", mock.Anything, userID, recordID).Return(deleted, nil)

		rec := env.request(http.MethodDelete, "/api/delete-income/"+recordID.String(), token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Income deleted successfully", body["message"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, recordID.String(), data["id"])
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		env := newTestEnv()
		token := env.tokenFor(t, userID)
		env.incomeSvc.On("Delete", mock.Anything, userID, recordID).
			Return(nil, apperrors.ErrTransactionNotFound)

		rec := env.request(http.MethodDelete, "/api/delete-income/"+recordID.String(), token, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Income not found", decodeBody(t, rec)["message"])
	})
}

func TestSummary(t *testing.T) {
	userID := uuid.New()

	env := newTestEnv()
	token := env.tokenFor(t, userID)
	env.summarySvc.On("Summarize", mock.Anything, userID).Return(&service.Summary{
		Balance:      decimal.RequireFromString("2359.65"),
		TotalIncome:  decimal.RequireFromString("3650.50"),
		TotalExpense: decimal.RequireFromString("1290.85"),
		ExpenseByCategory: map[string]decimal.Decimal{
			"Food": decimal.RequireFromString("90.85"),
		},
	}, nil)

	rec := env.request(http.MethodGet, "/api/summary", token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.NotNil(t, data["balance"])
	assert.NotNil(t, data["expenseByCategory"])
}
