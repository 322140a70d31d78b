package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) RegisterCustomer(ctx context.Context, firstName, lastName string, age int, phoneNumber int64, monthlyIncome decimal.Decimal) (*customer.Customer, error) {
	ret := _m.Called(ctx, firstName, lastName, age, phoneNumber, monthlyIncome)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) UpdateCurrentDebt(ctx context.Context, customerID int64, currentDebt decimal.Decimal) error {
	ret := _m.Called(ctx, customerID, currentDebt)
	return ret.Error(0)
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Registers customer and returns 201", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := NewCustomerHandler(mockService, testLogger)

		registered := &customer.Customer{
			CustomerID:    1,
			FirstName:     "Asha",
			LastName:      "Rao",
			Age:           30,
			PhoneNumber:   9876543210,
			MonthlySalary: decimal.NewFromInt(50000),
			ApprovedLimit: decimal.NewFromInt(1_800_000),
		}
		mockService.On("RegisterCustomer", mock.Anything, "Asha", "Rao", 30, int64(9876543210), mock.Anything).
			Return(registered, nil)

		body := `{"first_name":"Asha","last_name":"Rao","age":30,"monthly_income":50000,"phone_number":9876543210}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Asha Rao", resp["name"])
		assert.Equal(t, float64(1), resp["customer_id"])
		assert.Equal(t, "1800000", resp["approved_limit"])
		mockService.AssertExpectations(t)
	})

	t.Run("Rejects invalid body with 400", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := NewCustomerHandler(mockService, testLogger)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(`{"first_name":""}`))
		rec := httptest.NewRecorder()

		h.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "RegisterCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Underage customer yields 400", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := NewCustomerHandler(mockService, testLogger)

		mockService.On("RegisterCustomer", mock.Anything, "Teen", "Ager", 16, int64(1234567890), mock.Anything).
			Return(nil, fmt.Errorf("%w: age must be at least 18", apperrors.ErrValidation))

		body := `{"first_name":"Teen","last_name":"Ager","age":16,"monthly_income":50000,"phone_number":1234567890}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate phone number yields 409", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := NewCustomerHandler(mockService, testLogger)

		mockService.On("RegisterCustomer", mock.Anything, "Asha", "Rao", 30, int64(9876543210), mock.Anything).
			Return(nil, fmt.Errorf("%w: customers_phone_number_key", apperrors.ErrAlreadyExists))

		body := `{"first_name":"Asha","last_name":"Rao","age":30,"monthly_income":50000,"phone_number":9876543210}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
