package customer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTest() (*customer.MockCustomerRepository, customer.CustomerService) {
	mockRepo := new(customer.MockCustomerRepository)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := customer.NewCustomerService(mockRepo, nil, logger)
	return mockRepo, service
}

func TestCustomerService_RegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		expectedCustomerID := int64(1)
		salary := decimal.NewFromInt(50000)

		mockRepo.On("Save", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			match := c.FirstName == "Asha" &&
				c.LastName == "Rao" &&
				c.Age == 30 &&
				c.PhoneNumber == int64(9876543210) &&
				c.MonthlySalary.Equal(salary) &&
				c.ApprovedLimit.Equal(decimal.NewFromInt(1_800_000)) &&
				c.CurrentDebt.IsZero()
			if match {
				c.CustomerID = expectedCustomerID
			}
			return match
		})).Return(nil).Once()

		created, err := service.RegisterCustomer(ctx, " Asha ", "Rao", 30, 9876543210, salary)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		if created != nil {
			assert.Equal(t, expectedCustomerID, created.CustomerID)
			assert.Equal(t, "Asha Rao", created.FullName())
		}
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Underage", func(t *testing.T) {
		mockRepo, service := setupTest()
		_, err := service.RegisterCustomer(ctx, "Young", "Person", 17, 9876543210, decimal.NewFromInt(50000))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Duplicate phone number", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("Save", ctx, mock.Anything).
			Return(apperrors.ErrAlreadyExists).Once()

		_, err := service.RegisterCustomer(ctx, "Asha", "Rao", 30, 9876543210, decimal.NewFromInt(50000))
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_GetCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		expected := &customer.Customer{CustomerID: 7, FirstName: "Asha", LastName: "Rao"}
		mockRepo.On("FindByID", ctx, int64(7)).Return(expected, nil).Once()

		cust, err := service.GetCustomer(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, expected, cust)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("FindByID", ctx, int64(42)).Return(nil, customer.ErrNotFound).Once()

		_, err := service.GetCustomer(ctx, 42)
		assert.ErrorIs(t, err, customer.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo, service := setupTest()
		dbErr := errors.New("connection lost")
		mockRepo.On("FindByID", ctx, int64(7)).Return(nil, dbErr).Once()

		_, err := service.GetCustomer(ctx, 7)
		assert.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_UpdateCurrentDebt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		debt := decimal.NewFromInt(250000)
		mockRepo.On("UpdateCurrentDebt", ctx, int64(3), debt).Return(nil).Once()

		err := service.UpdateCurrentDebt(ctx, 3, debt)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Negative debt rejected", func(t *testing.T) {
		mockRepo, service := setupTest()
		err := service.UpdateCurrentDebt(ctx, 3, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "UpdateCurrentDebt", mock.Anything, mock.Anything, mock.Anything)
	})
}
