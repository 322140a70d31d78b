package lending

import (
	"context"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/loan"
	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/underwriting"
	"github.com/NextAI-Gen/Credit-approval-system/internal/event"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockLoanRepository struct {
	mock.Mock
}

func (_m *MockLoanRepository) CreateLoan(ctx context.Context, l *loan.Loan) (*loan.Loan, error) {
	ret := _m.Called(ctx, l)

	var r0 *loan.Loan
	if rf, ok := ret.Get(0).(func(context.Context, *loan.Loan) *loan.Loan); ok {
		r0 = rf(ctx, l)
	} else {

		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*loan.Loan)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *loan.Loan) error); ok {
		r1 = rf(ctx, l)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockLoanRepository) FindByID(ctx context.Context, loanID int64) (*loan.Loan, error) {
	ret := _m.Called(ctx, loanID)

	var r0 *loan.Loan
	if rf, ok := ret.Get(0).(func(context.Context, int64) *loan.Loan); ok {
		r0 = rf(ctx, loanID)
	} else {

		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*loan.Loan)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, loanID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockLoanRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]loan.Loan, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []loan.Loan
	if rf, ok := ret.Get(0).(func(context.Context, int64) []loan.Loan); ok {
		r0 = rf(ctx, customerID)
	} else {

		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]loan.Loan)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockLoanRepository) SumMonthlyRepayments(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	ret := _m.Called(ctx, customerID)

	var r0 decimal.Decimal
	if rf, ok := ret.Get(0).(func(context.Context, int64) decimal.Decimal); ok {
		r0 = rf(ctx, customerID)
	} else {

		if ret.Get(0) != nil {
			r0 = ret.Get(0).(decimal.Decimal)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockLoanRepository) SumActiveLoanAmounts(ctx context.Context, customerID int64, asOf time.Time) (decimal.Decimal, error) {
	ret := _m.Called(ctx, customerID, asOf)

	var r0 decimal.Decimal
	if rf, ok := ret.Get(0).(func(context.Context, int64, time.Time) decimal.Decimal); ok {
		r0 = rf(ctx, customerID, asOf)
	} else {

		if ret.Get(0) != nil {
			r0 = ret.Get(0).(decimal.Decimal)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, time.Time) error); ok {
		r1 = rf(ctx, customerID, asOf)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

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

type MockDecisionCache struct {
	mock.Mock
}

func (_m *MockDecisionCache) GetDecision(ctx context.Context, key string) (*underwriting.Decision, bool) {
	ret := _m.Called(ctx, key)

	var r0 *underwriting.Decision
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*underwriting.Decision)
	}
	return r0, ret.Bool(1)
}

func (_m *MockDecisionCache) SetDecision(ctx context.Context, key string, decision *underwriting.Decision) error {
	ret := _m.Called(ctx, key, decision)
	return ret.Error(0)
}

func (_m *MockDecisionCache) InvalidateCustomer(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)
	return ret.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) PublishCustomerRegistered(ctx context.Context, evt event.CustomerRegisteredEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockEventPublisher) PublishLoanCreated(ctx context.Context, evt event.LoanCreatedEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}
