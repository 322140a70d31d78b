package postgres

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/customer"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

const pgxmockExpectationsNotMetMsg = "pgxmock expectations were not met"

var customerTest = &customer.Customer{
	CustomerID:    1,
	FirstName:     "Asha",
	LastName:      "Rao",
	Age:           30,
	PhoneNumber:   9876543210,
	MonthlySalary: decimal.NewFromInt(50000),
	ApprovedLimit: decimal.NewFromInt(1_800_000),
	CurrentDebt:   decimal.Zero,
	CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
}

func setupCustomerRepo(t *testing.T) (context.Context, *CustomerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCustomerRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestCreateCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	newCust := &customer.Customer{
		FirstName:     "Asha",
		LastName:      "Rao",
		Age:           30,
		PhoneNumber:   9876543210,
		MonthlySalary: decimal.NewFromInt(50000),
		ApprovedLimit: decimal.NewFromInt(1_800_000),
		CurrentDebt:   decimal.Zero,
	}

	mockPool.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers`)).WithArgs(
		newCust.FirstName,
		newCust.LastName,
		newCust.Age,
		newCust.PhoneNumber,
		newCust.MonthlySalary,
		newCust.ApprovedLimit,
		newCust.CurrentDebt,
	).WillReturnRows(pgxmock.NewRows([]string{"customer_id", "created_at", "updated_at"}).
		AddRow(int64(7), customerTest.CreatedAt, customerTest.UpdatedAt))

	err := repo.Save(ctx, newCust)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), newCust.CustomerID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCreateCustomerWhenPhoneNumberTaken(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	newCust := &customer.Customer{
		FirstName:     "Asha",
		LastName:      "Rao",
		Age:           30,
		PhoneNumber:   9876543210,
		MonthlySalary: decimal.NewFromInt(50000),
		ApprovedLimit: decimal.NewFromInt(1_800_000),
		CurrentDebt:   decimal.Zero,
	}

	mockPool.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers`)).WithArgs(
		newCust.FirstName,
		newCust.LastName,
		newCust.Age,
		newCust.PhoneNumber,
		newCust.MonthlySalary,
		newCust.ApprovedLimit,
		newCust.CurrentDebt,
	).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_phone_number_key"})

	err := repo.Save(ctx, newCust)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(`UPDATE customers`)).WithArgs(
		customerTest.FirstName,
		customerTest.LastName,
		customerTest.Age,
		customerTest.PhoneNumber,
		customerTest.MonthlySalary,
		customerTest.ApprovedLimit,
		customerTest.CurrentDebt,
		customerTest.CustomerID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Save(ctx, customerTest)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	rows := pgxmock.NewRows([]string{
		"customer_id", "first_name", "last_name", "age", "phone_number",
		"monthly_salary", "approved_limit", "current_debt", "created_at", "updated_at",
	}).AddRow(
		customerTest.CustomerID, customerTest.FirstName, customerTest.LastName,
		customerTest.Age, customerTest.PhoneNumber, customerTest.MonthlySalary,
		customerTest.ApprovedLimit, customerTest.CurrentDebt,
		customerTest.CreatedAt, customerTest.UpdatedAt,
	)

	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`)).
		WithArgs(customerTest.CustomerID).
		WillReturnRows(rows)

	found, err := repo.FindByID(ctx, customerTest.CustomerID)
	assert.NoError(t, err)
	assert.Equal(t, customerTest.FirstName, found.FirstName)
	assert.True(t, found.ApprovedLimit.Equal(customerTest.ApprovedLimit))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"customer_id"}))

	found, err := repo.FindByID(ctx, 404)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, customer.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestUpdateCurrentDebtWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	debt := decimal.NewFromInt(100_000)
	mockPool.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET current_debt = $1, updated_at = NOW() WHERE customer_id = $2`)).
		WithArgs(debt, customerTest.CustomerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateCurrentDebt(ctx, customerTest.CustomerID, debt)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestUpdateCurrentDebtWhenCustomerMissing(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	debt := decimal.NewFromInt(100_000)
	mockPool.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET current_debt = $1, updated_at = NOW() WHERE customer_id = $2`)).
		WithArgs(debt, int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateCurrentDebt(ctx, 404, debt)
	assert.ErrorIs(t, err, customer.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
