package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NextAI-Gen/Credit-approval-system/internal/domain/loan"
	"github.com/NextAI-Gen/Credit-approval-system/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

var _ loan.LoanRepository = (*LoanRepository)(nil)

var errMsgFormat = "%w: %w"

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{db: db, logger: logger.With("component", "LoanRepository")}
}

const loanColumns = `loan_id, customer_id, loan_amount, tenure, interest_rate, monthly_repayment, emis_paid_on_time, start_date, end_date, created_at, updated_at`

func scanLoan(row pgx.Row, l *loan.Loan) error {
	return row.Scan(
		&l.LoanID, &l.CustomerID, &l.LoanAmount, &l.Tenure, &l.InterestRate,
		&l.MonthlyRepayment, &l.EMIsPaidOnTime, &l.StartDate, &l.EndDate,
		&l.CreatedAt, &l.UpdatedAt,
	)
}

// CreateLoan inserts the loan and bumps the customer's current debt by the
// loan amount in one transaction, so an eligibility snapshot taken after
// commit always sees both.
func (r *LoanRepository) CreateLoan(ctx context.Context, newLoan *loan.Loan) (*loan.Loan, error) {
	if newLoan == nil {
		return nil, fmt.Errorf("%w: loan cannot be nil", apperrors.ErrInvalidArgument)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.ErrorContext(ctx, "Failed to rollback transaction", "error", rbErr)
		}
	}()

	loanSQL := `
        INSERT INTO loans (customer_id, loan_amount, tenure, interest_rate, monthly_repayment, emis_paid_on_time, start_date, end_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING ` + loanColumns

	var created loan.Loan
	err = scanLoan(tx.QueryRow(ctx, loanSQL,
		newLoan.CustomerID, newLoan.LoanAmount, newLoan.Tenure, newLoan.InterestRate,
		newLoan.MonthlyRepayment, newLoan.EMIsPaidOnTime, newLoan.StartDate, newLoan.EndDate,
	), &created)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert loan", "error", err)
		return nil, translateDBError(err, r.logger)
	}

	debtSQL := `UPDATE customers SET current_debt = current_debt + $1, updated_at = NOW() WHERE customer_id = $2`
	cmdTag, err := tx.Exec(ctx, debtSQL, created.LoanAmount, created.CustomerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to bump customer debt", "customer_id", created.CustomerID, "error", err)
		return nil, fmt.Errorf("%w: failed to update customer debt: %w", apperrors.ErrDatabase, err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.ErrorContext(ctx, "Debt update affected zero rows, customer missing", "customer_id", created.CustomerID)
		return nil, fmt.Errorf("%w: customer %d not found while booking loan", apperrors.ErrNotFound, created.CustomerID)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Loan created in DB", "loan_id", created.LoanID, "customer_id", created.CustomerID)
	return &created, nil
}

func (r *LoanRepository) FindByID(ctx context.Context, loanID int64) (*loan.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1`

	var l loan.Loan
	err := scanLoan(r.db.QueryRow(ctx, query, loanID), &l)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loan.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query loan by ID", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return &l, nil
}

func (r *LoanRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]loan.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id = $1 ORDER BY loan_id ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query loans by customer", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	loans := make([]loan.Loan, 0)
	for rows.Next() {
		var l loan.Loan
		if err := scanLoan(rows, &l); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan loan row", "customer_id", customerID, "error", err)
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		loans = append(loans, l)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating loan rows", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return loans, nil
}

// SumMonthlyRepayments deliberately has no date filter: the EMI burden is
// computed over every recorded loan, matured ones included.
func (r *LoanRepository) SumMonthlyRepayments(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(monthly_repayment), 0)
        FROM loans
        WHERE customer_id = $1`

	return r.sumQuery(ctx, query, customerID)
}

func (r *LoanRepository) SumActiveLoanAmounts(ctx context.Context, customerID int64, asOf time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(loan_amount), 0)
        FROM loans
        WHERE customer_id = $1 AND end_date > $2`

	return r.sumQuery(ctx, query, customerID, asOf)
}

func (r *LoanRepository) sumQuery(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		r.logger.ErrorContext(ctx, "Failed to compute loan aggregate", "error", err)
		return decimal.Zero, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return total, nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {

		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}

		if pgErr.Code == "23503" {
			contextLogger.Warn("Database foreign key violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
