package sqlite

import (
	"context"
	"strconv"

	domainerrors "restaurant/internal/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mode tells the Executor what shape of result a statement produces.
type Mode int

const (
	// ReadMany scans every row into a slice; zero rows is an empty slice.
	ReadMany Mode = iota + 1
	// ReadOne scans a single row; zero rows is a not-found error.
	ReadOne
	// Write changes data and reports the affected row count.
	Write
)

func (m Mode) String() string {
	switch m {
	case ReadMany:
		return "read_many"
	case ReadOne:
		return "read_one"
	case Write:
		return "write"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Statement is a parameterized SQL statement. Args are always bound, never interpolated.
type Statement struct {
	SQL  string
	Args []any
	Mode Mode
}

// Result reports the outcome of a Write.
type Result struct {
	RowsAffected int64
}

// Executor runs statements against the store and translates every failure into
// the domain error taxonomy. An Executor bound to an open transaction leaves the
// commit or rollback decision to that transaction's owner.
type Executor struct {
	db *gorm.DB
}

// NewExecutor returns an Executor over db, which may be a transaction.
func NewExecutor(db *gorm.DB) *Executor {
	return &Executor{db: db}
}

// WithTx returns an Executor bound to tx.
func (e *Executor) WithTx(tx *gorm.DB) *Executor {
	return &Executor{db: tx}
}

// InTransaction reports whether the executor is bound to an open transaction.
func (e *Executor) InTransaction() bool {
	return isTransaction(e.db)
}

// Execute dispatches stmt on its Mode. dest is ignored for writes.
func (e *Executor) Execute(ctx context.Context, stmt Statement, dest any) (Result, error) {
	switch stmt.Mode {
	case ReadMany:
		return Result{}, e.ReadMany(ctx, dest, stmt.SQL, stmt.Args...)
	case ReadOne:
		return Result{}, e.ReadOne(ctx, dest, stmt.SQL, stmt.Args...)
	case Write:
		return e.Write(ctx, stmt.SQL, stmt.Args...)
	default:
		return Result{}, domainerrors.ErrValidationFailed.WithDetails("unknown statement mode " + stmt.Mode.String())
	}
}

// ReadMany scans all rows produced by query into dest, a pointer to a slice.
func (e *Executor) ReadMany(ctx context.Context, dest any, query string, args ...any) error {
	if err := e.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return translateError(ctx, err, "read many")
	}

	return nil
}

// ReadOne scans the first row produced by query into dest, a pointer to a struct.
// A query matching no row returns ErrNotFound.
func (e *Executor) ReadOne(ctx context.Context, dest any, query string, args ...any) error {
	res := e.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return translateError(ctx, res.Error, "read one")
	}

	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	return nil
}

// Write runs a data-changing statement, inside its own transaction unless the
// executor is already bound to one.
func (e *Executor) Write(ctx context.Context, query string, args ...any) (Result, error) {
	var result Result
	err := e.transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Exec(query, args...)
		if res.Error != nil {
			return res.Error
		}
		result.RowsAffected = res.RowsAffected

		return nil
	})
	if err != nil {
		return Result{}, translateError(ctx, err, "write")
	}

	return result, nil
}

// Create inserts value, a pointer to a model, and fills its generated primary key.
// Associations are never written implicitly.
func (e *Executor) Create(ctx context.Context, value any) error {
	err := e.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(value).Error
	})
	if err != nil {
		return translateError(ctx, err, "insert")
	}

	return nil
}

func (e *Executor) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db := e.db.WithContext(ctx)
	if isTransaction(db) {
		return fn(db)
	}

	return db.Transaction(fn)
}

func isTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
