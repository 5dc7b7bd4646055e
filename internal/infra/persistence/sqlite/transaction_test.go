package sqlite

import (
	"context"
	"testing"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	require.NoError(t, tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.EmployeeRepo().Create(ctx, &entity.Employee{Name: "Kept"})
	}))

	errAbort := errors.New("abort")
	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.EmployeeRepo().Create(ctx, &entity.Employee{Name: "Dropped"}))
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	employees, err := NewEmployeeRepository(db).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Kept", employees[0].Name)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.PanicsWithValue(t, "boom", func() {
		_ = tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
			require.NoError(t, repos.ShipperRepo().Create(ctx, &entity.Shipper{Info: "ghost"}))
			panic("boom")
		})
	})

	shippers, err := NewShipperRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, shippers)
}

func TestTransactionManager_ExpiredContextRollsBack(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.EmployeeRepo().Create(ctx, &entity.Employee{Name: "Late"}))
		cancel()

		return nil
	})
	assert.Equal(t, domainerrors.KindTimeout, domainerrors.KindOf(err))

	employees, err := NewEmployeeRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, employees)
}
