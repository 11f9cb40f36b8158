package reconcile

import (
	"context"
	"testing"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	persistencemocks "github.com/announcement7/balance-system-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("matching balances are left alone", func(t *testing.T) {
		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().SumSuccessByUser(mock.Anything).
			Return(map[string]int64{"user-1": 1500}, nil).Once()

		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-1").
			Return(&entity.UserBalance{UserID: "user-1", Balance: 1500}, nil).Once()

		sweeper := NewSweeper(mockPayments, mockBalances, newQuietLogger(t))

		report, err := sweeper.SweepBalances(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.UsersChecked)
		assert.Equal(t, 0, report.Repaired)
		mockBalances.AssertNotCalled(t, "Repair")
	})

	t.Run("drifted balance is repaired", func(t *testing.T) {
		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().SumSuccessByUser(mock.Anything).
			Return(map[string]int64{"user-1": 2000}, nil).Once()

		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-1").
			Return(&entity.UserBalance{UserID: "user-1", Balance: 1500}, nil).Once()
		mockBalances.EXPECT().Repair(mock.Anything, "user-1", int64(2000)).Return(nil).Once()

		sweeper := NewSweeper(mockPayments, mockBalances, newQuietLogger(t))

		report, err := sweeper.SweepBalances(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Repaired)
	})

	t.Run("missing balance row counts as zero and is created", func(t *testing.T) {
		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().SumSuccessByUser(mock.Anything).
			Return(map[string]int64{"user-2": 700}, nil).Once()

		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-2").
			Return(nil, errs.ErrUserNotFound).Once()
		mockBalances.EXPECT().Repair(mock.Anything, "user-2", int64(700)).Return(nil).Once()

		sweeper := NewSweeper(mockPayments, mockBalances, newQuietLogger(t))

		report, err := sweeper.SweepBalances(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Repaired)
	})

	t.Run("loan fee rows without a user are skipped", func(t *testing.T) {
		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().SumSuccessByUser(mock.Anything).
			Return(map[string]int64{"": 9999}, nil).Once()

		mockBalances := persistencemocks.NewMockBalanceRepository(t)

		sweeper := NewSweeper(mockPayments, mockBalances, newQuietLogger(t))

		report, err := sweeper.SweepBalances(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, report.UsersChecked)
		mockBalances.AssertNotCalled(t, "GetByUserID")
	})

	t.Run("store failure aborts the sweep", func(t *testing.T) {
		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().SumSuccessByUser(mock.Anything).
			Return(nil, errs.ErrStoreUnavailable).Once()

		mockBalances := persistencemocks.NewMockBalanceRepository(t)

		sweeper := NewSweeper(mockPayments, mockBalances, newQuietLogger(t))

		_, err := sweeper.SweepBalances(ctx)

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
