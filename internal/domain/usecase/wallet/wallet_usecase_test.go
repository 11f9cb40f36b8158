package wallet

import (
	"context"
	"testing"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coremocks "github.com/announcement7/balance-system-backend/mocks/port/core"
	persistencemocks "github.com/announcement7/balance-system-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("existing balance", func(t *testing.T) {
		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-1").
			Return(&entity.UserBalance{UserID: "user-1", Balance: 1200}, nil).Once()

		useCase := NewUseCase(mockBalances, persistencemocks.NewMockPaymentRepository(t),
			persistencemocks.NewMockReceiptRepository(t), newQuietLogger(t))

		balance, err := useCase.GetBalance(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1200), balance)
	})

	t.Run("never credited user reads as zero", func(t *testing.T) {
		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-new").
			Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewUseCase(mockBalances, persistencemocks.NewMockPaymentRepository(t),
			persistencemocks.NewMockReceiptRepository(t), newQuietLogger(t))

		balance, err := useCase.GetBalance(ctx, "user-new")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("empty user id", func(t *testing.T) {
		useCase := NewUseCase(persistencemocks.NewMockBalanceRepository(t),
			persistencemocks.NewMockPaymentRepository(t),
			persistencemocks.NewMockReceiptRepository(t), newQuietLogger(t))

		_, err := useCase.GetBalance(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-1").
			Return(nil, errs.ErrStoreUnavailable).Once()

		useCase := NewUseCase(mockBalances, persistencemocks.NewMockPaymentRepository(t),
			persistencemocks.NewMockReceiptRepository(t), newQuietLogger(t))

		_, err := useCase.GetBalance(ctx, "user-1")
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestGetStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("balance with bounded history", func(t *testing.T) {
		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-1").
			Return(&entity.UserBalance{UserID: "user-1", Balance: 500}, nil).Once()

		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().ListByUser(mock.Anything, "user-1", DefaultStatementLimit).
			Return([]*entity.PaymentAttempt{
				{Reference: "DEPOSIT-2-B", Status: entity.StatusSuccess, Amount: 500},
				{Reference: "DEPOSIT-1-A", Status: entity.StatusCancelled, Amount: 300},
			}, nil).Once()

		mockReceipts := persistencemocks.NewMockReceiptRepository(t)
		mockReceipts.EXPECT().ListByUser(mock.Anything, "user-1", DefaultStatementLimit).
			Return([]*entity.ReceiptEntry{
				{Reference: "DEPOSIT-2-B", Status: entity.StatusSuccess, Amount: 500},
			}, nil).Once()

		useCase := NewUseCase(mockBalances, mockPayments, mockReceipts, newQuietLogger(t))

		statement, err := useCase.GetStatement(ctx, "user-1", 0)

		require.NoError(t, err)
		assert.Equal(t, int64(500), statement.Balance)
		assert.Len(t, statement.Transactions, 2)
		assert.Len(t, statement.Receipts, 1)
	})

	t.Run("limit above the cap is clamped", func(t *testing.T) {
		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-1").
			Return(nil, errs.ErrUserNotFound).Once()

		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().ListByUser(mock.Anything, "user-1", DefaultStatementLimit).
			Return(nil, nil).Once()

		mockReceipts := persistencemocks.NewMockReceiptRepository(t)
		mockReceipts.EXPECT().ListByUser(mock.Anything, "user-1", DefaultStatementLimit).
			Return(nil, nil).Once()

		useCase := NewUseCase(mockBalances, mockPayments, mockReceipts, newQuietLogger(t))

		statement, err := useCase.GetStatement(ctx, "user-1", 5000)

		require.NoError(t, err)
		assert.Equal(t, int64(0), statement.Balance)
	})

	t.Run("small limit is respected", func(t *testing.T) {
		mockBalances := persistencemocks.NewMockBalanceRepository(t)
		mockBalances.EXPECT().GetByUserID(mock.Anything, "user-1").
			Return(&entity.UserBalance{Balance: 100}, nil).Once()

		mockPayments := persistencemocks.NewMockPaymentRepository(t)
		mockPayments.EXPECT().ListByUser(mock.Anything, "user-1", 10).Return(nil, nil).Once()

		mockReceipts := persistencemocks.NewMockReceiptRepository(t)
		mockReceipts.EXPECT().ListByUser(mock.Anything, "user-1", 10).Return(nil, nil).Once()

		useCase := NewUseCase(mockBalances, mockPayments, mockReceipts, newQuietLogger(t))

		_, err := useCase.GetStatement(ctx, "user-1", 10)
		require.NoError(t, err)
	})

	t.Run("empty user id", func(t *testing.T) {
		useCase := NewUseCase(persistencemocks.NewMockBalanceRepository(t),
			persistencemocks.NewMockPaymentRepository(t),
			persistencemocks.NewMockReceiptRepository(t), newQuietLogger(t))

		_, err := useCase.GetStatement(ctx, "", 10)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
