package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements persistence.BalanceRepository using GORM
type BalanceRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) persistence.BalanceRepository {
	return &BalanceRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Credit increments the user's balance under a row lock. When called
// inside a unit of work the lock is held until that transaction
// commits, which serializes concurrent credits for the same user.
func (r *BalanceRepository) Credit(ctx context.Context, userID string, amount int64, reference string) (*entity.UserBalance, error) {
	now := r.timeProvider.Now()
	var row model.UserBalance

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&row).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.UserBalance{
			UserID:    userID,
			Balance:   0,
			CreatedAt: now,
		}
	case err != nil:
		return nil, mapStoreError(err, "lock balance row")
	}

	row.Balance += amount
	row.LastCreditAmount = amount
	row.LastCreditReference = reference
	row.LastCreditAt = &now
	row.UpdatedAt = now

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		r.logger.Error("Failed to credit balance", map[string]any{
			"user_id":   userID,
			"amount":    amount,
			"reference": reference,
			"error":     err.Error(),
		})
		return nil, mapCreditError(err, userID)
	}

	r.logger.Info("Balance credited", map[string]any{
		"user_id":   userID,
		"amount":    amount,
		"reference": reference,
		"balance":   row.Balance,
	})

	return toBalanceEntity(&row), nil
}

// GetByUserID retrieves a user's balance record
func (r *BalanceRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserBalance, error) {
	var row model.UserBalance

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, mapStoreError(err, "get balance")
	}

	return toBalanceEntity(&row), nil
}

// Repair overwrites a drifted balance with the recomputed value
func (r *BalanceRepository) Repair(ctx context.Context, userID string, balance int64) error {
	now := r.timeProvider.Now()

	row := model.UserBalance{
		UserID:    userID,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{"balance": balance, "updated_at": now}),
		}).
		Create(&row).Error
	if err != nil {
		r.logger.Error("Failed to repair balance", map[string]any{
			"user_id": userID,
			"balance": balance,
			"error":   err.Error(),
		})
		return mapStoreError(err, "repair balance")
	}

	return nil
}

// mapCreditError classifies a failed balance write. Two concurrent
// first credits for the same user both miss the locked read (there is
// no row to lock yet) and race on the insert; the loser's duplicate
// key error is transient, not a caller mistake. The row exists once
// the winner commits, so a redelivery takes the locked-read path and
// succeeds. It must therefore surface as retryable so the ack is
// withheld and the gateway redelivers.
func mapCreditError(err error, userID string) error {
	if isDuplicateKeyError(err) {
		return fmt.Errorf("%w: concurrent first credit for user %s", errs.ErrStoreUnavailable, userID)
	}
	return mapStoreError(err, "credit balance")
}

func toBalanceEntity(row *model.UserBalance) *entity.UserBalance {
	return &entity.UserBalance{
		UserID:              row.UserID,
		Balance:             row.Balance,
		LastCreditAmount:    row.LastCreditAmount,
		LastCreditReference: row.LastCreditReference,
		LastCreditAt:        row.LastCreditAt,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
