package repository

import (
	"context"
	"errors"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentRepository implements persistence.PaymentRepository using GORM
type PaymentRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) persistence.PaymentRepository {
	return &PaymentRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create saves a new payment attempt
func (r *PaymentRepository) Create(ctx context.Context, attempt *entity.PaymentAttempt) error {
	row := toPaymentModel(attempt)

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Failed to create payment attempt", map[string]any{
			"reference": attempt.Reference,
			"error":     err.Error(),
		})
		return mapStoreError(err, "create payment attempt")
	}

	return nil
}

// GetByReference retrieves an attempt by its reference
func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*entity.PaymentAttempt, error) {
	var row model.PaymentAttempt

	err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrReferenceNotFound
		}
		return nil, mapStoreError(err, "get payment attempt")
	}

	return toPaymentEntity(&row), nil
}

// ApplyTerminal applies a terminal transition to the attempt. The
// update is guarded by the stored status still being pending, so of N
// racing callbacks exactly one observes rowsAffected == 1.
func (r *PaymentRepository) ApplyTerminal(ctx context.Context, reference string, update persistence.TerminalUpdate) (bool, error) {
	values := map[string]any{
		"status":     string(update.Status),
		"note":       update.Note,
		"updated_at": r.timeProvider.Now(),
	}
	if update.GatewayReceiptCode != "" {
		values["gateway_receipt_code"] = update.GatewayReceiptCode
	}
	if update.ResultCode != nil {
		values["result_code"] = *update.ResultCode
	}
	if len(update.RawCallback) > 0 {
		values["raw_callback"] = update.RawCallback
	}

	result := r.db.WithContext(ctx).
		Model(&model.PaymentAttempt{}).
		Where("reference = ? AND status = ?", reference, string(entity.StatusPending)).
		Updates(values)
	if result.Error != nil {
		r.logger.Error("Failed to apply terminal status", map[string]any{
			"reference": reference,
			"status":    string(update.Status),
			"error":     result.Error.Error(),
		})
		return false, mapStoreError(result.Error, "apply terminal status")
	}

	return result.RowsAffected == 1, nil
}

// ListByUser returns the user's attempts, newest first
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.PaymentAttempt, error) {
	var rows []model.PaymentAttempt

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, mapStoreError(err, "list payment attempts")
	}

	attempts := make([]*entity.PaymentAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toPaymentEntity(&rows[i]))
	}
	return attempts, nil
}

// SumSuccessByUser aggregates successful attempt amounts per user
func (r *PaymentRepository) SumSuccessByUser(ctx context.Context) (map[string]int64, error) {
	type userSum struct {
		UserID string
		Total  int64
	}

	var sums []userSum
	err := r.db.WithContext(ctx).
		Model(&model.PaymentAttempt{}).
		Select("user_id, SUM(amount) AS total").
		Where("status = ? AND user_id <> ''", string(entity.StatusSuccess)).
		Group("user_id").
		Scan(&sums).Error
	if err != nil {
		return nil, mapStoreError(err, "sum successful attempts")
	}

	totals := make(map[string]int64, len(sums))
	for _, s := range sums {
		totals[s.UserID] = s.Total
	}
	return totals, nil
}

func toPaymentModel(attempt *entity.PaymentAttempt) *model.PaymentAttempt {
	return &model.PaymentAttempt{
		Reference:            attempt.Reference,
		UserID:               attempt.UserID,
		Phone:                attempt.Phone,
		Amount:               attempt.Amount,
		Kind:                 string(attempt.Kind),
		Status:               string(attempt.Status),
		Note:                 attempt.Note,
		LoanAmount:           attempt.LoanAmount,
		GatewayTransactionID: attempt.GatewayTransactionID,
		GatewayReceiptCode:   attempt.GatewayReceiptCode,
		ResultCode:           attempt.ResultCode,
		RawError:             attempt.RawError,
		CreatedAt:            attempt.CreatedAt,
		UpdatedAt:            attempt.UpdatedAt,
	}
}

func toPaymentEntity(row *model.PaymentAttempt) *entity.PaymentAttempt {
	return &entity.PaymentAttempt{
		Reference:            row.Reference,
		UserID:               row.UserID,
		Phone:                row.Phone,
		Amount:               row.Amount,
		Kind:                 entity.PaymentKind(row.Kind),
		Status:               entity.PaymentStatus(row.Status),
		Note:                 row.Note,
		LoanAmount:           row.LoanAmount,
		GatewayTransactionID: row.GatewayTransactionID,
		GatewayReceiptCode:   row.GatewayReceiptCode,
		ResultCode:           row.ResultCode,
		RawError:             row.RawError,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}
