package repository

import (
	"context"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReceiptRepository implements persistence.ReceiptRepository using GORM
type ReceiptRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB, logger coreport.Logger) persistence.ReceiptRepository {
	return &ReceiptRepository{
		db:     db,
		logger: logger,
	}
}

// Append stores one receipt entry
func (r *ReceiptRepository) Append(ctx context.Context, receipt *entity.ReceiptEntry) error {
	row := &model.ReceiptEntry{
		Reference:          receipt.Reference,
		UserID:             receipt.UserID,
		Status:             string(receipt.Status),
		Amount:             receipt.Amount,
		Phone:              receipt.Phone,
		GatewayReceiptCode: receipt.GatewayReceiptCode,
		Note:               receipt.Note,
		CreatedAt:          receipt.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Failed to append receipt", map[string]any{
			"reference": receipt.Reference,
			"error":     err.Error(),
		})
		return mapStoreError(err, "append receipt")
	}

	receipt.ID = row.ID
	return nil
}

// ListByUser returns the user's receipts, newest first
func (r *ReceiptRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ReceiptEntry, error) {
	var rows []model.ReceiptEntry

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, mapStoreError(err, "list receipts")
	}

	return toReceiptEntities(rows), nil
}

// GetByReference returns the receipts recorded for a reference
func (r *ReceiptRepository) GetByReference(ctx context.Context, reference string) ([]*entity.ReceiptEntry, error) {
	var rows []model.ReceiptEntry

	err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, mapStoreError(err, "get receipts by reference")
	}

	return toReceiptEntities(rows), nil
}

func toReceiptEntities(rows []model.ReceiptEntry) []*entity.ReceiptEntry {
	receipts := make([]*entity.ReceiptEntry, 0, len(rows))
	for i := range rows {
		row := rows[i]
		receipts = append(receipts, &entity.ReceiptEntry{
			ID:                 row.ID,
			Reference:          row.Reference,
			UserID:             row.UserID,
			Status:             entity.PaymentStatus(row.Status),
			Amount:             row.Amount,
			Phone:              row.Phone,
			GatewayReceiptCode: row.GatewayReceiptCode,
			Note:               row.Note,
			CreatedAt:          row.CreatedAt,
		})
	}
	return receipts
}
