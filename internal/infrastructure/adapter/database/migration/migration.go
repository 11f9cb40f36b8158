package migration

import (
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager manages database schema migrations
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{db: db, logger: logger}
}

// MigrateAll creates or updates the schema for all models and the
// indexes the hot paths depend on
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.PaymentAttempt{},
		&model.UserBalance{},
		&model.ReceiptEntry{},
	); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations complete", nil)
	return nil
}

// createIndexes adds the composite indexes AutoMigrate does not cover.
// The partial index on successful attempts serves the balance sweep's
// aggregation.
func (m *Manager) createIndexes() error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_payment_attempts_user_created
			ON payment_attempts (user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payment_attempts_success_user
			ON payment_attempts (user_id) WHERE status = 'success'`,
		`CREATE INDEX IF NOT EXISTS idx_receipt_entries_user_created
			ON receipt_entries (user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
