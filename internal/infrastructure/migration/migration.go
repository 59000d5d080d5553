package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks GORM AutoMigrate when autoMigrate is set, otherwise the
// embedded goose scripts for driver.
func NewManager(driver string, autoMigrate bool, log logger.Interface) (*Manager, error) {
	if autoMigrate {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy(log), log), nil
	}
	strategy, err := NewGooseStrategy(driver, log)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Pending reports how many embedded goose versions have not been applied.
// It is zero for strategies without versions.
func (m *Manager) Pending(db *gorm.DB) (int64, error) {
	gs, ok := m.strategy.(*GooseStrategy)
	if !ok {
		return 0, nil
	}
	current, err := gs.GetVersion(db)
	if err != nil {
		return 0, err
	}
	latest, err := gs.LatestVersion()
	if err != nil {
		return 0, err
	}
	if latest <= current {
		return 0, nil
	}
	return latest - current, nil
}
