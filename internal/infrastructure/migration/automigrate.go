package migration

import (
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return models.All()
}
