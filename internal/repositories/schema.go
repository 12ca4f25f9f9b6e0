package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	model "activity-tracker.com/activity-tracker/internal/models"
)

type TableStatus struct {
	Name   string
	Exists bool
}

// InspectSchema reports, for every model table, whether it exists.
func InspectSchema(ctx context.Context, db *gorm.DB) ([]TableStatus, error) {
	tx := db.WithContext(ctx)
	migrator := tx.Migrator()

	statuses := make([]TableStatus, 0, len(model.All()))
	for _, table := range model.All() {
		stmt := &gorm.Statement{DB: tx}
		if err := stmt.Parse(table); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", table, err)
		}
		statuses = append(statuses, TableStatus{
			Name:   stmt.Schema.Table,
			Exists: migrator.HasTable(table),
		})
	}
	return statuses, nil
}
