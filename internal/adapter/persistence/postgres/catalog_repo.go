package postgres

import (
	"context"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepo reads materials and handles from Postgres.
type CatalogRepo struct{ db *gorm.DB }

var _ interfaces.ICatalogRepository = (*CatalogRepo)(nil)

func NewCatalogRepo(db *gorm.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) Snapshot(ctx context.Context) (entities.Catalog, error) {
	var materials []materialModel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&materials).Error; err != nil {
		return entities.Catalog{}, err
	}
	var handles []handleModel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&handles).Error; err != nil {
		return entities.Catalog{}, err
	}

	out := entities.Catalog{
		Materials: make([]entities.Material, 0, len(materials)),
		Handles:   make([]entities.Handle, 0, len(handles)),
	}
	for _, m := range materials {
		out.Materials = append(out.Materials, toMaterial(m))
	}
	for _, h := range handles {
		out.Handles = append(out.Handles, toHandle(h))
	}
	return out, nil
}

// Upsert writes the given materials and handles, replacing rows with the
// same id.
func (r *CatalogRepo) Upsert(ctx context.Context, c entities.Catalog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range c.Materials {
			row := fromMaterial(m)
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		for _, h := range c.Handles {
			row := fromHandle(h)
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
