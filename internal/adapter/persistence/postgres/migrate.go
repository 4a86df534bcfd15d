package postgres

import (
	"context"
	"wardrobe_pricing/internal/domain/entities"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MigrateAndSeed creates the catalog and rule tables and loads the default
// catalog when no material exists yet.
func MigrateAndSeed(ctx context.Context, db *gorm.DB) error {
	if err := db.AutoMigrate(&materialModel{}, &handleModel{}, &ruleModel{}); err != nil {
		return err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&materialModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := DefaultCatalog()
	if err := NewCatalogRepo(db).Upsert(ctx, seed); err != nil {
		return err
	}
	log.Info().
		Int("materials", len(seed.Materials)).
		Int("handles", len(seed.Handles)).
		Msg("[catalog][postgres] default catalog seeded")
	return nil
}

// DefaultCatalog is the starter catalog loaded into an empty database.
func DefaultCatalog() entities.Catalog {
	return entities.Catalog{
		Materials: []entities.Material{
			{ID: "white-18", Name: "White melamine", Price: 42, ThicknessMM: 18, Categories: []entities.MaterialCategory{entities.MaterialCategoryBody, entities.MaterialCategoryFront}},
			{ID: "oak-18", Name: "Oak veneer", Price: 78, ThicknessMM: 18, Categories: []entities.MaterialCategory{entities.MaterialCategoryBody, entities.MaterialCategoryFront}},
			{ID: "gloss-18", Name: "Gloss lacquer", Price: 115, ThicknessMM: 18, Categories: []entities.MaterialCategory{entities.MaterialCategoryFront}},
			{ID: "mirror-4", Name: "Silver mirror", Price: 140, ThicknessMM: 4, Categories: []entities.MaterialCategory{entities.MaterialCategoryFront}},
			{ID: "hdf-3", Name: "HDF white", Price: 12, ThicknessMM: 3, Categories: []entities.MaterialCategory{entities.MaterialCategoryBack}},
		},
		Handles: []entities.Handle{
			{ID: "bar-128", Name: "Bar 128", Price: 6, Finishes: []entities.HandleFinish{
				{ID: "black", Name: "Black"},
				{ID: "gold", Name: "Brushed gold", Price: 9},
			}},
			{ID: "knob", Name: "Knob", Price: 3.5, Finishes: []entities.HandleFinish{
				{ID: "chrome", Name: "Chrome"},
			}},
		},
	}
}
