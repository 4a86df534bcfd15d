package interfaces

import (
	"context"
	"wardrobe_pricing/internal/domain/entities"
)

// ICatalogRepository reads the material and handle catalog. Snapshot is read
// once per pricing pass.
type ICatalogRepository interface {
	Snapshot(ctx context.Context) (entities.Catalog, error)
}
