package interfaces

import "wardrobe_pricing/internal/domain/entities"

// ICutListExporter renders the frozen cut list of an order as a document.
type ICutListExporter interface {
	Export(o entities.Order) ([]byte, error)
}
