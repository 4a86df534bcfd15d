package entities

// MaterialCategory tags what a sheet good may be used for.
type MaterialCategory string

const (
	MaterialCategoryBody  MaterialCategory = "body"
	MaterialCategoryFront MaterialCategory = "front"
	MaterialCategoryBack  MaterialCategory = "back"
)

// Material is a purchasable sheet good. Price is per square metre and
// ThicknessMM is the nominal board thickness.
type Material struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
	ThicknessMM float64            `json:"thickness_mm"`
	Categories  []MaterialCategory `json:"categories,omitempty"`
}

// HandleFinish is a surface option for a handle. A positive Price replaces
// the handle's base price.
type HandleFinish struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Handle struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Price    float64        `json:"price"`
	Finishes []HandleFinish `json:"finishes,omitempty"`
}

// UnitPrice resolves the price of one handle with the given finish.
func (h Handle) UnitPrice(finishID string) float64 {
	if f, ok := h.Finish(finishID); ok && f.Price > 0 {
		return f.Price
	}
	return h.Price
}

func (h Handle) Finish(finishID string) (HandleFinish, bool) {
	if finishID == "" {
		return HandleFinish{}, false
	}
	for _, f := range h.Finishes {
		if f.ID == finishID {
			return f, true
		}
	}
	return HandleFinish{}, false
}

// Catalog is the read-only snapshot of materials and handles used for one
// computation pass.
type Catalog struct {
	Materials []Material `json:"materials"`
	Handles   []Handle   `json:"handles"`
}

func (c Catalog) Material(id string) (Material, bool) {
	if id == "" {
		return Material{}, false
	}
	for _, m := range c.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

func (c Catalog) Handle(id string) (Handle, bool) {
	if id == "" {
		return Handle{}, false
	}
	for _, h := range c.Handles {
		if h.ID == id {
			return h, true
		}
	}
	return Handle{}, false
}
