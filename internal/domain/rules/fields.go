package rules

import (
	"sort"
	"strconv"
	"strings"
)

// Field is a known condition field path.
type Field string

const (
	FieldWardrobeWidth                Field = "wardrobe.width"
	FieldWardrobeHeight               Field = "wardrobe.height"
	FieldWardrobeDepth                Field = "wardrobe.depth"
	FieldWardrobeArea                 Field = "wardrobe.area"
	FieldWardrobeTotalArea            Field = "wardrobe.total_area"
	FieldWardrobeColumnCount          Field = "wardrobe.column_count"
	FieldWardrobeShelfCount           Field = "wardrobe.shelf_count"
	FieldWardrobeDoorCount            Field = "wardrobe.door_count"
	FieldWardrobeSingleDoorCount      Field = "wardrobe.single_door_count"
	FieldWardrobeDoubleDoorCount      Field = "wardrobe.double_door_count"
	FieldWardrobeMirrorDoorCount      Field = "wardrobe.mirror_door_count"
	FieldWardrobeDrawerStyleDoorCount Field = "wardrobe.drawer_style_door_count"
	FieldWardrobeDrawerCount          Field = "wardrobe.drawer_count"
	FieldWardrobeHandleCount          Field = "wardrobe.handle_count"
	FieldWardrobeMinDoorHeight        Field = "wardrobe.min_door_height"
	FieldWardrobeMaxDoorHeight        Field = "wardrobe.max_door_height"
	FieldWardrobeHasBase              Field = "wardrobe.has_base"
	FieldWardrobeHasModules           Field = "wardrobe.has_modules"
	FieldWardrobeHasMirror            Field = "wardrobe.has_mirror"
	FieldWardrobeBodyMaterial         Field = "wardrobe.body_material"
	FieldWardrobeFrontMaterial        Field = "wardrobe.front_material"
	FieldWardrobeBackMaterial         Field = "wardrobe.back_material"
	FieldWardrobeHandleName           Field = "wardrobe.handle_name"
	FieldWardrobeHandleFinish         Field = "wardrobe.handle_finish"
	FieldCustomerTags                 Field = "customer.tags"
	FieldCustomerOrderCount           Field = "customer.order_count"
	FieldCustomerEmail                Field = "customer.email"
	FieldOrderTotal                   Field = "order.total"
	FieldOrderShippingCity            Field = "order.shipping_city"
)

// Kind is the dynamic type of a resolved Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindNumber
	KindBool
	KindString
	KindList
)

// Value is a resolved field value.
type Value struct {
	Kind Kind
	Num  float64
	Bool bool
	Str  string
	List []string
}

func (v Value) Present() bool { return v.Kind != KindAbsent }

// String renders scalar values the way a rule author writes them.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return formatNumber(v.Num)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return v.Str
	case KindList:
		return strings.Join(v.List, ",")
	}
	return ""
}

func number(v float64) Value { return Value{Kind: KindNumber, Num: v} }
func integer(v int) Value { return Value{Kind: KindNumber, Num: float64(v)} }
func boolean(v bool) Value { return Value{Kind: KindBool, Bool: v} }
func text(v string) Value { return Value{Kind: KindString, Str: v} }
func list(v []string) Value { return Value{Kind: KindList, List: v} }
func formatNumber(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

type accessor func(Context) Value

func wardrobe(get func(WardrobeFacts) Value) accessor {
	return func(c Context) Value { return get(c.Wardrobe) }
}

func customer(get func(CustomerFacts) Value) accessor {
	return func(c Context) Value {
		if c.Customer == nil {
			return Value{}
		}
		return get(*c.Customer)
	}
}

func order(get func(OrderFacts) Value) accessor {
	return func(c Context) Value {
		if c.Order == nil {
			return Value{}
		}
		return get(*c.Order)
	}
}

var accessors = map[Field]accessor{
	FieldWardrobeWidth:                wardrobe(func(w WardrobeFacts) Value { return number(w.Width) }),
	FieldWardrobeHeight:               wardrobe(func(w WardrobeFacts) Value { return number(w.Height) }),
	FieldWardrobeDepth:                wardrobe(func(w WardrobeFacts) Value { return number(w.Depth) }),
	FieldWardrobeArea:                 wardrobe(func(w WardrobeFacts) Value { return number(w.Area) }),
	FieldWardrobeTotalArea:            wardrobe(func(w WardrobeFacts) Value { return number(w.TotalArea) }),
	FieldWardrobeColumnCount:          wardrobe(func(w WardrobeFacts) Value { return integer(w.ColumnCount) }),
	FieldWardrobeShelfCount:           wardrobe(func(w WardrobeFacts) Value { return integer(w.ShelfCount) }),
	FieldWardrobeDoorCount:            wardrobe(func(w WardrobeFacts) Value { return integer(w.DoorCount) }),
	FieldWardrobeSingleDoorCount:      wardrobe(func(w WardrobeFacts) Value { return integer(w.SingleDoorCount) }),
	FieldWardrobeDoubleDoorCount:      wardrobe(func(w WardrobeFacts) Value { return integer(w.DoubleDoorCount) }),
	FieldWardrobeMirrorDoorCount:      wardrobe(func(w WardrobeFacts) Value { return integer(w.MirrorDoorCount) }),
	FieldWardrobeDrawerStyleDoorCount: wardrobe(func(w WardrobeFacts) Value { return integer(w.DrawerStyleDoorCount) }),
	FieldWardrobeDrawerCount:          wardrobe(func(w WardrobeFacts) Value { return integer(w.DrawerCount) }),
	FieldWardrobeHandleCount:          wardrobe(func(w WardrobeFacts) Value { return integer(w.HandleCount) }),
	FieldWardrobeMinDoorHeight:        wardrobe(func(w WardrobeFacts) Value { return number(w.MinDoorHeight) }),
	FieldWardrobeMaxDoorHeight:        wardrobe(func(w WardrobeFacts) Value { return number(w.MaxDoorHeight) }),
	FieldWardrobeHasBase:              wardrobe(func(w WardrobeFacts) Value { return boolean(w.HasBase) }),
	FieldWardrobeHasModules:           wardrobe(func(w WardrobeFacts) Value { return boolean(w.HasModules) }),
	FieldWardrobeHasMirror:            wardrobe(func(w WardrobeFacts) Value { return boolean(w.HasMirror) }),
	FieldWardrobeBodyMaterial:         wardrobe(func(w WardrobeFacts) Value { return text(w.BodyMaterial) }),
	FieldWardrobeFrontMaterial:        wardrobe(func(w WardrobeFacts) Value { return text(w.FrontMaterial) }),
	FieldWardrobeBackMaterial:         wardrobe(func(w WardrobeFacts) Value { return text(w.BackMaterial) }),
	FieldWardrobeHandleName:           wardrobe(func(w WardrobeFacts) Value { return text(w.HandleName) }),
	FieldWardrobeHandleFinish:         wardrobe(func(w WardrobeFacts) Value { return text(w.HandleFinish) }),
	FieldCustomerTags:                 customer(func(c CustomerFacts) Value { return list(c.Tags) }),
	FieldCustomerOrderCount:           customer(func(c CustomerFacts) Value { return integer(c.OrderCount) }),
	FieldCustomerEmail:                customer(func(c CustomerFacts) Value { return text(c.Email) }),
	FieldOrderTotal:                   order(func(o OrderFacts) Value { return number(o.Total) }),
	FieldOrderShippingCity:            order(func(o OrderFacts) Value { return text(o.ShippingCity) }),
}

// ParseField normalises a field path and reports whether it is known.
func ParseField(path string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(path)))
	_, ok := accessors[f]
	return f, ok
}

// Fields lists every known field path, for the rule editor.
func Fields() []Field {
	out := make([]Field, 0, len(accessors))
	for f := range accessors {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resolve looks up a field path. Unknown paths resolve to an absent value.
func (c Context) Resolve(path string) Value {
	f, ok := ParseField(path)
	if !ok {
		return Value{}
	}
	return accessors[f](c)
}
