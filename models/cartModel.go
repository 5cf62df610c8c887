package models

// DraftLineItem is one staged line in a table's draft cart. Line ids are
// assigned when the line is created and survive loadForEditing, so an edit
// payload can point back at the order items the lines came from.
type DraftLineItem struct {
	Line_id   string   `json:"line_id"`
	Name      string   `json:"name" validate:"required,min=1"`
	Price     float64  `json:"price" validate:"required,gt=0"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	Item_type ItemType `json:"item_type" validate:"required,eq=FOOD|eq=BEVERAGE"`
	Food_id   *string  `json:"food_id,omitempty"`
}

// DraftCart is the not-yet-submitted item set for one table. It never leaves
// the waiter's process; there is nothing to persist or cancel server-side.
type DraftCart struct {
	Table_id string          `json:"table_id"`
	Items    []DraftLineItem `json:"items"`
}
