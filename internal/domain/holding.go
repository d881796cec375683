package domain

// Holding matches `inventory_locations`: how much of one item is on hand at
// one location. Rows are created the first time an item lands somewhere and
// are never deleted by the engine; a zero on-hand row keeps the item/location
// association alive for future placements.
type Holding struct {
	ID          int      `gorm:"column:invloc_id;primaryKey;autoIncrement" json:"invloc_id"`
	ItemID      string   `gorm:"column:item" json:"item"`
	ItemName    *string  `gorm:"column:item_name" json:"item_name"`
	LocationID  int      `gorm:"column:location" json:"location"`
	Description *string  `gorm:"column:description" json:"description"`
	Issued      *float64 `gorm:"column:issued" json:"issued"`
	OnHand      float64  `gorm:"column:onhand;not null;default:0" json:"onhand"`
	Billable    *int16   `gorm:"column:billable" json:"billable"`
}

func (Holding) TableName() string {
	return "inventory_locations"
}
