package domain

import "time"

// Item matches the catalog table `inventory`. Owned by the catalog; the
// transfer engine only ever reads it.
type Item struct {
	ID              string     `gorm:"column:id;primaryKey" json:"id"`
	Name            *string    `gorm:"column:name" json:"name"`
	Description     *string    `gorm:"column:description" json:"description"`
	Billable        *int16     `gorm:"column:billable" json:"billable"`
	Process         *string    `gorm:"column:process" json:"process"`
	InvType         string     `gorm:"column:inv_type;not null" json:"inv_type"`
	Class           string     `gorm:"column:class;not null" json:"class"`
	StandardCost    *float64   `gorm:"column:standardcost" json:"standardcost"`
	PreferredVendor *int       `gorm:"column:preferred_vendor" json:"preferred_vendor"`
	Accumulate      *int16     `gorm:"column:accumulate" json:"accumulate"`
	Active          *int16     `gorm:"column:active" json:"active"`
	TestClass       *string    `gorm:"column:testclass" json:"testclass"`
	Visual          *time.Time `gorm:"column:visual" json:"visual"`
	Thorough        *time.Time `gorm:"column:thorough" json:"thorough"`
}

func (Item) TableName() string {
	return "inventory"
}

// Accumulates reports whether arriving quantity should be summed into an
// existing holding at the destination (the legacy schema stores the flag as
// a smallint).
func (i *Item) Accumulates() bool {
	return i.Accumulate != nil && *i.Accumulate == 1
}
