package domain

import "time"

// TransferRecord matches `inventory_transfers`, the append-only ledger of
// movements. Rows are written exactly once per completed transfer and never
// updated or deleted. Nullable columns stay pointers so the recorder binds
// true NULLs, not sentinel strings.
type TransferRecord struct {
	ID           int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID       *string    `gorm:"column:item" json:"item"`
	ItemName     *string    `gorm:"column:item_name" json:"item_name"`
	ItemDesc     *string    `gorm:"column:item_desc" json:"item_desc"`
	FromLocation *int       `gorm:"column:from_location" json:"from_location"`
	ToLocation   *int       `gorm:"column:to_location" json:"to_location"`
	Company      *string    `gorm:"column:company" json:"company"`
	Job          *string    `gorm:"column:job" json:"job"`
	IssueVal     *int16     `gorm:"column:issue_val" json:"issue_val"`
	TakenFrom    *string    `gorm:"column:taken_from" json:"taken_from"`
	TransferDate *time.Time `gorm:"column:transfer_date" json:"transfer_date"`
	Quantity     *float64   `gorm:"column:quantity" json:"quantity"`
	CostPer      *float64   `gorm:"column:costper" json:"costper"`
	PONumber     *string    `gorm:"column:ponum" json:"ponum"`
	Locker       *float64   `gorm:"column:locker" json:"locker"`
	OnHand       *float64   `gorm:"column:onhand" json:"onhand"`
	InspectedBy  *string    `gorm:"column:inspected_by" json:"inspected_by"`
}

func (TransferRecord) TableName() string {
	return "inventory_transfers"
}
