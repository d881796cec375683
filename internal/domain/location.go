package domain

import "time"

// LocationTypeYard is the staging/consolidation classification; destinations
// of this type always merge arriving stock into an existing holding.
const LocationTypeYard = "YARD"

// Location matches the `locations` table (a yard, a vessel call, a storage
// room). Read-only for the transfer engine apart from the loc_type branch.
type Location struct {
	ID             int        `gorm:"column:loc_id;primaryKey" json:"loc_id"`
	Name           *string    `gorm:"column:name" json:"name"`
	LocType        *string    `gorm:"column:loc_type" json:"loc_type"`
	LineID         *string    `gorm:"column:line_id" json:"line_id"`
	Consumed       *int16     `gorm:"column:consumed" json:"consumed"`
	Berth          *string    `gorm:"column:berth" json:"berth"`
	NextBerth      *string    `gorm:"column:next_berth" json:"next_berth"`
	StartDate      *time.Time `gorm:"column:start_date" json:"start_date"`
	Foreman        *string    `gorm:"column:foreman" json:"foreman"`
	Gear           *string    `gorm:"column:gear" json:"gear"`
	Cargo          *string    `gorm:"column:cargo" json:"cargo"`
	Superintendent *string    `gorm:"column:supt" json:"supt"`
	Standby        *string    `gorm:"column:standby" json:"standby"`
	Note           *string    `gorm:"column:note" json:"note"`
	Finished       *int16     `gorm:"column:finished" json:"finished"`
	VoyageNo       *string    `gorm:"column:voy_no" json:"voy_no"`
	Phone          *string    `gorm:"column:phone" json:"phone"`
}

func (Location) TableName() string {
	return "locations"
}

// Type returns the location classification, empty when unset.
func (l *Location) Type() string {
	if l.LocType == nil {
		return ""
	}
	return *l.LocType
}

// LocationType matches `location_types` (classification master).
type LocationType struct {
	ID             string `gorm:"column:id;primaryKey" json:"id"`
	Transfer       *int16 `gorm:"column:transfer" json:"transfer"`
	CountInventory *int16 `gorm:"column:countinv" json:"countinv"`
}

func (LocationType) TableName() string {
	return "location_types"
}

// Berth matches the `berths` table.
type Berth struct {
	ID         string  `gorm:"column:id;primaryKey" json:"id"`
	Name       *string `gorm:"column:name" json:"name"`
	Port       *string `gorm:"column:port" json:"port"`
	IsArchived bool    `gorm:"column:is_archived" json:"is_archived"`
}

func (Berth) TableName() string {
	return "berths"
}
