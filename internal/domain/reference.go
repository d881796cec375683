package domain

import "time"

// Read-only mirrors of externally owned reference databases. The engine
// queries these for pick lists (inspectors, billing companies) and never
// writes back.

// Employee matches the labour master `employees` mirror.
type Employee struct {
	ID         int     `gorm:"column:recnum;primaryKey" json:"recnum"`
	EmployeeID *string `gorm:"column:id" json:"id"`
	AiStatus   *string `gorm:"column:ai_status" json:"ai_status"`
	LastName   *string `gorm:"column:lastname" json:"lastname"`
	FirstName  *string `gorm:"column:firstname" json:"firstname"`
	Initial    *string `gorm:"column:initial" json:"initial"`
	Status     *string `gorm:"column:status" json:"status"`
	HomePort   *string `gorm:"column:homeport" json:"homeport"`
	WesRegular *bool   `gorm:"column:wes_regular" json:"wes_regular"`
	Class      *string `gorm:"column:class" json:"class"`
}

func (Employee) TableName() string {
	return "employees"
}

// ComGroup matches the corporate master `comgroup` mirror.
type ComGroup struct {
	ID            string     `gorm:"column:id;primaryKey" json:"id"`
	Name          *string    `gorm:"column:name" json:"name"`
	BillingSuffix *string    `gorm:"column:billingsuffix" json:"billingsuffix"`
	AddUser       *string    `gorm:"column:add_user" json:"add_user"`
	AddDate       *time.Time `gorm:"column:add_date" json:"add_date"`
	ModUser       *string    `gorm:"column:mod_user" json:"mod_user"`
	ModDate       *time.Time `gorm:"column:mod_date" json:"mod_date"`
}

func (ComGroup) TableName() string {
	return "comgroup"
}
