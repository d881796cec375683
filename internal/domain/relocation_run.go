package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RelocationRun records the outcome of one bulk relocation: counts plus a
// JSON payload with the per-item outcomes, so callers and dashboards can see
// what a best-effort run actually did.
type RelocationRun struct {
	RunID        uuid.UUID      `gorm:"column:run_id;type:uuid;primaryKey" json:"run_id"`
	FromLocation int            `gorm:"column:from_location;not null" json:"from_location"`
	ToLocation   int            `gorm:"column:to_location;not null" json:"to_location"`
	TakenFrom    string         `gorm:"column:taken_from" json:"taken_from"`
	InspectedBy  string         `gorm:"column:inspected_by" json:"inspected_by"`
	Moved        int            `gorm:"column:moved;not null;default:0" json:"moved"`
	Skipped      int            `gorm:"column:skipped;not null;default:0" json:"skipped"`
	Failed       int            `gorm:"column:failed;not null;default:0" json:"failed"`
	Detail       datatypes.JSON `gorm:"column:detail" json:"detail"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (RelocationRun) TableName() string {
	return "relocation_runs"
}

// BeforeCreate: never insert a zero UUID for the primary key.
func (r *RelocationRun) BeforeCreate(tx *gorm.DB) error {
	if r.RunID == uuid.Nil {
		r.RunID = uuid.New()
	}
	return nil
}
