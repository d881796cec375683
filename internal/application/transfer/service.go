package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"locker-backend/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Company/job codes stamped on ledger rows written by bulk relocation.
const (
	moveCompany = "WES"
	moveJob     = "MOVE"
)

// Item outcome states for a bulk relocation.
const (
	OutcomeMoved   = "moved"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Service is the inventory transfer engine: it moves quantities between
// holdings, appends the immutable transfer ledger, and relocates whole
// locations item by item.
type Service struct {
	DB *gorm.DB
}

// TransferInput carries the caller-supplied fields for one ledger entry.
// Free-text fields are stored trimmed; blanks become NULL.
type TransferInput struct {
	Quantity     float64
	Description  string
	Company      string
	Job          string
	TakenFrom    string
	TransferDate time.Time
	PONumber     string
	CostPer      float64
	InspectedBy  string
}

// ItemOutcome is the per-item result of a bulk relocation.
type ItemOutcome struct {
	ItemID   string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Status   string  `json:"status"`
	Reason   string  `json:"reason,omitempty"`
}

// MoveResult summarizes one bulk relocation. Individual item failures are
// recorded here rather than aborting the run.
type MoveResult struct {
	RunID        string        `json:"run_id,omitempty"`
	FromLocation int           `json:"from_location"`
	ToLocation   int           `json:"to_location"`
	Moved        int           `json:"moved"`
	Skipped      int           `json:"skipped"`
	Failed       int           `json:"failed"`
	Items        []ItemOutcome `json:"items"`
}

// Transfer is the combined form: one transaction appends the ledger row and
// applies both balance changes, all-or-nothing. Source and destination must
// be distinct holdings and quantity must be positive.
func (s *Service) Transfer(ctx context.Context, in TransferInput, from, to *domain.Holding) error {
	itemID := strings.TrimSpace(from.ItemID)
	if in.Quantity <= 0 {
		return &Error{
			Kind: KindValidation, Phase: "validate quantity",
			ItemID: itemID, FromLocation: from.LocationID, ToLocation: to.LocationID,
			Err: fmt.Errorf("quantity must be positive, got %v", in.Quantity),
		}
	}
	if from.ID == to.ID {
		return &Error{
			Kind: KindValidation, Phase: "validate holdings",
			ItemID: itemID, FromLocation: from.LocationID, ToLocation: to.LocationID,
			Err: errors.New("source and destination are the same holding"),
		}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.insertLedger(tx, in, from, to); err != nil {
			return err
		}
		return s.applyBalances(tx, in.Quantity, from, to)
	})
	if err != nil {
		log.Error().Err(err).Str("item", itemID).
			Int("from", from.LocationID).Int("to", to.LocationID).
			Msg("Transfer rolled back")
		return err
	}
	log.Debug().Str("item", itemID).Float64("quantity", in.Quantity).
		Int("from", from.LocationID).Int("to", to.LocationID).
		Msg("Transfer committed")
	return nil
}

// TransferBetweenHoldings is the single-transfer path for interactive
// callers: both holdings are loaded by id (missing either is fatal) and the
// combined form runs. Returns both holdings with their updated balances.
func (s *Service) TransferBetweenHoldings(ctx context.Context, fromHoldingID, toHoldingID int, in TransferInput) (*domain.Holding, *domain.Holding, error) {
	db := s.DB.WithContext(ctx)

	var from domain.Holding
	if err := db.First(&from, fromHoldingID).Error; err != nil {
		return nil, nil, holdingLoadError("load source holding", fromHoldingID, err)
	}
	var to domain.Holding
	if err := db.First(&to, toHoldingID).Error; err != nil {
		return nil, nil, holdingLoadError("load destination holding", toHoldingID, err)
	}

	if err := s.Transfer(ctx, in, &from, &to); err != nil {
		return nil, nil, err
	}
	return &from, &to, nil
}

// RecordTransfer persists one ledger row in its own transaction without
// touching balances. Callers that manage balances separately use this.
func (s *Service) RecordTransfer(ctx context.Context, in TransferInput, from, to *domain.Holding) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.insertLedger(tx, in, from, to)
	})
}

// UpdateBalances moves quantity between two holdings in one transaction:
// source decremented, destination incremented, both rows written together.
func (s *Service) UpdateBalances(ctx context.Context, quantity float64, from, to *domain.Holding) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.applyBalances(tx, quantity, from, to)
	})
}

// insertLedger appends one inventory_transfers row through a direct
// parameterized statement. The ORM mapper is bypassed here: read-oriented
// views are layered over the same table and confuse its change tracking.
// Blank optional fields bind as true NULLs.
func (s *Service) insertLedger(tx *gorm.DB, in TransferInput, from, to *domain.Holding) error {
	itemID := strings.TrimSpace(from.ItemID)
	res := tx.Exec(`INSERT INTO inventory_transfers
		(item, item_name, item_desc, from_location, to_location, company, job, taken_from, transfer_date, quantity, costper, ponum, inspected_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullStr(from.ItemID), nullStrPtr(from.ItemName), nullStr(in.Description),
		from.LocationID, to.LocationID,
		nullStr(in.Company), nullStr(in.Job), nullStr(in.TakenFrom),
		in.TransferDate, in.Quantity, in.CostPer,
		nullStr(in.PONumber), nullStr(in.InspectedBy))
	if res.Error != nil {
		return &Error{
			Kind: KindStorage, Phase: "insert transfer record",
			ItemID: itemID, FromLocation: from.LocationID, ToLocation: to.LocationID,
			Err: res.Error,
		}
	}
	if res.RowsAffected == 0 {
		return &Error{
			Kind: KindZeroEffect, Phase: "insert transfer record",
			ItemID: itemID, FromLocation: from.LocationID, ToLocation: to.LocationID,
			Err: errors.New("insert affected no rows"),
		}
	}
	log.Debug().Str("item", itemID).Float64("quantity", in.Quantity).
		Int("from", from.LocationID).Int("to", to.LocationID).
		Msg("Transfer record written")
	return nil
}

// applyBalances re-loads both holdings under row locks so the read-then-write
// span cannot lose a concurrent update, applies the quantity delta and saves
// both rows. The callers' structs receive the fresh values.
func (s *Service) applyBalances(tx *gorm.DB, quantity float64, from, to *domain.Holding) error {
	itemID := strings.TrimSpace(from.ItemID)

	var src domain.Holding
	if err := lockForUpdate(tx).First(&src, from.ID).Error; err != nil {
		return balanceError("load source holding", itemID, from, to, err)
	}
	var dst domain.Holding
	if err := lockForUpdate(tx).First(&dst, to.ID).Error; err != nil {
		return balanceError("load destination holding", itemID, from, to, err)
	}

	log.Debug().Int("source", src.ID).Float64("source_onhand", src.OnHand).
		Int("dest", dst.ID).Float64("dest_onhand", dst.OnHand).
		Float64("quantity", quantity).Msg("Balances before transfer")

	src.OnHand -= quantity
	dst.OnHand += quantity

	if err := tx.Save(&src).Error; err != nil {
		return balanceError("update source balance", itemID, from, to, err)
	}
	if err := tx.Save(&dst).Error; err != nil {
		return balanceError("update destination balance", itemID, from, to, err)
	}

	log.Debug().Int("source", src.ID).Float64("source_onhand", src.OnHand).
		Int("dest", dst.ID).Float64("dest_onhand", dst.OnHand).
		Msg("Balances after transfer")

	*from = src
	*to = dst
	return nil
}

// MoveLocation relocates the entire contents of one location to another,
// best-effort per item: a skip or failure on one item never aborts the rest.
// The returned MoveResult reports every per-item outcome; it is also
// persisted as a relocation run.
func (s *Service) MoveLocation(ctx context.Context, fromLocationID, toLocationID int, takenFrom string, transferDate time.Time, inspectedBy string) (*MoveResult, error) {
	db := s.DB.WithContext(ctx)

	var holdings []domain.Holding
	if err := db.Where("location = ? AND onhand <> 0", fromLocationID).Find(&holdings).Error; err != nil {
		return nil, &Error{
			Kind: KindStorage, Phase: "enumerate source holdings",
			FromLocation: fromLocationID, ToLocation: toLocationID, Err: err,
		}
	}
	log.Info().Int("from", fromLocationID).Int("to", toLocationID).
		Int("holdings", len(holdings)).Msg("Bulk relocation started")

	result := &MoveResult{FromLocation: fromLocationID, ToLocation: toLocationID}
	for i := range holdings {
		outcome := s.moveOne(ctx, db, &holdings[i], toLocationID, takenFrom, transferDate, inspectedBy)
		result.Items = append(result.Items, outcome)
		switch outcome.Status {
		case OutcomeMoved:
			result.Moved++
		case OutcomeSkipped:
			result.Skipped++
		default:
			result.Failed++
		}
	}

	s.recordRun(ctx, result, takenFrom, inspectedBy)
	log.Info().Int("from", fromLocationID).Int("to", toLocationID).
		Int("moved", result.Moved).Int("skipped", result.Skipped).Int("failed", result.Failed).
		Msg("Bulk relocation finished")
	return result, nil
}

// moveOne processes a single source holding of a bulk relocation through
// validation, destination resolution and the combined transfer.
func (s *Service) moveOne(ctx context.Context, db *gorm.DB, from *domain.Holding, toLocationID int, takenFrom string, transferDate time.Time, inspectedBy string) ItemOutcome {
	itemID := strings.TrimSpace(from.ItemID)
	if itemID == "" {
		log.Warn().Int("holding", from.ID).Msg("Skipping holding with blank item code")
		return ItemOutcome{Status: OutcomeSkipped, Reason: "blank item code"}
	}
	out := ItemOutcome{ItemID: itemID, Quantity: from.OnHand}

	var item domain.Item
	if err := db.Where("TRIM(id) = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Str("item", itemID).Msg("No catalog record for item, skipping")
			out.Status, out.Reason = OutcomeSkipped, "item not in catalog"
			return out
		}
		out.Status, out.Reason = OutcomeFailed, "item lookup failed"
		return out
	}

	var dest domain.Location
	if err := db.First(&dest, toLocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Int("location", toLocationID).Msg("Destination location not found, skipping item")
			out.Status, out.Reason = OutcomeSkipped, "destination location not found"
			return out
		}
		out.Status, out.Reason = OutcomeFailed, "destination location lookup failed"
		return out
	}

	// Destination resolution: merge into an existing holding only when one
	// exists and either the destination is a yard or the item accumulates.
	// Otherwise each arriving batch gets its own line.
	var to *domain.Holding
	var existing domain.Holding
	err := db.Where("TRIM(item) = ? AND location = ?", itemID, toLocationID).First(&existing).Error
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		out.Status, out.Reason = OutcomeFailed, "destination holding lookup failed"
		return out
	case errors.Is(err, gorm.ErrRecordNotFound) || (dest.Type() != domain.LocationTypeYard && !item.Accumulates()):
		to = &domain.Holding{
			ItemID:      itemID,
			ItemName:    trimPtr(from.ItemName),
			Description: from.Description,
			Billable:    from.Billable,
			LocationID:  toLocationID,
			OnHand:      0, // set by the transfer step
		}
		if err := db.Create(to).Error; err != nil {
			out.Status, out.Reason = OutcomeFailed, "create destination holding failed"
			return out
		}
		log.Debug().Str("item", itemID).Int("location", toLocationID).
			Msg("Created destination holding")
	default:
		to = &existing
		log.Debug().Str("item", itemID).Int("location", toLocationID).
			Msg("Reusing destination holding")
	}

	qty := from.OnHand
	if qty <= 0 {
		log.Warn().Str("item", itemID).Float64("quantity", qty).
			Msg("Skipping item with non-positive quantity")
		out.Status, out.Reason = OutcomeSkipped, "non-positive quantity"
		return out
	}

	in := TransferInput{
		Quantity:     qty,
		Company:      moveCompany,
		Job:          moveJob,
		TakenFrom:    takenFrom,
		TransferDate: transferDate,
		InspectedBy:  inspectedBy,
	}
	if err := s.Transfer(ctx, in, from, to); err != nil {
		out.Status, out.Reason = OutcomeFailed, err.Error()
		return out
	}
	out.Status = OutcomeMoved
	return out
}

// recordRun persists the run summary. Best effort: a failure here is logged
// and the in-memory result still returns to the caller.
func (s *Service) recordRun(ctx context.Context, result *MoveResult, takenFrom, inspectedBy string) {
	detail, err := json.Marshal(result.Items)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode relocation run detail")
		return
	}
	run := domain.RelocationRun{
		FromLocation: result.FromLocation,
		ToLocation:   result.ToLocation,
		TakenFrom:    strings.TrimSpace(takenFrom),
		InspectedBy:  strings.TrimSpace(inspectedBy),
		Moved:        result.Moved,
		Skipped:      result.Skipped,
		Failed:       result.Failed,
		Detail:       datatypes.JSON(detail),
	}
	if err := s.DB.WithContext(ctx).Create(&run).Error; err != nil {
		log.Error().Err(err).Msg("Failed to record relocation run")
		return
	}
	result.RunID = run.RunID.String()
}

// TransferFilter narrows ledger queries.
type TransferFilter struct {
	LocationID *int
	ItemID     string
	Limit      int
}

// ListTransfers returns ledger rows newest first, optionally filtered by a
// location (either side of the movement) or an item code.
func (s *Service) ListTransfers(ctx context.Context, f TransferFilter) ([]domain.TransferRecord, error) {
	q := s.DB.WithContext(ctx).Model(&domain.TransferRecord{})
	if f.LocationID != nil {
		q = q.Where("from_location = ? OR to_location = ?", *f.LocationID, *f.LocationID)
	}
	if itemID := strings.TrimSpace(f.ItemID); itemID != "" {
		q = q.Where("TRIM(item) = ?", itemID)
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var records []domain.TransferRecord
	if err := q.Order("transfer_date DESC, id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListRuns returns recent relocation run summaries, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]domain.RelocationRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var runs []domain.RelocationRun
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// lockForUpdate adds a row lock to the query. The sqlite dialect skips the
// clause: sqlite has no row locks and its single writer already serializes
// the span.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func balanceError(phase, itemID string, from, to *domain.Holding, err error) *Error {
	kind := KindStorage
	if errors.Is(err, gorm.ErrRecordNotFound) {
		kind = KindNotFound
	}
	return &Error{
		Kind: kind, Phase: phase,
		ItemID: itemID, FromLocation: from.LocationID, ToLocation: to.LocationID,
		Err: err,
	}
}

func holdingLoadError(phase string, holdingID int, err error) *Error {
	kind := KindStorage
	if errors.Is(err, gorm.ErrRecordNotFound) {
		kind = KindNotFound
	}
	return &Error{Kind: kind, Phase: phase, Err: fmt.Errorf("holding %d: %w", holdingID, err)}
}

func nullStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nullStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	return nullStr(*p)
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	return &t
}
