package hardwareservice

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"inventory/models"
)

// HardwareRepository is the persistence boundary. Implementations report a
// serial collision as *DuplicateSerialError and a missing parent/item pair as
// *NotFoundError. UpdateItem writes the parent and item patches atomically.
// RemoveItem deletes the parent in the same write when its last item goes.
type HardwareRepository interface {
	FindByItemID(ctx context.Context, itemID uuid.UUID) (models.HardwareRecord, error)
	Find(ctx context.Context, filter RecordFilter) ([]models.HardwareRecord, error)
	FindSerialOwners(ctx context.Context, serials []string) ([]SerialOwner, error)
	Insert(ctx context.Context, rec models.HardwareRecord) error
	UpdateItem(ctx context.Context, recordPatch RecordPatch, itemPatch ItemPatch) (models.HardwareRecord, error)
	RemoveItem(ctx context.Context, parentID, itemID uuid.UUID) (int, error)
	Delete(ctx context.Context, parentID uuid.UUID) error
	BulkInsert(ctx context.Context, recs []models.HardwareRecord) []error
}

type PostgresHardwareRepository struct {
	DB *sqlx.DB
}

func NewHardwareRepository(db *sqlx.DB) HardwareRepository {
	return &PostgresHardwareRepository{DB: db}
}

type recordRow struct {
	ID                      uuid.UUID  `db:"id"`
	LocationName            string     `db:"location_name"`
	VendorCompany           string     `db:"vendor_company"`
	Source                  string     `db:"source"`
	DeliveryDate            *time.Time `db:"delivery_date"`
	InstallationDate        *time.Time `db:"installation_date"`
	DeadStockRegistryNumber string     `db:"dead_stock_registry_number"`
	DeadStockPageNumber     string     `db:"dead_stock_page_number"`
	AllocationKind          string     `db:"allocation_kind"`
	AllocatedName           string     `db:"allocated_name"`
	AllocatedUserID         *uuid.UUID `db:"allocated_user_id"`
	CreatedBy               uuid.UUID  `db:"created_by"`
	CreatedAt               time.Time  `db:"created_at"`
	UpdatedAt               time.Time  `db:"updated_at"`
}

type itemRow struct {
	ID           uuid.UUID `db:"id"`
	RecordID     uuid.UUID `db:"record_id"`
	ItemName     string    `db:"item_name"`
	SerialNumber string    `db:"serial_number"`
	Manufacturer string    `db:"manufacturer"`
}

const selectRecords = `
	SELECT id, location_name, vendor_company, source, delivery_date, installation_date,
		dead_stock_registry_number, dead_stock_page_number, allocation_kind, allocated_name,
		allocated_user_id, created_by, created_at, updated_at
	FROM hardware_records `

func (r *PostgresHardwareRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) (models.HardwareRecord, error) {
	var recordID uuid.UUID
	err := r.DB.GetContext(ctx, &recordID, `SELECT record_id FROM hardware_items WHERE id = $1`, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HardwareRecord{}, &NotFoundError{Identity: itemID.String()}
		}
		return models.HardwareRecord{}, fmt.Errorf("failed to look up hardware item: %w", err)
	}

	recs, err := r.loadRecords(ctx, r.DB, `WHERE id = $1`, recordID)
	if err != nil {
		return models.HardwareRecord{}, err
	}
	if len(recs) == 0 {
		return models.HardwareRecord{}, &NotFoundError{Identity: itemID.String()}
	}
	return recs[0], nil
}

func (r *PostgresHardwareRepository) Find(ctx context.Context, filter RecordFilter) ([]models.HardwareRecord, error) {
	return r.loadRecords(ctx, r.DB,
		`WHERE ($1 = '' OR lower(location_name) = lower($1)) ORDER BY created_at DESC`,
		strings.TrimSpace(filter.LocationName))
}

func (r *PostgresHardwareRepository) FindSerialOwners(ctx context.Context, serials []string) ([]SerialOwner, error) {
	owners := make([]SerialOwner, 0)
	if len(serials) == 0 {
		return owners, nil
	}
	err := r.DB.SelectContext(ctx, &owners, `
		SELECT serial_number, record_id, id FROM hardware_items
		WHERE serial_number = ANY($1)
	`, pq.Array(serials))
	if err != nil {
		return nil, fmt.Errorf("failed to look up serial numbers: %w", err)
	}
	return owners, nil
}

func (r *PostgresHardwareRepository) Insert(ctx context.Context, rec models.HardwareRecord) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO hardware_records (
			id, location_name, vendor_company, source, delivery_date, installation_date,
			dead_stock_registry_number, dead_stock_page_number, allocation_kind, allocated_name,
			allocated_user_id, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		rec.ID, rec.LocationName, rec.VendorCompany, rec.Source, rec.DeliveryDate, rec.InstallationDate,
		rec.DeadStockRegistryNumber, rec.DeadStockPageNumber, string(rec.AllocatedEmployee.Kind), rec.AllocatedEmployee.Name,
		rec.AllocatedEmployee.UserID, rec.CreatorUserRef, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert hardware record: %w", err)
	}

	for i, item := range rec.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO hardware_items (id, record_id, position, item_name, serial_number, manufacturer)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, rec.ID, i, item.ItemName, item.SerialNumber, item.Manufacturer)
		if err != nil {
			return fmt.Errorf("failed to insert hardware item: %w", translateWriteErr(err, item.SerialNumber))
		}
	}
	return nil
}

func (r *PostgresHardwareRepository) UpdateItem(ctx context.Context, recordPatch RecordPatch, itemPatch ItemPatch) (rec models.HardwareRecord, err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return rec, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	notFound := &NotFoundError{Identity: itemPatch.ItemID.String()}

	// item first, so a serial conflict aborts before the parent is touched
	if !itemPatch.IsEmpty() {
		updateFields := []string{}
		args := []interface{}{}
		argPos := 1

		if itemPatch.ItemName != nil {
			updateFields = append(updateFields, fmt.Sprintf("item_name = $%d", argPos))
			args = append(args, *itemPatch.ItemName)
			argPos++
		}
		if itemPatch.SerialNumber != nil {
			updateFields = append(updateFields, fmt.Sprintf("serial_number = $%d", argPos))
			args = append(args, *itemPatch.SerialNumber)
			argPos++
		}
		if itemPatch.Manufacturer != nil {
			updateFields = append(updateFields, fmt.Sprintf("manufacturer = $%d", argPos))
			args = append(args, *itemPatch.Manufacturer)
			argPos++
		}

		query := fmt.Sprintf("UPDATE hardware_items SET %s WHERE id = $%d AND record_id = $%d",
			strings.Join(updateFields, ", "), argPos, argPos+1)
		args = append(args, itemPatch.ItemID, recordPatch.ParentID)

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			serial := ""
			if itemPatch.SerialNumber != nil {
				serial = *itemPatch.SerialNumber
			}
			err = fmt.Errorf("failed to update hardware item: %w", translateWriteErr(execErr, serial))
			return rec, err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			err = notFound
			return rec, err
		}
	}

	updateFields := []string{}
	args := []interface{}{}
	argPos := 1

	if recordPatch.LocationName != nil {
		updateFields = append(updateFields, fmt.Sprintf("location_name = $%d", argPos))
		args = append(args, *recordPatch.LocationName)
		argPos++
	}
	if recordPatch.VendorCompany != nil {
		updateFields = append(updateFields, fmt.Sprintf("vendor_company = $%d", argPos))
		args = append(args, *recordPatch.VendorCompany)
		argPos++
	}
	if recordPatch.Source != nil {
		updateFields = append(updateFields, fmt.Sprintf("source = $%d", argPos))
		args = append(args, *recordPatch.Source)
		argPos++
	}
	if recordPatch.DeliveryDate.Set {
		updateFields = append(updateFields, fmt.Sprintf("delivery_date = $%d", argPos))
		args = append(args, recordPatch.DeliveryDate.Value)
		argPos++
	}
	if recordPatch.InstallationDate.Set {
		updateFields = append(updateFields, fmt.Sprintf("installation_date = $%d", argPos))
		args = append(args, recordPatch.InstallationDate.Value)
		argPos++
	}
	if recordPatch.DeadStockRegistryNumber != nil {
		updateFields = append(updateFields, fmt.Sprintf("dead_stock_registry_number = $%d", argPos))
		args = append(args, *recordPatch.DeadStockRegistryNumber)
		argPos++
	}
	if recordPatch.DeadStockPageNumber != nil {
		updateFields = append(updateFields, fmt.Sprintf("dead_stock_page_number = $%d", argPos))
		args = append(args, *recordPatch.DeadStockPageNumber)
		argPos++
	}
	if recordPatch.AllocatedEmployee != nil {
		updateFields = append(updateFields,
			fmt.Sprintf("allocation_kind = $%d", argPos),
			fmt.Sprintf("allocated_name = $%d", argPos+1),
			fmt.Sprintf("allocated_user_id = $%d", argPos+2))
		args = append(args, string(recordPatch.AllocatedEmployee.Kind), recordPatch.AllocatedEmployee.Name, recordPatch.AllocatedEmployee.UserID)
		argPos += 3
	}
	updateFields = append(updateFields, "updated_at = now()")

	query := fmt.Sprintf(`UPDATE hardware_records SET %s
		WHERE id = $%d AND EXISTS (SELECT 1 FROM hardware_items WHERE id = $%d AND record_id = $%d)`,
		strings.Join(updateFields, ", "), argPos, argPos+1, argPos)
	args = append(args, recordPatch.ParentID, itemPatch.ItemID)

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		err = fmt.Errorf("failed to update hardware record: %w", err)
		return rec, err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		err = notFound
		return rec, err
	}

	recs, err := r.loadRecords(ctx, tx, `WHERE id = $1`, recordPatch.ParentID)
	if err != nil {
		return rec, err
	}
	if len(recs) == 0 {
		err = notFound
		return rec, err
	}
	return recs[0], nil
}

func (r *PostgresHardwareRepository) RemoveItem(ctx context.Context, parentID, itemID uuid.UUID) (remaining int, err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM hardware_items WHERE id = $1 AND record_id = $2`, itemID, parentID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove hardware item: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		err = &NotFoundError{Identity: itemID.String()}
		return 0, err
	}

	err = tx.GetContext(ctx, &remaining, `SELECT COUNT(*) FROM hardware_items WHERE record_id = $1`, parentID)
	if err != nil {
		return 0, fmt.Errorf("failed to count remaining items: %w", err)
	}

	if remaining == 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM hardware_records WHERE id = $1`, parentID)
		if err != nil {
			return 0, fmt.Errorf("failed to delete empty hardware record: %w", err)
		}
		return 0, nil
	}

	_, err = tx.ExecContext(ctx, `UPDATE hardware_records SET updated_at = now() WHERE id = $1`, parentID)
	if err != nil {
		return 0, fmt.Errorf("failed to touch hardware record: %w", err)
	}
	return remaining, nil
}

func (r *PostgresHardwareRepository) Delete(ctx context.Context, parentID uuid.UUID) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM hardware_records WHERE id = $1`, parentID)
	if err != nil {
		return fmt.Errorf("failed to delete hardware record: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return &NotFoundError{Identity: parentID.String()}
	}
	return nil
}

// BulkInsert inserts every record in its own transaction so one failure
// does not abort the rest.
func (r *PostgresHardwareRepository) BulkInsert(ctx context.Context, recs []models.HardwareRecord) []error {
	errs := make([]error, len(recs))
	for i, rec := range recs {
		errs[i] = r.Insert(ctx, rec)
	}
	return errs
}

func (r *PostgresHardwareRepository) loadRecords(ctx context.Context, q sqlx.QueryerContext, where string, args ...interface{}) ([]models.HardwareRecord, error) {
	rows := []recordRow{}
	if err := sqlx.SelectContext(ctx, q, &rows, selectRecords+where, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch hardware records: %w", err)
	}
	if len(rows) == 0 {
		return []models.HardwareRecord{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID.String())
	}

	items := []itemRow{}
	err := sqlx.SelectContext(ctx, q, &items, `
		SELECT id, record_id, item_name, serial_number, manufacturer
		FROM hardware_items
		WHERE record_id = ANY($1::uuid[])
		ORDER BY record_id, position
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hardware items: %w", err)
	}

	byRecord := make(map[uuid.UUID][]models.AssetItem, len(rows))
	for _, item := range items {
		byRecord[item.RecordID] = append(byRecord[item.RecordID], models.AssetItem{
			ID:           item.ID,
			ItemName:     item.ItemName,
			SerialNumber: item.SerialNumber,
			Manufacturer: item.Manufacturer,
		})
	}

	recs := make([]models.HardwareRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, models.HardwareRecord{
			ID:                      row.ID,
			LocationName:            row.LocationName,
			VendorCompany:           row.VendorCompany,
			Source:                  row.Source,
			DeliveryDate:            utcPtr(row.DeliveryDate),
			InstallationDate:        utcPtr(row.InstallationDate),
			DeadStockRegistryNumber: row.DeadStockRegistryNumber,
			DeadStockPageNumber:     row.DeadStockPageNumber,
			AllocatedEmployee: models.Allocation{
				Kind:   models.AllocationKind(row.AllocationKind),
				Name:   row.AllocatedName,
				UserID: row.AllocatedUserID,
			},
			CreatorUserRef: row.CreatedBy,
			CreatedAt:      row.CreatedAt.UTC(),
			UpdatedAt:      row.UpdatedAt.UTC(),
			Items:          append([]models.AssetItem{}, byRecord[row.ID]...),
		})
	}
	return recs, nil
}

var serialDetailPattern = regexp.MustCompile(`\(serial_number\)=\((.*)\)`)

// translateWriteErr maps the hardware_items unique index violation to a
// DuplicateSerialError.
func translateWriteErr(err error, serial string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if m := serialDetailPattern.FindStringSubmatch(pqErr.Detail); m != nil {
			serial = m[1]
		}
		return &DuplicateSerialError{Serial: serial}
	}
	return err
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
