package hardwareservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/models"
)

var recordColumnNames = []string{
	"id", "location_name", "vendor_company", "source", "delivery_date", "installation_date",
	"dead_stock_registry_number", "dead_stock_page_number", "allocation_kind", "allocated_name",
	"allocated_user_id", "created_by", "created_at", "updated_at",
}

func newHardwareRepoWithMock(t *testing.T) (*PostgresHardwareRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresHardwareRepository{DB: sqlx.NewDb(db, "postgres")}, mock
}

func TestFindByItemID(t *testing.T) {
	ctx := context.Background()
	itemID, recordID, creator := uuid.New(), uuid.New(), uuid.New()
	delivered := time.Date(2023, time.March, 4, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	t.Run("loads parent with ordered items", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		otherItem := uuid.New()

		mock.ExpectQuery(`SELECT record_id FROM hardware_items WHERE id = \$1`).
			WithArgs(itemID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"record_id"}).AddRow(recordID.String()))
		mock.ExpectQuery(`FROM hardware_records WHERE id = \$1`).
			WithArgs(recordID.String()).
			WillReturnRows(sqlmock.NewRows(recordColumnNames).
				AddRow(recordID.String(), "Nashik", "Acme", "", delivered, nil, "N/A", "N/A", "by_name", "Court Clerk", nil, creator.String(), now, now))
		mock.ExpectQuery(`FROM hardware_items\s+WHERE record_id = ANY\(\$1::uuid\[\]\)\s+ORDER BY record_id, position`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "record_id", "item_name", "serial_number", "manufacturer"}).
				AddRow(itemID.String(), recordID.String(), "Monitor", "SN-001", "Dell").
				AddRow(otherItem.String(), recordID.String(), "CPU", "SN-002", ""))

		rec, err := repo.FindByItemID(ctx, itemID)
		require.NoError(t, err)
		assert.Equal(t, recordID, rec.ID)
		assert.Equal(t, creator, rec.CreatorUserRef)
		assert.Equal(t, models.AllocatedByName("Court Clerk"), rec.AllocatedEmployee)
		require.NotNil(t, rec.DeliveryDate)
		assert.True(t, delivered.Equal(*rec.DeliveryDate))
		assert.Nil(t, rec.InstallationDate)
		assert.Equal(t, []string{"SN-001", "SN-002"}, rec.Serials())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown item", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectQuery(`SELECT record_id FROM hardware_items WHERE id = \$1`).
			WithArgs(itemID.String()).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByItemID(ctx, itemID)
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindSerialOwners(t *testing.T) {
	ctx := context.Background()

	t.Run("no serials skips the query", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		owners, err := repo.FindSerialOwners(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, owners)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owners", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		recordID, itemID := uuid.New(), uuid.New()
		mock.ExpectQuery(`SELECT serial_number, record_id, id FROM hardware_items\s+WHERE serial_number = ANY\(\$1\)`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"serial_number", "record_id", "id"}).
				AddRow("SN-001", recordID.String(), itemID.String()))

		owners, err := repo.FindSerialOwners(ctx, []string{"SN-001", "SN-404"})
		require.NoError(t, err)
		assert.Equal(t, []SerialOwner{{Serial: "SN-001", ParentID: recordID, ItemID: itemID}}, owners)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertHardwareRecord(t *testing.T) {
	ctx := context.Background()
	rec := validRecord()
	rec.DeadStockRegistryNumber = models.DeadStockPlaceholder
	rec.DeadStockPageNumber = models.DeadStockPlaceholder
	rec.AllocatedEmployee = models.Unassigned()
	rec.Items = append(rec.Items, models.AssetItem{ID: uuid.New(), ItemName: "CPU", SerialNumber: "SN-002"})

	t.Run("commits record and items", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO hardware_records`).
			WithArgs(rec.ID.String(), "Nashik", "", "", nil, nil, "N/A", "N/A", "unassigned", "", nil,
				rec.CreatorUserRef.String(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO hardware_items`).
			WithArgs(rec.Items[0].ID.String(), rec.ID.String(), 0, "Monitor", "SN-001", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO hardware_items`).
			WithArgs(rec.Items[1].ID.String(), rec.ID.String(), 1, "CPU", "SN-002", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Insert(ctx, rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation rolls back as duplicate serial", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO hardware_records`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO hardware_items`).
			WillReturnError(&pq.Error{Code: "23505", Detail: "Key (serial_number)=(SN-001) already exists."})
		mock.ExpectRollback()

		err := repo.Insert(ctx, rec)
		var dup *DuplicateSerialError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "SN-001", dup.Serial)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateItemRepository(t *testing.T) {
	ctx := context.Background()
	recordID, itemID, creator := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()
	serial := "SN-009"
	location := "Pune"

	t.Run("item and record in one transaction", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE hardware_items SET serial_number = \$1 WHERE id = \$2 AND record_id = \$3`).
			WithArgs("SN-009", itemID.String(), recordID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE hardware_records SET location_name = \$1, updated_at = now\(\)\s+WHERE id = \$2 AND EXISTS`).
			WithArgs("Pune", recordID.String(), itemID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`FROM hardware_records WHERE id = \$1`).
			WithArgs(recordID.String()).
			WillReturnRows(sqlmock.NewRows(recordColumnNames).
				AddRow(recordID.String(), "Pune", "", "", nil, nil, "N/A", "N/A", "unassigned", "", nil, creator.String(), now, now))
		mock.ExpectQuery(`FROM hardware_items`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "record_id", "item_name", "serial_number", "manufacturer"}).
				AddRow(itemID.String(), recordID.String(), "Monitor", "SN-009", ""))
		mock.ExpectCommit()

		rec, err := repo.UpdateItem(ctx,
			RecordPatch{ParentID: recordID, LocationName: &location},
			ItemPatch{ItemID: itemID, SerialNumber: &serial})
		require.NoError(t, err)
		assert.Equal(t, "Pune", rec.LocationName)
		assert.Equal(t, "SN-009", rec.Items[0].SerialNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("serial conflict leaves the parent untouched", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE hardware_items`).
			WillReturnError(&pq.Error{Code: "23505", Detail: "Key (serial_number)=(SN-009) already exists."})
		mock.ExpectRollback()

		_, err := repo.UpdateItem(ctx,
			RecordPatch{ParentID: recordID, LocationName: &location},
			ItemPatch{ItemID: itemID, SerialNumber: &serial})
		var dup *DuplicateSerialError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "SN-009", dup.Serial)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("item outside the record", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE hardware_items`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.UpdateItem(ctx, RecordPatch{ParentID: recordID}, ItemPatch{ItemID: itemID, SerialNumber: &serial})
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveItemAndDelete(t *testing.T) {
	ctx := context.Background()
	recordID, itemID := uuid.New(), uuid.New()

	t.Run("remove reports remaining items", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM hardware_items WHERE id = \$1 AND record_id = \$2`).
			WithArgs(itemID.String(), recordID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM hardware_items WHERE record_id = \$1`).
			WithArgs(recordID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectExec(`UPDATE hardware_records SET updated_at = now\(\) WHERE id = \$1`).
			WithArgs(recordID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		remaining, err := repo.RemoveItem(ctx, recordID, itemID)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("removing the last item deletes the record in the same transaction", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM hardware_items WHERE id = \$1 AND record_id = \$2`).
			WithArgs(itemID.String(), recordID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM hardware_items WHERE record_id = \$1`).
			WithArgs(recordID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`DELETE FROM hardware_records WHERE id = \$1`).
			WithArgs(recordID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		remaining, err := repo.RemoveItem(ctx, recordID, itemID)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed record delete keeps the item", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM hardware_items`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`DELETE FROM hardware_records`).WillReturnError(errors.New("conn reset"))
		mock.ExpectRollback()

		_, err := repo.RemoveItem(ctx, recordID, itemID)
		assert.ErrorContains(t, err, "conn reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("remove missing item", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM hardware_items`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.RemoveItem(ctx, recordID, itemID)
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete missing record", func(t *testing.T) {
		repo, mock := newHardwareRepoWithMock(t)
		mock.ExpectExec(`DELETE FROM hardware_records WHERE id = \$1`).
			WithArgs(recordID.String()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, recordID)
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBulkInsertIsPerRecord(t *testing.T) {
	ctx := context.Background()
	repo, mock := newHardwareRepoWithMock(t)

	first, second := validRecord(), validRecord()
	second.Items[0].SerialNumber = "SN-002"

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO hardware_records`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO hardware_items`).
		WillReturnError(&pq.Error{Code: "23505", Detail: "Key (serial_number)=(SN-001) already exists."})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO hardware_records`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO hardware_items`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	errs := repo.BulkInsert(ctx, []models.HardwareRecord{first, second})
	require.Len(t, errs, 2)
	var dup *DuplicateSerialError
	assert.ErrorAs(t, errs[0], &dup)
	assert.NoError(t, errs[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}
