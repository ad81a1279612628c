package hardwareservice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/models"
)

func sampleRecords() []models.HardwareRecord {
	delivered := time.Date(2023, time.March, 4, 0, 0, 0, 0, time.UTC)
	installed := time.Date(2023, time.March, 9, 0, 0, 0, 0, time.UTC)
	created := time.Date(2023, time.March, 10, 12, 30, 0, 0, time.UTC)
	userID := uuid.New()

	return []models.HardwareRecord{
		{
			ID:                      uuid.New(),
			LocationName:            "Nashik",
			VendorCompany:           "Acme Systems",
			Source:                  "High Court",
			DeliveryDate:            &delivered,
			InstallationDate:        &installed,
			DeadStockRegistryNumber: "DS-17",
			DeadStockPageNumber:     "42",
			AllocatedEmployee:       models.AllocatedToUser(userID, "Asha Patil"),
			CreatorUserRef:          uuid.New(),
			CreatedAt:               created,
			UpdatedAt:               created,
			Items: []models.AssetItem{
				{ID: uuid.New(), ItemName: "Monitor", SerialNumber: "SN-001", Manufacturer: "Dell"},
				{ID: uuid.New(), ItemName: "CPU", SerialNumber: "SN-002", Manufacturer: "HP"},
			},
		},
		{
			ID:                      uuid.New(),
			LocationName:            "Pune",
			DeadStockRegistryNumber: models.DeadStockPlaceholder,
			DeadStockPageNumber:     models.DeadStockPlaceholder,
			AllocatedEmployee:       models.AllocatedByName("Court Clerk"),
			CreatorUserRef:          uuid.New(),
			CreatedAt:               created,
			UpdatedAt:               created,
			Items: []models.AssetItem{
				{ID: uuid.New(), ItemName: "Printer", SerialNumber: "SN-100"},
			},
		},
		{
			ID:                      uuid.New(),
			LocationName:            "Nagpur",
			DeadStockRegistryNumber: models.DeadStockPlaceholder,
			DeadStockPageNumber:     models.DeadStockPlaceholder,
			AllocatedEmployee:       models.Unassigned(),
			CreatorUserRef:          uuid.New(),
			CreatedAt:               created,
			UpdatedAt:               created,
			Items: []models.AssetItem{
				{ID: uuid.New(), ItemName: "Scanner", SerialNumber: "SN-200", Manufacturer: "Canon"},
			},
		},
	}
}

func TestFlatten(t *testing.T) {
	recs := sampleRecords()

	rows := FlattenAll(recs)
	require.Len(t, rows, 4)

	serials := make([]string, 0, len(rows))
	for _, row := range rows {
		serials = append(serials, row.SerialNumber)
	}
	assert.Equal(t, []string{"SN-001", "SN-002", "SN-100", "SN-200"}, serials)

	first := rows[0]
	assert.Equal(t, recs[0].Items[0].ID, first.ItemID)
	assert.Equal(t, recs[0].ID, first.ParentID)
	assert.NotEqual(t, first.ItemID, first.ParentID)
	assert.Equal(t, "Nashik", first.LocationName)
	assert.Equal(t, "Asha Patil", first.AllocatedEmployee)
	assert.Equal(t, models.AllocationByIdentity, first.AllocationKind)
	assert.Equal(t, recs[0].ID, rows[1].ParentID)

	assert.Equal(t, "", rows[3].AllocatedEmployee)

	t.Run("restartable", func(t *testing.T) {
		seq := Flatten(recs)
		count := 0
		for range seq {
			count++
		}
		for range seq {
			count++
		}
		assert.Equal(t, 8, count)
	})

	t.Run("stops early", func(t *testing.T) {
		count := 0
		for range Flatten(recs) {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, FlattenAll(nil))
	})
}

// Flattening a record and feeding every row back as a full edit must
// reproduce the record exactly.
func TestFlattenRoundTrip(t *testing.T) {
	for _, original := range sampleRecords() {
		t.Run(original.LocationName, func(t *testing.T) {
			rebuilt := original.Clone()
			for row := range Flatten([]models.HardwareRecord{original}) {
				recordPatch, itemPatch := UnflattenUpdate(row.ItemID, row.ParentID, row.ToUpdateReq())
				require.Equal(t, original.ID, recordPatch.ParentID)

				idx := rebuilt.ItemIndex(itemPatch.ItemID)
				require.GreaterOrEqual(t, idx, 0)
				recordPatch.ApplyTo(&rebuilt)
				itemPatch.ApplyTo(&rebuilt.Items[idx])
			}
			assert.Equal(t, original, rebuilt)
		})
	}
}

func TestUnflattenCreate(t *testing.T) {
	creator := uuid.New()
	allocated := uuid.New()

	rec := UnflattenCreate(CreateHardwareReq{
		LocationName:        "  Nashik ",
		DeliveryDate:        "04/03/2023",
		InstallationDate:    "not a date",
		AllocatedEmployee:   allocated.String(),
		AllocatedEmployeeID: &allocated,
		Items: []ItemReq{
			{ItemName: " Monitor ", SerialNumber: " SN-001 "},
			{ItemName: "CPU", SerialNumber: "SN-002", Manufacturer: "HP"},
		},
	}, creator)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "Nashik", rec.LocationName)
	assert.Equal(t, creator, rec.CreatorUserRef)
	assert.Equal(t, models.DeadStockPlaceholder, rec.DeadStockRegistryNumber)
	assert.Equal(t, models.DeadStockPlaceholder, rec.DeadStockPageNumber)
	require.NotNil(t, rec.DeliveryDate)
	assert.Equal(t, time.March, rec.DeliveryDate.Month())
	assert.Nil(t, rec.InstallationDate)

	assert.Equal(t, models.AllocationByIdentity, rec.AllocatedEmployee.Kind)
	assert.Equal(t, "", rec.AllocatedEmployee.Name)

	require.Len(t, rec.Items, 2)
	assert.Equal(t, "Monitor", rec.Items[0].ItemName)
	assert.Equal(t, "SN-001", rec.Items[0].SerialNumber)
	assert.NotEqual(t, rec.Items[0].ID, rec.Items[1].ID)
	assert.NotEqual(t, rec.ID, rec.Items[0].ID)
}

func TestUnflattenUpdate(t *testing.T) {
	itemID, parentID := uuid.New(), uuid.New()
	serial := " SN-009 "
	cleared := ""
	location := "Pune"

	recordPatch, itemPatch := UnflattenUpdate(itemID, parentID, UpdateItemReq{
		SerialNumber: &serial,
		LocationName: &location,
		DeliveryDate: &cleared,
	})

	assert.Equal(t, itemID, itemPatch.ItemID)
	require.NotNil(t, itemPatch.SerialNumber)
	assert.Equal(t, "SN-009", *itemPatch.SerialNumber)
	assert.Nil(t, itemPatch.ItemName)

	assert.Equal(t, parentID, recordPatch.ParentID)
	assert.True(t, recordPatch.DeliveryDate.Set)
	assert.Nil(t, recordPatch.DeliveryDate.Value)
	assert.False(t, recordPatch.InstallationDate.Set)
	assert.Nil(t, recordPatch.AllocatedEmployee)
	assert.False(t, recordPatch.IsEmpty())

	empty, emptyItem := UnflattenUpdate(itemID, parentID, UpdateItemReq{})
	assert.True(t, empty.IsEmpty())
	assert.True(t, emptyItem.IsEmpty())
}
