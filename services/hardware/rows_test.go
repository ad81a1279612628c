package hardwareservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowToRequest(t *testing.T) {
	t.Run("aliases ignore case and spacing", func(t *testing.T) {
		req, ok := RowToRequest(map[string]string{
			"COURT  CITY":        " Nashik ",
			"hardware name":      "Monitor",
			"serialNo":           "SN-001",
			"Company":            "Dell",
			"Company Name":       "Acme Systems",
			"Dead Stock Sr. No.": "DS-1",
			"Allocated To":       "Asha Patil",
			"Unrelated Column":   "ignored",
		})
		require.True(t, ok)
		assert.Equal(t, "Nashik", req.LocationName)
		assert.Equal(t, "Acme Systems", req.VendorCompany)
		assert.Equal(t, "DS-1", req.DeadStockRegistryNumber)
		assert.Equal(t, "Asha Patil", req.AllocatedEmployee)
		require.Len(t, req.Items, 1)
		assert.Equal(t, ItemReq{ItemName: "Monitor", SerialNumber: "SN-001", Manufacturer: "Dell"}, req.Items[0])
	})

	t.Run("blank row", func(t *testing.T) {
		_, ok := RowToRequest(map[string]string{"Court Name": "  ", "Serial Number": ""})
		assert.False(t, ok)
	})

	t.Run("row with only unknown columns is not blank", func(t *testing.T) {
		req, ok := RowToRequest(map[string]string{"Remarks": "spare"})
		assert.True(t, ok)
		assert.Equal(t, "", req.Items[0].SerialNumber)
	})
}

func TestExportValuesReimport(t *testing.T) {
	delivered := time.Date(2023, time.March, 4, 0, 0, 0, 0, time.UTC)
	row := FlatRow{
		LocationName:            "Nashik",
		ItemName:                "Monitor",
		SerialNumber:            "SN-001",
		Manufacturer:            "Dell",
		VendorCompany:           "Acme Systems",
		Source:                  "High Court",
		DeliveryDate:            &delivered,
		DeadStockRegistryNumber: "DS-1",
		DeadStockPageNumber:     "7",
		AllocatedEmployee:       "Asha Patil",
	}

	values := ExportValues(row)
	require.Len(t, values, len(ExportColumns))

	raw := make(map[string]string, len(values))
	for i, header := range ExportColumns {
		raw[header] = values[i]
	}

	req, ok := RowToRequest(raw)
	require.True(t, ok)
	assert.Equal(t, "Nashik", req.LocationName)
	assert.Equal(t, "Acme Systems", req.VendorCompany)
	assert.Equal(t, "High Court", req.Source)
	assert.Equal(t, "04/03/2023", req.DeliveryDate)
	assert.Equal(t, "", req.InstallationDate)
	assert.Equal(t, "7", req.DeadStockPageNumber)
	assert.Equal(t, ItemReq{ItemName: "Monitor", SerialNumber: "SN-001", Manufacturer: "Dell"}, req.Items[0])
}
