package hardwareservice

import (
	"strings"
	"unicode"
)

// Accepted spreadsheet headers per field. Matching ignores case and
// whitespace, so "Serial Number" also matches "serialNumber".
var columnAliases = map[string][]string{
	"locationName":            {"Court Name", "Court City", "Location", "Location Name"},
	"vendorCompany":           {"Company Name", "Vendor", "Vendor Company"},
	"source":                  {"Source"},
	"deliveryDate":            {"Delivery Date"},
	"installationDate":        {"Installation Date"},
	"deadStockRegistryNumber": {"Dead Stock Sr. No.", "Dead Stock Reg Sr No", "Dead Stock Registry Number"},
	"deadStockPageNumber":     {"Dead Stock Page No.", "Dead Stock Book Page No.", "Dead Stock Page Number"},
	"allocatedEmployee":       {"Allocated Employee", "Employee Allocated", "Allocated To"},
	"itemName":                {"Item Name", "Hardware Name"},
	"serialNumber":            {"Serial Number", "Serial No.", "serialNo"},
	"manufacturer":            {"Manufacturer", "Company"},
}

// ExportColumns is the header row written by the xlsx export. Every header
// is also accepted by the importer.
var ExportColumns = []string{
	"Court Name", "Item Name", "Serial Number", "Manufacturer", "Company Name", "Source",
	"Delivery Date", "Installation Date", "Dead Stock Sr. No.", "Dead Stock Page No.",
	"Allocated Employee",
}

func normalizeHeader(header string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, header)
}

var aliasIndex = func() map[string]string {
	index := make(map[string]string)
	for field, aliases := range columnAliases {
		index[normalizeHeader(field)] = field
		for _, alias := range aliases {
			index[normalizeHeader(alias)] = field
		}
	}
	return index
}()

// canonicalRow keys a raw row by field name. The first non-blank value wins
// when several headers map to the same field.
func canonicalRow(raw map[string]string) (map[string]string, bool) {
	row := make(map[string]string, len(columnAliases))
	blankRow := true
	for header, value := range raw {
		value = strings.TrimSpace(value)
		if value != "" {
			blankRow = false
		}
		field, ok := aliasIndex[normalizeHeader(header)]
		if !ok || value == "" {
			continue
		}
		if _, taken := row[field]; !taken {
			row[field] = value
		}
	}
	return row, !blankRow
}

// RowToRequest maps one spreadsheet row to a single-item create request. It
// reports false for rows with no content at all.
func RowToRequest(raw map[string]string) (CreateHardwareReq, bool) {
	row, ok := canonicalRow(raw)
	if !ok {
		return CreateHardwareReq{}, false
	}
	return CreateHardwareReq{
		LocationName:            row["locationName"],
		VendorCompany:           row["vendorCompany"],
		Source:                  row["source"],
		DeliveryDate:            row["deliveryDate"],
		InstallationDate:        row["installationDate"],
		DeadStockRegistryNumber: row["deadStockRegistryNumber"],
		DeadStockPageNumber:     row["deadStockPageNumber"],
		AllocatedEmployee:       row["allocatedEmployee"],
		Items: []ItemReq{{
			ItemName:     row["itemName"],
			SerialNumber: row["serialNumber"],
			Manufacturer: row["manufacturer"],
		}},
	}, true
}

// ExportValues renders a flat row in ExportColumns order. Dates use the
// day-first form the importer reads back.
func ExportValues(row FlatRow) []string {
	return []string{
		row.LocationName,
		row.ItemName,
		row.SerialNumber,
		row.Manufacturer,
		row.VendorCompany,
		row.Source,
		exportDate(row.DeliveryDate),
		exportDate(row.InstallationDate),
		row.DeadStockRegistryNumber,
		row.DeadStockPageNumber,
		row.AllocatedEmployee,
	}
}
