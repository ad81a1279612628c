package hardwareservice

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"inventory/models"
)

// ValidationPolicy selects which optional fields are enforced. The zero value
// requires only locationName, creatorUserRef and per item itemName and
// serialNumber.
type ValidationPolicy struct {
	RequireSource       bool
	RequireManufacturer bool
}

// Validate checks the nested record shape. It never touches the store.
func Validate(rec models.HardwareRecord, policy ValidationPolicy) error {
	var missing []string
	if blank(rec.LocationName) {
		missing = append(missing, "locationName")
	}
	if policy.RequireSource && blank(rec.Source) {
		missing = append(missing, "source")
	}
	if rec.CreatorUserRef == uuid.Nil {
		missing = append(missing, "creatorUserRef")
	}
	if len(rec.Items) == 0 {
		missing = append(missing, "items")
	}
	for i, item := range rec.Items {
		if blank(item.ItemName) {
			missing = append(missing, fmt.Sprintf("items[%d].itemName", i))
		}
		if blank(item.SerialNumber) {
			missing = append(missing, fmt.Sprintf("items[%d].serialNumber", i))
		}
		if policy.RequireManufacturer && blank(item.Manufacturer) {
			missing = append(missing, fmt.Sprintf("items[%d].manufacturer", i))
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}

	seen := make(map[string]struct{}, len(rec.Items))
	for _, item := range rec.Items {
		if _, ok := seen[item.SerialNumber]; ok {
			return &DuplicateSerialError{Serial: item.SerialNumber}
		}
		seen[item.SerialNumber] = struct{}{}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
