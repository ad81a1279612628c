package hardwareservice

import (
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"

	"inventory/models"
)

// FlatRow is the display shape: one row per asset item with a copy of the
// parent's metadata.
type FlatRow struct {
	ItemID                  uuid.UUID             `json:"id"`
	ParentID                uuid.UUID             `json:"parentId"`
	ItemName                string                `json:"itemName"`
	SerialNumber            string                `json:"serialNumber"`
	Manufacturer            string                `json:"manufacturer"`
	LocationName            string                `json:"locationName"`
	VendorCompany           string                `json:"vendorCompany"`
	Source                  string                `json:"source"`
	DeliveryDate            *time.Time            `json:"deliveryDate"`
	InstallationDate        *time.Time            `json:"installationDate"`
	DeadStockRegistryNumber string                `json:"deadStockRegistryNumber"`
	DeadStockPageNumber     string                `json:"deadStockPageNumber"`
	AllocatedEmployee       string                `json:"allocatedEmployee"`
	AllocatedEmployeeID     *uuid.UUID            `json:"allocatedEmployeeId,omitempty"`
	AllocationKind          models.AllocationKind `json:"allocationKind"`
	CreatorUserRef          uuid.UUID             `json:"creatorUserRef"`
	CreatedAt               time.Time             `json:"createdAt"`
	UpdatedAt               time.Time             `json:"updatedAt"`
}

func NewFlatRow(rec models.HardwareRecord, item models.AssetItem) FlatRow {
	return FlatRow{
		ItemID:                  item.ID,
		ParentID:                rec.ID,
		ItemName:                item.ItemName,
		SerialNumber:            item.SerialNumber,
		Manufacturer:            item.Manufacturer,
		LocationName:            rec.LocationName,
		VendorCompany:           rec.VendorCompany,
		Source:                  rec.Source,
		DeliveryDate:            rec.DeliveryDate,
		InstallationDate:        rec.InstallationDate,
		DeadStockRegistryNumber: rec.DeadStockRegistryNumber,
		DeadStockPageNumber:     rec.DeadStockPageNumber,
		AllocatedEmployee:       rec.AllocatedEmployee.Display(),
		AllocatedEmployeeID:     rec.AllocatedEmployee.UserID,
		AllocationKind:          rec.AllocatedEmployee.Kind,
		CreatorUserRef:          rec.CreatorUserRef,
		CreatedAt:               rec.CreatedAt,
		UpdatedAt:               rec.UpdatedAt,
	}
}

// Flatten yields one row per item, items in list order and records in the
// order given. The sequence can be ranged over any number of times.
func Flatten(records []models.HardwareRecord) iter.Seq[FlatRow] {
	return func(yield func(FlatRow) bool) {
		for i := range records {
			for _, item := range records[i].Items {
				if !yield(NewFlatRow(records[i], item)) {
					return
				}
			}
		}
	}
}

func FlattenAll(records []models.HardwareRecord) []FlatRow {
	rows := make([]FlatRow, 0, len(records))
	for row := range Flatten(records) {
		rows = append(rows, row)
	}
	return rows
}

// ToUpdateReq turns a row back into a full edit of every field it carries.
func (row FlatRow) ToUpdateReq() UpdateItemReq {
	parentID := row.ParentID
	req := UpdateItemReq{
		ParentID:                &parentID,
		ItemName:                strPtr(row.ItemName),
		SerialNumber:            strPtr(row.SerialNumber),
		Manufacturer:            strPtr(row.Manufacturer),
		LocationName:            strPtr(row.LocationName),
		VendorCompany:           strPtr(row.VendorCompany),
		Source:                  strPtr(row.Source),
		DeliveryDate:            strPtr(FormatDate(row.DeliveryDate)),
		InstallationDate:        strPtr(FormatDate(row.InstallationDate)),
		DeadStockRegistryNumber: strPtr(row.DeadStockRegistryNumber),
		DeadStockPageNumber:     strPtr(row.DeadStockPageNumber),
		AllocatedEmployee:       strPtr(row.AllocatedEmployee),
	}
	if row.AllocationKind == models.AllocationByIdentity && row.AllocatedEmployeeID != nil {
		id := *row.AllocatedEmployeeID
		req.AllocatedEmployeeID = &id
	}
	return req
}

// UnflattenCreate builds one new record owning every item in the request.
func UnflattenCreate(req CreateHardwareReq, creatorID uuid.UUID) models.HardwareRecord {
	now := time.Now().UTC()
	rec := models.HardwareRecord{
		ID:                      uuid.New(),
		LocationName:            strings.TrimSpace(req.LocationName),
		VendorCompany:           strings.TrimSpace(req.VendorCompany),
		Source:                  strings.TrimSpace(req.Source),
		DeliveryDate:            ParseDate(req.DeliveryDate),
		InstallationDate:        ParseDate(req.InstallationDate),
		DeadStockRegistryNumber: deadStockRef(req.DeadStockRegistryNumber),
		DeadStockPageNumber:     deadStockRef(req.DeadStockPageNumber),
		AllocatedEmployee:       allocationFrom(req.AllocatedEmployeeID, req.AllocatedEmployee),
		CreatorUserRef:          creatorID,
		CreatedAt:               now,
		UpdatedAt:               now,
		Items:                   make([]models.AssetItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		rec.Items = append(rec.Items, models.AssetItem{
			ID:           uuid.New(),
			ItemName:     strings.TrimSpace(item.ItemName),
			SerialNumber: strings.TrimSpace(item.SerialNumber),
			Manufacturer: strings.TrimSpace(item.Manufacturer),
		})
	}
	return rec
}

// UnflattenUpdate splits a flat edit into a patch for the parent record and
// a patch for exactly the addressed item.
func UnflattenUpdate(itemID, parentID uuid.UUID, req UpdateItemReq) (RecordPatch, ItemPatch) {
	recordPatch := RecordPatch{
		ParentID:      parentID,
		LocationName:  trimmed(req.LocationName),
		VendorCompany: trimmed(req.VendorCompany),
		Source:        trimmed(req.Source),
	}
	if req.DeliveryDate != nil {
		recordPatch.DeliveryDate = DatePatch{Set: true, Value: ParseDate(*req.DeliveryDate)}
	}
	if req.InstallationDate != nil {
		recordPatch.InstallationDate = DatePatch{Set: true, Value: ParseDate(*req.InstallationDate)}
	}
	if req.DeadStockRegistryNumber != nil {
		recordPatch.DeadStockRegistryNumber = strPtr(deadStockRef(*req.DeadStockRegistryNumber))
	}
	if req.DeadStockPageNumber != nil {
		recordPatch.DeadStockPageNumber = strPtr(deadStockRef(*req.DeadStockPageNumber))
	}
	if req.AllocatedEmployeeID != nil || req.AllocatedEmployee != nil {
		name := ""
		if req.AllocatedEmployee != nil {
			name = *req.AllocatedEmployee
		}
		allocation := allocationFrom(req.AllocatedEmployeeID, name)
		recordPatch.AllocatedEmployee = &allocation
	}

	itemPatch := ItemPatch{
		ItemID:       itemID,
		ItemName:     trimmed(req.ItemName),
		SerialNumber: trimmed(req.SerialNumber),
		Manufacturer: trimmed(req.Manufacturer),
	}
	return recordPatch, itemPatch
}

func allocationFrom(userID *uuid.UUID, name string) models.Allocation {
	name = strings.TrimSpace(name)
	if userID != nil && *userID != uuid.Nil {
		// rows without a display name echo the id back
		if name == userID.String() {
			name = ""
		}
		return models.AllocatedToUser(*userID, name)
	}
	return models.AllocatedByName(name)
}

func deadStockRef(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.DeadStockPlaceholder
	}
	return value
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	return strPtr(strings.TrimSpace(*value))
}

func strPtr(value string) *string {
	return &value
}
