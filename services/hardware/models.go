package hardwareservice

import (
	"time"

	"github.com/google/uuid"

	"inventory/models"
)

type ItemReq struct {
	ItemName     string `json:"itemName" validate:"max=200"`
	SerialNumber string `json:"serialNumber" validate:"max=200"`
	Manufacturer string `json:"manufacturer" validate:"max=200"`
}

// CreateHardwareReq is the payload of the hardware entry form: shared
// deployment metadata plus every item delivered in the batch.
type CreateHardwareReq struct {
	LocationName            string     `json:"locationName" validate:"max=200"`
	VendorCompany           string     `json:"vendorCompany" validate:"max=200"`
	Source                  string     `json:"source" validate:"max=200"`
	DeliveryDate            string     `json:"deliveryDate"`
	InstallationDate        string     `json:"installationDate"`
	DeadStockRegistryNumber string     `json:"deadStockRegistryNumber" validate:"max=100"`
	DeadStockPageNumber     string     `json:"deadStockPageNumber" validate:"max=100"`
	AllocatedEmployee       string     `json:"allocatedEmployee" validate:"max=200"`
	AllocatedEmployeeID     *uuid.UUID `json:"allocatedEmployeeId,omitempty"`
	Items                   []ItemReq  `json:"items" validate:"required,min=1,dive"`
}

// UpdateItemReq edits one flattened row. Nil fields are left untouched; an
// empty date string clears the date.
type UpdateItemReq struct {
	ParentID                *uuid.UUID `json:"parentId,omitempty"`
	ItemName                *string    `json:"itemName,omitempty"`
	SerialNumber            *string    `json:"serialNumber,omitempty"`
	Manufacturer            *string    `json:"manufacturer,omitempty"`
	LocationName            *string    `json:"locationName,omitempty"`
	VendorCompany           *string    `json:"vendorCompany,omitempty"`
	Source                  *string    `json:"source,omitempty"`
	DeliveryDate            *string    `json:"deliveryDate,omitempty"`
	InstallationDate        *string    `json:"installationDate,omitempty"`
	DeadStockRegistryNumber *string    `json:"deadStockRegistryNumber,omitempty"`
	DeadStockPageNumber     *string    `json:"deadStockPageNumber,omitempty"`
	AllocatedEmployee       *string    `json:"allocatedEmployee,omitempty"`
	AllocatedEmployeeID     *uuid.UUID `json:"allocatedEmployeeId,omitempty"`
}

type DatePatch struct {
	Set   bool
	Value *time.Time
}

// RecordPatch is the parent half of a flat edit.
type RecordPatch struct {
	ParentID                uuid.UUID
	LocationName            *string
	VendorCompany           *string
	Source                  *string
	DeliveryDate            DatePatch
	InstallationDate        DatePatch
	DeadStockRegistryNumber *string
	DeadStockPageNumber     *string
	AllocatedEmployee       *models.Allocation
}

func (p RecordPatch) IsEmpty() bool {
	return p.LocationName == nil && p.VendorCompany == nil && p.Source == nil &&
		!p.DeliveryDate.Set && !p.InstallationDate.Set &&
		p.DeadStockRegistryNumber == nil && p.DeadStockPageNumber == nil &&
		p.AllocatedEmployee == nil
}

func (p RecordPatch) ApplyTo(rec *models.HardwareRecord) {
	if p.LocationName != nil {
		rec.LocationName = *p.LocationName
	}
	if p.VendorCompany != nil {
		rec.VendorCompany = *p.VendorCompany
	}
	if p.Source != nil {
		rec.Source = *p.Source
	}
	if p.DeliveryDate.Set {
		rec.DeliveryDate = p.DeliveryDate.Value
	}
	if p.InstallationDate.Set {
		rec.InstallationDate = p.InstallationDate.Value
	}
	if p.DeadStockRegistryNumber != nil {
		rec.DeadStockRegistryNumber = *p.DeadStockRegistryNumber
	}
	if p.DeadStockPageNumber != nil {
		rec.DeadStockPageNumber = *p.DeadStockPageNumber
	}
	if p.AllocatedEmployee != nil {
		rec.AllocatedEmployee = *p.AllocatedEmployee
	}
}

// ItemPatch is the item half of a flat edit.
type ItemPatch struct {
	ItemID       uuid.UUID
	ItemName     *string
	SerialNumber *string
	Manufacturer *string
}

func (p ItemPatch) IsEmpty() bool {
	return p.ItemName == nil && p.SerialNumber == nil && p.Manufacturer == nil
}

func (p ItemPatch) ApplyTo(item *models.AssetItem) {
	if p.ItemName != nil {
		item.ItemName = *p.ItemName
	}
	if p.SerialNumber != nil {
		item.SerialNumber = *p.SerialNumber
	}
	if p.Manufacturer != nil {
		item.Manufacturer = *p.Manufacturer
	}
}

// RecordFilter narrows repository reads. An empty location matches all.
type RecordFilter struct {
	LocationName string
}

// SerialOwner locates the item currently holding a serial number.
type SerialOwner struct {
	Serial   string    `db:"serial_number"`
	ParentID uuid.UUID `db:"record_id"`
	ItemID   uuid.UUID `db:"id"`
}

type ListScope struct {
	Identity       models.Identity
	LocationFilter string
	SearchText     string
	Limit          int
	Offset         int
}

type CreateResult struct {
	Record   models.HardwareRecord `json:"record"`
	Warnings []string              `json:"warnings,omitempty"`
}

type UpdateResult struct {
	Record   models.HardwareRecord `json:"record"`
	Row      FlatRow               `json:"row"`
	Warnings []string              `json:"warnings,omitempty"`
}

type DeleteOutcome string

const (
	ItemRemoved   DeleteOutcome = "item_removed"
	RecordRemoved DeleteOutcome = "record_removed"
)
