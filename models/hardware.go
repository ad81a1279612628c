package models

import (
	"time"

	"github.com/google/uuid"
)

// DeadStockPlaceholder is stored when no dead stock ledger reference is known.
const DeadStockPlaceholder = "N/A"

type AllocationKind string

const (
	AllocationUnassigned AllocationKind = "unassigned"
	AllocationByName     AllocationKind = "by_name"
	AllocationByIdentity AllocationKind = "by_identity"
)

// Allocation records who a deployment is allocated to. A by_identity
// allocation keeps the resolved user's name for display.
type Allocation struct {
	Kind   AllocationKind `json:"kind"`
	Name   string         `json:"name,omitempty"`
	UserID *uuid.UUID     `json:"userId,omitempty"`
}

func Unassigned() Allocation {
	return Allocation{Kind: AllocationUnassigned}
}

func AllocatedByName(name string) Allocation {
	if name == "" {
		return Unassigned()
	}
	return Allocation{Kind: AllocationByName, Name: name}
}

func AllocatedToUser(userID uuid.UUID, name string) Allocation {
	id := userID
	return Allocation{Kind: AllocationByIdentity, Name: name, UserID: &id}
}

// Display returns the value shown in listings and exports.
func (a Allocation) Display() string {
	switch a.Kind {
	case AllocationByIdentity:
		if a.Name != "" {
			return a.Name
		}
		if a.UserID != nil {
			return a.UserID.String()
		}
	case AllocationByName:
		return a.Name
	}
	return ""
}

func (a Allocation) Equal(other Allocation) bool {
	if a.Kind != other.Kind || a.Name != other.Name {
		return false
	}
	if a.UserID == nil || other.UserID == nil {
		return a.UserID == nil && other.UserID == nil
	}
	return *a.UserID == *other.UserID
}

// HardwareRecord is one delivery/deployment batch at a court location.
type HardwareRecord struct {
	ID                      uuid.UUID   `json:"id"`
	LocationName            string      `json:"locationName"`
	VendorCompany           string      `json:"vendorCompany"`
	Source                  string      `json:"source"`
	DeliveryDate            *time.Time  `json:"deliveryDate"`
	InstallationDate        *time.Time  `json:"installationDate"`
	DeadStockRegistryNumber string      `json:"deadStockRegistryNumber"`
	DeadStockPageNumber     string      `json:"deadStockPageNumber"`
	AllocatedEmployee       Allocation  `json:"allocatedEmployee"`
	CreatorUserRef          uuid.UUID   `json:"creatorUserRef"`
	CreatedAt               time.Time   `json:"createdAt"`
	UpdatedAt               time.Time   `json:"updatedAt"`
	Items                   []AssetItem `json:"items"`
}

// AssetItem is one physical asset embedded in a HardwareRecord.
type AssetItem struct {
	ID           uuid.UUID `json:"id"`
	ItemName     string    `json:"itemName"`
	SerialNumber string    `json:"serialNumber"`
	Manufacturer string    `json:"manufacturer"`
}

// ItemIndex returns the position of the item with the given id, or -1.
func (r *HardwareRecord) ItemIndex(itemID uuid.UUID) int {
	for i := range r.Items {
		if r.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func (r *HardwareRecord) Serials() []string {
	serials := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		serials = append(serials, item.SerialNumber)
	}
	return serials
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (r HardwareRecord) Clone() HardwareRecord {
	out := r
	out.Items = append([]AssetItem(nil), r.Items...)
	if r.DeliveryDate != nil {
		d := *r.DeliveryDate
		out.DeliveryDate = &d
	}
	if r.InstallationDate != nil {
		d := *r.InstallationDate
		out.InstallationDate = &d
	}
	if r.AllocatedEmployee.UserID != nil {
		id := *r.AllocatedEmployee.UserID
		out.AllocatedEmployee.UserID = &id
	}
	return out
}
