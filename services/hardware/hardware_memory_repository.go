package hardwareservice

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"inventory/models"
)

// MemoryHardwareRepository keeps records in process. Serial uniqueness is
// checked under the write lock.
type MemoryHardwareRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]models.HardwareRecord
	order   []uuid.UUID
	serials map[string]SerialOwner
	items   map[uuid.UUID]uuid.UUID
	now     func() time.Time
}

func NewMemoryHardwareRepository() *MemoryHardwareRepository {
	return &MemoryHardwareRepository{
		records: make(map[uuid.UUID]models.HardwareRecord),
		serials: make(map[string]SerialOwner),
		items:   make(map[uuid.UUID]uuid.UUID),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryHardwareRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) (models.HardwareRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parentID, ok := r.items[itemID]
	if !ok {
		return models.HardwareRecord{}, &NotFoundError{Identity: itemID.String()}
	}
	return r.records[parentID].Clone(), nil
}

func (r *MemoryHardwareRepository) Find(ctx context.Context, filter RecordFilter) ([]models.HardwareRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	location := strings.TrimSpace(filter.LocationName)
	recs := make([]models.HardwareRecord, 0, len(r.order))
	// newest first; insertion order breaks ties
	for i := len(r.order) - 1; i >= 0; i-- {
		rec := r.records[r.order[i]]
		if location != "" && !strings.EqualFold(rec.LocationName, location) {
			continue
		}
		recs = append(recs, rec.Clone())
	}
	slices.SortStableFunc(recs, func(a, b models.HardwareRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return recs, nil
}

func (r *MemoryHardwareRepository) FindSerialOwners(ctx context.Context, serials []string) ([]SerialOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owners := make([]SerialOwner, 0)
	for _, s := range serials {
		if owner, ok := r.serials[s]; ok {
			owners = append(owners, owner)
		}
	}
	return owners, nil
}

func (r *MemoryHardwareRepository) Insert(ctx context.Context, rec models.HardwareRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(rec)
}

func (r *MemoryHardwareRepository) insertLocked(rec models.HardwareRecord) error {
	seen := make(map[string]struct{}, len(rec.Items))
	for _, item := range rec.Items {
		if _, ok := r.serials[item.SerialNumber]; ok {
			return &DuplicateSerialError{Serial: item.SerialNumber}
		}
		if _, ok := seen[item.SerialNumber]; ok {
			return &DuplicateSerialError{Serial: item.SerialNumber}
		}
		seen[item.SerialNumber] = struct{}{}
	}

	stored := rec.Clone()
	r.records[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	for _, item := range stored.Items {
		r.serials[item.SerialNumber] = SerialOwner{Serial: item.SerialNumber, ParentID: stored.ID, ItemID: item.ID}
		r.items[item.ID] = stored.ID
	}
	return nil
}

func (r *MemoryHardwareRepository) UpdateItem(ctx context.Context, recordPatch RecordPatch, itemPatch ItemPatch) (models.HardwareRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notFound := &NotFoundError{Identity: itemPatch.ItemID.String()}
	current, ok := r.records[recordPatch.ParentID]
	if !ok {
		return models.HardwareRecord{}, notFound
	}
	idx := current.ItemIndex(itemPatch.ItemID)
	if idx < 0 {
		return models.HardwareRecord{}, notFound
	}

	next := current.Clone()
	oldSerial := next.Items[idx].SerialNumber
	itemPatch.ApplyTo(&next.Items[idx])
	recordPatch.ApplyTo(&next)
	next.UpdatedAt = r.now()

	newSerial := next.Items[idx].SerialNumber
	if newSerial != oldSerial {
		if owner, taken := r.serials[newSerial]; taken && owner.ItemID != itemPatch.ItemID {
			return models.HardwareRecord{}, &DuplicateSerialError{Serial: newSerial}
		}
		delete(r.serials, oldSerial)
		r.serials[newSerial] = SerialOwner{Serial: newSerial, ParentID: next.ID, ItemID: itemPatch.ItemID}
	}

	r.records[next.ID] = next
	return next.Clone(), nil
}

func (r *MemoryHardwareRepository) RemoveItem(ctx context.Context, parentID, itemID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[parentID]
	if !ok {
		return 0, &NotFoundError{Identity: itemID.String()}
	}
	idx := rec.ItemIndex(itemID)
	if idx < 0 {
		return 0, &NotFoundError{Identity: itemID.String()}
	}

	next := rec.Clone()
	removed := next.Items[idx]
	next.Items = slices.Delete(next.Items, idx, idx+1)
	next.UpdatedAt = r.now()

	delete(r.serials, removed.SerialNumber)
	delete(r.items, removed.ID)
	if len(next.Items) == 0 {
		delete(r.records, parentID)
		return 0, nil
	}
	r.records[parentID] = next
	return len(next.Items), nil
}

func (r *MemoryHardwareRepository) Delete(ctx context.Context, parentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[parentID]
	if !ok {
		return &NotFoundError{Identity: parentID.String()}
	}
	for _, item := range rec.Items {
		delete(r.serials, item.SerialNumber)
		delete(r.items, item.ID)
	}
	delete(r.records, parentID)
	r.order = slices.DeleteFunc(r.order, func(id uuid.UUID) bool { return id == parentID })
	return nil
}

func (r *MemoryHardwareRepository) BulkInsert(ctx context.Context, recs []models.HardwareRecord) []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	errs := make([]error, len(recs))
	for i, rec := range recs {
		errs[i] = r.insertLocked(rec)
	}
	return errs
}
