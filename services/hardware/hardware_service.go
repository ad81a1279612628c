package hardwareservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"inventory/models"
	"inventory/providers"
)

// UserDirectory resolves allocation names to registered users.
type UserDirectory interface {
	FindUsersByName(ctx context.Context, name string) ([]models.User, error)
}

type HardwareService interface {
	CreateHardware(ctx context.Context, req CreateHardwareReq, creator models.Identity) (CreateResult, error)
	UpdateHardwareItem(ctx context.Context, identity models.Identity, itemID uuid.UUID, req UpdateItemReq) (UpdateResult, error)
	DeleteHardwareItem(ctx context.Context, identity models.Identity, itemID uuid.UUID, parentID *uuid.UUID) (DeleteOutcome, error)
	ListHardware(ctx context.Context, scope ListScope) ([]FlatRow, error)
	ImportRows(ctx context.Context, rows []map[string]string, creator models.Identity) (ImportReport, error)
}

type hardwareService struct {
	repo     HardwareRepository
	users    UserDirectory
	cache    providers.RedisProvider
	cacheTTL time.Duration
	logger   providers.ZapLoggerProvider
	policy   ValidationPolicy
}

// NewHardwareService wires the reconciler. users and cache may be nil: without
// a directory allocations stay as typed, without a cache every list hits the
// store.
func NewHardwareService(repo HardwareRepository, users UserDirectory, cache providers.RedisProvider, cacheTTL time.Duration, logger providers.ZapLoggerProvider, policy ValidationPolicy) HardwareService {
	return &hardwareService{
		repo:     repo,
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		policy:   policy,
	}
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (s *hardwareService) CreateHardware(ctx context.Context, req CreateHardwareReq, creator models.Identity) (result CreateResult, err error) {
	defer func() { observeMutation("create", err) }()
	logger := s.logger.GetLogger()

	rec := UnflattenCreate(req, creator.UserID)
	if rec.LocationName == "" && !creator.IsAdmin() {
		rec.LocationName = strings.TrimSpace(creator.Location)
	}

	if err = Validate(rec, s.policy); err != nil {
		logger.Warn("hardware record rejected", zap.Error(err))
		return result, err
	}
	if err = checkLocationScope(creator, rec.LocationName); err != nil {
		logger.Warn("hardware record rejected", zap.String("location", rec.LocationName), zap.Error(err))
		return result, err
	}
	if err = s.checkSerialsFree(ctx, rec.Serials(), uuid.Nil); err != nil {
		logger.Warn("hardware record rejected", zap.Error(err))
		return result, err
	}

	var warnings []string
	rec.AllocatedEmployee, warnings = s.resolveAllocation(ctx, rec.AllocatedEmployee)

	if err = s.repo.Insert(ctx, rec); err != nil {
		logger.Error("failed to insert hardware record", zap.String("record_id", rec.ID.String()), zap.Error(err))
		return result, persistenceErr("insert hardware record", err)
	}
	s.invalidate(ctx, rec.LocationName)

	logger.Info("hardware record created",
		zap.String("record_id", rec.ID.String()),
		zap.String("location", rec.LocationName),
		zap.Int("items", len(rec.Items)))
	return CreateResult{Record: rec, Warnings: warnings}, nil
}

func (s *hardwareService) UpdateHardwareItem(ctx context.Context, identity models.Identity, itemID uuid.UUID, req UpdateItemReq) (result UpdateResult, err error) {
	defer func() { observeMutation("update", err) }()
	logger := s.logger.GetLogger()

	current, err := s.locate(ctx, identity, itemID, req.ParentID)
	if err != nil {
		return result, err
	}

	recordPatch, itemPatch := UnflattenUpdate(itemID, current.ID, req)

	var warnings []string
	if alloc := recordPatch.AllocatedEmployee; alloc != nil {
		if alloc.Equal(current.AllocatedEmployee) {
			recordPatch.AllocatedEmployee = nil
		} else {
			resolved, w := s.resolveAllocation(ctx, *alloc)
			recordPatch.AllocatedEmployee = &resolved
			warnings = w
		}
	}

	idx := current.ItemIndex(itemID)
	patched := current.Clone()
	recordPatch.ApplyTo(&patched)
	itemPatch.ApplyTo(&patched.Items[idx])

	if err = Validate(patched, s.policy); err != nil {
		logger.Warn("hardware update rejected", zap.String("item_id", itemID.String()), zap.Error(err))
		return result, err
	}
	if err = checkLocationScope(identity, patched.LocationName); err != nil {
		logger.Warn("hardware update rejected", zap.String("item_id", itemID.String()), zap.Error(err))
		return result, err
	}
	if newSerial := patched.Items[idx].SerialNumber; newSerial != current.Items[idx].SerialNumber {
		if err = s.checkSerialsFree(ctx, []string{newSerial}, itemID); err != nil {
			logger.Warn("hardware update rejected", zap.String("item_id", itemID.String()), zap.Error(err))
			return result, err
		}
	}

	updated, err := s.repo.UpdateItem(ctx, recordPatch, itemPatch)
	if err != nil {
		logger.Error("failed to update hardware item", zap.String("item_id", itemID.String()), zap.Error(err))
		return result, persistenceErr("update hardware item", err)
	}
	s.invalidate(ctx, current.LocationName, updated.LocationName)

	pos := updated.ItemIndex(itemID)
	if pos < 0 {
		err = &NotFoundError{Identity: itemID.String()}
		return result, err
	}

	logger.Info("hardware item updated", zap.String("item_id", itemID.String()), zap.String("record_id", updated.ID.String()))
	return UpdateResult{Record: updated, Row: NewFlatRow(updated, updated.Items[pos]), Warnings: warnings}, nil
}

func (s *hardwareService) DeleteHardwareItem(ctx context.Context, identity models.Identity, itemID uuid.UUID, parentID *uuid.UUID) (outcome DeleteOutcome, err error) {
	defer func() { observeMutation("delete", err) }()
	logger := s.logger.GetLogger()

	current, err := s.locate(ctx, identity, itemID, parentID)
	if err != nil {
		return "", err
	}

	remaining, err := s.repo.RemoveItem(ctx, current.ID, itemID)
	if err != nil {
		logger.Error("failed to remove hardware item", zap.String("item_id", itemID.String()), zap.Error(err))
		return "", persistenceErr("remove hardware item", err)
	}
	s.invalidate(ctx, current.LocationName)

	if remaining > 0 {
		logger.Info("hardware item removed", zap.String("item_id", itemID.String()), zap.Int("remaining", remaining))
		return ItemRemoved, nil
	}
	logger.Info("hardware record removed with its last item", zap.String("record_id", current.ID.String()))
	return RecordRemoved, nil
}

func (s *hardwareService) ListHardware(ctx context.Context, scope ListScope) ([]FlatRow, error) {
	location := strings.TrimSpace(scope.LocationFilter)
	if !scope.Identity.IsAdmin() {
		location = strings.TrimSpace(scope.Identity.Location)
		if location == "" {
			return nil, ErrNoLocation
		}
	}

	rows, err := s.cachedRows(ctx, location)
	if err != nil {
		return nil, err
	}
	return paginate(searchRows(rows, scope.SearchText), scope.Limit, scope.Offset), nil
}

// locate finds the record holding itemID and applies the optional parent and
// location scope checks. Any mismatch reads as not found.
func (s *hardwareService) locate(ctx context.Context, identity models.Identity, itemID uuid.UUID, parentID *uuid.UUID) (models.HardwareRecord, error) {
	current, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil {
		return models.HardwareRecord{}, persistenceErr("look up hardware item", err)
	}
	if parentID != nil && *parentID != current.ID {
		return models.HardwareRecord{}, &NotFoundError{Identity: itemID.String()}
	}
	if !identity.IsAdmin() && !strings.EqualFold(current.LocationName, strings.TrimSpace(identity.Location)) {
		return models.HardwareRecord{}, &NotFoundError{Identity: itemID.String()}
	}
	if current.ItemIndex(itemID) < 0 {
		return models.HardwareRecord{}, &NotFoundError{Identity: itemID.String()}
	}
	return current, nil
}

// checkLocationScope keeps regional users writing inside their own court.
func checkLocationScope(identity models.Identity, location string) error {
	if identity.IsAdmin() {
		return nil
	}
	own := strings.TrimSpace(identity.Location)
	if own == "" {
		return ErrNoLocation
	}
	if !strings.EqualFold(strings.TrimSpace(location), own) {
		return &ValidationError{MissingFields: []string{"locationName"}}
	}
	return nil
}

// checkSerialsFree fails on the first serial held by an item other than
// except.
func (s *hardwareService) checkSerialsFree(ctx context.Context, serials []string, except uuid.UUID) error {
	owners, err := s.repo.FindSerialOwners(ctx, serials)
	if err != nil {
		return persistenceErr("look up serial numbers", err)
	}
	held := make(map[string]SerialOwner, len(owners))
	for _, owner := range owners {
		held[owner.Serial] = owner
	}
	for _, serial := range serials {
		if owner, ok := held[serial]; ok && owner.ItemID != except {
			return &DuplicateSerialError{Serial: serial}
		}
	}
	return nil
}

func (s *hardwareService) resolveAllocation(ctx context.Context, alloc models.Allocation) (models.Allocation, []string) {
	if alloc.Kind != models.AllocationByName || s.users == nil {
		return alloc, nil
	}

	matches, err := s.users.FindUsersByName(ctx, alloc.Name)
	if err != nil {
		s.logger.GetLogger().Warn("allocation lookup failed", zap.String("name", alloc.Name), zap.Error(err))
		return alloc, []string{"allocation lookup failed, kept as name: " + alloc.Name}
	}
	if len(matches) == 1 {
		return models.AllocatedToUser(matches[0].ID, matches[0].FullName), nil
	}
	warning := &AmbiguousAllocationError{Name: alloc.Name, Matches: len(matches)}
	return alloc, []string{warning.Error()}
}

func (s *hardwareService) cachedRows(ctx context.Context, location string) ([]FlatRow, error) {
	logger := s.logger.GetLogger()
	key := cacheKey(location)

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var rows []FlatRow
			if jsonErr := json.UnmarshalFromString(raw, &rows); jsonErr == nil {
				listCache.WithLabelValues("hit").Inc()
				return rows, nil
			}
			logger.Warn("discarding unreadable hardware cache entry", zap.String("key", key))
		case !errors.Is(err, redis.Nil):
			logger.Warn("hardware cache read failed", zap.String("key", key), zap.Error(err))
		}
		listCache.WithLabelValues("miss").Inc()
	}

	recs, err := s.repo.Find(ctx, RecordFilter{LocationName: location})
	if err != nil {
		logger.Error("failed to list hardware records", zap.String("location", location), zap.Error(err))
		return nil, persistenceErr("list hardware records", err)
	}
	rows := FlattenAll(recs)

	if s.cache != nil {
		if raw, err := json.MarshalToString(rows); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
				logger.Warn("hardware cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return rows, nil
}

func (s *hardwareService) invalidate(ctx context.Context, locations ...string) {
	if s.cache == nil {
		return
	}
	keys := []string{cacheKey("")}
	for _, location := range locations {
		if strings.TrimSpace(location) != "" {
			keys = append(keys, cacheKey(location))
		}
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.logger.GetLogger().Warn("hardware cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func cacheKey(location string) string {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		location = "all"
	}
	return "hardware:flat:" + location
}

func searchRows(rows []FlatRow, text string) []FlatRow {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return rows
	}
	filtered := make([]FlatRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.ItemName), text) ||
			strings.Contains(strings.ToLower(row.SerialNumber), text) ||
			strings.Contains(strings.ToLower(row.Manufacturer), text) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func paginate(rows []FlatRow, limit, offset int) []FlatRow {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []FlatRow{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
