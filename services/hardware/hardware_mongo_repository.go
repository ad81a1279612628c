package hardwareservice

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory/models"
)

// HardwareCollection is the collection holding hardware records with their
// items embedded.
const HardwareCollection = "hardware"

type MongoHardwareRepository struct {
	Coll *mongo.Collection
}

func NewMongoHardwareRepository(coll *mongo.Collection) *MongoHardwareRepository {
	return &MongoHardwareRepository{Coll: coll}
}

type itemDoc struct {
	ID           string `bson:"_id"`
	ItemName     string `bson:"itemName"`
	SerialNumber string `bson:"serialNumber"`
	Manufacturer string `bson:"manufacturer"`
}

type hardwareDoc struct {
	ID                      string     `bson:"_id"`
	LocationName            string     `bson:"locationName"`
	VendorCompany           string     `bson:"vendorCompany"`
	Source                  string     `bson:"source"`
	DeliveryDate            *time.Time `bson:"deliveryDate"`
	InstallationDate        *time.Time `bson:"installationDate"`
	DeadStockRegistryNumber string     `bson:"deadStockRegistryNumber"`
	DeadStockPageNumber     string     `bson:"deadStockPageNumber"`
	AllocationKind          string     `bson:"allocationKind"`
	AllocatedEmployee       string     `bson:"allocatedEmployee"`
	AllocatedEmployeeID     string     `bson:"allocatedEmployeeId,omitempty"`
	User                    string     `bson:"user"`
	CreatedAt               time.Time  `bson:"createdAt"`
	UpdatedAt               time.Time  `bson:"updatedAt"`
	Items                   []itemDoc  `bson:"items"`
}

// EnsureIndexes creates the unique multikey index on item serial numbers
// plus the lookup indexes used by the repository.
func (r *MongoHardwareRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "items.serialNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("items_serial_unique"),
		},
		{Keys: bson.D{{Key: "items._id", Value: 1}}},
		{Keys: bson.D{{Key: "locationName", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create hardware indexes: %w", err)
	}
	return nil
}

func (r *MongoHardwareRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) (models.HardwareRecord, error) {
	var doc hardwareDoc
	err := r.Coll.FindOne(ctx, bson.M{"items._id": itemID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.HardwareRecord{}, &NotFoundError{Identity: itemID.String()}
		}
		return models.HardwareRecord{}, fmt.Errorf("failed to look up hardware item: %w", err)
	}
	return doc.toModel()
}

func (r *MongoHardwareRepository) Find(ctx context.Context, filter RecordFilter) ([]models.HardwareRecord, error) {
	query := bson.M{}
	if location := strings.TrimSpace(filter.LocationName); location != "" {
		query["locationName"] = bson.M{"$regex": "^" + regexp.QuoteMeta(location) + "$", "$options": "i"}
	}

	cursor, err := r.Coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hardware records: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []hardwareDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode hardware records: %w", err)
	}

	recs := make([]models.HardwareRecord, 0, len(docs))
	for _, doc := range docs {
		rec, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *MongoHardwareRepository) FindSerialOwners(ctx context.Context, serials []string) ([]SerialOwner, error) {
	owners := make([]SerialOwner, 0)
	if len(serials) == 0 {
		return owners, nil
	}

	wanted := make(map[string]struct{}, len(serials))
	for _, s := range serials {
		wanted[s] = struct{}{}
	}

	cursor, err := r.Coll.Find(ctx, bson.M{"items.serialNumber": bson.M{"$in": serials}})
	if err != nil {
		return nil, fmt.Errorf("failed to look up serial numbers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []hardwareDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode serial owners: %w", err)
	}

	for _, doc := range docs {
		parentID, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid hardware record id %q: %w", doc.ID, err)
		}
		for _, item := range doc.Items {
			if _, ok := wanted[item.SerialNumber]; !ok {
				continue
			}
			itemID, err := uuid.Parse(item.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid hardware item id %q: %w", item.ID, err)
			}
			owners = append(owners, SerialOwner{Serial: item.SerialNumber, ParentID: parentID, ItemID: itemID})
		}
	}
	return owners, nil
}

func (r *MongoHardwareRepository) Insert(ctx context.Context, rec models.HardwareRecord) error {
	if _, err := r.Coll.InsertOne(ctx, docFromModel(rec)); err != nil {
		return fmt.Errorf("failed to insert hardware record: %w", translateMongoErr(err))
	}
	return nil
}

// UpdateItem applies both patches with a single positional update, so the
// parent metadata and the item change land together or not at all.
func (r *MongoHardwareRepository) UpdateItem(ctx context.Context, recordPatch RecordPatch, itemPatch ItemPatch) (models.HardwareRecord, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if itemPatch.ItemName != nil {
		set["items.$.itemName"] = *itemPatch.ItemName
	}
	if itemPatch.SerialNumber != nil {
		set["items.$.serialNumber"] = *itemPatch.SerialNumber
	}
	if itemPatch.Manufacturer != nil {
		set["items.$.manufacturer"] = *itemPatch.Manufacturer
	}
	if recordPatch.LocationName != nil {
		set["locationName"] = *recordPatch.LocationName
	}
	if recordPatch.VendorCompany != nil {
		set["vendorCompany"] = *recordPatch.VendorCompany
	}
	if recordPatch.Source != nil {
		set["source"] = *recordPatch.Source
	}
	if recordPatch.DeliveryDate.Set {
		set["deliveryDate"] = recordPatch.DeliveryDate.Value
	}
	if recordPatch.InstallationDate.Set {
		set["installationDate"] = recordPatch.InstallationDate.Value
	}
	if recordPatch.DeadStockRegistryNumber != nil {
		set["deadStockRegistryNumber"] = *recordPatch.DeadStockRegistryNumber
	}
	if recordPatch.DeadStockPageNumber != nil {
		set["deadStockPageNumber"] = *recordPatch.DeadStockPageNumber
	}
	if alloc := recordPatch.AllocatedEmployee; alloc != nil {
		set["allocationKind"] = string(alloc.Kind)
		set["allocatedEmployee"] = alloc.Name
		set["allocatedEmployeeId"] = allocationUserID(*alloc)
	}

	filter := bson.M{"_id": recordPatch.ParentID.String(), "items._id": itemPatch.ItemID.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc hardwareDoc
	err := r.Coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.HardwareRecord{}, &NotFoundError{Identity: itemPatch.ItemID.String()}
		}
		return models.HardwareRecord{}, fmt.Errorf("failed to update hardware item: %w", translateMongoErr(err))
	}
	return doc.toModel()
}

// RemoveItem drops the whole document when itemID is its only item, so a
// record never survives with an empty item list.
func (r *MongoHardwareRepository) RemoveItem(ctx context.Context, parentID, itemID uuid.UUID) (int, error) {
	filter := bson.M{"_id": parentID.String(), "items._id": itemID.String()}

	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": parentID.String(), "items._id": itemID.String(), "items": bson.M{"$size": 1}})
	if err != nil {
		return 0, fmt.Errorf("failed to remove hardware item: %w", err)
	}
	if res.DeletedCount == 1 {
		return 0, nil
	}

	update := bson.M{
		"$pull": bson.M{"items": bson.M{"_id": itemID.String()}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc hardwareDoc
	err = r.Coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, &NotFoundError{Identity: itemID.String()}
		}
		return 0, fmt.Errorf("failed to remove hardware item: %w", err)
	}
	if len(doc.Items) > 0 {
		return len(doc.Items), nil
	}

	// a concurrent removal emptied the record between the two writes
	if _, err := r.Coll.DeleteOne(ctx, bson.M{"_id": parentID.String(), "items": bson.M{"$size": 0}}); err != nil {
		return 0, fmt.Errorf("failed to delete empty hardware record: %w", err)
	}
	return 0, nil
}

func (r *MongoHardwareRepository) Delete(ctx context.Context, parentID uuid.UUID) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": parentID.String()})
	if err != nil {
		return fmt.Errorf("failed to delete hardware record: %w", err)
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{Identity: parentID.String()}
	}
	return nil
}

// BulkInsert issues one unordered InsertMany and maps write errors back to
// the records they belong to.
func (r *MongoHardwareRepository) BulkInsert(ctx context.Context, recs []models.HardwareRecord) []error {
	errs := make([]error, len(recs))
	if len(recs) == 0 {
		return errs
	}

	docs := make([]interface{}, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, docFromModel(rec))
	}

	_, err := r.Coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		return errs
	}

	var bulkErr mongo.BulkWriteException
	if !errors.As(err, &bulkErr) || len(bulkErr.WriteErrors) == 0 {
		for i := range errs {
			errs[i] = fmt.Errorf("failed to insert hardware record: %w", err)
		}
		return errs
	}

	for _, we := range bulkErr.WriteErrors {
		if we.Index < 0 || we.Index >= len(errs) {
			continue
		}
		if we.Code == 11000 {
			errs[we.Index] = &DuplicateSerialError{Serial: serialFromDupMessage(we.Message)}
			continue
		}
		errs[we.Index] = fmt.Errorf("failed to insert hardware record: %s", we.Message)
	}
	return errs
}

func docFromModel(rec models.HardwareRecord) hardwareDoc {
	items := make([]itemDoc, 0, len(rec.Items))
	for _, item := range rec.Items {
		items = append(items, itemDoc{
			ID:           item.ID.String(),
			ItemName:     item.ItemName,
			SerialNumber: item.SerialNumber,
			Manufacturer: item.Manufacturer,
		})
	}
	return hardwareDoc{
		ID:                      rec.ID.String(),
		LocationName:            rec.LocationName,
		VendorCompany:           rec.VendorCompany,
		Source:                  rec.Source,
		DeliveryDate:            rec.DeliveryDate,
		InstallationDate:        rec.InstallationDate,
		DeadStockRegistryNumber: rec.DeadStockRegistryNumber,
		DeadStockPageNumber:     rec.DeadStockPageNumber,
		AllocationKind:          string(rec.AllocatedEmployee.Kind),
		AllocatedEmployee:       rec.AllocatedEmployee.Name,
		AllocatedEmployeeID:     allocationUserID(rec.AllocatedEmployee),
		User:                    rec.CreatorUserRef.String(),
		CreatedAt:               rec.CreatedAt,
		UpdatedAt:               rec.UpdatedAt,
		Items:                   items,
	}
}

func (d hardwareDoc) toModel() (models.HardwareRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.HardwareRecord{}, fmt.Errorf("invalid hardware record id %q: %w", d.ID, err)
	}
	creator, err := uuid.Parse(d.User)
	if err != nil {
		return models.HardwareRecord{}, fmt.Errorf("invalid creator id %q: %w", d.User, err)
	}

	alloc := models.Allocation{Kind: models.AllocationKind(d.AllocationKind), Name: d.AllocatedEmployee}
	if d.AllocatedEmployeeID != "" {
		if userID, err := uuid.Parse(d.AllocatedEmployeeID); err == nil {
			alloc.UserID = &userID
		}
	}
	if alloc.Kind == "" {
		alloc = models.AllocatedByName(d.AllocatedEmployee)
	}

	items := make([]models.AssetItem, 0, len(d.Items))
	for _, item := range d.Items {
		itemID, err := uuid.Parse(item.ID)
		if err != nil {
			return models.HardwareRecord{}, fmt.Errorf("invalid hardware item id %q: %w", item.ID, err)
		}
		items = append(items, models.AssetItem{
			ID:           itemID,
			ItemName:     item.ItemName,
			SerialNumber: item.SerialNumber,
			Manufacturer: item.Manufacturer,
		})
	}

	return models.HardwareRecord{
		ID:                      id,
		LocationName:            d.LocationName,
		VendorCompany:           d.VendorCompany,
		Source:                  d.Source,
		DeliveryDate:            utcPtr(d.DeliveryDate),
		InstallationDate:        utcPtr(d.InstallationDate),
		DeadStockRegistryNumber: d.DeadStockRegistryNumber,
		DeadStockPageNumber:     d.DeadStockPageNumber,
		AllocatedEmployee:       alloc,
		CreatorUserRef:          creator,
		CreatedAt:               d.CreatedAt.UTC(),
		UpdatedAt:               d.UpdatedAt.UTC(),
		Items:                   items,
	}, nil
}

func allocationUserID(a models.Allocation) string {
	if a.UserID == nil {
		return ""
	}
	return a.UserID.String()
}

var dupKeyPattern = regexp.MustCompile(`items\.serialNumber: "((?:[^"\\]|\\.)*)"`)

func serialFromDupMessage(msg string) string {
	if m := dupKeyPattern.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

func translateMongoErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateSerialError{Serial: serialFromDupMessage(err.Error())}
	}
	return err
}
