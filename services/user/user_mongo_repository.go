package userservice

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

const UsersCollection = "users"

type MongoUserRepository struct {
	Coll *mongo.Collection
}

func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{Coll: coll}
}

type userDoc struct {
	ID        string    `bson:"_id"`
	FullName  string    `bson:"fullName"`
	DOB       string    `bson:"dob"`
	MobileNo  string    `bson:"mobileNo"`
	Village   string    `bson:"village"`
	EmailID   string    `bson:"emailId"`
	Role      string    `bson:"role"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mobileNo", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("mobile_unique"),
		},
		{Keys: bson.D{{Key: "fullName", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUsers(ctx context.Context, filter UserFilter) ([]models.User, error) {
	query := bson.M{"role": string(models.UserRole)}
	if text := strings.TrimSpace(filter.SearchText); text != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(text), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"fullName": pattern},
			bson.M{"mobileNo": pattern},
			bson.M{"village": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "fullName", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}
	return r.find(ctx, query, opts)
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID.String()})
}

func (r *MongoUserRepository) GetUserByMobile(ctx context.Context, mobileNo string) (models.User, error) {
	return r.findOne(ctx, bson.M{"mobileNo": mobileNo})
}

func (r *MongoUserRepository) IsMobileTaken(ctx context.Context, mobileNo string, exceptID uuid.UUID) (bool, error) {
	count, err := r.Coll.CountDocuments(ctx, bson.M{"mobileNo": mobileNo, "_id": bson.M{"$ne": exceptID.String()}})
	if err != nil {
		return false, fmt.Errorf("failed to check mobile number: %w", err)
	}
	return count > 0, nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user models.User) error {
	if _, err := r.Coll.InsertOne(ctx, userDocFromModel(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrMobileTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": user.ID.String()}, bson.M{"$set": bson.M{
		"fullName":  user.FullName,
		"dob":       user.DOB,
		"mobileNo":  user.MobileNo,
		"village":   user.Village,
		"emailId":   user.EmailID,
		"password":  user.PasswordHash,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrMobileTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) DeleteUserByID(ctx context.Context, userID uuid.UUID) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": userID.String()})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	pattern := "^" + regexp.QuoteMeta(strings.TrimSpace(name)) + "$"
	return r.find(ctx, bson.M{"fullName": bson.M{"$regex": pattern, "$options": "i"}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var doc userDoc
	if err := r.Coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return doc.toModel()
}

func (r *MongoUserRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.User, error) {
	cursor, err := r.Coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		user, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func userDocFromModel(u models.User) userDoc {
	return userDoc{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		DOB:       u.DOB,
		MobileNo:  u.MobileNo,
		Village:   u.Village,
		EmailID:   u.EmailID,
		Role:      string(u.Role),
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) toModel() (models.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid user id %q: %w", d.ID, err)
	}
	return models.User{
		ID:           id,
		FullName:     d.FullName,
		DOB:          d.DOB,
		MobileNo:     d.MobileNo,
		Village:      d.Village,
		EmailID:      d.EmailID,
		Role:         models.Role(d.Role),
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}, nil
}
