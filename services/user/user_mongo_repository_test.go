package userservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"inventory/models"
)

func userBSON(t *testing.T, u models.User) bson.D {
	t.Helper()
	raw, err := bson.Marshal(userDocFromModel(u))
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	created := time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC)
	stored := models.User{
		ID:           uuid.New(),
		FullName:     "Asha Patil",
		DOB:          "1990-05-17",
		MobileNo:     "9876543210",
		Village:      "Nashik",
		Role:         models.UserRole,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	mt.Run("get by mobile", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userBSON(mt.T, stored)))

		got, err := repo.GetUserByMobile(ctx, stored.MobileNo)
		require.NoError(mt, err)
		assert.Equal(mt, stored, got)
	})

	mt.Run("get by unknown mobile", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetUserByMobile(ctx, "0000000000")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("mobile taken", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		taken, err := repo.IsMobileTaken(ctx, stored.MobileNo, uuid.Nil)
		require.NoError(mt, err)
		assert.True(mt, taken)
	})

	mt.Run("create with duplicate mobile", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.CreateUser(ctx, stored)
		assert.ErrorIs(mt, err, ErrMobileTaken)
	})

	mt.Run("delete missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteUserByID(ctx, uuid.New())
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("update missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateUser(ctx, stored)
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})
}
