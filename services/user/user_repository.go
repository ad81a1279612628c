package userservice

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"inventory/models"
	"inventory/providers"
)

type UserRepository interface {
	GetUsers(ctx context.Context, filter UserFilter) ([]models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByMobile(ctx context.Context, mobileNo string) (models.User, error)
	IsMobileTaken(ctx context.Context, mobileNo string, exceptID uuid.UUID) (bool, error)
	CreateUser(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUserByID(ctx context.Context, userID uuid.UUID) error
	FindUsersByName(ctx context.Context, name string) ([]models.User, error)
}

type PostgresUserRepository struct {
	DB     *sqlx.DB
	Logger providers.ZapLoggerProvider
}

func NewUserRepository(db *sqlx.DB, logger providers.ZapLoggerProvider) UserRepository {
	return &PostgresUserRepository{DB: db, Logger: logger}
}

const selectUsers = `SELECT id, full_name, dob, mobile_no, village, email_id, role, password, created_at, updated_at FROM users`

func (r *PostgresUserRepository) GetUsers(ctx context.Context, filter UserFilter) ([]models.User, error) {
	users := []models.User{}
	err := r.DB.SelectContext(ctx, &users, selectUsers+`
		WHERE role = $1
		AND ($2 = '' OR full_name ILIKE '%' || $2 || '%' OR mobile_no ILIKE '%' || $2 || '%' OR village ILIKE '%' || $2 || '%')
		ORDER BY full_name
		LIMIT NULLIF($3, 0) OFFSET $4`,
		string(models.UserRole), strings.TrimSpace(filter.SearchText), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, selectUsers+` WHERE id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByMobile(ctx context.Context, mobileNo string) (models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, selectUsers+` WHERE mobile_no = $1`, mobileNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("failed to fetch user by mobile: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) IsMobileTaken(ctx context.Context, mobileNo string, exceptID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM users WHERE mobile_no = $1 AND id <> $2)
	`, mobileNo, exceptID)
	if err != nil {
		return false, fmt.Errorf("failed to check mobile number: %w", err)
	}
	return exists, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, full_name, dob, mobile_no, village, email_id, role, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.FullName, user.DOB, user.MobileNo, user.Village, user.EmailID, string(user.Role),
		user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrMobileTaken
		}
		r.Logger.GetLogger().Error("failed to insert user", zap.Error(err))
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET full_name = $1, dob = $2, mobile_no = $3, village = $4, email_id = $5, password = $6, updated_at = now()
		WHERE id = $7`,
		user.FullName, user.DOB, user.MobileNo, user.Village, user.EmailID, user.PasswordHash, user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrMobileTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) DeleteUserByID(ctx context.Context, userID uuid.UUID) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	users := []models.User{}
	err := r.DB.SelectContext(ctx, &users, selectUsers+` WHERE lower(full_name) = lower($1)`, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("failed to look up users by name: %w", err)
	}
	return users, nil
}
