package userservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"inventory/models"
	"inventory/providers"
	hardwareservice "inventory/services/hardware"
	"inventory/utils"
)

type UserService interface {
	Login(ctx context.Context, req LoginReq) (LoginRes, error)
	GetMe(ctx context.Context, identity models.Identity) (models.User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]models.User, error)
	CreateUser(ctx context.Context, req CreateUserReq) (models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserReq) (models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ImportUsers(ctx context.Context, rows []map[string]string) (ImportUsersReport, error)
}

// AdminCredentials are the configured operator login. Empty values disable
// admin login.
type AdminCredentials struct {
	Username string
	Password string
}

// ID is stable across restarts so tokens and created-by references survive.
func (a AdminCredentials) ID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("inventory-admin:"+a.Username))
}

type userServiceStruct struct {
	repo   UserRepository
	tokens providers.TokenProvider
	logger providers.ZapLoggerProvider
	admin  AdminCredentials
}

func NewUserService(repo UserRepository, tokens providers.TokenProvider, logger providers.ZapLoggerProvider, admin AdminCredentials) UserService {
	return &userServiceStruct{repo: repo, tokens: tokens, logger: logger, admin: admin}
}

func (s *userServiceStruct) Login(ctx context.Context, req LoginReq) (LoginRes, error) {
	logger := s.logger.GetLogger()
	mobileNo := strings.TrimSpace(req.MobileNo)
	dob := strings.TrimSpace(req.DOB)

	if s.admin.Username != "" && s.admin.Password != "" && mobileNo == s.admin.Username && dob == s.admin.Password {
		token, err := s.tokens.GenerateJWT(models.Identity{UserID: s.admin.ID(), Role: models.AdminRole})
		if err != nil {
			logger.Error("failed to generate admin token", zap.Error(err))
			return LoginRes{}, err
		}
		logger.Info("admin logged in")
		return LoginRes{Token: token, Role: string(models.AdminRole)}, nil
	}

	user, err := s.repo.GetUserByMobile(ctx, mobileNo)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			logger.Warn("login attempt for unknown mobile number")
			return LoginRes{}, ErrInvalidCredentials
		}
		return LoginRes{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dob)); err != nil {
		logger.Warn("login attempt with wrong date of birth", zap.String("user_id", user.ID.String()))
		return LoginRes{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(models.Identity{UserID: user.ID, Role: user.Role, Location: user.Village})
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		return LoginRes{}, err
	}
	logger.Info("user logged in", zap.String("user_id", user.ID.String()))
	return LoginRes{Token: token, Role: string(user.Role)}, nil
}

func (s *userServiceStruct) GetMe(ctx context.Context, identity models.Identity) (models.User, error) {
	if identity.IsAdmin() && identity.UserID == s.admin.ID() {
		return models.User{ID: identity.UserID, FullName: "Administrator", Role: models.AdminRole}, nil
	}
	return s.repo.GetUserByID(ctx, identity.UserID)
}

func (s *userServiceStruct) ListUsers(ctx context.Context, filter UserFilter) ([]models.User, error) {
	return s.repo.GetUsers(ctx, filter)
}

func (s *userServiceStruct) CreateUser(ctx context.Context, req CreateUserReq) (models.User, error) {
	logger := s.logger.GetLogger()

	dob, err := utils.ParseDOB(req.DOB)
	if err != nil {
		return models.User{}, errors.Wrap(ErrInvalidInput, err.Error())
	}
	mobileNo := strings.TrimSpace(req.MobileNo)
	if !utils.IsMobileValid(mobileNo) {
		return models.User{}, errors.Wrap(ErrInvalidInput, "invalid mobile number")
	}

	taken, err := s.repo.IsMobileTaken(ctx, mobileNo, uuid.Nil)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrMobileTaken
	}

	hash, err := hashDOB(dob)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(req.FullName),
		DOB:          dob.Format("2006-01-02"),
		MobileNo:     mobileNo,
		Village:      strings.TrimSpace(req.Village),
		EmailID:      strings.TrimSpace(req.EmailID),
		Role:         models.UserRole,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.Error("failed to create user", zap.Error(err))
		return models.User{}, err
	}
	logger.Info("user created", zap.String("user_id", user.ID.String()), zap.String("village", user.Village))
	return user, nil
}

func (s *userServiceStruct) UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserReq) (models.User, error) {
	logger := s.logger.GetLogger()

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if v := nonEmpty(req.FullName); v != "" {
		user.FullName = v
	}
	if v := nonEmpty(req.Village); v != "" {
		user.Village = v
	}
	if v := nonEmpty(req.EmailID); v != "" {
		user.EmailID = v
	}
	if v := nonEmpty(req.MobileNo); v != "" && v != user.MobileNo {
		if !utils.IsMobileValid(v) {
			return models.User{}, errors.Wrap(ErrInvalidInput, "invalid mobile number")
		}
		taken, err := s.repo.IsMobileTaken(ctx, v, user.ID)
		if err != nil {
			return models.User{}, err
		}
		if taken {
			return models.User{}, ErrMobileTaken
		}
		user.MobileNo = v
	}
	if v := nonEmpty(req.DOB); v != "" {
		dob, err := utils.ParseDOB(v)
		if err != nil {
			return models.User{}, errors.Wrap(ErrInvalidInput, err.Error())
		}
		if formatted := dob.Format("2006-01-02"); formatted != user.DOB {
			hash, err := hashDOB(dob)
			if err != nil {
				return models.User{}, err
			}
			user.DOB = formatted
			user.PasswordHash = hash
		}
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		logger.Error("failed to update user", zap.String("user_id", userID.String()), zap.Error(err))
		return models.User{}, err
	}
	return user, nil
}

func (s *userServiceStruct) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.DeleteUserByID(ctx, userID); err != nil {
		return err
	}
	s.logger.GetLogger().Info("user deleted", zap.String("user_id", userID.String()))
	return nil
}

// ImportUsers creates one user per complete row. Rows missing a required
// column, with an unreadable date or an existing mobile number are skipped.
func (s *userServiceStruct) ImportUsers(ctx context.Context, rows []map[string]string) (ImportUsersReport, error) {
	report := ImportUsersReport{Skipped: []SkippedUserRow{}}

	for i, raw := range rows {
		rowNum := i + 2
		row := userRow(raw)
		if row.FullName == "" || row.DOB == "" || row.MobileNo == "" || row.Village == "" {
			report.Skipped = append(report.Skipped, SkippedUserRow{Row: rowNum, Reason: "missing required column"})
			continue
		}

		_, err := s.CreateUser(ctx, row)
		switch {
		case err == nil:
			report.SavedCount++
		case errors.Is(err, ErrMobileTaken):
			report.Skipped = append(report.Skipped, SkippedUserRow{Row: rowNum, Reason: err.Error()})
		default:
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			report.Skipped = append(report.Skipped, SkippedUserRow{Row: rowNum, Reason: err.Error()})
		}
	}

	s.logger.GetLogger().Info("user import finished",
		zap.Int("saved", report.SavedCount),
		zap.Int("skipped", len(report.Skipped)))
	return report, nil
}

var userColumns = map[string]string{
	"fullname":        "fullName",
	"name":            "fullName",
	"dob(yyyy-mm-dd)": "dob",
	"dob":             "dob",
	"dateofbirth":     "dob",
	"mobileno":        "mobileNo",
	"mobilenumber":    "mobileNo",
	"mobile":          "mobileNo",
	"village":         "village",
	"courtcity":       "village",
	"emailid":         "emailId",
	"email":           "emailId",
}

func userRow(raw map[string]string) CreateUserReq {
	fields := make(map[string]string, len(raw))
	for header, value := range raw {
		key := strings.ToLower(strings.Join(strings.Fields(header), ""))
		if field, ok := userColumns[key]; ok && strings.TrimSpace(value) != "" {
			fields[field] = strings.TrimSpace(value)
		}
	}
	// date cells arrive as spreadsheet day numbers
	if dob := fields["dob"]; dob != "" {
		if t := hardwareservice.ParseDate(dob); t != nil {
			fields["dob"] = t.Format("2006-01-02")
		}
	}
	return CreateUserReq{
		FullName: fields["fullName"],
		DOB:      fields["dob"],
		MobileNo: fields["mobileNo"],
		Village:  fields["village"],
		EmailID:  fields["emailId"],
	}
}

func hashDOB(dob time.Time) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dob.Format("2006-01-02")), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

func nonEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
