package userservice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"inventory/providers"
	"inventory/spreadsheet"
	"inventory/utils"
)

const maxUploadSize = 10 << 20

type UserHandler struct {
	Service        UserService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewUserHandler(service UserService, auth providers.AuthMiddlewareService) *UserHandler {
	return &UserHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *UserHandler) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "please enter both mobile number and date of birth")
		return
	}

	res, err := h.Service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			utils.RespondError(w, http.StatusBadRequest, nil, "invalid credentials")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to login")
		return
	}
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(res)
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	user, err := h.Service.GetMe(r.Context(), identity)
	if err != nil {
		respondUserError(w, err, "failed to fetch user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := UserFilter{SearchText: r.URL.Query().Get("search")}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	users, err := h.Service.ListUsers(r.Context(), filter)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch users")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	user, err := h.Service.CreateUser(r.Context(), req)
	if err != nil {
		respondUserError(w, err, "failed to create user")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"message": "user created successfully", "user": user})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}

	var req UpdateUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), userID, req)
	if err != nil {
		respondUserError(w, err, "failed to update user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "user updated successfully", "user": user})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}
	if err := h.Service.DeleteUser(r.Context(), userID); err != nil {
		respondUserError(w, err, "failed to delete user")
		return
	}
	w.WriteHeader(http.StatusOK)
	jsoniter.NewEncoder(w).Encode(map[string]string{"message": "user deleted successfully"})
}

func (h *UserHandler) ImportUsers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "no file uploaded")
		return
	}
	defer file.Close()

	rows, err := spreadsheet.ReadRows(file)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "failed to read spreadsheet")
		return
	}

	report, err := h.Service.ImportUsers(r.Context(), rows)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "server error during user import")
		return
	}
	utils.RespondJSON(w, http.StatusOK, report)
}

func respondUserError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		utils.RespondError(w, http.StatusNotFound, nil, err.Error())
	case errors.Is(err, ErrMobileTaken):
		utils.RespondError(w, http.StatusConflict, nil, err.Error())
	case errors.Is(err, ErrInvalidInput):
		utils.RespondError(w, http.StatusBadRequest, nil, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err, fallback)
	}
}
