package hardwareservice

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"inventory/models"
	"inventory/providers"
	"inventory/spreadsheet"
	"inventory/utils"
)

const (
	maxUploadSize = 10 << 20
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type HardwareHandler struct {
	Service        HardwareService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewHardwareHandler(service HardwareService, auth providers.AuthMiddlewareService) *HardwareHandler {
	return &HardwareHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *HardwareHandler) ListHardware(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	scope := ListScope{
		Identity:       identity,
		LocationFilter: r.URL.Query().Get("location"),
		SearchText:     r.URL.Query().Get("search"),
	}
	scope.Limit, scope.Offset = utils.GetPageLimitAndOffset(r)

	rows, err := h.Service.ListHardware(r.Context(), scope)
	if err != nil {
		respondServiceError(w, err, "failed to fetch hardware")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"hardware": rows, "count": len(rows)})
}

func (h *HardwareHandler) CreateHardware(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req CreateHardwareReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	result, err := h.Service.CreateHardware(r.Context(), req, identity)
	if err != nil {
		respondServiceError(w, err, "failed to create hardware record")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "hardware record created successfully",
		"record":   result.Record,
		"rows":     FlattenAll([]models.HardwareRecord{result.Record}),
		"warnings": result.Warnings,
	})
}

func (h *HardwareHandler) UpdateHardwareItem(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid item id")
		return
	}

	var req UpdateItemReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	result, err := h.Service.UpdateHardwareItem(r.Context(), identity, itemID, req)
	if err != nil {
		respondServiceError(w, err, "failed to update hardware item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "hardware item updated successfully",
		"row":      result.Row,
		"warnings": result.Warnings,
	})
}

func (h *HardwareHandler) DeleteHardwareItem(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid item id")
		return
	}

	var parentID *uuid.UUID
	if raw := chi.URLParam(r, "parentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err, "invalid parent id")
			return
		}
		parentID = &id
	}

	outcome, err := h.Service.DeleteHardwareItem(r.Context(), identity, itemID, parentID)
	if err != nil {
		respondServiceError(w, err, "failed to delete hardware item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "hardware item deleted successfully",
		"outcome": outcome,
	})
}

// BatchImport accepts the rows of an already parsed sheet as a JSON array of
// objects keyed by column header.
func (h *HardwareHandler) BatchImport(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var payload []map[string]interface{}
	if err := utils.ParseJSONBody(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if len(payload) == 0 {
		utils.RespondError(w, http.StatusBadRequest, nil, "import payload must be a non-empty array of rows")
		return
	}

	rows := make([]map[string]string, 0, len(payload))
	for _, raw := range payload {
		rows = append(rows, stringifyRow(raw))
	}
	h.runImport(w, r, rows, identity)
}

func (h *HardwareHandler) ImportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

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
	h.runImport(w, r, rows, identity)
}

func (h *HardwareHandler) ExportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	rows, err := h.Service.ListHardware(r.Context(), ListScope{
		Identity:       identity,
		LocationFilter: r.URL.Query().Get("location"),
		SearchText:     r.URL.Query().Get("search"),
	})
	if err != nil {
		respondServiceError(w, err, "failed to fetch hardware")
		return
	}

	values := make([][]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, ExportValues(row))
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteSheet(&buf, "Hardware", ExportColumns, values); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to build spreadsheet")
		return
	}
	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="hardware.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *HardwareHandler) runImport(w http.ResponseWriter, r *http.Request, rows []map[string]string, identity models.Identity) {
	report, err := h.Service.ImportRows(r.Context(), rows, identity)
	if err != nil {
		respondServiceError(w, err, "failed to import hardware")
		return
	}
	utils.RespondJSON(w, http.StatusOK, report)
}

func stringifyRow(raw map[string]interface{}) map[string]string {
	row := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			row[key] = ""
		case string:
			row[key] = v
		case float64:
			row[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			row[key] = strconv.FormatBool(v)
		default:
			row[key] = ""
		}
	}
	return row
}

// respondServiceError maps domain errors to status codes: validation 400,
// duplicate serial 409, not found 404 and everything else 500.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		validationErr *ValidationError
		dupErr        *DuplicateSerialError
		notFoundErr   *NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         validationErr.Error(),
			"missingFields": validationErr.MissingFields,
		})
	case errors.As(err, &dupErr):
		utils.RespondJSON(w, http.StatusConflict, map[string]interface{}{
			"error":  dupErr.Error(),
			"serial": dupErr.Serial,
		})
	case errors.As(err, &notFoundErr):
		utils.RespondError(w, http.StatusNotFound, nil, notFoundErr.Error())
	case errors.Is(err, ErrNoLocation):
		utils.RespondError(w, http.StatusNotFound, nil, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err, fallback)
	}
}
