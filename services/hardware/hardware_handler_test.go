package hardwareservice

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/models"
	"inventory/providers"
	"inventory/spreadsheet"
)

func newHandlerWithMocks(t *testing.T, identity models.Identity) (*HardwareHandler, *MockHardwareService) {
	ctrl := gomock.NewController(t)
	mockService := NewMockHardwareService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(identity, nil).AnyTimes()
	return NewHardwareHandler(mockService, mockAuth), mockService
}

func withRouteParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestListHardwareHandler(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
		mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(models.Identity{}, errors.New("no identity"))
		handler := NewHardwareHandler(NewMockHardwareService(ctrl), mockAuth)

		rr := httptest.NewRecorder()
		handler.ListHardware(rr, httptest.NewRequest(http.MethodGet, "/api/hardware", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("scope comes from query and identity", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, nashikUser)
		rows := FlattenAll([]models.HardwareRecord{validRecord()})
		mockService.EXPECT().
			ListHardware(gomock.Any(), ListScope{Identity: nashikUser, LocationFilter: "Pune", SearchText: "mon", Limit: 10, Offset: 0}).
			Return(rows, nil)

		rr := httptest.NewRecorder()
		handler.ListHardware(rr, httptest.NewRequest(http.MethodGet, "/api/hardware?location=Pune&search=mon&limit=10", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("user without location", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, models.Identity{UserID: uuid.New(), Role: models.UserRole})
		mockService.EXPECT().ListHardware(gomock.Any(), gomock.Any()).Return(nil, ErrNoLocation)

		rr := httptest.NewRecorder()
		handler.ListHardware(rr, httptest.NewRequest(http.MethodGet, "/api/hardware", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateHardwareHandler(t *testing.T) {
	validBody := `{"locationName":"Nashik","items":[{"itemName":"Monitor","serialNumber":"SN-001"}]}`

	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		mockServiceErr     error
		expectedStatusCode int
		check              func(t *testing.T, body map[string]interface{})
	}{
		{
			name:               "created",
			body:               validBody,
			expectServiceCall:  true,
			expectedStatusCode: http.StatusCreated,
			check: func(t *testing.T, body map[string]interface{}) {
				rows, ok := body["rows"].([]interface{})
				require.True(t, ok)
				assert.Len(t, rows, 1)
			},
		},
		{
			name:               "no items",
			body:               `{"locationName":"Nashik","items":[]}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "unknown field",
			body:               `{"locationName":"Nashik","colour":"red","items":[{"itemName":"Monitor","serialNumber":"SN-001"}]}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing fields",
			body:               validBody,
			expectServiceCall:  true,
			mockServiceErr:     &ValidationError{MissingFields: []string{"items[0].serialNumber"}},
			expectedStatusCode: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, []interface{}{"items[0].serialNumber"}, body["missingFields"])
			},
		},
		{
			name:               "duplicate serial",
			body:               validBody,
			expectServiceCall:  true,
			mockServiceErr:     &DuplicateSerialError{Serial: "SN-001"},
			expectedStatusCode: http.StatusConflict,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "SN-001", body["serial"])
			},
		},
		{
			name:               "store failure",
			body:               validBody,
			expectServiceCall:  true,
			mockServiceErr:     &PersistenceError{Op: "insert hardware record", Cause: errors.New("connection refused")},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService := newHandlerWithMocks(t, admin)
			if tc.expectServiceCall {
				mockService.EXPECT().CreateHardware(gomock.Any(), gomock.Any(), admin).
					Return(CreateResult{Record: validRecord()}, tc.mockServiceErr)
			}

			rr := httptest.NewRecorder()
			handler.CreateHardware(rr, httptest.NewRequest(http.MethodPost, "/api/hardware", strings.NewReader(tc.body)))
			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			if tc.check != nil {
				tc.check(t, decodeBody(t, rr))
			}
		})
	}
}

func TestUpdateHardwareItemHandler(t *testing.T) {
	itemID := uuid.New()

	t.Run("bad item id", func(t *testing.T) {
		handler, _ := newHandlerWithMocks(t, admin)
		req := withRouteParams(httptest.NewRequest(http.MethodPut, "/api/hardware/x", strings.NewReader(`{}`)), map[string]string{"itemId": "x"})

		rr := httptest.NewRecorder()
		handler.UpdateHardwareItem(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("passes the edit through", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, admin)
		parentID := uuid.New()
		serial := "SN-002"
		mockService.EXPECT().
			UpdateHardwareItem(gomock.Any(), admin, itemID, UpdateItemReq{ParentID: &parentID, SerialNumber: &serial}).
			Return(UpdateResult{Row: FlatRow{ItemID: itemID, SerialNumber: "SN-002"}}, nil)

		body := `{"parentId":"` + parentID.String() + `","serialNumber":"SN-002"}`
		req := withRouteParams(httptest.NewRequest(http.MethodPut, "/api/hardware/"+itemID.String(), strings.NewReader(body)),
			map[string]string{"itemId": itemID.String()})

		rr := httptest.NewRecorder()
		handler.UpdateHardwareItem(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"serialNumber":"SN-002"`)
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, admin)
		mockService.EXPECT().UpdateHardwareItem(gomock.Any(), admin, itemID, gomock.Any()).
			Return(UpdateResult{}, &NotFoundError{Identity: itemID.String()})

		req := withRouteParams(httptest.NewRequest(http.MethodPut, "/api/hardware/"+itemID.String(), strings.NewReader(`{"itemName":"CPU"}`)),
			map[string]string{"itemId": itemID.String()})

		rr := httptest.NewRecorder()
		handler.UpdateHardwareItem(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteHardwareItemHandler(t *testing.T) {
	itemID, parentID := uuid.New(), uuid.New()

	t.Run("with parent", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, admin)
		mockService.EXPECT().DeleteHardwareItem(gomock.Any(), admin, itemID, &parentID).Return(RecordRemoved, nil)

		req := withRouteParams(httptest.NewRequest(http.MethodDelete, "/api/hardware/x/y", nil),
			map[string]string{"parentId": parentID.String(), "itemId": itemID.String()})

		rr := httptest.NewRecorder()
		handler.DeleteHardwareItem(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, string(RecordRemoved), decodeBody(t, rr)["outcome"])
	})

	t.Run("without parent", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, admin)
		mockService.EXPECT().DeleteHardwareItem(gomock.Any(), admin, itemID, nil).Return(ItemRemoved, nil)

		req := withRouteParams(httptest.NewRequest(http.MethodDelete, "/api/hardware/y", nil),
			map[string]string{"itemId": itemID.String()})

		rr := httptest.NewRecorder()
		handler.DeleteHardwareItem(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("bad parent id", func(t *testing.T) {
		handler, _ := newHandlerWithMocks(t, admin)
		req := withRouteParams(httptest.NewRequest(http.MethodDelete, "/api/hardware/x/y", nil),
			map[string]string{"parentId": "nope", "itemId": itemID.String()})

		rr := httptest.NewRecorder()
		handler.DeleteHardwareItem(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestBatchImportHandler(t *testing.T) {
	t.Run("cells are stringified", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, admin)
		mockService.EXPECT().
			ImportRows(gomock.Any(), []map[string]string{{"Court Name": "Nashik", "Serial Number": "12345", "Delivery Date": "45306", "Remarks": ""}}, admin).
			Return(ImportReport{InsertedCount: 1}, nil)

		body := `[{"Court Name":"Nashik","Serial Number":12345,"Delivery Date":45306,"Remarks":null}]`
		rr := httptest.NewRecorder()
		handler.BatchImport(rr, httptest.NewRequest(http.MethodPost, "/api/hardware/batch-import", strings.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, float64(1), decodeBody(t, rr)["insertedCount"])
	})

	t.Run("empty payload", func(t *testing.T) {
		handler, _ := newHandlerWithMocks(t, admin)
		rr := httptest.NewRecorder()
		handler.BatchImport(rr, httptest.NewRequest(http.MethodPost, "/api/hardware/batch-import", strings.NewReader(`[]`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSpreadsheetImportAndExport(t *testing.T) {
	t.Run("import reads the uploaded workbook", func(t *testing.T) {
		var sheet bytes.Buffer
		require.NoError(t, spreadsheet.WriteSheet(&sheet, "Hardware",
			[]string{"Court Name", "Item Name", "Serial Number"},
			[][]string{{"Nashik", "Monitor", "SN-001"}}))

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "hardware.xlsx")
		require.NoError(t, err)
		_, err = part.Write(sheet.Bytes())
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		handler, mockService := newHandlerWithMocks(t, admin)
		mockService.EXPECT().
			ImportRows(gomock.Any(), []map[string]string{{"Court Name": "Nashik", "Item Name": "Monitor", "Serial Number": "SN-001"}}, admin).
			Return(ImportReport{InsertedCount: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/hardware/import", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()
		handler.ImportSpreadsheet(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("export writes one row per item", func(t *testing.T) {
		handler, mockService := newHandlerWithMocks(t, admin)
		recs := sampleRecords()
		mockService.EXPECT().ListHardware(gomock.Any(), ListScope{Identity: admin}).Return(FlattenAll(recs), nil)

		rr := httptest.NewRecorder()
		handler.ExportSpreadsheet(rr, httptest.NewRequest(http.MethodGet, "/api/hardware/export", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, xlsxMIME, rr.Header().Get("Content-Type"))

		rows, err := spreadsheet.ReadRows(bytes.NewReader(rr.Body.Bytes()))
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "SN-001", rows[0]["Serial Number"])
		assert.Equal(t, "04/03/2023", rows[0]["Delivery Date"])
		assert.Equal(t, "Asha Patil", rows[0]["Allocated Employee"])
	})
}
