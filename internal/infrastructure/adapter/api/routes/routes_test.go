package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/extract"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/ingestion"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/maintenance"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/statement-processor/mocks/port/usecase"
)

type fakeDatabase struct {
	pingErr error
}

func (f *fakeDatabase) Ping(context.Context) error { return f.pingErr }
func (f *fakeDatabase) Driver() string             { return "sqlite" }
func (f *fakeDatabase) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{MaxOpenConnections: 1}
}

type testServer struct {
	router      *gin.Engine
	db          *fakeDatabase
	ingestion   *usecasemocks.MockIngestionUseCase
	desk        *usecasemocks.MockReconciliationUseCase
	reports     *usecasemocks.MockReportUseCase
	maintenance *usecasemocks.MockMaintenanceUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		router:      gin.New(),
		db:          &fakeDatabase{},
		ingestion:   usecasemocks.NewMockIngestionUseCase(t),
		desk:        usecasemocks.NewMockReconciliationUseCase(t),
		reports:     usecasemocks.NewMockReportUseCase(t),
		maintenance: usecasemocks.NewMockMaintenanceUseCase(t),
	}

	log := logger.NewNoopLogger()
	routes.SetupMiddlewares(s.router, log, timeprovider.NewRealTimeProvider(), nil)
	routes.SetupRoutes(s.router, routes.Handlers{
		Health:         handler.NewHealthHandler(s.db, log),
		Documents:      handler.NewDocumentHandler(s.ingestion, s.desk, 1024, log),
		Records:        handler.NewRecordHandler(s.reports, s.desk, log),
		Reconciliation: handler.NewReconciliationHandler(s.desk, log),
		Analytics:      handler.NewAnalyticsHandler(s.reports),
		Admin:          handler.NewAdminHandler(s.maintenance, s.desk, log),
	})
	return s
}

func (s *testServer) do(method, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "sqlite", resp.Driver)
	})

	t.Run("database down", func(t *testing.T) {
		s := newTestServer(t)
		s.db.pingErr = errors.New("database is closed")

		w := s.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestCategories(t *testing.T) {
	s := newTestServer(t)
	s.desk.EXPECT().Categories().Return([]string{"Combustible", "Peajes"})

	w := s.do(http.MethodGet, "/categories", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Combustible", "Peajes"}, resp.Categories)
}

func multipartBody(t *testing.T, files map[string]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadDocuments(t *testing.T) {
	s := newTestServer(t)

	inserted := []entity.TransactionRecord{{ID: 1, Description: "PEAJE"}}
	s.ingestion.EXPECT().
		IngestBatch(mock.Anything, mock.MatchedBy(func(docs []extract.Document) bool {
			return len(docs) == 1 && docs[0].DisplayName == "march.txt" && string(docs[0].Content) == "content"
		}), ingestion.Options{ExcludeTerms: []string{"PAGO", "ABONO"}}).
		Return(ingestion.BatchResult{
			BatchID: "batch-1",
			Documents: []ingestion.DocumentResult{{
				DisplayName: "march.txt",
				Status:      ingestion.StatusIngested,
				Inserted:    1,
				Records:     inserted,
			}},
		})
	s.desk.EXPECT().NoteIngested(mock.Anything, inserted).Return(nil)

	body, contentType := multipartBody(t, map[string]string{"march.txt": "content"}, map[string]string{"exclude": "PAGO, ABONO"})
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "batch-1", resp.BatchID)
	assert.Equal(t, 1, resp.Inserted)
	assert.Equal(t, "ingested", resp.Documents[0].Status)
}

func TestUploadDocuments_DuplicateReportedPerDocument(t *testing.T) {
	s := newTestServer(t)

	s.ingestion.EXPECT().
		IngestBatch(mock.Anything, mock.Anything, ingestion.Options{}).
		Return(ingestion.BatchResult{
			BatchID: "batch-2",
			Documents: []ingestion.DocumentResult{{
				DisplayName: "march.txt",
				Status:      ingestion.StatusDuplicate,
				Err:         domainerr.NewDuplicateDocumentError("abc", "march.txt"),
			}},
		})

	body, contentType := multipartBody(t, map[string]string{"march.txt": "content"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domainerr.CodeDuplicateDocument, resp.Documents[0].ErrorCode)
}

func TestUploadDocuments_Rejections(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		s := newTestServer(t)
		body, contentType := multipartBody(t, nil, map[string]string{"exclude": "x"})
		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, w).Code)
	})

	t.Run("file over limit", func(t *testing.T) {
		s := newTestServer(t)
		body, contentType := multipartBody(t, map[string]string{"big.txt": strings.Repeat("x", 2048)}, nil)
		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTransactions(t *testing.T) {
	s := newTestServer(t)
	s.reports.EXPECT().AllRecords(mock.Anything, "Juan Perez").Return([]entity.TransactionRecord{
		{ID: 7, Description: "HOTEL", OperationAmount: entity.Int64Ptr(12345), SourceDocumentID: "BCI_JUAN_PEREZ_20240315"},
	}, nil)

	w := s.do(http.MethodGet, "/transactions?cardholder=Juan%20Perez", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.RecordListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "$12,345", resp.Records[0].DisplayAmount)
	assert.Equal(t, "PENDING", resp.Records[0].Status)
	assert.Equal(t, "Juan Perez", resp.Records[0].Cardholder)
}

func TestBookedTransactions(t *testing.T) {
	s := newTestServer(t)
	s.desk.EXPECT().Booked(mock.Anything, "").Return(nil, nil)

	w := s.do(http.MethodGet, "/transactions/booked", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"records":[]}`, w.Body.String())
}

func TestExportTransactions(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().AllRecords(mock.Anything, "").Return([]entity.TransactionRecord{
			{OperationDate: "2024-03-15", Description: "PEAJE", OperationAmount: entity.Int64Ptr(2500)},
		}, nil)

		w := s.do(http.MethodGet, "/transactions/export", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions.csv")
		assert.True(t, strings.HasPrefix(w.Body.String(), strings.Join(report.Columns, ",")))
	})

	t.Run("xlsx", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().AllRecords(mock.Anything, "").Return(nil, nil)

		w := s.do(http.MethodGet, "/transactions/export?format=xlsx", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, report.FormatXLSX.ContentType(), w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
	})

	t.Run("unknown format", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodGet, "/transactions/export?format=pdf", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidExportFormat, decodeError(t, w).Code)
	})
}

func TestSessionExport(t *testing.T) {
	s := newTestServer(t)
	s.desk.EXPECT().SessionRecords(mock.Anything).Return([]entity.TransactionRecord{{Description: "HOTEL"}}, nil)

	w := s.do(http.MethodGet, "/session/export?format=csv", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "session_transactions.csv")
	assert.Contains(t, w.Body.String(), "HOTEL")
}

func TestReconciliationView(t *testing.T) {
	s := newTestServer(t)
	s.desk.EXPECT().View(mock.Anything).Return(reconciliation.Snapshot{
		SessionID: "session-1",
		Rows: []reconciliation.WorkingRow{
			{Position: 0, Record: entity.TransactionRecord{ID: 3, Description: "PEAJE"}, Selected: true},
		},
		Selected:        []uint64{3},
		HasUnsavedEdits: true,
	}, nil)

	w := s.do(http.MethodGet, "/reconciliation", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "session-1", resp.SessionID)
	require.Len(t, resp.Rows, 1)
	assert.True(t, resp.Rows[0].Selected)
	assert.Equal(t, []uint64{3}, resp.Selected)
	assert.True(t, resp.HasUnsavedEdits)
}

func TestReconciliationScope(t *testing.T) {
	s := newTestServer(t)
	s.desk.EXPECT().SetScope(mock.Anything, "Juan Perez").Return(reconciliation.Snapshot{Scope: "Juan Perez"}, nil)

	w := s.do(http.MethodPut, "/reconciliation/scope", `{"cardholder":"Juan Perez"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scope":"Juan Perez"`)
}

func TestReconciliationCardholders(t *testing.T) {
	s := newTestServer(t)
	s.desk.EXPECT().Cardholders(mock.Anything).Return([]string{"Ana Soto", "Juan Perez"}, nil)

	w := s.do(http.MethodGet, "/reconciliation/cardholders", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cardholders":["Ana Soto","Juan Perez"]}`, w.Body.String())
}

func TestApplyDeltas(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		s := newTestServer(t)
		s.desk.EXPECT().
			ApplyDeltas(mock.Anything, mock.MatchedBy(func(ds reconciliation.DeltaSet) bool {
				d, ok := ds[2]
				return len(ds) == 1 && ok && d.Reconciled != nil && *d.Reconciled &&
					d.ExpenseCategory != nil && *d.ExpenseCategory == "Peajes"
			})).
			Return(true, nil)

		w := s.do(http.MethodPost, "/reconciliation/deltas", `{"deltas":{"2":{"reconciled":true,"expenseCategory":"Peajes"}}}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"applied":true}`, w.Body.String())
	})

	t.Run("non numeric position", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/reconciliation/deltas", `{"deltas":{"first":{"selected":true}}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, w).Code)
	})

	t.Run("missing deltas", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/reconciliation/deltas", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejected by engine", func(t *testing.T) {
		s := newTestServer(t)
		s.desk.EXPECT().ApplyDeltas(mock.Anything, mock.Anything).
			Return(false, domainerr.NewInvalidDeltaError(9, "position out of range", nil))

		w := s.do(http.MethodPost, "/reconciliation/deltas", `{"deltas":{"9":{"selected":true}}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeInvalidDelta, resp.Code)
		assert.Equal(t, map[string]any{"position": float64(9), "reason": "position out of range"}, resp.Details)
	})
}

func TestSave(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		s := newTestServer(t)
		s.desk.EXPECT().Save(mock.Anything).Return(4, nil)

		w := s.do(http.MethodPost, "/reconciliation/save", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"saved":4}`, w.Body.String())
	})

	t.Run("persistence failure hides driver message", func(t *testing.T) {
		s := newTestServer(t)
		s.desk.EXPECT().Save(mock.Anything).
			Return(0, domainerr.NewPersistenceError("update working fields", errors.New("disk I/O error")))

		w := s.do(http.MethodPost, "/reconciliation/save", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodePersistence, resp.Code)
		assert.NotContains(t, resp.Message, "disk")
	})
}

func TestBook(t *testing.T) {
	t.Run("booked", func(t *testing.T) {
		s := newTestServer(t)
		s.desk.EXPECT().Book(mock.Anything).Return(reconciliation.BookingResult{Booked: []uint64{3, 4}}, nil)

		w := s.do(http.MethodPost, "/reconciliation/book", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":2,"booked":[3,4]}`, w.Body.String())
	})

	t.Run("nothing selected", func(t *testing.T) {
		s := newTestServer(t)
		s.desk.EXPECT().Book(mock.Anything).Return(reconciliation.BookingResult{}, domainerr.ErrNothingSelected)

		w := s.do(http.MethodPost, "/reconciliation/book", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeNothingSelected, decodeError(t, w).Code)
	})

	t.Run("guard failure lists rows", func(t *testing.T) {
		s := newTestServer(t)
		s.desk.EXPECT().Book(mock.Anything).Return(reconciliation.BookingResult{}, domainerr.NewBookingGuardError([]domainerr.GuardFailure{
			{RowID: 3, Conditions: []string{entity.GuardNotReconciled}},
		}))

		w := s.do(http.MethodPost, "/reconciliation/book", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeBookingGuardFailed, resp.Code)
		assert.Equal(t, []any{map[string]any{"rowId": float64(3), "conditions": []any{"not_reconciled"}}}, resp.Details)
	})
}

func TestResetAndRefresh(t *testing.T) {
	s := newTestServer(t)
	s.desk.EXPECT().ResetEdits(mock.Anything).Return(reconciliation.Snapshot{SessionID: "s"}, nil)
	s.desk.EXPECT().Refresh(mock.Anything).Return(reconciliation.Snapshot{SessionID: "s"}, nil)

	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/reconciliation/reset", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/reconciliation/refresh", "").Code)
}

func TestAnalytics(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().MonthlySpend(mock.Anything, "").Return([]report.MonthlySpend{
			{Month: "2024-03", Total: 15000, Count: 2, Average: 7500},
		}, nil)

		w := s.do(http.MethodGet, "/analytics/monthly", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []dto.MonthlySpendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "$15,000", resp[0].DisplayTotal)
	})

	t.Run("top descriptions with limit", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().TopDescriptions(mock.Anything, "", 5).Return(nil, nil)

		w := s.do(http.MethodGet, "/analytics/top-descriptions?limit=5", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("top descriptions default limit", func(t *testing.T) {
		s := newTestServer(t)
		s.reports.EXPECT().TopDescriptions(mock.Anything, "", report.DefaultTopLimit).Return(nil, nil)

		w := s.do(http.MethodGet, "/analytics/top-descriptions", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodGet, "/analytics/top-descriptions?limit=abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminPurge(t *testing.T) {
	t.Run("without confirm", func(t *testing.T) {
		s := newTestServer(t)
		s.maintenance.EXPECT().Purge(mock.Anything, false).Return(maintenance.PurgeResult{}, domainerr.ErrConfirmationRequired)

		w := s.do(http.MethodPost, "/admin/purge", `{"confirm":false}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeConfirmationRequired, decodeError(t, w).Code)
	})

	t.Run("confirmed purge resets the session", func(t *testing.T) {
		s := newTestServer(t)
		s.maintenance.EXPECT().Purge(mock.Anything, true).Return(maintenance.PurgeResult{Records: 10, Documents: 2}, nil)
		s.desk.EXPECT().Reset(mock.Anything).Return(nil)

		w := s.do(http.MethodPost, "/admin/purge", `{"confirm":true}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"records":10,"documents":2}`, w.Body.String())
	})
}

func TestAdminNormalizeDates(t *testing.T) {
	t.Run("already applied", func(t *testing.T) {
		s := newTestServer(t)
		s.maintenance.EXPECT().NormalizeDates(mock.Anything, true).
			Return(maintenance.NormalizationResult{}, domainerr.ErrNormalizationAlreadyApplied)

		w := s.do(http.MethodPost, "/admin/normalize-dates", `{"confirm":true}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domainerr.CodeNormalizationApplied, decodeError(t, w).Code)
	})

	t.Run("applied", func(t *testing.T) {
		s := newTestServer(t)
		s.maintenance.EXPECT().NormalizeDates(mock.Anything, true).
			Return(maintenance.NormalizationResult{Flag: "f", Converted: 3}, nil)
		s.desk.EXPECT().Invalidate(mock.Anything).Return(nil)

		w := s.do(http.MethodPost, "/admin/normalize-dates", `{"confirm":true}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"converted":3`)
	})
}
