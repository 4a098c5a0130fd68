package get

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"craneworks/internal/storage"
)

type MockRecordProvider struct {
	mock.Mock
}

func (m *MockRecordProvider) GetWorkRecord(ctx context.Context, id int64) (*storage.WorkRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.WorkRecord), args.Error(1)
}

func (m *MockRecordProvider) ListWorkRecords(ctx context.Context) ([]*storage.WorkRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.WorkRecord), args.Error(1)
}

func TestGetWorkRecord_Success(t *testing.T) {
	mockStorage := new(MockRecordProvider)

	rec := &storage.WorkRecord{
		ID:             12,
		WorkType:       "INSPECTION",
		InspectionDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		DocumentNo:     "KR-2024-0012",
		Equipment: &storage.Equipment{
			Name:    "天井クレーン1号機",
			Company: &storage.Company{Name: "大阪重工株式会社"},
			Project: &storage.Project{Name: "年次点検2024", Status: "IN_PROGRESS"},
		},
		User: &storage.User{FullName: "田中太郎"},
	}

	mockStorage.On("GetWorkRecord", mock.Anything, int64(12)).
		Return(rec, nil)

	router := chi.NewRouter()
	router.Get("/api/work-records/{id}", GetWorkRecord(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodGet, "/api/work-records/12", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp storage.WorkRecord
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, "KR-2024-0012", resp.DocumentNo)
	assert.Equal(t, "天井クレーン1号機", resp.Equipment.Name)

	mockStorage.AssertExpectations(t)
}

func TestGetWorkRecord_InvalidID(t *testing.T) {
	mockStorage := new(MockRecordProvider)

	router := chi.NewRouter()
	router.Get("/api/work-records/{id}", GetWorkRecord(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodGet, "/api/work-records/abc", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "GetWorkRecord")
}

func TestGetWorkRecord_NotFound(t *testing.T) {
	mockStorage := new(MockRecordProvider)

	mockStorage.On("GetWorkRecord", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("storage: work record 99 not found: %w", sql.ErrNoRows))

	router := chi.NewRouter()
	router.Get("/api/work-records/{id}", GetWorkRecord(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodGet, "/api/work-records/99", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Work record not found")

	mockStorage.AssertExpectations(t)
}

func TestListWorkRecords_Success(t *testing.T) {
	mockStorage := new(MockRecordProvider)

	records := []*storage.WorkRecord{
		{ID: 1, WorkType: "INSPECTION", DocumentNo: "KR-1"},
		{ID: 2, WorkType: "REPAIR", DocumentNo: "KR-2"},
	}

	mockStorage.On("ListWorkRecords", mock.Anything).
		Return(records, nil)

	handler := ListWorkRecords(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/work-records", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseAllRecords
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Len(t, resp.Records, 2)
	assert.Equal(t, "KR-2", resp.Records[1].DocumentNo)

	mockStorage.AssertExpectations(t)
}
