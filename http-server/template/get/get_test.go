package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"craneworks/internal/storage"
)

type MockTemplateProvider struct {
	mock.Mock
}

func (m *MockTemplateProvider) ListAccessibleTemplates(ctx context.Context, userID int64) ([]*storage.Template, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Template), args.Error(1)
}

func (m *MockTemplateProvider) ListAllTemplatesAdmin(ctx context.Context) ([]*storage.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Template), args.Error(1)
}

func TestListTemplates_Success(t *testing.T) {
	mockStorage := new(MockTemplateProvider)

	templates := []*storage.Template{
		{ID: 1, Name: "月次報告書", TemplateType: storage.TemplateTypeReport, MimeType: storage.MimeWord, IsActive: true, IsDefault: true},
		{ID: 2, Name: "点検一覧表", TemplateType: storage.TemplateTypeReport, MimeType: storage.MimeExcel, IsActive: true},
	}

	mockStorage.On("ListAccessibleTemplates", mock.Anything, int64(0)).
		Return(templates, nil)

	logger := slog.Default()
	handler := ListTemplates(logger, mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseAllTemplates
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Len(t, resp.Templates, 2)
	assert.Equal(t, "月次報告書", resp.Templates[0].Name)
	assert.Equal(t, storage.MimeExcel, resp.Templates[1].MimeType)
	assert.Empty(t, resp.Error)

	mockStorage.AssertExpectations(t)
}

func TestListTemplates_DBError(t *testing.T) {
	mockStorage := new(MockTemplateProvider)

	mockStorage.On("ListAccessibleTemplates", mock.Anything, int64(0)).
		Return(nil, errors.New("connection timeout"))

	logger := slog.Default()
	handler := ListTemplates(logger, mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal server error")

	mockStorage.AssertExpectations(t)
}

func TestListAllTemplatesAdmin_Success(t *testing.T) {
	mockStorage := new(MockTemplateProvider)

	templates := []*storage.Template{
		{ID: 1, Name: "月次報告書", IsActive: true},
		{ID: 2, Name: "旧様式", IsActive: false},
	}

	mockStorage.On("ListAllTemplatesAdmin", mock.Anything).
		Return(templates, nil)

	logger := slog.Default()
	handler := ListAllTemplatesAdmin(logger, mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/templates", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseAllTemplates
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Len(t, resp.Templates, 2)
	assert.False(t, resp.Templates[1].IsActive)

	mockStorage.AssertExpectations(t)
}
