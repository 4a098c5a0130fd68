package auth

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore hands out a prebuilt session and can be told to fail on save.
type stubStore struct {
	session *sessions.Session
	saveErr error
}

func (s *stubStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return s.session, nil
}

func (s *stubStore) New(r *http.Request, name string) (*sessions.Session, error) {
	return s.session, nil
}

func (s *stubStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	return s.saveErr
}

func newStubStore(values map[interface{}]interface{}, saveErr error) *stubStore {
	s := &stubStore{saveErr: saveErr}
	session := sessions.NewSession(s, SessionName)
	for k, v := range values {
		session.Values[k] = v
	}
	s.session = session
	return s
}

func editorValues() map[interface{}]interface{} {
	return map[interface{}]interface{}{
		"user_id":       int64(5),
		"role":          "editor",
		"last_activity": time.Now().Unix(),
	}
}

func serveSession(t *testing.T, log *slog.Logger, store sessions.Store) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var (
		gotUserID int64
		called    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID = UserID(r.Context())
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/work-records", nil)
	EditorSession(log, store)(next).ServeHTTP(rr, req)

	return rr, gotUserID, called
}

func TestEditorSession_PassesEditor(t *testing.T) {
	store := newStubStore(editorValues(), nil)

	rr, userID, called := serveSession(t, slog.Default(), store)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(5), userID)
}

func TestEditorSession_ExpiredIdleSession(t *testing.T) {
	values := editorValues()
	values["last_activity"] = time.Now().Add(-time.Hour).Unix()
	store := newStubStore(values, nil)

	rr, _, called := serveSession(t, slog.Default(), store)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestEditorSession_ViewerForbidden(t *testing.T) {
	values := editorValues()
	values["role"] = "viewer"
	store := newStubStore(values, nil)

	rr, _, called := serveSession(t, slog.Default(), store)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

// A save failure is logged but does not reject an otherwise valid request.
func TestEditorSession_SaveFailureLogged(t *testing.T) {
	store := newStubStore(editorValues(), errors.New("cookie too large"))

	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	rr, userID, called := serveSession(t, log, store)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(5), userID)
	assert.Contains(t, logBuf.String(), "failed to save session")
	assert.Contains(t, logBuf.String(), "cookie too large")
}
