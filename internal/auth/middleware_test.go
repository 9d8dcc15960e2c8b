package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/quartermaster-erp/quartermaster/internal/auth"
	"github.com/quartermaster-erp/quartermaster/internal/shared"
)

func TestRequireUserRedirectsWithoutSession(t *testing.T) {
	svc := auth.NewService(&stubRepo{})
	handlerCalled := false
	protected := auth.RequireUser(nil, svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/suppliers", nil)
	res := httptest.NewRecorder()
	protected.ServeHTTP(res, req)

	require.Equal(t, http.StatusSeeOther, res.Code)
	require.Equal(t, auth.LoginPath, res.Header().Get("Location"))
	require.False(t, handlerCalled)
}

func TestRequireUserRedirectsInactiveUser(t *testing.T) {
	user := &auth.User{ID: uuid.New(), Email: "user@test.local", IsActive: false}
	svc := auth.NewService(&stubRepo{user: user})
	_, sessionManager := newAuthHandler(t, &stubRepo{user: user})

	protected := auth.RequireUser(nil, svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for inactive users")
	}))

	req := httptest.NewRequest(http.MethodGet, "/suppliers", nil)
	req, sess, _ := loadSession(t, sessionManager, req)
	sess.SetUser(user.ID.String())

	res := httptest.NewRecorder()
	protected.ServeHTTP(res, req)

	require.Equal(t, http.StatusSeeOther, res.Code)
	require.Equal(t, auth.LoginPath, res.Header().Get("Location"))
}

func TestRequireUserInjectsIdentity(t *testing.T) {
	user := &auth.User{ID: uuid.New(), Email: "user@test.local", FullName: "Test User", Role: auth.RoleUser, IsActive: true}
	svc := auth.NewService(&stubRepo{user: user})
	_, sessionManager := newAuthHandler(t, &stubRepo{user: user})

	var seen shared.Identity
	protected := auth.RequireUser(nil, svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.IdentityFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/suppliers", nil)
	req, sess, _ := loadSession(t, sessionManager, req)
	sess.SetUser(user.ID.String())

	res := httptest.NewRecorder()
	protected.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, user.ID, seen.ID)
	require.Equal(t, user.Email, seen.Email)
}
