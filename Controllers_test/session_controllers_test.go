package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginWrongPassword(t *testing.T) {
	r := setupPOSRouter(t)

	w := doJSON(t, r, "POST", "/login", map[string]string{"password": "not-the-secret"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["status"])
}

func TestLoginMissingPassword(t *testing.T) {
	r := setupPOSRouter(t)

	w := doJSON(t, r, "POST", "/login", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := setupPOSRouter(t)

	cookie := loginCookie(t, r)
	assert.NotEmpty(t, cookie)

	w := doJSON(t, r, "GET", "/sales", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffViewsRedirectWithoutSession(t *testing.T) {
	r := setupPOSRouter(t)

	for _, path := range []string{"/dashboard", "/billing", "/sales"} {
		w := doJSON(t, r, "GET", path, nil, "")
		require.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestStaffViewsRejectForgedCookie(t *testing.T) {
	r := setupPOSRouter(t)

	w := doJSON(t, r, "GET", "/dashboard", nil, "not-a-real-token")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
