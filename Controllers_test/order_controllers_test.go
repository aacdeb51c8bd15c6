package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jugnuu/themis-pos/alerts"
	"github.com/jugnuu/themis-pos/models"
	"github.com/jugnuu/themis-pos/router"
	"github.com/jugnuu/themis-pos/utils"
)

const testAdminPassword = "test_admin"

var testDBSeq int

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	m.Run()
}

func setupPOSRouter(t *testing.T) *gin.Engine {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:posctl%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}))

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	hub := alerts.NewHub()
	sessions := utils.NewSessionManager("test-secret", time.Hour)
	return router.SetupRouter(db, hub, sessions, hash)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: utils.AdminSessionCookie, Value: cookie})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginCookie(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/login", map[string]string{"password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.AdminSessionCookie {
			return c.Value
		}
	}
	t.Fatal("admin session cookie not set")
	return ""
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func submitOrder(t *testing.T, r *gin.Engine, table string, items []map[string]interface{}, total float64) int {
	t.Helper()
	w := doJSON(t, r, "POST", "/order", map[string]interface{}{
		"table": table,
		"items": items,
		"total": total,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "Success", body["status"])
	return int(body["id"].(float64))
}

func TestSubmitOrderAppearsOnDashboard(t *testing.T) {
	r := setupPOSRouter(t)

	id := submitOrder(t, r, "5", []map[string]interface{}{
		{"name": "Paneer Makhani", "qty": 2},
	}, 820)
	assert.Equal(t, 1, id)

	cookie := loginCookie(t, r)
	w := doJSON(t, r, "GET", "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "5", row["table_num"])
	assert.Equal(t, "Paneer Makhani x2", row["items"])
	assert.Equal(t, 820.0, row["total"])
}

func TestServeThenCheckoutClearsViews(t *testing.T) {
	r := setupPOSRouter(t)
	id := submitOrder(t, r, "5", []map[string]interface{}{
		{"name": "Paneer Makhani", "qty": 2},
	}, 820)

	w := doJSON(t, r, "POST", fmt.Sprintf("/complete-order/%d", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Done", decodeBody(t, w)["status"])

	cookie := loginCookie(t, r)

	// served: off the dashboard, still billable
	w = doJSON(t, r, "GET", "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"])

	w = doJSON(t, r, "GET", "/billing", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 1)

	w = doJSON(t, r, "POST", fmt.Sprintf("/checkout/%d", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Table Cleared", decodeBody(t, w)["status"])

	w = doJSON(t, r, "GET", "/billing", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"])

	w = doJSON(t, r, "GET", "/sales", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	report := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, report["count"])
	assert.Equal(t, "820.00", report["total_revenue_display"])
	today := report["today"].(map[string]interface{})
	assert.Equal(t, "820.00", today["revenue_display"])
}

func TestMarkServedUnknownOrder(t *testing.T) {
	r := setupPOSRouter(t)

	w := doJSON(t, r, "POST", "/complete-order/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutTwiceRejected(t *testing.T) {
	r := setupPOSRouter(t)
	id := submitOrder(t, r, "2", nil, 100)

	w := doJSON(t, r, "POST", fmt.Sprintf("/checkout/%d", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", fmt.Sprintf("/checkout/%d", id), nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCallWaiter(t *testing.T) {
	r := setupPOSRouter(t)

	w := doJSON(t, r, "POST", "/call-waiter", map[string]string{"table": "7"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Waiter called", decodeBody(t, w)["status"])

	// waiter calls never create order rows
	cookie := loginCookie(t, r)
	wv := doJSON(t, r, "GET", "/billing", nil, cookie)
	require.Equal(t, http.StatusOK, wv.Code)
	assert.Empty(t, decodeBody(t, wv)["data"])
}

func TestMenuEchoesTable(t *testing.T) {
	r := setupPOSRouter(t)

	w := doJSON(t, r, "GET", "/?table=9", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "9", data["table"])
	assert.Len(t, data["menu"], 63)
	assert.Len(t, data["categories"], 8)
}
