package web

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/drafts"
	"github.com/dmitrijs2005/liftlog/internal/server/metrics"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testOptions = Options{SessionSecret: []byte("test-secret"), SessionTTL: time.Hour}

type testServer struct {
	router http.Handler
	db     *sql.DB
	drafts *drafts.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	db, m, err := repomanager.Open(ctx, repomanager.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, m.RunMigrations(ctx, db))

	rec := metrics.NewRecorder()
	svc := services.NewLiftService(db, m, rec, logging.Discard())
	ds := drafts.NewMemoryStore(time.Hour)

	opts := testOptions
	opts.MetricsHandler = rec.Handler()
	h, err := NewHandler(svc, ds, logging.Discard(), opts)
	require.NoError(t, err)
	h.now = func() time.Time { return time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC) }

	return &testServer{router: h.Router(), db: db, drafts: ds}
}

func (s *testServer) rows(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM component_lifts`).Scan(&n))
	return n
}

// browser keeps the session cookie between requests.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, h http.Handler) *browser {
	return &browser{t: t, handler: h, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func liftForm(action string) url.Values {
	return url.Values{
		"action":          {action},
		"projectName":     {"AP7P2"},
		"componentId":     {"C-7"},
		"serialNumber":    {"1-3"},
		"installDate":     {"2025-05-19"},
		"axisAlphaStart":  {"B"},
		"axisAlphaEnd":    {"C.5"},
		"axisNumberStart": {"17"},
		"axisNumberEnd":   {"18.5"},
	}
}

func TestIndex_NewSessionEmptyForm(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `name="installDate" value="2025-05-20"`)
	assert.Contains(t, body, `name="componentId" value=""`)
	assert.Contains(t, body, `<option value="Z.5">Z.5</option>`)
	assert.Contains(t, body, `<option value="18.5">18.5</option>`)
	assert.Contains(t, body, `<option value="Office">Office</option>`)
	assert.NotContains(t, body, "查無資料")

	require.Contains(t, b.cookies, common.SessionCookieName)
	assert.True(t, b.cookies[common.SessionCookieName].HttpOnly)
}

func TestAdd_KeepDraftPrefillsForm(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	rec := b.post("/add", liftForm("上一筆"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 0, s.rows(t), "keeping a draft writes nothing")

	body := b.get("/").Body.String()
	assert.Contains(t, body, `name="componentId" value="C-7"`)
	assert.Contains(t, body, `name="serialNumber" value="1-3"`)
	assert.Contains(t, body, `<option value="B" selected>B</option>`)
	assert.Contains(t, body, `<option value="C.5" selected>C.5</option>`)
	assert.Contains(t, body, `<option value="17" selected>17</option>`)
	assert.Contains(t, body, `<option value="18.5" selected>18.5</option>`)
}

func TestAdd_DraftIsPerSession(t *testing.T) {
	s := newTestServer(t)
	alice := newBrowser(t, s.router)
	bob := newBrowser(t, s.router)

	alice.post("/add", liftForm("keep"))

	assert.Contains(t, alice.get("/").Body.String(), `name="componentId" value="C-7"`)
	assert.Contains(t, bob.get("/").Body.String(), `name="componentId" value=""`)
}

func TestAdd_CreateStoresRecordsAndClearsDraft(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	b.post("/add", liftForm("上一筆"))
	require.Equal(t, 1, s.drafts.Len())

	rec := b.post("/add", liftForm("新增"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 3, s.rows(t))
	assert.Equal(t, 0, s.drafts.Len())

	body := b.get("/").Body.String()
	assert.Contains(t, body, `name="componentId" value=""`)
	assert.NotContains(t, body, " selected>")
}

func TestAdd_MalformedSerialsRejected(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	form := liftForm("新增")
	form.Set("serialNumber", "abc-def")

	rec := b.post("/add", form)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "流水號格式錯誤")
	assert.Contains(t, body, `name="serialNumber" value="abc-def"`)
	assert.Contains(t, body, `name="installDate" value="2025-05-19"`)
	assert.Contains(t, body, `<option value="AP7P2" selected>AP7P2</option>`)
	assert.Equal(t, 0, s.rows(t))
}

func TestAdd_InvalidProjectRejected(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	form := liftForm("create")
	form.Set("projectName", "Warehouse")

	rec := b.post("/add", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "輸入資料錯誤")
	assert.Equal(t, 0, s.rows(t))
}

func TestAdd_UnknownAction(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	rec := b.post("/add", liftForm("delete"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, s.rows(t))
	assert.Equal(t, 0, s.drafts.Len())
}

func TestSearch_FoundAndNotFound(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	require.Equal(t, http.StatusSeeOther, b.post("/add", liftForm("新增")).Code)

	rec := b.get("/search?componentId=C-7&serialNumber=2")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "查詢結果")
	assert.Contains(t, body, "專案名稱: AP7P2")
	assert.Contains(t, body, "流水號: 2")
	assert.Contains(t, body, "吊裝日期: 2025-05-19")
	assert.Contains(t, body, `<span style="color:#0000FF">B-C.5</span>/<span style="color:#0000FF">17-18.5</span>`)

	rec = b.get("/search?componentId=C-7&serialNumber=4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "查無資料")
	assert.NotContains(t, rec.Body.String(), "查詢結果")
}

type brokenLifts struct{}

func (brokenLifts) Create(context.Context, services.CreateLiftRequest) ([]int64, error) {
	return nil, common.ErrorStorage
}

func (brokenLifts) Find(context.Context, string, string) (*models.LiftRecord, error) {
	return nil, common.ErrorStorage
}

func TestStorageErrorsAre500(t *testing.T) {
	h, err := NewHandler(brokenLifts{}, drafts.NewMemoryStore(time.Hour), logging.Discard(), testOptions)
	require.NoError(t, err)
	b := newBrowser(t, h.Router())

	rec := b.post("/add", liftForm("新增"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "資料庫錯誤")

	rec = b.get("/search?componentId=a&serialNumber=1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "查無資料")
}

func TestSession_ForgedCookieStartsNewSession(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	b.post("/add", liftForm("上一筆"))
	b.cookies[common.SessionCookieName] = &http.Cookie{Name: common.SessionCookieName, Value: "forged.token.value"}

	body := b.get("/").Body.String()
	assert.Contains(t, body, `name="componentId" value=""`)
	assert.NotEqual(t, "forged.token.value", b.cookies[common.SessionCookieName].Value)
}

func TestPingAndMetrics(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(t, s.router)

	rec := b.get("/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	b.get("/search?componentId=x&serialNumber=y")
	rec = b.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `liftlog_lookups_total{result="not_found"} 1`)
}
