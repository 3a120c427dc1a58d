package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"marketplace_auth/internal/api"
	"marketplace_auth/internal/auth"
	"marketplace_auth/internal/config"
	"marketplace_auth/internal/domain"
	"marketplace_auth/internal/metrics"
	"marketplace_auth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "12345678"

func init() {
	gin.SetMode(gin.TestMode)
}

// accounts is an in-memory implementation of every repository the routes read.
type accounts struct {
	mu        sync.Mutex
	admins    map[uint]*domain.Admin
	vendors   map[uint]*domain.Vendor
	customers map[uint]*domain.Customer
	wallets   map[uint]domain.VendorWallet
	adminErr  error
	walletErr error
	reads     int // wallet reads that reached the store
}

type adminStore struct{ *accounts }
type vendorStore struct{ *accounts }
type customerStore struct{ *accounts }
type walletStore struct{ *accounts }

func (a adminStore) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.adminErr != nil {
		return nil, a.adminErr
	}
	for _, admin := range a.admins {
		if admin.Email == email {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, nil
}

func (a adminStore) FindByID(_ context.Context, id uint) (*domain.Admin, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	admin, ok := a.admins[id]
	if !ok {
		return nil, nil
	}
	cp := *admin
	return &cp, nil
}

func (v vendorStore) FindByIdentity(_ context.Context, identity string) (*domain.Vendor, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, vendor := range v.vendors {
		if vendor.Email == identity {
			cp := *vendor
			return &cp, nil
		}
	}
	return nil, nil
}

func (v vendorStore) FindByID(_ context.Context, id uint) (*domain.Vendor, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	vendor, ok := v.vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *vendor
	return &cp, nil
}

func (s customerStore) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s customerStore) FindByID(_ context.Context, id uint) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (w walletStore) FindByVendorID(_ context.Context, vendorID uint) (*domain.VendorWallet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reads++
	wallet, ok := w.wallets[vendorID]
	if !ok {
		return nil, nil
	}
	return &wallet, nil
}

func (w walletStore) CreateIfAbsent(_ context.Context, wallet *domain.VendorWallet) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.walletErr != nil {
		return false, w.walletErr
	}
	if _, ok := w.wallets[wallet.SellerID]; ok {
		return false, nil
	}
	wallet.ID = uint(len(w.wallets) + 1)
	w.wallets[wallet.SellerID] = *wallet
	return true, nil
}

func (a *accounts) walletCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.wallets)
}

func (a *accounts) walletReads() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reads
}

func (a *accounts) failWalletInserts(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.walletErr = err
}

func (a *accounts) setAdminStatus(id uint, status bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.admins[id].Status = status
}

func (a *accounts) failAdminLookups(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.adminErr = err
}

func newAccounts(t *testing.T) *accounts {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	pw := string(h)
	return &accounts{
		admins: map[uint]*domain.Admin{
			1: {ID: 1, Name: "Admin", Email: "admin@shop.test", Password: pw, Role: domain.RoleAdmin, Status: true},
			2: {ID: 2, Name: "Staff", Email: "staff@shop.test", Password: pw, Role: domain.RoleEmployee, Status: true},
			3: {ID: 3, Name: "Gone", Email: "gone@shop.test", Password: pw, Role: domain.RoleAdmin, Status: false},
		},
		vendors: map[uint]*domain.Vendor{
			10: {ID: 10, FirstName: "Ada", Email: "vendor@shop.test", Password: pw, Status: domain.VendorApproved},
			11: {ID: 11, FirstName: "Bo", Email: "pending@shop.test", Password: pw, Status: domain.VendorPending},
		},
		customers: map[uint]*domain.Customer{
			20: {ID: 20, Name: "Cy", Email: "customer@shop.test", Password: pw, IsActive: true},
		},
		wallets: map[uint]domain.VendorWallet{},
	}
}

type testApp struct {
	engine   *gin.Engine
	accounts *accounts
	store    *auth.MemorySessionStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithRedis(t, nil)
}

// newTestAppWithRedis wires rdb as the wallet cache when it is not nil.
func newTestAppWithRedis(t *testing.T, rdb redis.Cmdable) *testApp {
	t.Helper()
	cfg := &config.Config{
		SessionSecret:      "api-test-secret",
		AdminLoginURL:      "admin",
		EmployeeLoginURL:   "employee",
		AdminDashboardURL:  "/admin/dashboard",
		VendorDashboardURL: "/vendor/dashboard",
		HomeURL:            "/",
		AppMode:            "demo",
		DemoAdminEmail:     "admin@shop.test",
		DemoAdminPassword:  testPassword,
	}
	acc := newAccounts(t)
	store := auth.NewMemorySessionStore()
	sessions := auth.NewManager(store, auth.ManagerConfig{Secret: cfg.SessionSecret})
	flasher := auth.NewFlasher(cfg.SessionSecret, false)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	verifier := auth.BcryptVerifier{}
	slugs := service.LoginSlugs{domain.RoleAdmin: cfg.AdminLoginURL, domain.RoleEmployee: cfg.EmployeeLoginURL}

	r := gin.New()
	err := api.RegisterRoutes(r, api.Dependencies{
		Config:    cfg,
		Sessions:  sessions,
		Flash:     flasher,
		Admins:    service.NewAdminLoginService(adminStore{acc}, verifier, slugs, m),
		Vendors:   service.NewVendorLoginService(vendorStore{acc}, walletStore{acc}, verifier, m),
		Customers: service.NewCustomerLoginService(customerStore{acc}, verifier, m),
		AdminRepo: adminStore{acc},
		Wallets:   walletStore{acc},
		Redis:     rdb,
		Metrics:   metrics.Handler(reg),
	})
	require.NoError(t, err)
	return &testApp{engine: r, accounts: acc, store: store}
}

// browser replays cookies between requests like a real user agent.
type browser struct {
	app     *testApp
	cookies map[string]*http.Cookie
	last    map[string]*http.Cookie // cookies set by the latest response
}

func (a *testApp) browser() *browser {
	return &browser{app: a, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range b.cookies {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	w := httptest.NewRecorder()
	b.app.engine.ServeHTTP(w, req)
	b.last = map[string]*http.Cookie{}
	for _, ck := range w.Result().Cookies() {
		b.last[ck.Name] = ck
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(b.cookies, ck.Name)
			continue
		}
		b.cookies[ck.Name] = ck
	}
	return w
}

func (b *browser) get(path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return b.do(req)
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return b.do(req)
}

func (b *browser) postJSON(path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return b.do(req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var errDatabaseDown = errors.New("database is down")

// fakeRedis implements the Get, Set and Del commands in memory.
type fakeRedis struct {
	redis.Cmdable
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := value.([]byte); ok {
		f.data[key] = string(v)
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}
