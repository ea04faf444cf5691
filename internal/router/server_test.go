package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/orderdesk/internal/auth"
	"github.com/wellywell/orderdesk/internal/config"
	"github.com/wellywell/orderdesk/internal/handlers"
	"github.com/wellywell/orderdesk/internal/handlers/mocks"
	"github.com/wellywell/orderdesk/internal/notify"
	"github.com/wellywell/orderdesk/internal/payment"
	paymentmocks "github.com/wellywell/orderdesk/internal/payment/mocks"
	"github.com/wellywell/orderdesk/internal/types"
)

func newTestServer(t *testing.T, storage handlers.Storage) *httptest.Server {
	registry := payment.NewRegistry(time.Minute)
	poller := payment.NewPoller(context.Background(), paymentmocks.NewLinkClient(t), registry, payment.DefaultPollerOptions())
	h := handlers.NewHandlerSet([]byte("secret"), 60, storage, poller, registry, notify.LogNotifier{}, nil)

	conf := &config.ServerConfig{RunAddress: "localhost:0", Secret: []byte("secret")}
	srv := httptest.NewServer(NewRouter(conf, h).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func cookieFor(t *testing.T, user string) *http.Cookie {
	w := httptest.NewRecorder()
	require.NoError(t, auth.SetAuthCookie(user, w, []byte("secret"), 60))
	res := w.Result()
	defer res.Body.Close()
	return res.Cookies()[0]
}

func TestNotAuthenticated(t *testing.T) {
	srv := newTestServer(t, mocks.NewStorage(t))

	testCases := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/api/user/orders"},
		{method: http.MethodGet, path: "/api/user/orders"},
		{method: http.MethodPost, path: "/api/user/orders/6ba7b810-9dad-11d1-80b4-00c04fd430c8/cancel"},
		{method: http.MethodPost, path: "/api/user/payments"},
		{method: http.MethodGet, path: "/api/user/payments"},
		{method: http.MethodDelete, path: "/api/user/payments"},
		{method: http.MethodGet, path: "/api/admin/orders"},
		{method: http.MethodPut, path: "/api/admin/orders/6ba7b810-9dad-11d1-80b4-00c04fd430c8/status"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			require.NoError(t, err)
			res, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		})
	}
}

func TestAdminRoutesForbiddenForCustomers(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.EXPECT().GetUser(mock.Anything, "owner").Return(&types.User{ID: 1, Username: "owner"}, nil)
	srv := newTestServer(t, storage)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/admin/orders", nil)
	require.NoError(t, err)
	req.AddCookie(cookieFor(t, "owner"))
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestPublicRoutes(t *testing.T) {
	srv := newTestServer(t, mocks.NewStorage(t))

	testCases := []struct {
		method       string
		path         string
		expectedCode int
	}{
		{http.MethodGet, "/api/statuses?audience=admin", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/user/register", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			require.NoError(t, err)
			res, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, tc.expectedCode, res.StatusCode)
		})
	}
}
