package console

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicetable/admin-console/internal/adminapi"
	"github.com/spicetable/admin-console/internal/cli"
	"github.com/spicetable/admin-console/internal/config"
	"github.com/spicetable/admin-console/internal/restclient"
	"github.com/spicetable/admin-console/internal/token"
)

type fixture struct {
	console *Console
	tokens  *token.MemoryStore
	out     *bytes.Buffer
}

func newFixture(t *testing.T, handler http.Handler, input string) *fixture {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := token.NewMemoryStore()
	httpClient, err := restclient.New(restclient.Config{
		BaseURL: server.URL,
		Tokens:  tokens,
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	term := cli.New(strings.NewReader(input), out)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{BaseURL: server.URL, PageSize: 20, ItemsPageSize: 10}
	console := New(adminapi.New(httpClient), tokens, cfg, term, log)

	return &fixture{console: console, tokens: tokens, out: out}
}

func TestLogin_SuccessStoresTokenAndLandsOnDashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"jwt-1"}`))
	})
	mux.HandleFunc("/admin/analytics/overview", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalOrders":3,"totalRevenue":99.5}`))
	})

	f := newFixture(t, mux, "")

	err := f.console.Run(context.Background(), []string{"login", "-email", "a@b.c", "-password", "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", f.tokens.Token())
	assert.Contains(t, f.out.String(), "Login successful")
	assert.Contains(t, f.out.String(), "Dashboard", "successful login lands on the dashboard")
}

func TestLogin_FailureStoresNothing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	f := newFixture(t, mux, "")

	err := f.console.Run(context.Background(), []string{"login", "-email", "a@b.c", "-password", "nope"})
	require.Error(t, err)
	assert.Empty(t, f.tokens.Token(), "failed login must not store a token")
	assert.Contains(t, f.out.String(), "Invalid credentials")
	assert.NotContains(t, f.out.String(), "Dashboard", "failed login must not navigate")
}

func TestDeleteCategory_CancelledConfirmationIssuesNoRequest(t *testing.T) {
	deletes := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/menu/category/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
		}
		w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("/admin/menu/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"categories":[]}`))
	})

	f := newFixture(t, mux, "n\n")

	err := f.console.Run(context.Background(), []string{"categories", "-delete", "c1"})
	require.NoError(t, err)
	assert.Zero(t, deletes, "cancelled confirmation must not issue a DELETE")
	assert.Contains(t, f.out.String(), "Deletion cancelled")
}

func TestDeleteCategory_ConfirmedDeletesThenRefetches(t *testing.T) {
	deletes, lists := 0, 0
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/menu/category/c1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
		}
		w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("/admin/menu/categories", func(w http.ResponseWriter, r *http.Request) {
		lists++
		w.Write([]byte(`{"categories":[]}`))
	})

	f := newFixture(t, mux, "y\n")

	err := f.console.Run(context.Background(), []string{"categories", "-delete", "c1"})
	require.NoError(t, err)
	assert.Equal(t, 1, deletes)
	assert.Equal(t, 1, lists, "mutation must be followed by a list re-fetch")
}

func TestOrders_IllegalTransitionNeverReachesBackend(t *testing.T) {
	updates := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/orders/o1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"order":{"_id":"o1","status":"Pending","totalAmount":10,"items":[]}}`))
	})
	mux.HandleFunc("/admin/orders/o1/status", func(w http.ResponseWriter, r *http.Request) {
		updates++
		w.Write([]byte(`{"success":true}`))
	})

	f := newFixture(t, mux, "")

	err := f.console.Run(context.Background(), []string{"orders", "-id", "o1", "-set-status", "completed"})
	require.Error(t, err)
	assert.Zero(t, updates, "gated transition must not reach the backend")
	assert.Contains(t, err.Error(), "cannot move order")
}

func TestOrders_LegalTransitionUpdatesThenRefetches(t *testing.T) {
	updates, gets := 0, 0
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/orders/o1", func(w http.ResponseWriter, r *http.Request) {
		gets++
		w.Write([]byte(`{"order":{"_id":"o1","status":"Pending","totalAmount":10,"items":[]}}`))
	})
	mux.HandleFunc("/admin/orders/o1/status", func(w http.ResponseWriter, r *http.Request) {
		updates++
		w.Write([]byte(`{"success":true}`))
	})

	f := newFixture(t, mux, "")

	err := f.console.Run(context.Background(), []string{"orders", "-id", "o1", "-set-status", "preparing"})
	require.NoError(t, err)
	assert.Equal(t, 1, updates)
	// One fetch to gate the transition, one to re-render after the update.
	assert.Equal(t, 2, gets)
}

func TestOrders_TerminalStateOffersNoTransitions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/orders/o9", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"order":{"_id":"o9","status":"Completed","totalAmount":10,"items":[]}}`))
	})

	f := newFixture(t, mux, "")

	err := f.console.Run(context.Background(), []string{"orders", "-id", "o9"})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "No further status changes available")
}

func TestExpiredSessionPointsBackToLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	f := newFixture(t, mux, "")
	require.NoError(t, f.tokens.SetToken("stale"))

	err := f.console.Run(context.Background(), []string{"orders"})
	require.Error(t, err)
	assert.Empty(t, f.tokens.Token(), "401 must clear the stored token")
	assert.Contains(t, f.out.String(), "admin-console login")
}

func TestUnknownScreen(t *testing.T) {
	f := newFixture(t, http.NewServeMux(), "")

	err := f.console.Run(context.Background(), []string{"settings"})
	require.Error(t, err)
	assert.Contains(t, f.out.String(), "unknown screen")
}
