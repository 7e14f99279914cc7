package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/spicetable/admin-console/internal/token"
)

func newTestClient(t *testing.T, baseURL string, tokens token.Store, onUnauthorized func()) *Client {
	t.Helper()
	client, err := New(Config{
		BaseURL:        baseURL,
		Tokens:         tokens,
		OnUnauthorized: onUnauthorized,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestNew_Validation(t *testing.T) {
	tokens := token.NewMemoryStore()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty base URL", Config{Tokens: tokens}},
		{"missing scheme", Config{BaseURL: "localhost:8080", Tokens: tokens}},
		{"bad scheme", Config{BaseURL: "ftp://example.com", Tokens: tokens}},
		{"nil token store", Config{BaseURL: "http://localhost:8080"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Error("New() should fail")
			}
		})
	}
}

func TestRequest_BearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tokens := token.NewMemoryStore()
	client := newTestClient(t, server.URL, tokens, nil)

	// No token stored: no Authorization header at all.
	if _, err := client.Get(context.Background(), "/admin/menu/categories"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want unset", gotAuth)
	}

	// Token stored: attached as a bearer credential.
	tokens.SetToken("tok-1")
	if _, err := client.Get(context.Background(), "/admin/menu/categories"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", gotAuth)
	}
}

func TestRequest_UnauthorizedEvictsSession(t *testing.T) {
	var lastAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	hookFired := false
	tokens := token.NewMemoryStore()
	tokens.SetToken("stale")
	client := newTestClient(t, server.URL, tokens, func() { hookFired = true })

	_, err := client.Get(context.Background(), "/admin/orders")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Get() error = %v, want ErrUnauthorized", err)
	}
	if !hookFired {
		t.Error("OnUnauthorized hook should fire on 401")
	}
	if tokens.Token() != "" {
		t.Errorf("token = %q, should be cleared after 401", tokens.Token())
	}

	// A subsequent request in the same session must not carry the old token.
	client.Get(context.Background(), "/admin/orders")
	if lastAuth != "" {
		t.Errorf("Authorization on follow-up = %q, want unset", lastAuth)
	}
}

func TestRequest_FailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server message", 400, `{"message":"name is required"}`, "name is required"},
		{"no message field", 500, `{"success":false}`, "Request failed with status 500"},
		{"non-JSON body", 502, "Bad Gateway", "Request failed with status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, token.NewMemoryStore(), nil)

			_, err := client.Get(context.Background(), "/admin/orders")
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("Get() error = %v, want *RequestError", err)
			}
			if reqErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", reqErr.StatusCode, tt.status)
			}
			if reqErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", reqErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestRequest_InvalidJSONDegradesToEmptyObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, token.NewMemoryStore(), nil)

	payload, err := client.Get(context.Background(), "/admin/orders")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(payload) != "{}" {
		t.Errorf("payload = %s, want {}", payload)
	}
}

func TestRequest_NetworkError(t *testing.T) {
	// Reserve a port and close it so the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client := newTestClient(t, addr, token.NewMemoryStore(), nil)

	_, err := client.Get(context.Background(), "/admin/orders")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Get() error = %v, want *NetworkError", err)
	}
}

func TestRequest_JSONBody(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, token.NewMemoryStore(), nil)

	_, err := client.Post(context.Background(), "/admin/menu/category", map[string]any{"name": "Starters"})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gjson.Get(gotBody, "name").String() != "Starters" {
		t.Errorf("body = %s, want name Starters", gotBody)
	}
}

func TestRequest_MultipartBody(t *testing.T) {
	var gotContentType, gotName, gotImage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm() error = %v", err)
			return
		}
		gotName = r.FormValue("name")
		if file, header, err := r.FormFile("image"); err == nil {
			gotImage = header.Filename
			file.Close()
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, token.NewMemoryStore(), nil)

	form := NewMultipartForm().
		AddField("name", "Pasta").
		AddFile("image", "pasta.jpg", strings.NewReader("jpeg-bytes"))

	_, err := client.Request(context.Background(), http.MethodPost, "/admin/menu/categories/c1/items", form, nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q, want multipart/form-data with boundary", gotContentType)
	}
	if gotName != "Pasta" {
		t.Errorf("name field = %q, want Pasta", gotName)
	}
	if gotImage != "pasta.jpg" {
		t.Errorf("image filename = %q, want pasta.jpg", gotImage)
	}
}
