package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// DummyRegistry is a fake package registry for tests.
//
// Every path ends with the requested package name. For example, "/ok/npm" replies 200 and "/error/npm" replies 500.
type DummyRegistry struct {
	*httptest.Server

	requests atomic.Int32
}

// RunDummyRegistry starts a DummyRegistry that will be closed when the test finished.
func RunDummyRegistry(t testing.TB) *DummyRegistry {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/ok/npm", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"npm"}`))
	})
	mux.HandleFunc("/ok/left-pad", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"left-pad"}`))
	})
	mux.HandleFunc("/error/npm", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})
	mux.HandleFunc("/missing/npm", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/redirect/ok/npm", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok/npm", http.StatusFound)
	})
	mux.HandleFunc("/redirect/loop/npm", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/redirect/loop/npm", http.StatusFound)
	})
	mux.HandleFunc("/fast/npm", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
	})
	mux.HandleFunc("/slow/npm", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(400 * time.Millisecond)
	})
	mux.HandleFunc("/hang/npm", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(10 * time.Second):
		}
	})
	mux.HandleFunc("/user-agent/npm", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.UserAgent(), "nrs/") {
			http.Error(w, "unexpected user agent", http.StatusBadRequest)
		}
	})

	reg := &DummyRegistry{}
	reg.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reg.requests.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(reg.Close)

	return reg
}

// Requests returns how many requests the registry received.
func (r *DummyRegistry) Requests() int {
	return int(r.requests.Load())
}

// WriteCatalog writes a registry file into a temporary directory, and returns the path.
// Nothing will be written if content is empty.
func WriteCatalog(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "registries.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to prepare registry file: %s", err)
		}
	}
	return path
}
