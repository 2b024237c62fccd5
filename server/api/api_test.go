/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CacheRack/CacheRack/common/interfaces"
	"github.com/CacheRack/CacheRack/common/null"
	"github.com/CacheRack/CacheRack/common/schema"
	"github.com/CacheRack/CacheRack/server/global"
)

// newTestAPI returns an API wired to an in-memory config and a router
// covering the full route table, without binding a listener.
func newTestAPI(t *testing.T) (*API, http.Handler) {
	t.Helper()

	a := New(global.NullConfig(), null.Logger())
	s, err := a.newServer("127.0.0.1:0")
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	t.Cleanup(a.registry.Close)
	return a, s.Router()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateDeleteCache(t *testing.T) {
	_, router := newTestAPI(t)

	w := doJSON(t, router, "POST", schema.EndpointCacheCreate,
		schema.CreateCacheRequest{Name: "sessions", CacheType: "lru", Capacity: 10})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate name must conflict regardless of type
	w = doJSON(t, router, "POST", schema.EndpointCacheCreate,
		schema.CreateCacheRequest{Name: "sessions", CacheType: "fifo", Capacity: 5})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate create: expected 409, got %d", w.Code)
	}

	w = doJSON(t, router, "POST", schema.EndpointCacheDelete,
		schema.DeleteCacheRequest{Name: "sessions"})
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	w = doJSON(t, router, "POST", schema.EndpointCacheDelete,
		schema.DeleteCacheRequest{Name: "sessions"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing: expected 404, got %d", w.Code)
	}
}

func TestCreateCacheValidation(t *testing.T) {
	_, router := newTestAPI(t)

	// Unknown type, including wrong case
	for _, cacheType := range []string{"arc", "LRU", ""} {
		w := doJSON(t, router, "POST", schema.EndpointCacheCreate,
			schema.CreateCacheRequest{Name: "c1", CacheType: cacheType, Capacity: 10})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("type %q: expected 400, got %d", cacheType, w.Code)
		}
	}

	// Empty name
	w := doJSON(t, router, "POST", schema.EndpointCacheCreate,
		schema.CreateCacheRequest{Name: "", CacheType: "lru", Capacity: 10})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty name: expected 400, got %d", w.Code)
	}

	// Malformed body
	req := httptest.NewRequest("POST", schema.EndpointCacheCreate, bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", rec.Code)
	}
}

func TestValueLifecycle(t *testing.T) {
	_, router := newTestAPI(t)

	w := doJSON(t, router, "POST", schema.EndpointCacheCreate,
		schema.CreateCacheRequest{Name: "kv", CacheType: "lru", Capacity: 10})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", w.Code)
	}

	// PUT a value
	w = doRaw(t, router, "PUT", "/cache/kv/foo", []byte("bar"))
	if w.Code != http.StatusOK {
		t.Fatalf("put: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// GET returns the raw bytes
	w = doRaw(t, router, "GET", "/cache/kv/foo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	if w.Body.String() != "bar" {
		t.Fatalf("get: expected raw body bar, got %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/octet-stream" {
		t.Fatalf("get: expected octet-stream, got %q", ct)
	}

	// DELETE the key, then GET must 404
	w = doRaw(t, router, "DELETE", "/cache/kv/foo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete key: expected 200, got %d", w.Code)
	}
	w = doRaw(t, router, "GET", "/cache/kv/foo", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}

	// Deleting an absent key is idempotent
	w = doRaw(t, router, "DELETE", "/cache/kv/foo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete absent key: expected 200, got %d", w.Code)
	}

	// Stats reflect the traffic: one hit, one miss, empty cache
	w = doRaw(t, router, "GET", "/cache/kv/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	var stats interfaces.CacheStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("stats decode: %v", err)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("stats: expected 1 hit and 1 miss, got %+v", stats)
	}
	if stats.Size != 0 {
		t.Fatalf("stats: expected size 0, got %d", stats.Size)
	}
	if stats.Capacity != 10 {
		t.Fatalf("stats: expected capacity 10, got %d", stats.Capacity)
	}

	// The counters must sit at the top level of the body, not inside an
	// envelope
	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("stats raw decode: %v", err)
	}
	for _, field := range []string{"hits", "misses", "size", "capacity"} {
		if _, ok := raw[field]; !ok {
			t.Fatalf("stats: top-level field %q missing in %s", field, w.Body.String())
		}
	}
	if _, ok := raw["status"]; ok {
		t.Fatalf("stats: unexpected envelope in %s", w.Body.String())
	}
}

func TestValueUnknownCache(t *testing.T) {
	_, router := newTestAPI(t)

	for _, tc := range []struct {
		method string
		body   []byte
	}{
		{"GET", nil},
		{"PUT", []byte("v")},
		{"DELETE", nil},
	} {
		w := doRaw(t, router, tc.method, "/cache/nope/key", tc.body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s on unknown cache: expected 404, got %d", tc.method, w.Code)
		}
		var resp schema.APIGenericResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: error body is not JSON: %v", tc.method, err)
		}
		if resp.Status != schema.APIStatusError {
			t.Fatalf("%s: expected error status, got %q", tc.method, resp.Status)
		}
	}
}

func TestStatsUnknownCache(t *testing.T) {
	_, router := newTestAPI(t)

	w := doRaw(t, router, "GET", "/cache/nope/stats", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCacheList(t *testing.T) {
	_, router := newTestAPI(t)

	for _, name := range []string{"zeta", "alpha"} {
		w := doJSON(t, router, "POST", schema.EndpointCacheCreate,
			schema.CreateCacheRequest{Name: name, CacheType: "fifo", Capacity: 2})
		if w.Code != http.StatusOK {
			t.Fatalf("create %s: expected 200, got %d", name, w.Code)
		}
	}

	w := doRaw(t, router, "GET", schema.EndpointCache, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list schema.APICacheListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list decode: %v", err)
	}
	if len(list.Caches) != 2 || list.Caches[0] != "alpha" || list.Caches[1] != "zeta" {
		t.Fatalf("list: expected sorted [alpha zeta], got %v", list.Caches)
	}
}

func TestTTLCreateWithExplicitZero(t *testing.T) {
	_, router := newTestAPI(t)

	// An explicit zero ttl is honored, not replaced with the default
	zero := uint64(0)
	w := doJSON(t, router, "POST", schema.EndpointCacheCreate,
		schema.CreateCacheRequest{Name: "flash", CacheType: "ttl", Capacity: 10, TTL: &zero})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", w.Code)
	}

	w = doRaw(t, router, "PUT", "/cache/flash/k", []byte("v"))
	if w.Code != http.StatusOK {
		t.Fatalf("put: expected 200, got %d", w.Code)
	}
	w = doRaw(t, router, "GET", "/cache/flash/k", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected zero-ttl entry to be expired, got %d", w.Code)
	}
}

func TestLRUEvictionOverHTTP(t *testing.T) {
	_, router := newTestAPI(t)

	w := doJSON(t, router, "POST", schema.EndpointCacheCreate,
		schema.CreateCacheRequest{Name: "small", CacheType: "lru", Capacity: 2})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", w.Code)
	}

	for i := 0; i < 3; i++ {
		w = doRaw(t, router, "PUT", fmt.Sprintf("/cache/small/k%d", i), []byte("v"))
		if w.Code != http.StatusOK {
			t.Fatalf("put k%d: expected 200, got %d", i, w.Code)
		}
	}

	// k0 is the least recently used entry and must be gone
	w = doRaw(t, router, "GET", "/cache/small/k0", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected k0 to be evicted, got %d", w.Code)
	}
	w = doRaw(t, router, "GET", "/cache/small/k2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected k2 to remain, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestAPI(t)

	w := doRaw(t, router, "GET", schema.EndpointHealth, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}
}
