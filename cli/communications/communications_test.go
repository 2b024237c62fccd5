/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CacheRack/CacheRack/cli/global"
)

func TestRoundTrips(t *testing.T) {

	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("response"))
	}))
	defer ts.Close()

	global.ServerURL = ts.URL
	c := New()

	code, body, err := c.Post("/cache/create", map[string]string{"name": "a"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if code != http.StatusOK || string(body) != "response" {
		t.Fatalf("post: unexpected response %d %q", code, body)
	}
	if gotMethod != "POST" || gotPath != "/cache/create" {
		t.Fatalf("post: server saw %s %s", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("post: expected json content type, got %q", gotContentType)
	}

	// Put sends the payload verbatim with an octet-stream content type
	_, _, err = c.Put("/cache/kv/foo", []byte{0x00, 0xff, 0x10})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if gotMethod != "PUT" || gotContentType != "application/octet-stream" {
		t.Fatalf("put: server saw %s with content type %q", gotMethod, gotContentType)
	}
	if len(gotBody) != 3 || gotBody[0] != 0x00 || gotBody[1] != 0xff || gotBody[2] != 0x10 {
		t.Fatalf("put: body was altered: %v", gotBody)
	}

	if _, _, err = c.Get("/cache"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotMethod != "GET" {
		t.Fatalf("get: server saw %s", gotMethod)
	}

	if _, _, err = c.Delete("/cache/kv/foo"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != "DELETE" {
		t.Fatalf("delete: server saw %s", gotMethod)
	}
}
