/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestDumpWritesConfiguration(t *testing.T) {
	c := Null()
	set := c.NewSet("server")
	set.Set("listen", "127.0.0.1:8080")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w

	c.Dump()

	_ = w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if !strings.Contains(string(out), "listen") || !strings.Contains(string(out), "127.0.0.1:8080") {
		t.Fatalf("dump output missing configuration: %s", out)
	}
}
