/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"net/http"

	"github.com/CacheRack/CacheRack/common/interfaces"
)

type HServer struct {
	Headers          Headers
	Routes           Routes
	Listen           string
	HTTPTimeout      int
	HTTPIdleTimeout  int
	HandlerTimeout   int
	MaxConcurrent    int
	PenaltyBoxMin    int
	PenaltyBoxMax    int
	LogFile          string // Optional, defaults to stdout
	DownFile         string
	HealthHandler    bool
	TestHandler      bool
	StrictSlash      bool
	DefaultHeaders   bool
	TLS              bool
	TLSCertFile      string
	TLSKeyFile       string
	TLSStrongCiphers bool
	Debug            bool
	server           *http.Server
	Logger           interfaces.Logger
	SEid             uint32 // Starting event ID for logging
}

// Route defines a route for the HTTP router. It can include a
// standard handler that returns a http.Handler or a JHandler
// that returns a JResponse structure. Raw handlers are used for
// endpoints that read or write raw bytes instead of JSON.
type Route struct {
	Name     string
	Methods  []string
	Pattern  string
	Handler  http.Handler
	JHandler JHandler
}

type Routes []Route

type Header struct {
	Key   string
	Value string
}

type Headers []Header

// Response provides a consistent set of fields for API responses
type Response struct {
	Status  string `json:"status"`            // Text Status
	Code    int    `json:"code"`              // HTTP status code
	Details string `json:"details,omitempty"` // optional response details
	Data    any    `json:"data,omitempty"`    // any type of data
}

// JHandler is the type of the function to be wrapped
type JHandler func(req *http.Request) JResponse

// JResponse is the structure returned by the wrapped function
type JResponse struct {
	HTTPCode int
	JSONData any
}
