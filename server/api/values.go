/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Value endpoints deliberately bypass the JSON wrapper: a stored value is
// opaque bytes and is returned exactly as it was written. Errors still use
// the standard JSON error body.

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/CacheRack/CacheRack/common"
	"github.com/CacheRack/CacheRack/common/fields"
	"github.com/CacheRack/CacheRack/common/schema"
	"github.com/CacheRack/CacheRack/common/userver"
	"github.com/CacheRack/CacheRack/server/global"
)

// getValue returns a handler for GET /cache/{name}/{key}
func (a *API) getValue() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := userver.GetParam(req, "name")
		key := userver.GetParam(req, "key")

		c, err := a.registry.Lookup(name)
		if err != nil {
			a.valueError(w, req, http.StatusNotFound, "cache not found", name, key, 2821)
			return
		}

		value, ok := c.Get(key)
		if !ok {
			a.valueError(w, req, http.StatusNotFound, "key not found", name, key, 2822)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(value)
	})
}

// putValue returns a handler for PUT /cache/{name}/{key}. The request body
// is the raw value.
func (a *API) putValue() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := userver.GetParam(req, "name")
		key := userver.GetParam(req, "key")

		c, err := a.registry.Lookup(name)
		if err != nil {
			a.valueError(w, req, http.StatusNotFound, "cache not found", name, key, 2824)
			return
		}

		maxBytes := int64(a.conf.SC.Get(global.ConfigMaxValueBytes).Int())
		body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				a.valueError(w, req, http.StatusRequestEntityTooLarge, "value too large", name, key, 2825)
				return
			}
			a.valueError(w, req, http.StatusBadRequest, "error reading request body", name, key, 2826)
			return
		}

		c.Set(key, body)
		a.writeJSON(w, http.StatusOK, schema.APIGenericResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "value stored"})
	})
}

// deleteValue returns a handler for DELETE /cache/{name}/{key}. Removal is
// idempotent: deleting an absent key succeeds, only a missing cache is an
// error.
func (a *API) deleteValue() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := userver.GetParam(req, "name")
		key := userver.GetParam(req, "key")

		c, err := a.registry.Lookup(name)
		if err != nil {
			a.valueError(w, req, http.StatusNotFound, "cache not found", name, key, 2828)
			return
		}

		c.Remove(key)
		a.writeJSON(w, http.StatusOK, schema.APIGenericResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "value removed"})
	})
}

// valueError logs and writes a JSON error body for a value endpoint
func (a *API) valueError(w http.ResponseWriter, req *http.Request, code int, details string, name string, key string, eid uint32) {
	a.logger.Warning(eid, details, fields.NewFields(
		fields.NewField("src_ip", userver.RemoteIP(req)),
		fields.NewField("cache", common.SingleLine(name)),
		fields.NewField("key", common.SingleLine(key))))

	a.writeJSON(w, code, schema.APIGenericResponse{
		Status:  schema.APIStatusError,
		Code:    code,
		Details: details})
}

func (a *API) writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Warningf(2829, "error encoding response: %s", err.Error())
	}
}
