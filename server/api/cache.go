/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/CacheRack/CacheRack/common"
	"github.com/CacheRack/CacheRack/common/cache"
	"github.com/CacheRack/CacheRack/common/fields"
	"github.com/CacheRack/CacheRack/common/schema"
	"github.com/CacheRack/CacheRack/common/userver"
	"github.com/CacheRack/CacheRack/server/global"
	"github.com/CacheRack/CacheRack/server/registry"
)

// postCacheCreate creates a new named cache
func (a *API) postCacheCreate(req *http.Request) userver.JResponse {

	remoteIP := userver.RemoteIP(req)

	var request schema.CreateCacheRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		a.logger.Warning(2801, "create cache: invalid request body",
			fields.NewFields(fields.NewField("src_ip", remoteIP)))
		return jError(http.StatusBadRequest, "invalid request body")
	}

	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("cache", common.SingleLine(request.Name)),
		fields.NewField("cache_type", common.SingleLine(request.CacheType)))

	// Reject unknown policies before touching the registry
	if !cache.KnownPolicy(request.CacheType) {
		a.logger.Warning(2802, "create cache: unknown cache type", logFields)
		return jError(http.StatusBadRequest, "unknown cache type")
	}

	// Cheap pre-check to avoid constructing an instance for a name that is
	// already taken; Create re-checks atomically
	if a.registry.Exists(request.Name) {
		a.logger.Warning(2805, "create cache: already exists", logFields)
		return jError(http.StatusConflict, registry.ErrCacheAlreadyExists.Error())
	}

	err := a.registry.Create(request.Name, request.CacheType, a.cacheConfig(request))
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrEmptyName):
			a.logger.Warning(2803, "create cache: empty name", logFields)
			return jError(http.StatusBadRequest, err.Error())
		case errors.Is(err, cache.ErrUnknownPolicy):
			a.logger.Warning(2804, "create cache: unknown cache type", logFields)
			return jError(http.StatusBadRequest, err.Error())
		case errors.Is(err, registry.ErrCacheAlreadyExists):
			a.logger.Warning(2807, "create cache: already exists", logFields)
			return jError(http.StatusConflict, err.Error())
		default:
			a.logger.Error(2806, "create cache: "+err.Error(), logFields)
			return jError(http.StatusInternalServerError, "internal server error")
		}
	}

	a.logger.Info(2800, "cache created", logFields)
	return jOK("cache created")
}

// postCacheDelete removes a named cache and stops its background work
func (a *API) postCacheDelete(req *http.Request) userver.JResponse {

	remoteIP := userver.RemoteIP(req)

	var request schema.DeleteCacheRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		a.logger.Warning(2811, "delete cache: invalid request body",
			fields.NewFields(fields.NewField("src_ip", remoteIP)))
		return jError(http.StatusBadRequest, "invalid request body")
	}

	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("cache", common.SingleLine(request.Name)))

	if err := a.registry.Remove(request.Name); err != nil {
		if errors.Is(err, registry.ErrCacheNotFound) {
			a.logger.Warning(2812, "delete cache: not found", logFields)
			return jError(http.StatusNotFound, err.Error())
		}
		a.logger.Error(2813, "delete cache: "+err.Error(), logFields)
		return jError(http.StatusInternalServerError, "internal server error")
	}

	a.logger.Info(2810, "cache deleted", logFields)
	return jOK("cache deleted")
}

// cacheConfig translates a create request into engine configuration. The
// ttl fields are seconds; a nil pointer means the server default applies,
// while an explicit zero is honored as zero.
func (a *API) cacheConfig(request schema.CreateCacheRequest) cache.Config {
	cfg := cache.Config{
		Capacity:      request.Capacity,
		TTL:           time.Duration(a.conf.SC.Get(global.ConfigDefaultTTL).Int()) * time.Second,
		CheckInterval: time.Duration(a.conf.SC.Get(global.ConfigDefaultCheckInterval).Int()) * time.Second,
		Jitter:        time.Duration(a.conf.SC.Get(global.ConfigDefaultJitter).Int()) * time.Second,
	}

	if request.TTL != nil {
		cfg.TTL = time.Duration(*request.TTL) * time.Second
	}
	if request.CheckInterval != nil {
		cfg.CheckInterval = time.Duration(*request.CheckInterval) * time.Second
	}
	if request.Jitter != nil {
		cfg.Jitter = time.Duration(*request.Jitter) * time.Second
	}
	return cfg
}

// jOK builds a 200 response with the supplied details
func jOK(details string) userver.JResponse {
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: details}}
}

// jError builds an error response with the supplied code and details
func jError(code int, details string) userver.JResponse {
	return userver.JResponse{
		HTTPCode: code,
		JSONData: schema.APIGenericResponse{
			Status:  schema.APIStatusError,
			Code:    code,
			Details: details}}
}
