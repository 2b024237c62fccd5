/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"net/http"

	"github.com/CacheRack/CacheRack/common"
	"github.com/CacheRack/CacheRack/common/fields"
	"github.com/CacheRack/CacheRack/common/schema"
	"github.com/CacheRack/CacheRack/common/userver"
)

// getCacheStats returns the counters for a single cache
func (a *API) getCacheStats(req *http.Request) userver.JResponse {

	name := userver.GetParam(req, "name")
	logFields := fields.NewFields(
		fields.NewField("src_ip", userver.RemoteIP(req)),
		fields.NewField("cache", common.SingleLine(name)))

	c, err := a.registry.Lookup(name)
	if err != nil {
		a.logger.Warning(2831, "stats: cache not found", logFields)
		return jError(http.StatusNotFound, err.Error())
	}

	// The success body is the bare counters object, not the usual
	// status/code envelope; clients read hits/misses/size/capacity at the
	// top level. Errors still use the standard envelope.
	a.logger.Debug(2830, "stats", logFields)
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: c.Stats()}
}

// getCacheList returns the registered cache names in sorted order
func (a *API) getCacheList(req *http.Request) userver.JResponse {

	a.logger.Debug(2835, "list caches", fields.NewFields(
		fields.NewField("src_ip", userver.RemoteIP(req))))

	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APICacheListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Caches: a.registry.Names()}}
}
