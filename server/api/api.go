//
// Copyright (c) 2025-2026 CacheRack Project
// Please see the LICENSE file for details
//

package api

import (
	"errors"
	"time"

	"github.com/CacheRack/CacheRack/common/interfaces"
	"github.com/CacheRack/CacheRack/common/schema"
	"github.com/CacheRack/CacheRack/common/userver"
	"github.com/CacheRack/CacheRack/server/global"
	"github.com/CacheRack/CacheRack/server/registry"
)

type API struct {
	logger   interfaces.Logger
	conf     *global.ServerConfig
	registry *registry.Registry
}

func New(config *global.ServerConfig, logger interfaces.Logger) *API {
	return &API{logger: logger, conf: config, registry: registry.New()}
}

// Registry returns the cache registry so that shutdown code can close it
func (a *API) Registry() *registry.Registry {
	return a.registry
}

func (a *API) Start() {

	// Loop until stopped
	for {
		// Start the API
		a.logger.Infof(2001, "Starting API")
		err := a.startAPI()
		if err != nil {
			a.logger.Errorf(2003, "API error: %s", err.Error())
		} else {
			a.logger.Infof(2002, "API stopped")
			return
		}

		// Sleep before trying again
		time.Sleep(10 * time.Second)
	}
}

func (a *API) startAPI() error {

	// Obtain the listen address and check for command line override
	listen := a.conf.SC.Get(global.ConfigListen).String()
	if global.ListenOverride != "" {
		listen = global.ListenOverride
	}

	s, err := a.newServer(listen)
	if err != nil {
		return err
	}

	// Start the server - this will block until the server is stopped
	return s.Start()
}

// newServer creates a userver instance with the full route table. It is
// separate from startAPI so that tests can build the router without
// binding a listener.
func (a *API) newServer(listen string) (*userver.HServer, error) {

	s, err := userver.New(
		userver.WithLogger(a.logger),
		userver.WithSEid(2500),
		userver.WithListen(listen),
		userver.WithHTTPTimeout(a.conf.SC.Get(global.ConfigHTTPTimeout).Int()),
		userver.WithHTTPIdleTimeout(a.conf.SC.Get(global.ConfigHTTPIdleTimeout).Int()),
		userver.WithHandlerTimeout(a.conf.SC.Get(global.ConfigHandlerTimeout).Int()),
		userver.WithMaxConcurrent(a.conf.SC.Get(global.ConfigMaxConcurrent).Int()),
		userver.WithPenaltyBox(
			a.conf.SC.Get(global.ConfigPenaltyBoxMin).Int(),
			a.conf.SC.Get(global.ConfigPenaltyBoxMax).Int()),
		userver.WithDebug(global.Debug))

	if err != nil {
		return nil, err
	}

	if s == nil {
		return nil, errors.New("userver.New() returned nil")
	}

	s.AddRoute(userver.Route{
		Name:     "cacheCreate",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointCacheCreate,
		JHandler: a.postCacheCreate})

	s.AddRoute(userver.Route{
		Name:     "cacheDelete",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointCacheDelete,
		JHandler: a.postCacheDelete})

	s.AddRoute(userver.Route{
		Name:     "cacheList",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointCache,
		JHandler: a.getCacheList})

	// The stats route must be registered before the key route because
	// mux matches in registration order and {key} would swallow "stats"
	s.AddRoute(userver.Route{
		Name:     "cacheStats",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointCache + "/{name}/stats",
		JHandler: a.getCacheStats})

	s.AddRoute(userver.Route{
		Name:    "valueGet",
		Methods: []string{"GET"},
		Pattern: schema.EndpointCache + "/{name}/{key}",
		Handler: a.getValue()})

	s.AddRoute(userver.Route{
		Name:    "valuePut",
		Methods: []string{"PUT"},
		Pattern: schema.EndpointCache + "/{name}/{key}",
		Handler: a.putValue()})

	s.AddRoute(userver.Route{
		Name:    "valueDelete",
		Methods: []string{"DELETE"},
		Pattern: schema.EndpointCache + "/{name}/{key}",
		Handler: a.deleteValue()})

	return s, nil
}
