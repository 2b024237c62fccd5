//go:build !windows

/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Code for operating systems other than windows

package uservice

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// start the service
func (s *Service) start() error {
	if s.logger == nil {
		return errors.New("refusing to start service with nil logger")
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	s.logger.Infof(s.SEid+1, "%s %s (build %d) service started", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
	s.logger.Debugf(s.SEid+1, "Debug logging enabled")

	if s.BackgroundFunc != nil {
		go s.BackgroundFunc(s.logger)
	}

	ticker := time.NewTicker(s.TaskTicker * time.Second)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-s.tickerStop:
				return
			case newInterval := <-s.tickerUpdate:
				ticker.Stop()
				ticker = time.NewTicker(newInterval * time.Second)
			}
		}
	}()

	// Call the start function if defined
	if s.StartFunc != nil {
		s.StartFunc(s.logger)
	}

	// Loop, call the TasksFunc, and wait for an exit request
	for {
		select {
		case <-ticker.C:
			if s.TasksFunc != nil {
				s.TasksFunc(s.logger)
			}
		case <-signalChan:
			s.logger.Infof(s.SEid+2, "%s %s (build %d) service stopping", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
			if s.StopFunc != nil {
				s.StopFunc(s.logger)
			}
			close(s.tickerStop)
			s.logger.Infof(s.SEid+3, "%s %s (build %d) service stopped", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
			return nil
		}
	}
}
