/******************************************************************************
 * Copyright (c) 2025-2026 CacheRack Project                                  *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Code for windows
//go:build windows

package ulogger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/windows/svc/eventlog"

	"github.com/CacheRack/CacheRack/common/interfaces"
)

// windowsEID is the event ID for the custom event log source
// Using other event IDs will create messy log entries unless a DLL with
// message strings is created and registered with the event log source
const windowsEID = 1

type CRLogger struct {
	logger           *eventlog.Log
	fileHandle       *os.File
	logfile          string
	logStdout        bool
	logWindowsEvents bool
	debug            bool
	prefix           string
	retainDays       int
	currentLogDate   string
}

// osNew creates a new instance of CRLogger.
func (u *CRLogger) osNew() (*CRLogger, error) {
	var err error
	var fh *os.File

	if u.logWindowsEvents {
		_ = eventlog.InstallAsEventCreate(u.prefix, eventlog.Info|eventlog.Warning|eventlog.Error)
	}

	u.logger, err = eventlog.Open(u.prefix)
	if err != nil {
		u.logger = nil
	}

	if u.logfile != "" {
		u.logfile = filepath.Clean(u.logfile)
		dir := filepath.Dir(u.logfile)
		if err = os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// Check if the log file exists and get its modification date
		if _, err = os.Stat(u.logfile); err == nil {
			var fileInfo os.FileInfo
			fileInfo, err = os.Stat(u.logfile)
			if err != nil {
				return nil, fmt.Errorf("failed to get log file info: %w", err)
			}
			u.currentLogDate = fileInfo.ModTime().Format("20060102")
		} else {
			u.currentLogDate = time.Now().Format("20060102")
		}

		fh, err = os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			u.fileHandle = nil
			// If unable to log to file, force stdout logging
			u.logStdout = true
		} else {
			u.fileHandle = fh
			_ = os.Chmod(u.logfile, 0644)
		}
	} else {
		u.logStdout = true
	}
	return u, nil
}

// Close closes the logger.
func (u *CRLogger) Close() {
	if u.logger != nil {
		_ = u.logger.Close()
	}
	if u.fileHandle != nil {
		_ = u.fileHandle.Sync()
		_ = u.fileHandle.Close()
	}
}

// formatMessage formats the log message with a timestamp.
func (u *CRLogger) formatMessage(eid uint32, level string, message string, fields interfaces.Fields) string {
	msg := fmt.Sprintf("%s %s [%s] %04d %s",
		time.Now().Format("2006-01-02 15:04:05"),
		u.prefix, level, eid, message)

	if fields != nil {
		msg += ": " + fields.ToText()
	}

	return msg
}

// writeLog writes a log message and handles rotation if necessary.
func (u *CRLogger) writeLog(eid uint32, level string, message string, fields interfaces.Fields) {

	// Suppress debug messages unless debug logging is enabled
	if level == "DEBUG" && !u.debug {
		return
	}

	// Rotate logs if necessary
	err := u.rotateLogs()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log rotation error: %s\n", err.Error())
	}

	tmp := u.formatMessage(eid, level, message, fields) + "\n"

	//  Write and flush
	if u.fileHandle != nil {
		_, _ = u.fileHandle.WriteString(tmp)
		_ = u.fileHandle.Sync()
	}

	if u.logStdout {
		_, _ = os.Stdout.Write([]byte(tmp))
	}

	// Send to the windows event log if enabled
	if u.logWindowsEvents && u.logger != nil {
		switch level {
		case "WARNING":
			_ = u.logger.Warning(windowsEID, tmp)
		case "ERROR", "FATAL":
			_ = u.logger.Error(windowsEID, tmp)
		default:
			_ = u.logger.Info(windowsEID, tmp)
		}
	}
}

// Debug logs a debug message.
func (u *CRLogger) Debug(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "DEBUG", message, fields)
}

// Info logs an informational message.
func (u *CRLogger) Info(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "INFO", message, fields)
}

// Warning logs a warning message.
func (u *CRLogger) Warning(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "WARNING", message, fields)
}

// Error logs an error message.
func (u *CRLogger) Error(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "ERROR", message, fields)
}

// Fatal logs a fatal error message.
func (u *CRLogger) Fatal(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "FATAL", message, fields)
}

// Debugf logs a formatted debug message.
func (u *CRLogger) Debugf(eid uint32, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	u.writeLog(eid, "DEBUG", message, nil)
}

// Infof logs a formatted informational message.
func (u *CRLogger) Infof(eid uint32, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	u.writeLog(eid, "INFO", message, nil)
}

// Warningf logs a formatted warning message.
func (u *CRLogger) Warningf(eid uint32, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	u.writeLog(eid, "WARNING", message, nil)
}

// Errorf logs a formatted error message.
func (u *CRLogger) Errorf(eid uint32, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	u.writeLog(eid, "ERROR", message, nil)
}

// Fatalf logs a formatted fatal message.
func (u *CRLogger) Fatalf(eid uint32, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	u.writeLog(eid, "FATAL", message, nil)
}
