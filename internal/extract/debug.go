package extract

import "log"

var debugLogsEnabled bool

func SetDebug(enabled bool) {
	debugLogsEnabled = enabled
}

func debugf(format string, args ...any) {
	if debugLogsEnabled {
		log.Printf(format, args...)
	}
}

// warnf reports recoverable per-question parse problems. Unlike debugf it is
// always on: a dropped question must be visible to the caller.
func warnf(format string, args ...any) {
	log.Printf("warning: "+format, args...)
}
