// Package server holds the HTTP query API configuration.
//
// The start command builds the Fiber application; this package only defines
// the settings it reads: listen port, API key and whether /metrics is served.
package server
