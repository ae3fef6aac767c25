// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) handles server startup; this package
// only defines the settings it reads: the listen port, the API key enforced by the auth
// middleware, and how the static data caches are refreshed while the server runs.
//
// # Configuration
//
//	SERVER_PORT=8080
//	SERVER_API_KEY=secret
//	SERVER_SYNC_ON_START=true
//	SERVER_REFRESH_MINUTES=60
package server
