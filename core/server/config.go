package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncOnStart brings every cache up to date before the server starts listening.
	SyncOnStart bool `mapstructure:"sync_on_start" default:"true"`
	// RefreshMinutes is the background refresh period. Zero disables the refresher.
	RefreshMinutes int `mapstructure:"refresh_minutes" default:"0"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// RefreshInterval converts RefreshMinutes into a duration, zero when disabled.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshMinutes <= 0 {
		return 0
	}
	return time.Duration(c.RefreshMinutes) * time.Minute
}
