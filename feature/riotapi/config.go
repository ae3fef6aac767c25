package riotapi

// Config holds configuration for the dynamic game API.
type Config struct {
	// APIKey is sent as X-Riot-Token. Keep it server side.
	APIKey string `mapstructure:"api_key" default:""`
	// Region selects the platform host (euw1, na1, kr, ...).
	Region string `mapstructure:"region" default:"euw1"`
	// BaseURL overrides the host derived from Region.
	BaseURL string `mapstructure:"base_url" default:""`
}
