package datasync

// Config holds configuration for the remote static data source.
type Config struct {
	// BaseURL is the root of the static data CDN.
	BaseURL string `mapstructure:"base_url" default:"https://ddragon.leagueoflegends.com"`
	// Locale selects the language of the data files.
	Locale string `mapstructure:"locale" default:"en_US"`
	// Version pins the data version. Empty follows the newest published version.
	Version string `mapstructure:"version" default:""`
	// Format is the payload shape served by BaseURL (api, simple).
	Format string `mapstructure:"format" default:"api"`
}
