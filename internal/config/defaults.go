package config

const (
	defaultDataDir         = "~/.local/share/costar/imdb"
	defaultLogDir          = "~/.local/share/costar/logs"
	defaultBaseURL         = "https://datasets.imdbws.com/"
	defaultDownloadTimeout = 300
	defaultActorA          = "Bill Murray"
	defaultActorB          = "Owen Wilson"
	defaultMaxList         = 10
	defaultColorMode       = "auto"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Datasets: Datasets{
			BaseURL:         defaultBaseURL,
			DownloadTimeout: defaultDownloadTimeout,
		},
		Compare: Compare{
			ActorA:  defaultActorA,
			ActorB:  defaultActorB,
			MaxList: defaultMaxList,
		},
		Output: Output{
			Color: defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
