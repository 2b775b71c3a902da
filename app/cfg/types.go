package cfg

type Cfg struct {
	// File locations
	ConfigPath string
	MediaDir   string
	CachePath  string

	// HTTP behavior
	UserAgent string

	// Application metadata
	Verbose int
	Version string
}
