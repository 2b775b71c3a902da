package cfg

import (
	"cmp"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	ConfigPath string `long:"config" env:"TALKFEED_CONFIG" default:"config.yaml" description:"Path to the configuration file"`
	MediaDir   string `long:"media-dir" env:"TALKFEED_MEDIA_DIR" default:"media" description:"Directory containing media YAML files"`
	CachePath  string `long:"cache-path" env:"TALKFEED_CACHE_PATH" description:"Path to the document cache database (defaults to the user cache directory)"`
	UserAgent  string `long:"user-agent" env:"TALKFEED_USER_AGENT" default:"talkfeed/1.0" description:"User agent string for HTTP requests"`
	Verbose    []bool `short:"v" long:"verbose" description:"Increase verbosity (-v warnings, -vv info, -vvv debug)"`
}

var globalCfg *Cfg

// Init creates the command-line parser with the global options bound.
// The returned parser still needs commands registered; the configuration
// becomes available through Get once a command starts executing.
func Init() *flags.Parser {
	raw := &rawCfg{}
	parser := flags.NewParser(raw, flags.Default)

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		globalCfg = &Cfg{
			ConfigPath: raw.ConfigPath,
			MediaDir:   raw.MediaDir,
			CachePath:  resolveCachePath(raw.CachePath),
			UserAgent:  raw.UserAgent,
			Verbose:    len(raw.Verbose),
			Version:    GetVersion(),
		}
		return command.Execute(args)
	}

	return parser
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Init() first")
	}
	return globalCfg
}

func resolveCachePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".talkfeed-cache", "documents.db")
	}
	return filepath.Join(base, "talkfeed", "documents.db")
}
