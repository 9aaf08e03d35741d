package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string)
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  Does not override any values in the config as this environment variable
		// points to where the config should be loaded.  It is handled prior to loading the config.
		name:  "TOYUNDA_CONFIG_PATH",
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) {}, // Special case, no-op
	},
	{
		name:  "TOYUNDA_CONFIG_ENGINE_VO",
		desc:  "Sets the engine video output driver.  Default: libmpv",
		apply: func(c *Config, s string) { c.Engine.VideoOutput = s },
	},
	{
		name:  "TOYUNDA_CONFIG_ENGINE_SUBTITLES",
		desc:  "Sets the subtitle track, `no` disables subtitles.  Default: no",
		apply: func(c *Config, s string) { c.Engine.Subtitles = s },
	},
	{
		name:  "TOYUNDA_CONFIG_ENGINE_HWDEC",
		desc:  "Sets the hardware decoding API.  Default: auto-safe",
		apply: func(c *Config, s string) { c.Engine.HardwareDecoding = s },
	},
	{
		name:  "TOYUNDA_CONFIG_ENGINE_INVERT_FILTER",
		desc:  "Sets the video filter used by --invert.  Default: vflip",
		apply: func(c *Config, s string) { c.Engine.InvertFilter = s },
	},
	{
		name:  "TOYUNDA_CONFIG_ENGINE_QUIT_ON_END",
		desc:  "Quit when the file has played to the end.  One of: true, false.  Default: false",
		apply: func(c *Config, s string) { c.Engine.QuitOnEnd = parseBool(s, c.Engine.QuitOnEnd) },
	},
	{
		name:  "TOYUNDA_CONFIG_ENGINE_LOG_LEVEL",
		desc:  "Sets the engine log level.  Default: derived from the logging level",
		apply: func(c *Config, s string) { c.Engine.LogLevel = s },
	},
	{
		name:  "TOYUNDA_CONFIG_WINDOW_FULLSCREEN",
		desc:  "Start in fullscreen.  One of: true, false.  Default: false",
		apply: func(c *Config, s string) { c.Window.Fullscreen = parseBool(s, c.Window.Fullscreen) },
	},
	{
		name:  "TOYUNDA_CONFIG_OVERLAY_TEXT",
		desc:  "Sets the overlay text drawn over the video.  Default: None",
		apply: func(c *Config, s string) { c.Overlay.Text = s },
	},
	{
		name:  "TOYUNDA_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: trace, debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) { c.Logging.Level = s },
	},
	{
		name:  "TOYUNDA_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path, `-` logs to stderr.  Default: OS-specific",
		apply: func(c *Config, s string) { c.Logging.FilePath = s },
	},
	{
		name:  "TOYUNDA_CONFIG_LOGGING_FORMAT",
		desc:  "Sets the logging format.  One of: json, text.  Default: json",
		apply: func(c *Config, s string) { c.Logging.Format = s },
	},
}

func applyEnvVarOverrides(c *Config) {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			envVar.apply(c, value)
		}
	}
}

// parseBool keeps the current value when s is not a recognisable boolean
func parseBool(s string, current bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return current
	}
	return b
}

// EnvVarDoc documents one supported environment variable override
type EnvVarDoc struct {
	Name        string
	Description string
}

// EnvVars lists the supported environment variable overrides in the order they are applied
func EnvVars() []EnvVarDoc {
	return lo.Map(supportedEnvVars, func(v envVar, _ int) EnvVarDoc {
		return EnvVarDoc{Name: v.name, Description: v.desc}
	})
}
