package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"dario.cat/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Engine  EngineConfig  `yaml:"engine,omitempty"`
	Window  WindowConfig  `yaml:"window,omitempty"`
	Overlay OverlayConfig `yaml:"overlay,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// EngineConfig contains the options handed to the embedded media engine
type EngineConfig struct {
	// Video output driver.  Must be the libmpv output for the render bridge to receive frames.
	VideoOutput string `yaml:"vo,omitempty"`
	// Subtitle track selection.  "no" disables subtitle decoding.
	Subtitles string `yaml:"subtitles,omitempty"`
	// Hardware decoding API, e.g. "auto-safe" or "no"
	HardwareDecoding string `yaml:"hwdec,omitempty"`
	// Video filter applied when the display is inverted
	InvertFilter string `yaml:"invert_filter,omitempty"`
	// Quit the player once the file has played to the end
	QuitOnEnd bool `yaml:"quit_on_end,omitempty"`
	// Engine log level.  Empty derives it from the logging level.
	LogLevel string `yaml:"log_level,omitempty"`
}

// WindowConfig contains the host window settings
type WindowConfig struct {
	Title      string `yaml:"title,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Fullscreen bool   `yaml:"fullscreen,omitempty"`
	// Pointer so that an explicit false in the config file survives the merge with the defaults
	VSync *bool `yaml:"vsync,omitempty"`
}

// OverlayConfig describes the text drawn on top of the video.  An empty Text disables the overlay.
//
// The numeric fields where zero is meaningful are pointers so that an explicit 0 in the config file survives
// the merge with the defaults.  They stay nil in the base defaults, since mergo only replaces a nil pointer,
// and the accessor methods supply the default values.
type OverlayConfig struct {
	Text     string `yaml:"text,omitempty"`
	FontSize int    `yaml:"font_size,omitempty"`
	// Fill colour as #RRGGBB
	Color string `yaml:"color,omitempty"`
	// Fill opacity, 0 transparent to 255 opaque
	Alpha   *int `yaml:"alpha,omitempty"`
	Outline *int `yaml:"outline,omitempty"`
	X       *int `yaml:"x,omitempty"`
	Y       *int `yaml:"y,omitempty"`
	// Maximum width of the text in terminal-style display cells.  0 disables truncation.
	MaxWidth *int `yaml:"max_width,omitempty"`
}

const (
	defaultOverlayAlpha    = 128
	defaultOverlayOutline  = 2
	defaultOverlayX        = 5
	defaultOverlayY        = 5
	defaultOverlayMaxWidth = 80
)

// Opacity is the fill opacity, 0 transparent to 255 opaque
func (o OverlayConfig) Opacity() int {
	return intOr(o.Alpha, defaultOverlayAlpha)
}

// OutlineWidth is the width of the black outline in pixels.  0 draws no outline.
func (o OverlayConfig) OutlineWidth() int {
	return intOr(o.Outline, defaultOverlayOutline)
}

// Position is the top left corner of the text in framebuffer pixels
func (o OverlayConfig) Position() (x, y int) {
	return intOr(o.X, defaultOverlayX), intOr(o.Y, defaultOverlayY)
}

// TextWidthLimit is the maximum display width of the text.  0 means no limit.
func (o OverlayConfig) TextWidthLimit() int {
	return intOr(o.MaxWidth, defaultOverlayMaxWidth)
}

// Int returns a pointer to v, for filling in the pointer fields of the config
func Int(v int) *int {
	return &v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// LoggingConfig contains log related settings
type LoggingConfig struct {
	Level    string `yaml:"level,omitempty"`
	FilePath string `yaml:"file_path,omitempty"`
	Format   string `yaml:"format,omitempty"`
}

// VSyncEnabled reports whether swaps should wait for the vertical blank.  Defaults to true.
func (w WindowConfig) VSyncEnabled() bool {
	return w.VSync == nil || *w.VSync
}

// fs is the filesystem config files are read from and written to.  Tests swap it for an in-memory one.
var fs = afero.NewOsFs()

// Load builds a configuration struct from multiple sources using these steps:
// 1. Create a base config with default values
// 2. If no config file exists on disk, save the default config to that location
// 3. Apply 'dynamic' properties.  Dynamic properties are those that are determined at runtime, for example log file location which is different per OS.
// 4. Load & merge the config file, overwriting any defaults with user-specified values
// 5. Apply environment variable overrides
func Load() (*Config, error) {
	// 1. Start with base defaults
	cfg := createBaseDefaultConfig()

	configPath, err := Path()
	if err != nil {
		return nil, fmt.Errorf("unable to determine config file path: %w", err)
	}

	// 2. If no config file exists on disk, then write a default one
	if _, err := fs.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		// If there is an error saving the default config, then still let the player start using the defaults.
		_ = save(cfg, configPath)
	}

	// 3. Apply dynamic defaults if necessary
	applyDynamicDefaults(cfg)

	// 4. Load the config from disk and merge it into the base defaults
	fileConfig, err := loadFromDisk(configPath)
	if err != nil {
		return nil, err
	}
	// Overrides the config with any values coming from the loaded file
	if err = mergo.Merge(cfg, fileConfig, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging config loaded from disk: %w", err)
	}

	// 5. Apply the environment variable overrides which take precedence
	applyEnvVarOverrides(cfg)

	return cfg, nil
}

// applyDynamicDefaults sets runtime-determined default values for any properties that haven't been explicitly configured.
// Unlike static defaults, these values might change between runs based on the environment or system configuration.
func applyDynamicDefaults(cfg *Config) {
	cfg.Logging.FilePath = defaultLogFilePath()
}

// loadFromDisk loads the YAML config from disk and returns the unmarshalled Config
func loadFromDisk(configPath string) (*Config, error) {
	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return cfg, nil
}

func save(cfg *Config, configPath string) error {
	// Create config dir if not exists
	configDir := filepath.Dir(configPath)
	if err := fs.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, configPath, data, 0600)
}

// UpdateConfig reads the existing config, applies the update function, and saves it back to disk
func UpdateConfig(updateFn func(*Config)) error {
	configPath, err := Path()
	if err != nil {
		return fmt.Errorf("unable to determine config file path: %w", err)
	}

	cfg, err := loadFromDisk(configPath)
	if err != nil {
		return fmt.Errorf("error loading config file from disk: %w", err)
	}

	// Apply the updates
	updateFn(cfg)

	return save(cfg, configPath)
}

// Path returns the path to the config file.  Uses the environment variable override if present, else tries
// to use OS config location defaults.
func Path() (string, error) {
	configPath := os.Getenv("TOYUNDA_CONFIG_PATH")
	if configPath != "" {
		return configPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "toyunda", "config.yaml"), nil
}

// createBaseDefaultConfig creates a config with all default values
func createBaseDefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			VideoOutput:      "libmpv",
			Subtitles:        "no",
			HardwareDecoding: "auto-safe",
			InvertFilter:     "vflip",
		},
		Window: WindowConfig{
			Title:  "Toyunda Player",
			Width:  960,
			Height: 540,
		},
		Overlay: OverlayConfig{
			FontSize: 72,
			Color:    "#FF0000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// defaultLogFilePath returns the path to the log file.  Tries to use expected OS location defaults.
func defaultLogFilePath() string {
	var basePath string
	homedir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to logging in the current directory if home directory cannot be determined
		return filepath.Join(".", "toyunda.log")
	}

	switch runtime.GOOS {
	case "windows":
		// Windows:  %LOCALAPPDATA%\toyunda\logs
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			basePath = filepath.Join(appData, "toyunda", "logs")
		} else {
			basePath = filepath.Join(homedir, "AppData", "local", "toyunda", "logs")
		}
	case "darwin":
		// macOS:  ~/Library/Logs/toyunda
		basePath = filepath.Join(homedir, "Library", "Logs", "toyunda")
	default:
		// Linux/BSD:  XDG_STATE_HOME
		if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
			basePath = filepath.Join(xdgState, "toyunda", "logs")
		} else {
			basePath = filepath.Join(homedir, ".local", "state", "toyunda", "logs")
		}
	}

	return filepath.Join(basePath, "toyunda.log")
}
