package version

// These variables are populated at build time using -ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"
)

// GetVersion returns the current version of the application
func GetVersion() string {
	return Version
}

// GetBuildTime returns the build time of the binary
func GetBuildTime() string {
	return BuildTime
}

// GetVersionInfo returns the text printed by --version; root.go sets the CLI version template
// to print it unchanged, e.g. "Toyunda Player v1.2.0 (built 2024-05-01T10:00:00Z)".
func GetVersionInfo() string {
	return "Toyunda Player v" + Version + " (built " + BuildTime + ")"
}
