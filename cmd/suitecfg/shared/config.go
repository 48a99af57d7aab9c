// Package shared provides common configuration for suitecfg.
package shared

// Config holds the global configuration for suitecfg
type Config struct {
	TestDir    string
	SiteConfig string
	EnvFile    string
	Verbose    bool
	LogLevel   string
	LogFile    string
}

// Default configuration values
const (
	DefaultTestDir = "test"
	DefaultEnvFile = ".env"
)

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		TestDir: DefaultTestDir,
		EnvFile: DefaultEnvFile,
	}
}
