// Package site resolves the values the test engine injects into the suite
// description: the compiler under test and the execution root.
//
// Values are layered with the following precedence (highest first):
// command-line flags, environment variables, the .env file, the site file.
package site

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"selfhostlit/internal/logger"
	"selfhostlit/internal/suite"
)

// Configuration keys, shared by the site file, the environment and the flags.
const (
	KeyCompilerPath = "compiler_path"
	KeyExecRoot     = "my_test_exec_root"

	EnvPrefix    = "SELFHOST"
	SiteFileName = "lit.site"
	SiteFileType = "yaml"
)

// FlagNames maps configuration keys to the command-line flags that override them.
var FlagNames = map[string]string{
	KeyCompilerPath: "compiler-path",
	KeyExecRoot:     "exec-root",
}

// Options controls where site values are read from.
type Options struct {
	// SiteFile is an explicit site file. When empty, lit.site.yaml is searched in SearchDirs.
	SiteFile   string
	SearchDirs []string

	// EnvFile is a dotenv file. A missing EnvFile is ignored unless EnvFileRequired is set.
	EnvFile         string
	EnvFileRequired bool

	// Flags, when set, overrides values with any changed flag named in FlagNames.
	Flags *pflag.FlagSet
}

// Load resolves the site values. Values that are not set anywhere are left empty:
// the suite builder reports them as missing dependencies.
func Load(opts Options) (suite.Site, error) {
	vip := viper.New()
	vip.SetConfigType(SiteFileType)

	if err := readSiteFile(vip, opts); err != nil {
		return suite.Site{}, err
	}

	if err := mergeDotEnv(vip, opts); err != nil {
		return suite.Site{}, err
	}

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	vip.AutomaticEnv()
	for _, key := range []string{KeyCompilerPath, KeyExecRoot} {
		if err := vip.BindEnv(key); err != nil {
			return suite.Site{}, fmt.Errorf("failed to bind %s to environment: %w", key, err)
		}
	}

	if opts.Flags != nil {
		for key, name := range FlagNames {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := vip.BindPFlag(key, flag); err != nil {
				return suite.Site{}, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var site suite.Site
	if err := vip.Unmarshal(&site); err != nil {
		return suite.Site{}, fmt.Errorf("failed to unmarshal site values: %w", err)
	}

	logger.Debug("Resolved site values",
		"compiler_path", site.CompilerPath,
		"exec_root", site.MyTestExecRoot,
		"site_file", vip.ConfigFileUsed())
	return site, nil
}

// EnvVar returns the environment variable name for a configuration key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

func readSiteFile(vip *viper.Viper, opts Options) error {
	if opts.SiteFile != "" {
		vip.SetConfigFile(opts.SiteFile)
	} else {
		vip.SetConfigName(SiteFileName)
		for _, dir := range opts.SearchDirs {
			vip.AddConfigPath(dir)
		}
		if len(opts.SearchDirs) == 0 {
			vip.AddConfigPath(".")
		}
	}

	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && opts.SiteFile == "" {
			logger.Debug("No site file found", "search_dirs", opts.SearchDirs)
			return nil
		}
		return fmt.Errorf("failed to read site file: %w", err)
	}
	return nil
}

// mergeDotEnv layers the dotenv values over the site file without touching the
// process environment.
func mergeDotEnv(vip *viper.Viper, opts Options) error {
	if opts.EnvFile == "" {
		return nil
	}

	data, err := os.ReadFile(opts.EnvFile)
	if err != nil {
		if os.IsNotExist(err) && !opts.EnvFileRequired {
			logger.Debug("No .env file found", "path", opts.EnvFile)
			return nil
		}
		return fmt.Errorf("failed to read .env file %s: %w", opts.EnvFile, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", opts.EnvFile, err)
	}

	values := make(map[string]interface{})
	for _, key := range []string{KeyCompilerPath, KeyExecRoot} {
		if value, ok := envMap[EnvVar(key)]; ok {
			values[key] = value
		}
	}
	if len(values) == 0 {
		return nil
	}
	if err := vip.MergeConfigMap(values); err != nil {
		return fmt.Errorf("failed to merge .env values: %w", err)
	}
	return nil
}
