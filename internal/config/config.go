package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/sfp-labs/sfp/internal/branding"
	"github.com/sfp-labs/sfp/internal/manifest"
	"github.com/sfp-labs/sfp/internal/platform"
	"github.com/sfp-labs/sfp/internal/runtime"
	"github.com/sfp-labs/sfp/internal/scaffold"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the bootstrap.
const (
	KeyPython         = "python"
	KeyPackageManager = "package_manager"
	KeyScaffolder     = "scaffolder"
	KeyStarter        = "starter"
	KeyMinPython      = "min_python"
	KeyTimeout        = "timeout"
	KeyNoColor        = "no_color"
	KeyManifest       = "manifest"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	Python         string
	PackageManager string
	Scaffolder     string
	Starter        string
	MinPython      string
	Timeout        time.Duration
	NoColor        bool
	Manifest       string
}

// Defaults returns the built-in value of every key.
func Defaults() map[string]string {
	return map[string]string{
		KeyPython:         platform.PythonCommand(platform.Current()),
		KeyPackageManager: "pip",
		KeyScaffolder:     scaffold.DefaultCommand,
		KeyStarter:        manifest.DefaultStarter,
		KeyMinPython:      runtime.DefaultMinPython,
		KeyTimeout:        "0s",
		KeyNoColor:        "false",
		KeyManifest:       "",
	}
}

// Keys returns every known key, sorted.
func Keys() []string {
	d := Defaults()
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.sfp/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.sfp/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range Defaults() {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns the effective value of every known key.
func All() map[string]string {
	out := make(map[string]string, len(Defaults()))
	for _, k := range Keys() {
		out[k] = viper.GetString(k)
	}
	return out
}

// Resolve converts the effective values into Settings.
func Resolve() (*Settings, error) {
	timeout, err := time.ParseDuration(Get(KeyTimeout))
	if err != nil {
		return nil, invalidSetting(KeyTimeout, err)
	}
	noColor, err := strconv.ParseBool(Get(KeyNoColor))
	if err != nil {
		return nil, invalidSetting(KeyNoColor, err)
	}
	return &Settings{
		Python:         Get(KeyPython),
		PackageManager: Get(KeyPackageManager),
		Scaffolder:     Get(KeyScaffolder),
		Starter:        Get(KeyStarter),
		MinPython:      Get(KeyMinPython),
		Timeout:        timeout,
		NoColor:        noColor,
		Manifest:       Get(KeyManifest),
	}, nil
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := check(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// invalidSetting names both places a bad value can come from.
func invalidSetting(key string, err error) error {
	return fmt.Errorf("invalid %s (check %s and %s): %w", key, branding.EnvVar(key), FilePath(), err)
}

func check(key, value string) error {
	if _, ok := Defaults()[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	switch key {
	case KeyTimeout:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	case KeyNoColor:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	case KeyPython, KeyPackageManager, KeyScaffolder:
		if value == "" {
			return fmt.Errorf("%s can't be empty", key)
		}
	}
	return nil
}
