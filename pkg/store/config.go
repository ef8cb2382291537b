package store

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names a Store implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

const (
	// ConfigPathEnv overrides the directory searched for .iyilik.yaml.
	ConfigPathEnv = "IYILIK_CONFIG_PATH"

	defaultPath = "~/.iyilik.db"
)

type Config interface {
	Backend() Backend
	BasePath() string
}

// LoadConfig reads .iyilik.yaml from $IYILIK_CONFIG_PATH, the working
// directory or the home directory. IYILIK_BACKEND and IYILIK_PATH override
// the file.
func LoadConfig() (Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty file
// falls back to the search path.
func LoadConfigFile(file string) (Config, error) {
	v := viper.New()
	v.SetDefault("backend", string(BackendDiskv))
	v.SetDefault("path", defaultPath)
	v.SetEnvPrefix("IYILIK")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".iyilik") // .yaml is implicit
		if override := os.Getenv(ConfigPathEnv); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Kind: Backend(strings.ToLower(strings.TrimSpace(v.GetString("backend")))),
		Path: path,
		File: v.ConfigFileUsed(),
	}, nil
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Kind Backend
	Path string
}

func (c StaticConfig) Backend() Backend { return c.Kind }
func (c StaticConfig) BasePath() string { return c.Path }

type fileConfig struct {
	Kind Backend `json:"backend"`
	Path string  `json:"path"`
	File string  `json:"file,omitempty"`
}

func (f *fileConfig) Backend() Backend {
	return f.Kind
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// ConfigFile reports the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.File
	}
	return ""
}
