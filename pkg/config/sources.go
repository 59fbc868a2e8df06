package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// ConfigSource represents a source of configuration values
type ConfigSource interface {
	GetString(key string) (string, bool)
	GetInt(key string) (int, bool)
	GetFloat(key string) (float64, bool)
	GetBool(key string) (bool, bool)
}

// EnvSource implements ConfigSource for environment variables
type EnvSource struct{}

func (e *EnvSource) GetString(key string) (string, bool) {
	value := os.Getenv(key)
	return value, value != ""
}

func (e *EnvSource) GetInt(key string) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i, true
	}
	return 0, false
}

func (e *EnvSource) GetFloat(key string) (float64, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f, true
	}
	return 0, false
}

func (e *EnvSource) GetBool(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b, true
	}
	return false, false
}

// FlagSource implements ConfigSource for command-line flags
type FlagSource struct {
	values map[string]interface{}
}

func NewFlagSource() *FlagSource {
	return &FlagSource{values: make(map[string]interface{})}
}

func (f *FlagSource) Set(key string, value interface{}) {
	f.values[key] = value
}

func (f *FlagSource) GetString(key string) (string, bool) {
	if value, exists := f.values[key]; exists {
		if str, ok := value.(string); ok && str != "" {
			return str, true
		}
	}
	return "", false
}

func (f *FlagSource) GetInt(key string) (int, bool) {
	if value, exists := f.values[key]; exists {
		if i, ok := value.(int); ok {
			return i, true
		}
	}
	return 0, false
}

func (f *FlagSource) GetFloat(key string) (float64, bool) {
	if value, exists := f.values[key]; exists {
		if fl, ok := value.(float64); ok {
			return fl, true
		}
	}
	return 0, false
}

func (f *FlagSource) GetBool(key string) (bool, bool) {
	if value, exists := f.values[key]; exists {
		if b, ok := value.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// FileSource implements ConfigSource over an optional config file. With an
// explicit path the file must exist and parse; with no path the default
// carbonsim.yaml is read from the working directory when present, and its
// absence is not an error.
type FileSource struct {
	v *viper.Viper
}

func NewFileSource(path string) (*FileSource, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("carbonsim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}
	return &FileSource{v: v}, nil
}

func (f *FileSource) GetString(key string) (string, bool) {
	if !f.v.IsSet(key) {
		return "", false
	}
	return f.v.GetString(key), true
}

func (f *FileSource) GetInt(key string) (int, bool) {
	if !f.v.IsSet(key) {
		return 0, false
	}
	return f.v.GetInt(key), true
}

func (f *FileSource) GetFloat(key string) (float64, bool) {
	if !f.v.IsSet(key) {
		return 0, false
	}
	return f.v.GetFloat64(key), true
}

func (f *FileSource) GetBool(key string) (bool, bool) {
	if !f.v.IsSet(key) {
		return false, false
	}
	return f.v.GetBool(key), true
}
