// Package config resolves the client settings from explicit values, the
// process environment, optional .env files and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bhexpress/client-go/internal/apierrors"
)

const (
	// DefaultBaseURL is used when no base URL is configured anywhere.
	DefaultBaseURL = "https://bhexpress.cl"
	// DefaultVersion is the API version used when none is configured.
	DefaultVersion = "v1"

	// EnvToken holds the API token.
	EnvToken = "BHEXPRESS_API_TOKEN"
	// EnvBaseURL holds the API base URL.
	EnvBaseURL = "BHEXPRESS_API_URL"
)

// Config file keys.
const (
	KeyToken   = "api_token"
	KeyBaseURL = "api_url"
	KeyVersion = "api_version"
)

// Input carries the explicitly supplied values. Empty fields are resolved
// from the other sources.
type Input struct {
	Token   string
	BaseURL string
	Version string

	// DotEnvFiles are read without modifying the process environment.
	DotEnvFiles []string
	// ConfigFile is any file format viper understands.
	ConfigFile string
}

// Settings are the resolved client settings.
type Settings struct {
	Token   string
	BaseURL string
	Version string
}

// Resolve builds Settings from in. Precedence is explicit value, process
// environment, .env files, config file, then the built-in default.
func Resolve(in Input) (*Settings, error) {
	v, err := load(in)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(in.Token)
	if token == "" {
		token = strings.TrimSpace(v.GetString(KeyToken))
	}
	if token == "" {
		return nil, apierrors.New(apierrors.KindMissingToken,
			fmt.Sprintf("The environment variable must be set: %s.", EnvToken))
	}

	baseURL := strings.TrimSpace(in.BaseURL)
	if baseURL == "" {
		baseURL = strings.TrimSpace(v.GetString(KeyBaseURL))
	}

	version := in.Version
	if version == "" {
		version = v.GetString(KeyVersion)
	}

	return &Settings{
		Token:   token,
		BaseURL: baseURL,
		Version: version,
	}, nil
}

func load(in Input) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyVersion, DefaultVersion)

	if err := v.BindEnv(KeyToken, EnvToken); err != nil {
		return nil, configError("bind environment", err)
	}
	if err := v.BindEnv(KeyBaseURL, EnvBaseURL); err != nil {
		return nil, configError("bind environment", err)
	}

	if in.ConfigFile != "" {
		v.SetConfigFile(in.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, configError("read config file "+in.ConfigFile, err)
		}
	}

	if len(in.DotEnvFiles) > 0 {
		values, err := godotenv.Read(in.DotEnvFiles...)
		if err != nil {
			return nil, configError("read env file", err)
		}
		layer := make(map[string]interface{})
		if s, ok := values[EnvToken]; ok && s != "" {
			layer[KeyToken] = s
		}
		if s, ok := values[EnvBaseURL]; ok && s != "" {
			layer[KeyBaseURL] = s
		}
		if err := v.MergeConfigMap(layer); err != nil {
			return nil, configError("merge env file", err)
		}
	}

	return v, nil
}

func configError(op string, err error) error {
	return apierrors.Wrap(apierrors.KindConfig, fmt.Sprintf("Configuration error: %s: %v", op, err), err)
}
