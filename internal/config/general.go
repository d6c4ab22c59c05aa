package config

import "errors"

type ServerEnv = string

var (
	DevEnv     ServerEnv = "dev"
	StagingEnv ServerEnv = "staging"
	ProdEnv    ServerEnv = "prod"
)

type GeneralConfig struct {
	HTTPPort string
	HTTPHost string
	Env      string
	LogLevel string
}

func (gc *GeneralConfig) Load() error {
	gc.HTTPPort = GetEnvOrDefault("HTTP_PORT", "8080")
	gc.HTTPHost = GetEnvOrDefault("HTTP_HOST", "localhost")
	gc.Env = GetEnvOrDefault("ENV", DevEnv)
	gc.LogLevel = GetEnvOrDefault("LOG_LEVEL", "info")
	return gc.Validate()
}

func (gc *GeneralConfig) Validate() error {
	if gc.HTTPPort == "" || gc.HTTPHost == "" || gc.Env == "" {
		return errors.New("invalid server config")
	}
	return nil
}
