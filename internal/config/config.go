package config

type Config interface {
	EnvConfig
	ClientConfig
}

type EnvConfig interface {
	GetAPIBaseURL() string
	GetAppName() string
	GetDataFolder() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	ClientSettings
}

func New() Config {
	return mainConfig{}
}
