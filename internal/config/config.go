package config

type Config interface {
	EnvConfig
	TokenConfig
}

type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetHTTPTimeout() string
	GetCredentialsFile() string
	GetPort() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Tokens
}

func New() Config {
	return mainConfig{}
}
