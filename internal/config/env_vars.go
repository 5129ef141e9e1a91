package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	portEnvVar     = "PORT"
	appNameVar     = "APP_NAME"
	baseURLVar     = "API_BASE_URL"
	credsFileVar   = "CREDENTIALS_FILE"
	httpTimeoutVar = "HTTP_TIMEOUT"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "3000")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Admin Panel Client")
}

// GetBaseURL returns the origin all REST calls are issued against.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:3000")
}

// GetHTTPTimeout returns the transport timeout as a duration string (e.g. "30s").
func (EnvVars) GetHTTPTimeout() string {
	return GetEnv(httpTimeoutVar, "30s")
}

// GetCredentialsFile returns the path of the durable credential store.
func (EnvVars) GetCredentialsFile() string {
	if file := os.Getenv(credsFileVar); file != "" {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".admin-credentials.json"
	}
	return filepath.Join(home, ".admin-credentials.json")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
