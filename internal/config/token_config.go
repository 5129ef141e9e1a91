package config

import "time"

// TokenConfig configures token issuance for the bundled stub API server.
type TokenConfig interface {
	GetSigningSecret() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenLength() int
	GetSeedAdminEmail() string
	GetSeedAdminPassword() string
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetSigningSecret() string {
	return GetEnv("STUB_SIGNING_SECRET", "stub-signing-secret")
}

func (Tokens) GetAccessTokenExpiry() time.Duration {
	return 15 * time.Minute
}

func (Tokens) GetRefreshTokenLength() int {
	return 32 // 32 bytes = 256 bits
}

func (Tokens) GetSeedAdminEmail() string {
	return GetEnv("STUB_ADMIN_EMAIL", "admin@example.com")
}

func (Tokens) GetSeedAdminPassword() string {
	return GetEnv("STUB_ADMIN_PASSWORD", "admin123")
}
