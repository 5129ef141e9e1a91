package stubserver

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-admin-client/internal/config"
	"github.com/pkg/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// tokenManager issues HS256 access tokens and rotating opaque refresh tokens.
type tokenManager struct {
	config        config.TokenConfig
	refreshTokens map[string]string // refresh token -> user id
	lock          sync.Mutex
}

func newTokenManager(cfg config.TokenConfig) *tokenManager {
	return &tokenManager{
		config:        cfg,
		refreshTokens: make(map[string]string),
	}
}

// issueAccessToken creates a signed access token for the user.
func (tm *tokenManager) issueAccessToken(userID, email, role string) (string, error) {
	now := NowTimeFunc()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(tm.config.GetAccessTokenExpiry()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(tm.config.GetSigningSecret()))
	if err != nil {
		return "", errors.Wrap(err, "[tokenManager.issueAccessToken] SignedString")
	}
	return signed, nil
}

// verifyAccessToken validates the signature and expiry and returns the
// subject user id.
func (tm *tokenManager) verifyAccessToken(rawToken string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(tm.config.GetSigningSecret()), nil
	}, jwt.WithTimeFunc(func() time.Time { return NowTimeFunc() }))
	if err != nil {
		return "", errors.Wrap(err, "[tokenManager.verifyAccessToken] ParseWithClaims")
	}
	if !token.Valid {
		return "", errors.New("[tokenManager.verifyAccessToken] invalid token")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(err, "[tokenManager.verifyAccessToken] GetSubject")
	}
	return sub, nil
}

// issueRefreshToken creates a new refresh token for the user. One refresh
// token per user: any previous one is dropped.
func (tm *tokenManager) issueRefreshToken(userID string) (string, error) {
	tm.lock.Lock()
	defer tm.lock.Unlock()

	for token, owner := range tm.refreshTokens {
		if owner == userID {
			delete(tm.refreshTokens, token)
		}
	}

	tokenBytes := make([]byte, tm.config.GetRefreshTokenLength())
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", errors.Wrap(err, "[tokenManager.issueRefreshToken] rand.Read")
	}
	tokenStr := hex.EncodeToString(tokenBytes)
	tm.refreshTokens[tokenStr] = userID
	return tokenStr, nil
}

// redeemRefreshToken validates and consumes a refresh token, returning the
// owning user id. Refresh tokens are single-use.
func (tm *tokenManager) redeemRefreshToken(rawToken string) (string, error) {
	tm.lock.Lock()
	defer tm.lock.Unlock()

	userID, ok := tm.refreshTokens[rawToken]
	if !ok {
		return "", errors.New("[tokenManager.redeemRefreshToken] unknown refresh token")
	}
	delete(tm.refreshTokens, rawToken)
	return userID, nil
}
