package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-admin-client/credentials"
	"github.com/pkg/errors"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refresh exchanges the refresh token for a new token pair. Concurrent 401s
// share one in-flight exchange unless coalescing was disabled, in which case
// each failing request runs its own and the last writer wins.
func (c *Client) refresh(ctx context.Context, refreshToken string) error {
	if !c.coalesce {
		return c.doRefresh(ctx, refreshToken)
	}
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return nil, c.doRefresh(ctx, refreshToken)
	})
	return err
}

func (c *Client) doRefresh(ctx context.Context, refreshToken string) error {
	// The exchange itself is unauthenticated: no bearer header, no retry.
	opts := &RequestOptions{Body: refreshRequest{RefreshToken: refreshToken}}
	resp, err := c.do(ctx, http.MethodPost, "/auth/refresh", opts, &credentials.Credentials{})
	if err != nil {
		if clearErr := c.creds.Clear(); clearErr != nil {
			c.logger.Warn().Err(clearErr).Msg("failed to clear credentials after refresh failure")
		}
		c.logger.Warn().Err(err).Msg("token refresh failed, session expired")
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	tokens := refreshResponse{}
	if err := resp.Decode(&tokens); err != nil {
		return errors.Wrap(err, "[Client.doRefresh] Decode")
	}

	stored, err := c.creds.Get()
	if err != nil {
		return errors.Wrap(err, "[Client.doRefresh] credentials.Get")
	}

	renewed := &credentials.Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if stored != nil {
		renewed.Identity = stored.Identity
	}
	if err := c.creds.Store(renewed); err != nil {
		return errors.Wrap(err, "[Client.doRefresh] credentials.Store")
	}

	if claims, err := credentials.InspectAccessToken(tokens.AccessToken); err == nil {
		c.logger.Debug().Time("expires_at", claims.ExpiresAt).Msg("access token renewed")
	}
	return nil
}
