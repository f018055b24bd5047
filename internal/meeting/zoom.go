package meeting

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campusconnect/campus-scheduler/internal/httperr"
)

const (
	zoomOAuthURL    = "https://zoom.us/oauth/token"
	zoomMeetingsURL = "https://api.zoom.us/v2/users/me/meetings"

	tokenCacheKey = "zoom_token"

	// Zoom tokens expire every hour; renew a little early.
	tokenTTL = 3500 * time.Second
)

type ZoomConfig struct {
	AccountID    string
	ClientID     string
	ClientSecret string
}

// ZoomClient provisions scheduled meetings through the Zoom
// server-to-server OAuth API. Every failure, token exchange included,
// surfaces as the single provisioning_failed outcome.
type ZoomClient struct {
	cfg    ZoomConfig
	http   *http.Client
	tokens TokenStore
	logger *zap.Logger

	oauthURL    string
	meetingsURL string
}

func NewZoomClient(cfg ZoomConfig, tokens TokenStore, logger *zap.Logger) *ZoomClient {
	return &ZoomClient{
		cfg:         cfg,
		http:        &http.Client{Timeout: 10 * time.Second},
		tokens:      tokens,
		logger:      logger,
		oauthURL:    zoomOAuthURL,
		meetingsURL: zoomMeetingsURL,
	}
}

func (z *ZoomClient) CreateMeeting(ctx context.Context, topic string, startTime string) (*Meeting, error) {
	token, err := z.getToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{
		"topic":      topic,
		"type":       2, // scheduled meeting
		"start_time": startTime,
		"duration":   40,
		"settings": map[string]any{
			"host_video":        true,
			"participant_video": true,
			"join_before_host":  false,
			"waiting_room":      true,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.meetingsURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := z.http.Do(req)
	if err != nil {
		return nil, z.fail("zoom create meeting request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		z.logger.Error("zoom create meeting error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(raw)),
			zap.String("topic", topic),
			zap.String("start_time", startTime),
		)
		return nil, httperr.ErrBusiness("provisioning_failed")
	}

	var out struct {
		ID      json.Number `json:"id"`
		JoinURL string      `json:"join_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, z.fail("zoom meeting response invalid", err)
	}

	if out.ID.String() == "" || out.JoinURL == "" {
		z.logger.Error("zoom meeting response missing fields")
		return nil, httperr.ErrBusiness("provisioning_failed")
	}

	return &Meeting{
		ID:      out.ID.String(),
		JoinURL: out.JoinURL,
	}, nil
}

func (z *ZoomClient) getToken(ctx context.Context) (string, error) {
	if token, ok := z.tokens.Get(ctx, tokenCacheKey); ok {
		return token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "account_credentials")
	form.Set("account_id", z.cfg.AccountID)
	form.Set("client_id", z.cfg.ClientID)
	form.Set("client_secret", z.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.oauthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := z.http.Do(req)
	if err != nil {
		return "", z.fail("zoom oauth request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		z.logger.Error("zoom oauth error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(raw)),
		)
		return "", httperr.ErrBusiness("provisioning_failed")
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", z.fail("zoom oauth response invalid", err)
	}
	if out.AccessToken == "" {
		z.logger.Error("zoom oauth response missing access token")
		return "", httperr.ErrBusiness("provisioning_failed")
	}

	z.tokens.Set(ctx, tokenCacheKey, out.AccessToken, tokenTTL)
	return out.AccessToken, nil
}

func (z *ZoomClient) fail(msg string, err error) error {
	z.logger.Error(msg, zap.Error(err))
	return httperr.ErrBusiness("provisioning_failed")
}

var _ Provisioner = (*ZoomClient)(nil)

// WithEndpoints overrides the Zoom API endpoints. Tests point the
// client at a local server.
func (z *ZoomClient) WithEndpoints(oauthURL, meetingsURL string) *ZoomClient {
	z.oauthURL = oauthURL
	z.meetingsURL = meetingsURL
	return z
}
