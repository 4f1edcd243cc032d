package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodapi/config"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// WeChat error codes handled by the moderation client.
const (
	WeChatErrSensitiveContent  = 87014
	WeChatErrInvalidCredential = 40001
	WeChatErrTokenExpired      = 42001
)

// tokens are cached this long before WeChat's own expiry
const tokenExpiryMargin = 5 * time.Minute

// WeChatError is a non-zero errcode returned by the WeChat API.
type WeChatError struct {
	Code    int
	Message string
}

func (e *WeChatError) Error() string {
	return fmt.Sprintf("wechat errcode %d: %s", e.Code, e.Message)
}

type weChatTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
}

type weChatCheckResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// WeChatModerator checks text through the mini-program msg_sec_check API.
type WeChatModerator struct {
	client    *resty.Client
	appID     string
	appSecret string
	tokens    TokenCache
	log       logrus.FieldLogger
}

func NewWeChatModerator(cfg *config.Config, tokens TokenCache, log logrus.FieldLogger) *WeChatModerator {
	client := resty.New().
		SetBaseURL(cfg.WeChatApiURL).
		SetTimeout(cfg.ModerationTimeout)

	return &WeChatModerator{
		client:    client,
		appID:     cfg.WeChatAppID,
		appSecret: cfg.WeChatAppSecret,
		tokens:    tokens,
		log:       log,
	}
}

// AccessToken returns a cached token or requests a new one with the client_credential grant.
func (m *WeChatModerator) AccessToken(ctx context.Context) (string, error) {
	token, ok, err := m.tokens.Get(ctx)
	if err != nil {
		m.log.WithError(err).Warn("access token cache unavailable, requesting a new token")
	} else if ok {
		return token, nil
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type": "client_credential",
			"appid":      m.appID,
			"secret":     m.appSecret,
		}).
		Get("/cgi-bin/token")
	if err != nil {
		return "", fmt.Errorf("request access token: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("access token endpoint returned %d", resp.StatusCode())
	}

	var tokenResp weChatTokenResponse
	if err := json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return "", fmt.Errorf("parse access token response: %w", err)
	}
	if tokenResp.ErrCode != 0 {
		return "", &WeChatError{Code: tokenResp.ErrCode, Message: tokenResp.ErrMsg}
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("access token response has no token")
	}

	if ttl := time.Duration(tokenResp.ExpiresIn)*time.Second - tokenExpiryMargin; ttl > 0 {
		if err := m.tokens.Set(ctx, tokenResp.AccessToken, ttl); err != nil {
			m.log.WithError(err).Warn("failed to cache access token")
		}
	}
	return tokenResp.AccessToken, nil
}

// CheckText reports whether content passed moderation. A false result with a nil
// error means WeChat flagged the content as sensitive.
func (m *WeChatModerator) CheckText(ctx context.Context, content string) (bool, error) {
	token, err := m.AccessToken(ctx)
	if err != nil {
		return false, err
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("access_token", token).
		SetBody(map[string]string{"content": content}).
		Post("/wxa/msg_sec_check")
	if err != nil {
		return false, fmt.Errorf("request msg_sec_check: %w", err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("msg_sec_check returned %d", resp.StatusCode())
	}

	var checkResp weChatCheckResponse
	if err := json.Unmarshal(resp.Body(), &checkResp); err != nil {
		return false, fmt.Errorf("parse msg_sec_check response: %w", err)
	}

	switch checkResp.ErrCode {
	case 0:
		return true, nil
	case WeChatErrSensitiveContent:
		return false, nil
	case WeChatErrInvalidCredential, WeChatErrTokenExpired:
		if err := m.tokens.Invalidate(ctx); err != nil {
			m.log.WithError(err).Warn("failed to invalidate access token")
		}
	}
	return false, &WeChatError{Code: checkResp.ErrCode, Message: checkResp.ErrMsg}
}

// AllowAllModerator passes every text. Used when MODERATION_ENABLED=false.
type AllowAllModerator struct{}

func (AllowAllModerator) CheckText(context.Context, string) (bool, error) {
	return true, nil
}
