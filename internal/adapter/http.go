// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// API paths served by the storefront auth server.
const (
	PathRegister = "/api/auth/register"
	PathLogin    = "/api/auth/login"
	PathProfile  = "/api/auth/profile"
	PathVersion  = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/JSON implementation of
// [ServerAdapter] rooted at cfg.HTTPAddress. An address without a scheme is
// taken as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(PathRegister)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.Register").Msg("register request failed")
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return out, nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(PathLogin)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.Login").Msg("login request failed")
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return out, nil
}

// GetProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.ProfileResponse, error) {
	var out models.ProfileResponse

	req, err := h.authorized(ctx)
	if err != nil {
		return models.ProfileResponse{}, err
	}

	resp, err := req.SetResult(&out).Get(PathProfile)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.GetProfile").Msg("profile request failed")
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return out, nil
}

// UpdateProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdateRequest) (models.UpdateProfileResponse, error) {
	var out models.UpdateProfileResponse

	req, err := h.authorized(ctx)
	if err != nil {
		return models.UpdateProfileResponse{}, err
	}

	resp, err := req.SetBody(update).SetResult(&out).Put(PathProfile)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.UpdateProfile").Msg("profile update request failed")
		return models.UpdateProfileResponse{}, fmt.Errorf("profile update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateProfileResponse{}, err
	}

	return out, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(PathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// authorized starts a request carrying the stored bearer token.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
