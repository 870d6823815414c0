package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-lockr/internal/config"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL comes from adapterCfg.HTTPAddress; a missing scheme defaults to
// http. When appCfg.HashKey is set every request body is signed with
// HMAC-SHA256 in the HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
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

// Register implements [ServerAdapter]: POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]: POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// SendOTP implements [ServerAdapter]: POST /api/auth/send-otp.
func (h *httpServerAdapter) SendOTP(ctx context.Context, otpReq models.OTPRequest) error {
	req, err := h.jsonRequest(ctx, otpReq)
	if err != nil {
		return err
	}
	resp, err := req.Post("/api/auth/send-otp")
	if err != nil {
		return fmt.Errorf("send otp request: %w", err)
	}
	return mapHTTPError(resp)
}

// VerifyOTP implements [ServerAdapter]: POST /api/auth/verify-otp.
func (h *httpServerAdapter) VerifyOTP(ctx context.Context, verification models.OTPVerification) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/verify-otp", verification)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.User, error) {
	var found models.User

	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return models.User{}, err
	}
	resp, err := req.SetResult(&found).Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	h.SetToken(token)
	return found, nil
}

// GetSettings implements [ServerAdapter]: GET /api/users/{userID}/settings.
func (h *httpServerAdapter) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	var settings models.UserSettings

	resp, err := h.authedRequest(ctx).
		SetResult(&settings).
		Get(settingsPath(userID))
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

// UpdateSettings implements [ServerAdapter]: PUT /api/users/{userID}/settings.
func (h *httpServerAdapter) UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error) {
	var settings models.UserSettings

	req, err := h.authedJSONRequest(ctx, update)
	if err != nil {
		return models.UserSettings{}, err
	}
	resp, err := req.SetResult(&settings).Put(settingsPath(userID))
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("update settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

// ListCategories implements [ServerAdapter]: GET /api/categories/{userID}.
func (h *httpServerAdapter) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	var categories []models.Category

	resp, err := h.authedRequest(ctx).
		SetResult(&categories).
		Get("/api/categories/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory implements [ServerAdapter]: POST /api/categories.
func (h *httpServerAdapter) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var created models.Category

	req, err := h.authedJSONRequest(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	resp, err := req.SetResult(&created).Post("/api/categories")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}
	return created, nil
}

// UpdateCategory implements [ServerAdapter]: PUT /api/categories/{id}.
func (h *httpServerAdapter) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var updated models.Category

	req, err := h.authedJSONRequest(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	resp, err := req.SetResult(&updated).Put("/api/categories/" + url.PathEscape(category.ID))
	if err != nil {
		return models.Category{}, fmt.Errorf("update category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}
	return updated, nil
}

// DeleteCategory implements [ServerAdapter]: DELETE /api/categories/{id}.
// The server removes the category's entries as well.
func (h *httpServerAdapter) DeleteCategory(ctx context.Context, categoryID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/categories/" + url.PathEscape(categoryID))
	if err != nil {
		return fmt.Errorf("delete category request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListEntries implements [ServerAdapter]: GET /api/entries/{userID}.
func (h *httpServerAdapter) ListEntries(ctx context.Context, userID int64) ([]models.Entry, error) {
	var entries []models.Entry

	resp, err := h.authedRequest(ctx).
		SetResult(&entries).
		Get("/api/entries/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEntry implements [ServerAdapter]: POST /api/entries.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	var created models.Entry

	req, err := h.authedJSONRequest(ctx, entry)
	if err != nil {
		return models.Entry{}, err
	}
	resp, err := req.SetResult(&created).Post("/api/entries")
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}
	return created, nil
}

// UpdateEntry implements [ServerAdapter]: PUT /api/entries/{id}.
func (h *httpServerAdapter) UpdateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	var updated models.Entry

	req, err := h.authedJSONRequest(ctx, entry)
	if err != nil {
		return models.Entry{}, err
	}
	resp, err := req.SetResult(&updated).Put("/api/entries/" + url.PathEscape(entry.ID))
	if err != nil {
		return models.Entry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}
	return updated, nil
}

// DeleteEntry implements [ServerAdapter]: DELETE /api/entries/{id}.
func (h *httpServerAdapter) DeleteEntry(ctx context.Context, entryID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/entries/" + url.PathEscape(entryID))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}
	return mapHTTPError(resp)
}

// GetVersion implements [ServerAdapter]: GET /api/version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) authedJSONRequest(ctx context.Context, body any) (*resty.Request, error) {
	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return nil, err
	}
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}

// jsonRequest marshals body up front so the exact bytes on the wire can be
// signed.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.jsonRequest").Msg("failed to encode request body")
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}
	return req, nil
}

func settingsPath(userID int64) string {
	return "/api/users/" + strconv.FormatInt(userID, 10) + "/settings"
}
