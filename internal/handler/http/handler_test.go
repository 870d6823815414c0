package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-lockr/internal/app"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/mock/servicemock"
	"github.com/MKhiriev/go-lockr/internal/service"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "valid-token"
	testUserID = int64(7)
)

type testServices struct {
	auth       *servicemock.MockAuthService
	otp        *servicemock.MockOTPService
	settings   *servicemock.MockSettingsService
	categories *servicemock.MockCategoryService
	entries    *servicemock.MockEntryService
	appInfo    *servicemock.MockAppInfoService
}

func newTestRouter(t *testing.T, opts ...Option) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		auth:       servicemock.NewMockAuthService(ctrl),
		otp:        servicemock.NewMockOTPService(ctrl),
		settings:   servicemock.NewMockSettingsService(ctrl),
		categories: servicemock.NewMockCategoryService(ctrl),
		entries:    servicemock.NewMockEntryService(ctrl),
		appInfo:    servicemock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil).AnyTimes()
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(testToken)).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:     m.auth,
		OTPService:      m.otp,
		SettingsService: m.settings,
		CategoryService: m.categories,
		EntryService:    m.entries,
		AppInfoService:  m.appInfo,
	}, logger.Nop(), opts...)

	return h.Init(), m
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	router, m := newTestRouter(t)

	in := models.User{Email: "a@b.c", Username: "a", Password: "secret"}
	m.auth.EXPECT().RegisterUser(gomock.Any(), in).Return(models.User{UserID: testUserID, Email: "a@b.c", Username: "a"}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "signed"}, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/register", in, false)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
	got := decodeBody[models.User](t, rr)
	assert.Equal(t, testUserID, got.UserID)
	assert.Empty(t, got.Password)
}

func TestSendOTP(t *testing.T) {
	router, m := newTestRouter(t)

	in := models.OTPRequest{Email: "a@b.c", Type: models.OTPResetPasscode}
	m.otp.EXPECT().SendOTP(gomock.Any(), in).Return(nil)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/send-otp", in, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgOTPSent, decodeBody[messageResponse](t, rr).Message)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestSendOTP_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "unknown email", err: store.ErrNoUserWasFound, wantStatus: http.StatusNotFound},
		{name: "mail API down", err: fmt.Errorf("%w: quota", service.ErrOTPDelivery), wantStatus: http.StatusBadGateway, wantMessage: app.MsgOTPDeliveryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.otp.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(tt.err)

			rr := doRequest(t, router, http.MethodPost, "/api/auth/send-otp", models.OTPRequest{Email: "a@b.c"}, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeBody[utils.ErrorResponse](t, rr).Error)
			}
		})
	}
}

func TestVerifyOTP_IssuesToken(t *testing.T) {
	router, m := newTestRouter(t)

	in := models.OTPVerification{Email: "a@b.c", OTP: "042137", Type: models.OTPResetPasscode}
	m.otp.EXPECT().VerifyOTP(gomock.Any(), in).Return(models.User{UserID: testUserID, Email: "a@b.c"}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: testUserID, Email: "a@b.c"}).
		Return(models.Token{SignedString: "signed"}, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/verify-otp", in, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
	assert.Equal(t, testUserID, decodeBody[models.User](t, rr).UserID)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	router, m := newTestRouter(t)
	m.otp.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidOTP)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/verify-otp",
		models.OTPVerification{Email: "a@b.c", OTP: "000000", Type: models.OTPLogin}, false)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, service.ErrInvalidOTP.Error(), decodeBody[utils.ErrorResponse](t, rr).Error)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestVerifyOTP_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-otp", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "email taken", err: store.ErrLoginAlreadyExists, wantStatus: http.StatusConflict},
		{name: "unexpected", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rr := doRequest(t, router, http.MethodPost, "/api/auth/register", models.User{Email: "a@b.c"}, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, decodeBody[utils.ErrorResponse](t, rr).Error)
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin(t *testing.T) {
	router, m := newTestRouter(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: testUserID}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: testUserID}).Return(models.Token{SignedString: "signed"}, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/login", models.User{Email: "a@b.c", Password: "p"}, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/login", models.User{Email: "a@b.c", Password: "p"}, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid email/password", decodeBody[utils.ErrorResponse](t, rr).Error)
}

// ── auth middleware ──────────────────────────────────────────────────────────

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "bearer without token", header: "Bearer "},
		{name: "invalid token", header: "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/entries/7", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestPathUser_MustMatchToken(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/users/8/settings", "/api/categories/8", "/api/entries/8"} {
		rr := doRequest(t, router, http.MethodGet, path, nil, true)
		assert.Equal(t, http.StatusForbidden, rr.Code, path)
	}

	rr := doRequest(t, router, http.MethodGet, "/api/users/abc/settings", nil, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── settings ─────────────────────────────────────────────────────────────────

func TestSettings(t *testing.T) {
	router, m := newTestRouter(t)

	m.settings.EXPECT().Get(gomock.Any(), testUserID).Return(models.DefaultUserSettings(), nil)
	rr := doRequest(t, router, http.MethodGet, "/api/users/7/settings", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.DefaultAutoLockMinutes, decodeBody[models.UserSettings](t, rr).AutoLockTimer)

	timer := 15
	update := models.SettingsUpdate{AutoLockTimer: &timer}
	m.settings.EXPECT().Update(gomock.Any(), testUserID, update).Return(models.UserSettings{AutoLockTimer: 15}, nil)
	rr = doRequest(t, router, http.MethodPut, "/api/users/7/settings", update, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 15, decodeBody[models.UserSettings](t, rr).AutoLockTimer)
}

// ── categories ───────────────────────────────────────────────────────────────

func TestCategories(t *testing.T) {
	router, m := newTestRouter(t)

	m.categories.EXPECT().List(gomock.Any(), testUserID).Return(nil, nil)
	rr := doRequest(t, router, http.MethodGet, "/api/categories/7", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	m.categories.EXPECT().Create(gomock.Any(), models.Category{UserID: testUserID, Name: "Work", Icon: "Briefcase"}).
		Return(models.Category{ID: "c-1", UserID: testUserID, Name: "Work", Icon: "Briefcase"}, nil)
	rr = doRequest(t, router, http.MethodPost, "/api/categories", models.Category{UserID: 99, Name: "Work", Icon: "Briefcase"}, true)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "c-1", decodeBody[models.Category](t, rr).ID)

	m.categories.EXPECT().Update(gomock.Any(), models.Category{ID: "c-1", UserID: testUserID, Name: "Job", Icon: "Briefcase"}).
		Return(models.Category{ID: "c-1", Name: "Job"}, nil)
	rr = doRequest(t, router, http.MethodPut, "/api/categories/c-1", models.Category{Name: "Job", Icon: "Briefcase"}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	m.categories.EXPECT().Delete(gomock.Any(), "c-1", testUserID).Return(nil)
	rr = doRequest(t, router, http.MethodDelete, "/api/categories/c-1", nil, true)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	m.categories.EXPECT().Delete(gomock.Any(), "c-2", testUserID).Return(store.ErrCategoryNotFound)
	rr = doRequest(t, router, http.MethodDelete, "/api/categories/c-2", nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── entries ──────────────────────────────────────────────────────────────────

func TestEntries(t *testing.T) {
	router, m := newTestRouter(t)

	stored := models.Entry{ID: "e-1", UserID: testUserID, CategoryID: "c-1", Title: "Mail", Username: "a", Password: "envelope"}

	m.entries.EXPECT().List(gomock.Any(), testUserID).Return([]models.Entry{stored}, nil)
	rr := doRequest(t, router, http.MethodGet, "/api/entries/7", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody[[]models.Entry](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, "envelope", list[0].Password)

	m.entries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Entry) (models.Entry, error) {
			assert.Equal(t, testUserID, e.UserID, "owner comes from the token")
			e.ID = "e-2"
			return e, nil
		},
	)
	rr = doRequest(t, router, http.MethodPost, "/api/entries", models.Entry{Title: "New", UserID: 1}, true)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "e-2", decodeBody[models.Entry](t, rr).ID)

	m.entries.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Entry) (models.Entry, error) {
			assert.Equal(t, "e-1", e.ID, "id comes from the path")
			return e, nil
		},
	)
	rr = doRequest(t, router, http.MethodPut, "/api/entries/e-1", models.Entry{ID: "other", Title: "Mail"}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	m.entries.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.Entry{}, service.ErrInvalidDataProvided)
	rr = doRequest(t, router, http.MethodPut, "/api/entries/e-1", models.Entry{}, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	m.entries.EXPECT().Delete(gomock.Any(), "e-1", testUserID).Return(nil)
	rr = doRequest(t, router, http.MethodDelete, "/api/entries/e-1", nil, true)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// ── version and unknown methods ──────────────────────────────────────────────

func TestVersion(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := doRequest(t, router, http.MethodGet, "/api/version", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestUnsupportedMethod_Returns404(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/version"},
		{http.MethodPatch, "/api/entries/e-1"},
		{http.MethodPost, "/api/users/7/settings"},
	}

	for _, tt := range tests {
		rr := doRequest(t, router, tt.method, tt.path, nil, true)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tt.method, tt.path)
	}
}

func TestErrorStatusMap(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(store.ErrEntryNotFound))
	assert.Equal(t, http.StatusConflict, statusFromError(store.ErrLoginAlreadyExists))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
