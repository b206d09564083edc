package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/session"
)

// ErrMissingToken is returned when a login response carries no usable token.
var ErrMissingToken = errors.New("login response carried no token")

// ErrInvalidOTP is returned when the one-time code is not exactly six digits.
var ErrInvalidOTP = errors.New("otp must be exactly six digits")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Backend Backend
	Logger  *slog.Logger
}

// AuthService handles login, registration, e-mail verification and the
// member-invite confirmation flow against the HomeTrack backend.
type AuthService struct {
	backend Backend
	logger  *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{backend: opts.Backend, logger: logger}
}

// Login authenticates against POST /auth/login and normalizes the response
// into session credentials. The backend is inconsistent about shape: the
// token arrives as either "token" or "accessToken", and user fields come
// nested under "user" or flattened at the top level. A response without a
// token is a hard error regardless of status.
func (s *AuthService) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	raw, err := s.backend.Post(ctx, "/auth/login", &api.CallOptions{
		Body: map[string]any{"email": email, "password": password},
	})
	if err != nil {
		return session.Credentials{}, fmt.Errorf("login: %w", err)
	}

	res, _ := unwrapData(raw).(map[string]any)
	token := firstString(res, "token", "accessToken")
	if token == "" {
		return session.Credentials{}, ErrMissingToken
	}

	user, _ := res["user"].(map[string]any)
	rawUser := user
	if rawUser == nil {
		rawUser = res
	}

	creds := session.Credentials{
		Token:     token,
		UserID:    fallbackString(user, res, "userId", "unknown"),
		Email:     fallbackString(user, res, "email", email),
		Username:  fallbackString(user, res, "username", localPart(email)),
		RoleID:    fallbackInt(user, res, "roleId"),
		IsPremium: fallbackBool(user, res, "isPremium"),
		Raw:       rawUser,
	}
	return creds, nil
}

// RegisterInput is the sign-up form payload.
type RegisterInput struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	RoleID         *int    `json:"roleId,omitempty"`
	PictureProfile *string `json:"pictureProfile,omitempty"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty"`
	Phone          *string `json:"phone,omitempty"`
}

// RegisterResult is what the backend acknowledges a registration with. Both
// fields may be empty; the backend sometimes answers 204.
type RegisterResult struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// Register creates an account via POST /api/Auth/register.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	raw, err := s.backend.Post(ctx, "/api/Auth/register", &api.CallOptions{Body: in})
	if err != nil {
		return RegisterResult{}, fmt.Errorf("register: %w", err)
	}

	var out RegisterResult
	if m, ok := unwrapData(raw).(map[string]any); ok {
		if msg, strOK := m["message"].(string); strOK {
			out.Message = msg
		}
		out.User = m["user"]
	}
	return out, nil
}

// VerifyEmailOTP confirms a registration e-mail with the six-digit code sent
// to it.
func (s *AuthService) VerifyEmailOTP(ctx context.Context, email, otp string) error {
	if !isSixDigits(otp) {
		return ErrInvalidOTP
	}
	_, err := s.backend.Post(ctx, "/api/Auth/check-otp-email", &api.CallOptions{
		Body: map[string]any{"otpRequest": otp, "email": email},
	})
	if err != nil {
		return fmt.Errorf("verify email otp: %w", err)
	}
	return nil
}

// ConfirmMemberInvite accepts a household-member invitation for the given
// plan. The endpoint spelling is the backend's, typo included.
func (s *AuthService) ConfirmMemberInvite(ctx context.Context, email, planID string) (string, error) {
	raw, err := s.backend.Post(ctx, "/api/Subcription", &api.CallOptions{
		Body: map[string]any{"email": email, "planId": planID},
	})
	if err != nil {
		return "", fmt.Errorf("confirm member invite: %w", err)
	}

	if m, ok := unwrapData(raw).(map[string]any); ok {
		if msg, strOK := m["message"].(string); strOK && msg != "" {
			return msg, nil
		}
	}
	return "OK", nil
}

// ListUsers returns every account, via the backend's literally named
// GET "/Auth/Get All User" endpoint.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	raw, err := s.backend.Get(ctx, "/Auth/Get All User", nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users, err := api.DecodeSlice[model.User](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// firstString returns the first non-empty string among the named keys.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// fallbackString reads key from the nested user map first, then the top-level
// response, then the default.
func fallbackString(user, top map[string]any, key, def string) string {
	if v, ok := user[key].(string); ok && v != "" {
		return v
	}
	if v, ok := top[key].(string); ok && v != "" {
		return v
	}
	return def
}

func fallbackInt(user, top map[string]any, key string) *int {
	if v, ok := numToInt(user[key]); ok {
		return &v
	}
	if v, ok := numToInt(top[key]); ok {
		return &v
	}
	return nil
}

func fallbackBool(user, top map[string]any, key string) bool {
	if v, ok := user[key].(bool); ok {
		return v
	}
	if v, ok := top[key].(bool); ok {
		return v
	}
	return false
}

// numToInt absorbs the JSON decoder's float64 numbers.
func numToInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
