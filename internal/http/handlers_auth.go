package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Auth     *service.AuthService
	Sessions *SessionManager
	Logger   *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. It authenticates against the backend,
// opens a fresh server-side session, and sets the session_id cookie. An
// empty password falls through to the mock sign-in path, which only works
// when explicitly enabled.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_email",
			Err:     errors.New("email is required"),
		})
		return
	}

	sid := h.Sessions.NewSessionID()
	store := h.Sessions.StoreFor(w, r, sid)

	if req.Password == "" {
		if err := store.SignInMockEmail(r.Context(), req.Email); err != nil {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "missing_password",
				Err:     errors.New("password is required"),
			})
			return
		}
	} else {
		creds, err := h.Auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			WriteBackendError(w, err, "Sign-in failed")
			return
		}
		store.SignIn(r.Context(), creds)
	}

	setSessionCookie(w, r, cookieParams{
		Name:   SessionCookieName,
		Value:  sid,
		Domain: h.Sessions.CookieDomain,
		TTL:    h.Sessions.CookieTTL,
	})
	WriteJSON(w, http.StatusOK, map[string]any{"user": userView(store.User())})
}

// Logout handles POST /auth/logout. Signing out an absent session is fine;
// the response is identical either way.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sid := sessionIDFromRequest(r); sid != "" {
		store := h.Sessions.StoreFor(w, r, sid)
		store.SignOut(r.Context())
	}
	clearCookie(w, r, SessionCookieName, h.Sessions.CookieDomain)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

// Register handles POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_credentials",
			Err:     errors.New("email and password are required"),
		})
		return
	}

	res, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		WriteBackendError(w, err, "Registration failed")
		return
	}
	WriteJSON(w, http.StatusCreated, res)
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyEmail handles POST /auth/verify-email.
func (h *AuthHandlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Auth.VerifyEmailOTP(r.Context(), req.Email, req.OTP); err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_otp", Err: err})
			return
		}
		WriteBackendError(w, err, "Email verification failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

type confirmMemberRequest struct {
	Email  string `json:"email"`
	PlanID string `json:"planId"`
}

// ConfirmMember handles POST /auth/confirm-member.
func (h *AuthHandlers) ConfirmMember(w http.ResponseWriter, r *http.Request) {
	var req confirmMemberRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.PlanID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_fields",
			Err:     errors.New("email and planId are required"),
		})
		return
	}

	msg, err := h.Auth.ConfirmMemberInvite(r.Context(), req.Email, req.PlanID)
	if err != nil {
		WriteBackendError(w, err, "Member confirmation failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Session handles GET /auth/session. It runs behind RequireSession, so the
// user is always present here.
func (h *AuthHandlers) Session(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{"user": userView(user)})
}

// AccountHandlers mutate the signed-in session's plan tier.
type AccountHandlers struct{}

// Upgrade handles POST /account/upgrade.
func (h *AccountHandlers) Upgrade(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	store.Upgrade(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{"user": userView(store.User())})
}

type setPlanRequest struct {
	Plan string `json:"plan"`
}

// SetPlan handles PUT /account/plan.
func (h *AccountHandlers) SetPlan(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req setPlanRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	plan := domainsession.Plan(req.Plan)
	if !plan.Valid() {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_plan",
			Err:     errors.New(`plan must be "basic" or "premium"`),
		})
		return
	}

	store.SetPlan(r.Context(), plan)
	WriteJSON(w, http.StatusOK, map[string]any{"user": userView(store.User())})
}

// userView is the JSON shape of the session identity.
func userView(u *domainsession.User) map[string]any {
	if u == nil {
		return nil
	}
	return map[string]any{
		"userId":   u.UserID,
		"email":    u.Email,
		"username": u.Username,
		"roleId":   u.RoleID,
		"plan":     u.Plan,
	}
}
