package handler

import (
	"net/http"

	"github.com/tomatino/tomatino-api/internal/middleware"
	"github.com/tomatino/tomatino-api/internal/token"
)

// AuthHandler issues and clears session cookies.
type AuthHandler struct {
	issuer *token.Issuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(issuer *token.Issuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// HandleIssueToken handles POST /jwt. The posted identity object is embedded
// in the token as-is and delivered as an HTTP-only, cross-site cookie.
func (h *AuthHandler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	var identity map[string]any
	if !decodeBody(w, r, &identity) {
		return
	}

	tok, err := h.issuer.Issue(identity)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleLogout handles POST /logout. Sessions are stateless, so logout only
// instructs the client to drop the cookie; the token itself stays
// cryptographically valid until it expires.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
