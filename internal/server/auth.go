package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pulseboard/internal/config"

	"github.com/rs/zerolog/log"
)

const (
	authCookieName = "auth-token"
	sessionMaxAge  = 7 * 24 * time.Hour
)

// signToken produces "user|issued|hmac", base64-encoded. The HMAC covers
// the user and issue instant so the token cannot be forged or re-dated.
func signToken(auth config.AuthConfig, user string, issued time.Time) string {
	payload := fmt.Sprintf("%s|%d", user, issued.Unix())
	mac := hmac.New(sha256.New, []byte(auth.Secret))
	mac.Write([]byte(payload))
	token := fmt.Sprintf("%s|%x", payload, mac.Sum(nil))
	return base64.StdEncoding.EncodeToString([]byte(token))
}

// verifyToken checks the signature and the session age.
func verifyToken(auth config.AuthConfig, token string, now time.Time) bool {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return false
	}

	payload := parts[0] + "|" + parts[1]
	mac := hmac.New(sha256.New, []byte(auth.Secret))
	mac.Write([]byte(payload))
	expected := fmt.Sprintf("%x", mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return false
	}

	issued, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false
	}
	age := now.Sub(time.Unix(issued, 0))
	return age >= 0 && age <= sessionMaxAge
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request body"})
		return
	}

	if s.auth.Username == "" || s.auth.Password == "" || s.auth.Secret == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "Login not configured"})
		return
	}

	if creds.Username != s.auth.Username || creds.Password != s.auth.Password {
		log.Warn().Str("user", creds.Username).Msg("Rejected login attempt")
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid credentials"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    signToken(s.auth, creds.Username, time.Now()),
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Login successful"})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(authCookieName)
	authenticated := err == nil && verifyToken(s.auth, cookie.Value, time.Now())
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": authenticated})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// requireSession gates the reporting endpoints behind a valid auth cookie.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(authCookieName)
		if err != nil || !verifyToken(s.auth, cookie.Value, time.Now()) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Authentication required"})
			return
		}
		next(w, r)
	}
}
