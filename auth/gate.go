package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"trekhub/globals"
	"trekhub/middleware"
	"trekhub/rdx"
	"trekhub/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

// Access gate states. A session is never trusted statically: the
// allow-list is consulted again at verification time and on every
// session check, so revocation takes effect on the next load.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateCodeSent        State = "code-sent"
	StateAllowed         State = "authenticated-allowed"
	StateRevoked         State = "authenticated-revoked"
)

const (
	codeLength   = 6
	codeTTL      = 10 * time.Minute
	sessionTTL   = 12 * time.Hour
	// Fixed delay on a wrong code. Slows brute-force guessing; it is not
	// a real rate limiter, the ratelim middleware sits in front too.
	wrongCodeDelay = 2 * time.Second
)

// ResolveState maps a session's current facts to a gate state. Called
// with fresh allow-list data on every check, never with cached results.
func ResolveState(verified, allowed bool) State {
	if !verified {
		return StateUnauthenticated
	}
	if allowed {
		return StateAllowed
	}
	return StateRevoked
}

// POST /api/auth/request-code
// The allow-list must pass before any code is sent; unknown emails get a
// full denial, not a code.
func RequestCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}
	email := utils.NormalizeEmail(input.Email)

	allowed, err := middleware.EmailHasAccess(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Access check failed")
		return
	}
	if !allowed {
		utils.RespondWithError(w, http.StatusForbidden, "This email is not on the trek access list")
		return
	}

	code := utils.GenerateRandomDigitString(codeLength)
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to prepare code")
		return
	}
	if err := rdx.SetWithExpiry("code:"+email, string(hash), codeTTL); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store code")
		return
	}

	if err := SendEmailCode(email, code); err != nil {
		log.Printf("Failed to send code email to %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send code")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"state": StateCodeSent})
}

// POST /api/auth/verify-code
// The allow-list is checked again here: an email revoked between send
// and verify lands on the revoked screen, never on a session.
func VerifyCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" || input.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and code are required")
		return
	}
	email := utils.NormalizeEmail(input.Email)

	storedHash, err := rdx.RdxGet("code:" + email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input.Code)) != nil {
		time.Sleep(wrongCodeDelay)
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired code")
		return
	}
	rdx.RdxDel("code:" + email)

	allowed, err := middleware.EmailHasAccess(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Access check failed")
		return
	}

	state := ResolveState(true, allowed)
	if state == StateRevoked {
		utils.RespondWithJSON(w, http.StatusForbidden, utils.M{"state": state})
		return
	}

	role := "member"
	if globals.IsAdminEmail(email) {
		role = "admin"
	}

	claims := &middleware.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := rdx.RdxHset("sessions", email, tokenString); err != nil {
		log.Printf("Redis session cache failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"state": state,
		"token": tokenString,
		"email": email,
		"role":  role,
	})
}

// GET /api/auth/session
// Called on every app load. Re-resolves the gate state from the live
// allow-list; a stale token for a revoked email gets the revoked state,
// not an error, so the client can show the sign-out-only screen.
func Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"state": StateUnauthenticated})
		return
	}

	allowed, err := middleware.EmailHasAccess(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Access check failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"state": ResolveState(true, allowed),
		"email": claims.Email,
		"role":  claims.Role,
	})
}

// POST /api/auth/logout
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if _, err := rdx.RdxHdel("sessions", claims.Email); err != nil {
		log.Printf("Error removing session from Redis: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"state": StateUnauthenticated})
}
