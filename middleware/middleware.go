package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/globals"
	"trekhub/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// JWT claims
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate validates the bearer token AND re-checks the allow-list.
// A session token alone never suffices: an email whose allowedEmails
// record has is_active=false is denied on its next request, even if the
// token is still unexpired. Admin emails always pass.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if websocket.IsWebSocketUpgrade(r) {
			next(w, r, ps)
			return
		}

		claims, err := ValidateJWT(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		allowed, err := EmailHasAccess(r.Context(), claims.Email)
		if err != nil {
			http.Error(w, "Access check failed", http.StatusInternalServerError)
			return
		}
		if !allowed {
			http.Error(w, "Access revoked", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// AdminOnly additionally requires the caller to be on the fixed admin list.
func AdminOnly(next httprouter.Handle) httprouter.Handle {
	return Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email, _ := r.Context().Value(globals.UserEmailKey).(string)
		if !globals.IsAdminEmail(email) {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next(w, r, ps)
	})
}

// EmailHasAccess is the single access decision used at code-send time,
// at verification time and on every authenticated request.
func EmailHasAccess(ctx context.Context, email string) (bool, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}
	if globals.IsAdminEmail(email) {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := db.AllowedEmailsCollection.CountDocuments(ctx, bson.M{
		"email":     email,
		"is_active": true,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}

// RequestingEmail extracts the caller's email set by Authenticate.
func RequestingEmail(r *http.Request) string {
	email, _ := r.Context().Value(globals.UserEmailKey).(string)
	return email
}
