package globals

import (
	"context"
	"os"
	"strings"
)

var JwtSecret = []byte(envOr("JWT_SECRET", "change_me_in_production"))

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserEmailKey ContextKey = "userEmail"

var Ctx = context.Background()

// AdminEmails is the fixed operator allow-list. Membership here grants
// full access regardless of the allowedEmails collection.
var AdminEmails = parseAdminEmails(os.Getenv("ADMIN_EMAILS"))

func parseAdminEmails(raw string) map[string]bool {
	admins := make(map[string]bool)
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = true
		}
	}
	return admins
}

func IsAdminEmail(email string) bool {
	return AdminEmails[strings.ToLower(strings.TrimSpace(email))]
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
