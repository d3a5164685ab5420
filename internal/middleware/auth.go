package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sagarvizla/indus-creator-portal/pkg/hash"
)

// Identity headers injected by the sign-in proxy in front of this
// service. The portal trusts them as the authenticated-user signal and
// never talks to the identity provider itself.
const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
)

// Locals keys populated by RequireIdentity.
const (
	LocalUserKey   = "userKey"
	LocalUserEmail = "userEmail"
	LocalUserName  = "userName"
)

// RequireIdentity rejects requests without the identity headers and
// derives the stable user key for everything downstream.
func RequireIdentity() fiber.Handler {
	return func(c fiber.Ctx) error {
		email := c.Get(HeaderUserEmail)
		if email == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Sign in first")
		}

		c.Locals(LocalUserKey, hash.UserKey(email))
		c.Locals(LocalUserEmail, email)
		c.Locals(LocalUserName, c.Get(HeaderUserName))
		return c.Next()
	}
}

// UserKey returns the hashed identity set by RequireIdentity.
func UserKey(c fiber.Ctx) string {
	key, _ := c.Locals(LocalUserKey).(string)
	return key
}

// UserName returns the display name, falling back to the email.
func UserName(c fiber.Ctx) string {
	if name, _ := c.Locals(LocalUserName).(string); name != "" {
		return name
	}
	email, _ := c.Locals(LocalUserEmail).(string)
	return email
}
