package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "naeilum_session"
	SessionLocalsKey  = "session_id"

	sessionCookieMaxAge = 7 * 24 * 60 * 60 // seconds
)

// SessionMiddleware resolves the caller's opaque session identifier from an
// httpOnly cookie, issuing a fresh one when missing or malformed. A request
// is never routed to another caller's session: an unknown id simply resolves
// to an empty slot.
func SessionMiddleware(secure bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Cookies(SessionCookieName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			ctx.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   sessionCookieMaxAge,
				HTTPOnly: true,
				Secure:   secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		ctx.Locals(SessionLocalsKey, id)
		return ctx.Next()
	}
}
