package controller

import (
	"github.com/gofiber/fiber/v2"

	"naeilum-be/internal/dto"
	"naeilum-be/internal/pkg/serverutils"
)

const (
	themeCookieName   = "theme"
	themeCookieMaxAge = 365 * 24 * 60 * 60 // 1 year
	defaultTheme      = "system"
)

var themeChoices = map[string]bool{"light": true, "dark": true, "system": true}

// IThemeController persists the UI theme preference in a cookie. It touches
// no session state and exists purely so the front-end survives reloads.
type IThemeController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Set(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type themeController struct {
	secureCookies bool
}

func NewThemeController(secureCookies bool) IThemeController {
	return &themeController{secureCookies: secureCookies}
}

func (c *themeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/theme")
	h.Get("", c.Get)
	h.Post("", c.Set)
	h.Post("/toggle", c.Toggle)
}

func (c *themeController) Get(ctx *fiber.Ctx) error {
	theme, source := c.resolve(ctx)
	return ctx.JSON(dto.ThemeResponse{Success: true, Theme: theme, Source: source})
}

func (c *themeController) Set(ctx *fiber.Ctx) error {
	var req dto.SetThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no data provided")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.persist(ctx, req.Theme)
	return ctx.JSON(dto.ThemeResponse{Success: true, Theme: req.Theme})
}

// Toggle flips light and dark; "system" becomes light.
func (c *themeController) Toggle(ctx *fiber.Ctx) error {
	current, _ := c.resolve(ctx)
	next := "light"
	if current == "light" {
		next = "dark"
	}

	c.persist(ctx, next)
	return ctx.JSON(dto.ThemeResponse{Success: true, Theme: next})
}

func (c *themeController) resolve(ctx *fiber.Ctx) (theme, source string) {
	if v := ctx.Cookies(themeCookieName); themeChoices[v] {
		return v, "cookie"
	}
	return defaultTheme, "default"
}

func (c *themeController) persist(ctx *fiber.Ctx, theme string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     themeCookieName,
		Value:    theme,
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		Secure:   c.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
