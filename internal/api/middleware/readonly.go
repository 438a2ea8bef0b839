package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ReadOnly rejects every request whose method is not in allowedMethods with
// 405 and an Allow header. With no arguments GET, HEAD and OPTIONS pass.
func ReadOnly(allowedMethods ...string) echo.MiddlewareFunc {
	if len(allowedMethods) == 0 {
		allowedMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	}
	allowed := make(map[string]struct{}, len(allowedMethods))
	for _, m := range allowedMethods {
		allowed[strings.ToUpper(m)] = struct{}{}
	}
	allowHeader := strings.Join(allowedMethods, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[c.Request().Method]; !ok {
				c.Response().Header().Set(echo.HeaderAllow, allowHeader)
				return c.JSON(http.StatusMethodNotAllowed, map[string]string{"error": "read-only api"})
			}
			return next(c)
		}
	}
}
