package controller

import (
	"net/http"
	"time"

	"github.com/Anubhav2007/GuestHouse/internal/model"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	ctxUsername = "username"
	ctxRole     = "role"
)

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(s.requestLogger())
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			s.logger.Info("http",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Int64("latency_ms", time.Since(start).Milliseconds()),
				zap.String("req_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("ip", c.RealIP()),
			)
			return err
		}
	}
}

// jwtMiddleware parses the bearer token and rejects anything missing,
// unsigned or expired before a handler runs. Every failure maps to 401.
func (s *Server) jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return jwt.MapClaims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, messageResponse{Msg: "unauthenticated"})
		},
	})
}

// identity pulls the username and role claims out of the verified token and
// puts them on the request context.
func (s *Server) identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, messageResponse{Msg: "unauthenticated"})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, messageResponse{Msg: "unauthenticated"})
			}
			username, ok := claims["sub"].(string)
			if !ok || username == "" {
				return c.JSON(http.StatusUnauthorized, messageResponse{Msg: "unauthenticated"})
			}
			role, _ := claims["role"].(string)

			c.Set(ctxUsername, username)
			c.Set(ctxRole, role)
			return next(c)
		}
	}
}

// adminOnly guards the admin surface by the role claim.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if role, _ := c.Get(ctxRole).(string); role != model.RoleAdmin {
			return c.JSON(http.StatusForbidden, messageResponse{Msg: "Admins only!"})
		}
		return next(c)
	}
}

func currentUsername(c echo.Context) string {
	username, _ := c.Get(ctxUsername).(string)
	return username
}
