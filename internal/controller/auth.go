package controller

import (
	"errors"
	"net/http"

	"github.com/Anubhav2007/GuestHouse/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "username and password are required"})
	}

	token, user, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Msg: "incorrect username or password"})
		}
		s.logger.Error("Login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, messageResponse{Msg: "login failed"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		Username:    user.Username,
		Role:        user.Role,
	})
}
