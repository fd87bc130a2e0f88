package controller

import (
	"context"
	"net/http"

	"github.com/Anubhav2007/GuestHouse/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Server struct {
	echo        *echo.Echo
	logger      *zap.Logger
	jwtSecret   string
	auth        *service.AuthService
	guesthouses *service.GuesthouseService
	bookings    *service.BookingService
}

func NewServer(
	auth *service.AuthService,
	guesthouses *service.GuesthouseService,
	bookings *service.BookingService,
	jwtSecret string,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()

	s := &Server{
		echo:        e,
		logger:      logger,
		jwtSecret:   jwtSecret,
		auth:        auth,
		guesthouses: guesthouses,
		bookings:    bookings,
	}

	s.registerMiddlewares()
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	// Public
	api.POST("/login", s.handleLogin)
	api.GET("/health", s.handleHealth)

	// Any authenticated user
	user := api.Group("")
	user.Use(s.jwtMiddleware(), s.identity())
	user.GET("/guesthouses", s.handleListGuesthouses)
	user.POST("/bookings/request", s.handleRequestBooking)
	user.GET("/bookings/my", s.handleMyBookings)
	user.POST("/bookings/cancel/:id", s.handleCancelBooking)

	// Admin surface
	admin := api.Group("/admin")
	admin.Use(s.jwtMiddleware(), s.identity(), adminOnly)
	admin.GET("/bookings/all", s.handleAllBookings)
	admin.GET("/bookings/pending", s.handlePendingBookings)
	admin.POST("/bookings/approve/:id", s.handleApproveBooking)
	admin.POST("/bookings/reject/:id", s.handleRejectBooking)
	admin.POST("/export-db", s.handleExportSnapshot)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
