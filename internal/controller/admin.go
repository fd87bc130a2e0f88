package controller

import (
	"net/http"

	"github.com/Anubhav2007/GuestHouse/internal/model"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleAllBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, s.bookings.AllBookings())
}

func (s *Server) handlePendingBookings(c echo.Context) error {
	bookings := s.bookings.PendingBookings()
	if bookings == nil {
		bookings = []model.BookingWithGuesthouse{}
	}
	return c.JSON(http.StatusOK, bookings)
}

func (s *Server) handleApproveBooking(c echo.Context) error {
	err := s.bookings.SetStatus(c.Request().Context(), c.Param("id"), model.BookingStatusConfirmed)
	if err != nil {
		return s.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "Booking confirmed."})
}

func (s *Server) handleRejectBooking(c echo.Context) error {
	err := s.bookings.SetStatus(c.Request().Context(), c.Param("id"), model.BookingStatusRejected)
	if err != nil {
		return s.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "Booking rejected."})
}

func (s *Server) handleExportSnapshot(c echo.Context) error {
	if err := s.bookings.ExportSnapshot(c.Request().Context()); err != nil {
		return s.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "Bookings exported to snapshot store successfully."})
}
