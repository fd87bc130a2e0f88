package controller

import (
	"errors"
	"net/http"

	"github.com/Anubhav2007/GuestHouse/internal/model"
	"github.com/Anubhav2007/GuestHouse/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (s *Server) handleListGuesthouses(c echo.Context) error {
	return c.JSON(http.StatusOK, s.guesthouses.ListAll())
}

func (s *Server) handleRequestBooking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Msg: "Missing required fields: guesthouse_id, start_date, end_date",
		})
	}

	// The ledger expects an already validated range: parseable dates with
	// start <= end.
	start, err := model.ParseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Invalid date format. Use DD-MM-YYYY"})
	}
	end, err := model.ParseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Invalid date format. Use DD-MM-YYYY"})
	}
	if start.After(end) {
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Start date cannot be after end date."})
	}

	booking, err := s.bookings.CreateRequest(c.Request().Context(), req.GuesthouseID, currentUsername(c), req.StartDate, req.EndDate)
	if err != nil {
		return s.bookingError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{
		Msg:       "Booking request submitted successfully.",
		BookingID: booking.ID,
	})
}

func (s *Server) handleMyBookings(c echo.Context) error {
	bookings := s.bookings.UserBookings(currentUsername(c))
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

func (s *Server) handleCancelBooking(c echo.Context) error {
	err := s.bookings.Cancel(c.Request().Context(), c.Param("id"), currentUsername(c))
	if err != nil {
		return s.bookingError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Msg: "Booking cancelled successfully."})
}

// bookingError maps ledger failures onto the transport.
func (s *Server) bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotAvailable):
		return c.JSON(http.StatusConflict, messageResponse{Msg: "Guesthouse not available for selected dates."})
	case errors.Is(err, service.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Msg: "Booking ID not found."})
	case errors.Is(err, service.ErrNotOwner):
		return c.JSON(http.StatusForbidden, messageResponse{Msg: "You don't have permission to cancel this booking."})
	case errors.Is(err, service.ErrAlreadyCancelled):
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Booking already cancelled."})
	case errors.Is(err, service.ErrNotCancellable):
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Booking can no longer be cancelled."})
	case errors.Is(err, service.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, messageResponse{Msg: "Unsupported booking status."})
	case errors.Is(err, service.ErrSnapshotDisabled):
		return c.JSON(http.StatusServiceUnavailable, messageResponse{Msg: "Snapshot export is not configured."})
	default:
		s.logger.Error("Booking operation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, messageResponse{Msg: "Internal error."})
	}
}
