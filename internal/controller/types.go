package controller

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type bookingRequest struct {
	GuesthouseID string `json:"guesthouse_id" validate:"required"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
}

// messageResponse mirrors the {"msg": ...} envelope the frontend expects.
type messageResponse struct {
	Msg       string `json:"msg"`
	BookingID string `json:"booking_id,omitempty"`
}
