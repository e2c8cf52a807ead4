package dtos

// RegisterRequest creates a console account. New accounts always start
// with the viewer role; promotion is an admin operation.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateSeatRequest asks for one manual seat reassignment. RosterID is
// optional; when absent the latest snapshot for the flight is targeted.
type UpdateSeatRequest struct {
	PassengerID int64  `json:"passenger_id"`
	SeatNo      string `json:"seat_no"`
	RosterID    *int64 `json:"roster_id,omitempty"`
}

// FlightSearchRequest filters the flight list. Empty fields match all.
type FlightSearchRequest struct {
	FlightNo    string `json:"flight_no"`
	Date        string `json:"date"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// SetRoleRequest changes a console account's role (admin only).
type SetRoleRequest struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}
