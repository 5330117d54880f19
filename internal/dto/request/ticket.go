package request

// BuyTicketRequest is the single-step sale: one seat, implicit quantity 1,
// optionally on behalf of a registered client (walk-in sale at the counter).
type BuyTicketRequest struct {
	ShowtimeID string  `json:"showtime_id" validate:"required,uuid4"`
	Seat       string  `json:"seat" validate:"required"`
	PersonID   *string `json:"person_id,omitempty" validate:"omitempty,uuid4"`
}

type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func (r *PaginatedRequest) Limit() int {
	if r.PerPage < 1 {
		return 10
	}
	return r.PerPage
}

func (r *PaginatedRequest) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.Limit()
}
