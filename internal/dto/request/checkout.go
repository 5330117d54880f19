package request

type QuantitiesRequest struct {
	QtyNormal     int `json:"qty_normal" validate:"gte=0"`
	QtyDiscounted int `json:"qty_discounted" validate:"gte=0"`
}

type SeatsRequest struct {
	// Seats in "A-5" format, one per ticket.
	Seats []string `json:"seats" validate:"required,min=1"`
}

type SnacksRequest struct {
	// Selections maps snack ID to quantity. Unknown IDs and non-positive
	// quantities are ignored, not rejected.
	Selections map[string]int `json:"selections"`
}

type ConfirmRequest struct {
	PersonID *string `json:"person_id,omitempty" validate:"omitempty,uuid4"`
}
