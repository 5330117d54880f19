package response

import (
	"time"

	"cinema-checkout/internal/data/entity"
)

type ShowtimeResponse struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movie_id"`
	MovieTitle string    `json:"movie_title,omitempty"`
	RoomID     string    `json:"room_id"`
	RoomNumber int       `json:"room_number,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	BasePrice  string    `json:"base_price"`
}

type SnackResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

type OccupiedSeatsResponse struct {
	ShowtimeID string   `json:"showtime_id"`
	Seats      []string `json:"seats"`
}

func ShowtimeToResponse(showtime *entity.Showtime, movie *entity.Movie, room *entity.Room) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:        showtime.ID.String(),
		MovieID:   showtime.MovieID.String(),
		RoomID:    showtime.RoomID.String(),
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		BasePrice: showtime.BasePrice.StringFixed(2),
	}

	if movie != nil {
		resp.MovieTitle = movie.Title
	}
	if room != nil {
		resp.RoomNumber = room.RoomNumber
	}

	return resp
}

func SnackToResponse(snack *entity.Snack) SnackResponse {
	return SnackResponse{
		ID:          snack.ID.String(),
		Name:        snack.Name,
		Description: snack.Description,
		Price:       snack.Price.StringFixed(2),
	}
}
