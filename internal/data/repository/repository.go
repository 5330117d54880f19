package repository

import (
	"cinema-checkout/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie      MovieRepository
	Room       RoomRepository
	Showtime   ShowtimeRepository
	Snack      SnackRepository
	Person     PersonRepository
	Order      OrderRepository
	Ticket     TicketRepository
	SnackOrder SnackOrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:      NewMovieRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Showtime:   NewShowtimeRepository(db, log),
		Snack:      NewSnackRepository(db, log),
		Person:     NewPersonRepository(db, log),
		Order:      NewOrderRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		SnackOrder: NewSnackOrderRepository(db, log),
	}
}
