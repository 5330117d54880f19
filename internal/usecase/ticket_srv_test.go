package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/internal/data/repository"
	"cinema-checkout/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ticketFixture struct {
	showtimes *MockShowtimeRepository
	rooms     *MockRoomRepository
	persons   *MockPersonRepository
	orders    *MockOrderRepository
	tickets   *MockTicketRepository

	service TicketService

	showtimeID uuid.UUID
	roomID     uuid.UUID
}

func newTicketFixture() *ticketFixture {
	f := &ticketFixture{
		showtimes:  &MockShowtimeRepository{},
		rooms:      &MockRoomRepository{},
		persons:    &MockPersonRepository{},
		orders:     &MockOrderRepository{},
		tickets:    &MockTicketRepository{},
		showtimeID: uuid.New(),
		roomID:     uuid.New(),
	}

	repo := &repository.Repository{
		Showtime: f.showtimes,
		Room:     f.rooms,
		Person:   f.persons,
		Order:    f.orders,
		Ticket:   f.tickets,
	}

	f.service = NewTicketService(repo, zap.NewNop())
	return f
}

func (f *ticketFixture) showtime() *entity.Showtime {
	return &entity.Showtime{
		Base:      entity.Base{ID: f.showtimeID},
		MovieID:   uuid.New(),
		RoomID:    f.roomID,
		StartTime: time.Now().Add(24 * time.Hour),
		EndTime:   time.Now().Add(26 * time.Hour),
		BasePrice: decimal.NewFromInt(30),
	}
}

func (f *ticketFixture) room() *entity.Room {
	return &entity.Room{
		Base:       entity.Base{ID: f.roomID},
		RoomNumber: 2,
		Capacity:   50,
		Rows:       5,
		Columns:    10,
	}
}

func TestBuy_AnonymousSale(t *testing.T) {
	f := newTicketFixture()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(f.showtime(), nil)
	f.rooms.On("FindByID", mock.Anything, f.roomID).Return(f.room(), nil)
	f.tickets.On("FindOccupiedSeats", mock.Anything, f.showtimeID).Return([]entity.Seat{}, nil)

	var committedTickets []*entity.Ticket
	f.orders.On("CreateWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			committedTickets = args.Get(2).([]*entity.Ticket)
		}).
		Return(nil)

	resp, err := f.service.Buy(context.Background(), &request.BuyTicketRequest{
		ShowtimeID: f.showtimeID.String(),
		Seat:       "C-4",
	})
	require.NoError(t, err)

	assert.Equal(t, "30.00", resp.TotalAmount)
	assert.Nil(t, resp.PersonID)
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, "C-4", resp.Tickets[0].Seat)

	require.Len(t, committedTickets, 1)
	assert.Equal(t, "30.00", committedTickets[0].Price.StringFixed(2))
	f.orders.AssertExpectations(t)
}

func TestBuy_DiscountHolderPaysHalf(t *testing.T) {
	f := newTicketFixture()
	personID := uuid.New()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(f.showtime(), nil)
	f.rooms.On("FindByID", mock.Anything, f.roomID).Return(f.room(), nil)
	f.tickets.On("FindOccupiedSeats", mock.Anything, f.showtimeID).Return([]entity.Seat{}, nil)
	f.persons.On("FindByID", mock.Anything, personID).Return(&entity.Person{
		Base:             entity.Base{ID: personID},
		FirstName:        "Ada",
		LastName:         "Lovelace",
		IsClient:         true,
		IsDiscountHolder: true,
	}, nil)
	f.persons.On("IsDiscountEligible", mock.Anything, personID).Return(true, nil)
	f.orders.On("CreateWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	personIDStr := personID.String()
	resp, err := f.service.Buy(context.Background(), &request.BuyTicketRequest{
		ShowtimeID: f.showtimeID.String(),
		Seat:       "C-4",
		PersonID:   &personIDStr,
	})
	require.NoError(t, err)

	assert.Equal(t, "15.00", resp.TotalAmount)
	require.NotNil(t, resp.PersonID)
	assert.Equal(t, personIDStr, *resp.PersonID)

	// The price decision goes through the eligibility contract, not the
	// loaded entity.
	f.persons.AssertCalled(t, "IsDiscountEligible", mock.Anything, personID)
}

func TestBuy_RegularClientPaysFull(t *testing.T) {
	f := newTicketFixture()
	personID := uuid.New()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(f.showtime(), nil)
	f.rooms.On("FindByID", mock.Anything, f.roomID).Return(f.room(), nil)
	f.tickets.On("FindOccupiedSeats", mock.Anything, f.showtimeID).Return([]entity.Seat{}, nil)
	f.persons.On("FindByID", mock.Anything, personID).Return(&entity.Person{
		Base:      entity.Base{ID: personID},
		FirstName: "Alan",
		LastName:  "Turing",
		IsClient:  true,
	}, nil)
	f.persons.On("IsDiscountEligible", mock.Anything, personID).Return(false, nil)
	f.orders.On("CreateWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	personIDStr := personID.String()
	resp, err := f.service.Buy(context.Background(), &request.BuyTicketRequest{
		ShowtimeID: f.showtimeID.String(),
		Seat:       "C-5",
		PersonID:   &personIDStr,
	})
	require.NoError(t, err)

	assert.Equal(t, "30.00", resp.TotalAmount)
	f.persons.AssertExpectations(t)
}

func TestBuy_SeatAlreadyTaken(t *testing.T) {
	f := newTicketFixture()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(f.showtime(), nil)
	f.rooms.On("FindByID", mock.Anything, f.roomID).Return(f.room(), nil)
	f.tickets.On("FindOccupiedSeats", mock.Anything, f.showtimeID).Return([]entity.Seat{
		{Row: "C", Number: 4},
	}, nil)

	_, err := f.service.Buy(context.Background(), &request.BuyTicketRequest{
		ShowtimeID: f.showtimeID.String(),
		Seat:       "C-4",
	})

	var conflict *repository.SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []entity.Seat{{Row: "C", Number: 4}}, conflict.Seats)
	f.orders.AssertNotCalled(t, "CreateWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuy_InvalidSeatFormat(t *testing.T) {
	f := newTicketFixture()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(f.showtime(), nil)

	_, err := f.service.Buy(context.Background(), &request.BuyTicketRequest{
		ShowtimeID: f.showtimeID.String(),
		Seat:       "42",
	})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBuy_SeatOutsideRoom(t *testing.T) {
	f := newTicketFixture()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(f.showtime(), nil)
	f.rooms.On("FindByID", mock.Anything, f.roomID).Return(f.room(), nil)

	_, err := f.service.Buy(context.Background(), &request.BuyTicketRequest{
		ShowtimeID: f.showtimeID.String(),
		Seat:       "Z-99",
	})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBuy_UnknownShowtime(t *testing.T) {
	f := newTicketFixture()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(nil, nil)

	_, err := f.service.Buy(context.Background(), &request.BuyTicketRequest{
		ShowtimeID: f.showtimeID.String(),
		Seat:       "C-4",
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetOccupiedSeats(t *testing.T) {
	f := newTicketFixture()
	f.showtimes.On("FindByID", mock.Anything, f.showtimeID).Return(f.showtime(), nil)
	f.tickets.On("FindOccupiedSeats", mock.Anything, f.showtimeID).Return([]entity.Seat{
		{Row: "A", Number: 1},
		{Row: "B", Number: 7},
	}, nil)

	resp, err := f.service.GetOccupiedSeats(context.Background(), f.showtimeID.String())
	require.NoError(t, err)

	assert.Equal(t, f.showtimeID.String(), resp.ShowtimeID)
	assert.Equal(t, []string{"A-1", "B-7"}, resp.Seats)
}

func TestGetAllSales_Pagination(t *testing.T) {
	f := newTicketFixture()
	f.tickets.On("FindAll", mock.Anything, 20, 20).Return([]*entity.Ticket{}, nil)

	_, err := f.service.GetAllSales(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 20})
	require.NoError(t, err)

	f.tickets.AssertExpectations(t)
}
