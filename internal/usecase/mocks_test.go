package usecase

import (
	"context"
	"time"

	"cinema-checkout/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShowtimeRepository is a mock implementation of repository.ShowtimeRepository
type MockShowtimeRepository struct {
	mock.Mock
}

func (m *MockShowtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Showtime), args.Error(1)
}

func (m *MockShowtimeRepository) FindUpcoming(ctx context.Context, after time.Time) ([]*entity.Showtime, error) {
	args := m.Called(ctx, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Showtime), args.Error(1)
}

// MockMovieRepository is a mock implementation of repository.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

// MockRoomRepository is a mock implementation of repository.RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

// MockSnackRepository is a mock implementation of repository.SnackRepository
type MockSnackRepository struct {
	mock.Mock
}

func (m *MockSnackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Snack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Snack), args.Error(1)
}

func (m *MockSnackRepository) FindAll(ctx context.Context) ([]*entity.Snack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Snack), args.Error(1)
}

// MockPersonRepository is a mock implementation of repository.PersonRepository
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

func (m *MockPersonRepository) IsDiscountEligible(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithLines(ctx context.Context, order *entity.Order, tickets []*entity.Ticket, snackOrders []*entity.SnackOrder) error {
	args := m.Called(ctx, order, tickets, snackOrders)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

// MockTicketRepository is a mock implementation of repository.TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindOccupiedSeats(ctx context.Context, showtimeID uuid.UUID) ([]entity.Seat, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Seat), args.Error(1)
}

func (m *MockTicketRepository) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

// MockSnackOrderRepository is a mock implementation of repository.SnackOrderRepository
type MockSnackOrderRepository struct {
	mock.Mock
}

func (m *MockSnackOrderRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.SnackOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SnackOrder), args.Error(1)
}
