package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-checkout/internal/data/repository"
	"cinema-checkout/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService is the read side of the catalog consumed by checkout:
// showtimes with their movie/room details and the snack list. Catalog
// management itself lives elsewhere.
type CatalogService interface {
	ListUpcomingShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	ListSnacks(ctx context.Context) ([]response.SnackResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListUpcomingShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.FindUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("find upcoming showtimes: %w", err)
	}

	responses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		movie, _ := s.repo.Movie.FindByID(ctx, showtime.MovieID)
		room, _ := s.repo.Room.FindByID(ctx, showtime.RoomID)
		responses[i] = response.ShowtimeToResponse(showtime, movie, room)
	}

	return responses, nil
}

func (s *catalogService) GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, &NotFoundError{Resource: "showtime", ID: showtimeID}
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load showtime: %w", err)
	}
	if showtime == nil {
		return nil, &NotFoundError{Resource: "showtime", ID: showtimeID}
	}

	movie, _ := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	room, _ := s.repo.Room.FindByID(ctx, showtime.RoomID)

	resp := response.ShowtimeToResponse(showtime, movie, room)
	return &resp, nil
}

func (s *catalogService) ListSnacks(ctx context.Context) ([]response.SnackResponse, error) {
	snacks, err := s.repo.Snack.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find snacks: %w", err)
	}

	responses := make([]response.SnackResponse, len(snacks))
	for i, snack := range snacks {
		responses[i] = response.SnackToResponse(snack)
	}

	return responses, nil
}
