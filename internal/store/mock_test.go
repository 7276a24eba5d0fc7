package store

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/data/gateway"
	"movie-rental/internal/dto/request"

	"github.com/stretchr/testify/mock"
)

type MockMovieGateway struct {
	mock.Mock
}

func (m *MockMovieGateway) List(ctx context.Context) ([]entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Movie), args.Error(1)
}

func (m *MockMovieGateway) Create(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieGateway) Update(ctx context.Context, id int64, req *request.MovieUpdateRequest) (*entity.Movie, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieGateway) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserGateway struct {
	mock.Mock
}

func (m *MockUserGateway) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserGateway) Create(ctx context.Context, req *request.UserRequest) (*entity.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserGateway) Update(ctx context.Context, id int64, req *request.UserUpdateRequest) (*entity.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserGateway) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRentalGateway struct {
	mock.Mock
}

func (m *MockRentalGateway) List(ctx context.Context) ([]entity.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Rental), args.Error(1)
}

func (m *MockRentalGateway) Create(ctx context.Context, req *request.RentalRequest) (*entity.Rental, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rental), args.Error(1)
}

func (m *MockRentalGateway) Update(ctx context.Context, id int64, req *request.RentalUpdateRequest) (*entity.Rental, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rental), args.Error(1)
}

func (m *MockRentalGateway) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRatingGateway struct {
	mock.Mock
}

func (m *MockRatingGateway) List(ctx context.Context) ([]entity.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Rating), args.Error(1)
}

func (m *MockRatingGateway) Create(ctx context.Context, req *request.RatingRequest) (*entity.Rating, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockRatingGateway) Update(ctx context.Context, id int64, req *request.RatingUpdateRequest) (*entity.Rating, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockRatingGateway) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBackend struct {
	movie  *MockMovieGateway
	user   *MockUserGateway
	rental *MockRentalGateway
	rating *MockRatingGateway
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		movie:  new(MockMovieGateway),
		user:   new(MockUserGateway),
		rental: new(MockRentalGateway),
		rating: new(MockRatingGateway),
	}
}

func (b *mockBackend) gateway() *gateway.Gateway {
	return &gateway.Gateway{Movie: b.movie, User: b.user, Rental: b.rental, Rating: b.rating}
}

// serveFixtures makes every List call succeed with a fresh copy of the
// fixtures.
func (b *mockBackend) serveFixtures() {
	b.movie.On("List", mock.Anything).Return(fixtureMovies(), nil).Once()
	b.user.On("List", mock.Anything).Return(fixtureUsers(), nil).Once()
	b.rental.On("List", mock.Anything).Return(fixtureRentals(), nil).Once()
	b.rating.On("List", mock.Anything).Return(fixtureRatings(), nil).Once()
}

func fixtureMovies() []entity.Movie {
	return []entity.Movie{
		{ID: 1, Title: "Alien", Genre: "Horror", ReleaseYear: 1979, Image: "http://img/alien.png"},
		{ID: 7, Title: "Heat", Genre: "Crime", ReleaseYear: 1995, Image: "http://img/heat.png"},
		{ID: 3, Title: "Up", Genre: "Animation", ReleaseYear: 2009, Image: "http://img/up.png"},
	}
}

func fixtureUsers() []entity.User {
	return []entity.User{
		{ID: 1, Name: "Zoe", Email: "zoe@example.com"},
		{ID: 2, Name: "Adam", Email: "adam@example.com"},
	}
}

func fixtureRentals() []entity.Rental {
	return []entity.Rental{
		{ID: 10, UserID: 1, MovieID: 7, DueDate: "2030-03-01"},
		{ID: 11, UserID: 2, MovieID: 7, DueDate: "2030-01-01"},
		{ID: 12, UserID: 1, MovieID: 3, DueDate: "2030-02-01"},
	}
}

func fixtureRatings() []entity.Rating {
	return []entity.Rating{
		{ID: 20, MovieID: 1, UserID: 1, Rating: 4, Review: "Great"},
		{ID: 21, MovieID: 1, UserID: 2, Rating: 2, Review: "Meh"},
	}
}
