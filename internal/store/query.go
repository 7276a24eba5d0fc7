package store

import (
	"cmp"
	"errors"
	"slices"

	"movie-rental/internal/data/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrUnknownSort = errors.New("unknown sort key")

const (
	SortTitle       = "title"
	SortGenre       = "genre"
	SortReleaseYear = "release_year"

	SortUser    = "user"
	SortMovie   = "movie"
	SortDueDate = "due_date"
)

// Text keys compare in locale order, like what a user sees in a sorted
// table. A Collator is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// SortMovies orders movies in place. An empty key keeps the current order.
func SortMovies(movies []entity.Movie, key string) error {
	switch key {
	case "":
		return nil
	case SortTitle:
		c := newCollator()
		slices.SortStableFunc(movies, func(a, b entity.Movie) int {
			return c.CompareString(a.Title, b.Title)
		})
	case SortGenre:
		c := newCollator()
		slices.SortStableFunc(movies, func(a, b entity.Movie) int {
			return c.CompareString(a.Genre, b.Genre)
		})
	case SortReleaseYear:
		slices.SortStableFunc(movies, func(a, b entity.Movie) int {
			return cmp.Compare(a.ReleaseYear, b.ReleaseYear)
		})
	default:
		return ErrUnknownSort
	}
	return nil
}

// SortRentals orders rentals in place by renter name, movie title or due
// date. Rentals whose user or movie is not mirrored sort as an empty name.
func SortRentals(rentals []entity.Rental, users []entity.User, movies []entity.Movie, key string) error {
	switch key {
	case "":
		return nil
	case SortUser:
		names := userNames(users)
		c := newCollator()
		slices.SortStableFunc(rentals, func(a, b entity.Rental) int {
			return c.CompareString(names[a.UserID], names[b.UserID])
		})
	case SortMovie:
		titles := movieTitles(movies)
		c := newCollator()
		slices.SortStableFunc(rentals, func(a, b entity.Rental) int {
			return c.CompareString(titles[a.MovieID], titles[b.MovieID])
		})
	case SortDueDate:
		// YYYY-MM-DD sorts lexically.
		slices.SortStableFunc(rentals, func(a, b entity.Rental) int {
			return cmp.Compare(a.DueDate, b.DueDate)
		})
	default:
		return ErrUnknownSort
	}
	return nil
}

type UserRentals struct {
	User    entity.User
	Rentals []entity.Rental
}

// GroupRentalsByUser returns one group per user, users ordered by name,
// each group keeping the order of rentals. Users without rentals get an
// empty group; rentals of unknown users are left out.
func GroupRentalsByUser(rentals []entity.Rental, users []entity.User) []UserRentals {
	byUser := make(map[int64][]entity.Rental, len(users))
	for _, r := range rentals {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	groups := make([]UserRentals, 0, len(users))
	for _, u := range users {
		groups = append(groups, UserRentals{User: u, Rentals: clone(byUser[u.ID])})
	}

	c := newCollator()
	slices.SortStableFunc(groups, func(a, b UserRentals) int {
		return c.CompareString(a.User.Name, b.User.Name)
	})
	return groups
}

// RentedMovieIDs lists the movies a user currently rents, in rental order.
func RentedMovieIDs(rentals []entity.Rental, userID int64) []int64 {
	ids := []int64{}
	for _, r := range rentals {
		if r.UserID == userID {
			ids = append(ids, r.MovieID)
		}
	}
	return ids
}

type RatingStats struct {
	MovieID int64
	Average float64
	Count   int
}

func MovieRatingStats(ratings []entity.Rating, movieID int64) RatingStats {
	stats := RatingStats{MovieID: movieID}
	total := 0
	for _, r := range ratings {
		if r.MovieID == movieID {
			total += r.Rating
			stats.Count++
		}
	}
	if stats.Count > 0 {
		stats.Average = float64(total) / float64(stats.Count)
	}
	return stats
}

// Find returns the element with the given id.
func Find[T entity.Record](items []T, id int64) (T, bool) {
	if i := indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

func userNames(users []entity.User) map[int64]string {
	m := make(map[int64]string, len(users))
	for _, u := range users {
		m[u.ID] = u.Name
	}
	return m
}

func movieTitles(movies []entity.Movie) map[int64]string {
	m := make(map[int64]string, len(movies))
	for _, mv := range movies {
		m[mv.ID] = mv.Title
	}
	return m
}

// UserNames maps user ids to names for decorating rentals and ratings.
func (s *Store) UserNames() map[int64]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return userNames(s.users)
}

// MovieTitles maps movie ids to titles.
func (s *Store) MovieTitles() map[int64]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return movieTitles(s.movies)
}

func (s *Store) RentedMovieIDs(userID int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RentedMovieIDs(s.rentals, userID)
}

func (s *Store) RatingStats(movieID int64) RatingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MovieRatingStats(s.ratings, movieID)
}

func (s *Store) Rating(id int64) (entity.Rating, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Find(s.ratings, id)
}
