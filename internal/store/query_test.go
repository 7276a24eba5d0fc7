package store

import (
	"testing"

	"movie-rental/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movieIDs(movies []entity.Movie) []int64 {
	ids := make([]int64, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func rentalIDs(rentals []entity.Rental) []int64 {
	ids := make([]int64, len(rentals))
	for i, r := range rentals {
		ids[i] = r.ID
	}
	return ids
}

func TestSortMovies(t *testing.T) {
	tests := []struct {
		key  string
		want []int64
	}{
		{key: "", want: []int64{1, 7, 3}},
		{key: SortTitle, want: []int64{1, 7, 3}},
		{key: SortGenre, want: []int64{3, 7, 1}},
		{key: SortReleaseYear, want: []int64{1, 7, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			movies := fixtureMovies()
			require.NoError(t, SortMovies(movies, tt.key))
			assert.Equal(t, tt.want, movieIDs(movies))
		})
	}
}

func TestSortMovies_TitleIgnoresCase(t *testing.T) {
	movies := []entity.Movie{{ID: 1, Title: "zulu"}, {ID: 2, Title: "Alpha"}, {ID: 3, Title: "beta"}}
	require.NoError(t, SortMovies(movies, SortTitle))
	assert.Equal(t, []int64{2, 3, 1}, movieIDs(movies))
}

func TestSortMovies_UnknownKey(t *testing.T) {
	assert.ErrorIs(t, SortMovies(fixtureMovies(), "rating"), ErrUnknownSort)
}

func TestSortRentals(t *testing.T) {
	tests := []struct {
		key  string
		want []int64
	}{
		{key: SortUser, want: []int64{11, 10, 12}},
		{key: SortMovie, want: []int64{10, 11, 12}},
		{key: SortDueDate, want: []int64{11, 12, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rentals := fixtureRentals()
			require.NoError(t, SortRentals(rentals, fixtureUsers(), fixtureMovies(), tt.key))
			assert.Equal(t, tt.want, rentalIDs(rentals))
		})
	}

	assert.ErrorIs(t, SortRentals(fixtureRentals(), nil, nil, "price"), ErrUnknownSort)
}

func TestGroupRentalsByUser(t *testing.T) {
	users := append(fixtureUsers(), entity.User{ID: 3, Name: "Mia"})
	rentals := append(fixtureRentals(), entity.Rental{ID: 13, UserID: 99, MovieID: 1})

	groups := GroupRentalsByUser(rentals, users)

	require.Len(t, groups, 3)
	assert.Equal(t, "Adam", groups[0].User.Name)
	assert.Equal(t, []int64{11}, rentalIDs(groups[0].Rentals))
	assert.Equal(t, "Mia", groups[1].User.Name)
	assert.Empty(t, groups[1].Rentals)
	assert.NotNil(t, groups[1].Rentals)
	assert.Equal(t, "Zoe", groups[2].User.Name)
	assert.Equal(t, []int64{10, 12}, rentalIDs(groups[2].Rentals))
}

func TestRentedMovieIDs(t *testing.T) {
	assert.Equal(t, []int64{7, 3}, RentedMovieIDs(fixtureRentals(), 1))
	assert.Empty(t, RentedMovieIDs(fixtureRentals(), 5))
}

func TestMovieRatingStats(t *testing.T) {
	stats := MovieRatingStats(fixtureRatings(), 1)
	assert.Equal(t, RatingStats{MovieID: 1, Average: 3, Count: 2}, stats)

	assert.Equal(t, RatingStats{MovieID: 3}, MovieRatingStats(fixtureRatings(), 3))
}

func TestFind(t *testing.T) {
	m, ok := Find(fixtureMovies(), 3)
	require.True(t, ok)
	assert.Equal(t, "Up", m.Title)

	_, ok = Find(fixtureMovies(), 100)
	assert.False(t, ok)
}

func TestCollectionHelpers_DoNotAliasInput(t *testing.T) {
	orig := fixtureMovies()

	removed, prior, at, ok := removeByID(orig, 7)
	require.True(t, ok)
	assert.Equal(t, 1, at)
	assert.Equal(t, int64(7), prior.ID)
	assert.Equal(t, []int64{1, 3}, movieIDs(removed))
	assert.Equal(t, []int64{1, 7, 3}, movieIDs(orig))

	replaced, hit := replaceOrAppend(orig, entity.Movie{ID: 3, Title: "Up!"})
	assert.True(t, hit)
	assert.Equal(t, "Up!", replaced[2].Title)
	assert.Equal(t, "Up", orig[2].Title)

	assert.Equal(t, []int64{1, 7, 3}, movieIDs(insertAt(orig, 0, entity.Movie{ID: 7})))
	assert.Equal(t, []int64{1, 3, 9}, movieIDs(insertAt(removed, 10, entity.Movie{ID: 9})))
}
