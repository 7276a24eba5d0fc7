package gateway

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

type RatingGateway interface {
	List(ctx context.Context) ([]entity.Rating, error)
	Create(ctx context.Context, req *request.RatingRequest) (*entity.Rating, error)
	Update(ctx context.Context, id int64, req *request.RatingUpdateRequest) (*entity.Rating, error)
	Delete(ctx context.Context, id int64) error
}

// ratingPayload is the wire shape of a new rating. Forms name the foreign
// keys movieId/userId; the backend expects movie_id/user_id.
type ratingPayload struct {
	MovieID int64  `json:"movie_id"`
	UserID  int64  `json:"user_id"`
	Rating  int    `json:"rating"`
	Review  string `json:"review"`
}

type ratingGateway struct {
	res resource[entity.Rating]
}

func newRatingGateway(c *client) RatingGateway {
	return &ratingGateway{res: resource[entity.Rating]{kind: entity.KindRating, client: c}}
}

func (g *ratingGateway) List(ctx context.Context) ([]entity.Rating, error) {
	return g.res.list(ctx)
}

func (g *ratingGateway) Create(ctx context.Context, req *request.RatingRequest) (*entity.Rating, error) {
	return g.res.create(ctx, ratingPayload{
		MovieID: req.MovieID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Review:  req.Review,
	})
}

func (g *ratingGateway) Update(ctx context.Context, id int64, req *request.RatingUpdateRequest) (*entity.Rating, error) {
	return g.res.update(ctx, id, req)
}

func (g *ratingGateway) Delete(ctx context.Context, id int64) error {
	return g.res.remove(ctx, id)
}
