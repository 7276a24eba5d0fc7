package gateway

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

type MovieGateway interface {
	List(ctx context.Context) ([]entity.Movie, error)
	Create(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error)
	Update(ctx context.Context, id int64, req *request.MovieUpdateRequest) (*entity.Movie, error)
	Delete(ctx context.Context, id int64) error
}

type movieGateway struct {
	res resource[entity.Movie]
}

func newMovieGateway(c *client) MovieGateway {
	return &movieGateway{res: resource[entity.Movie]{kind: entity.KindMovie, client: c}}
}

func (g *movieGateway) List(ctx context.Context) ([]entity.Movie, error) {
	return g.res.list(ctx)
}

func (g *movieGateway) Create(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	return g.res.create(ctx, req)
}

func (g *movieGateway) Update(ctx context.Context, id int64, req *request.MovieUpdateRequest) (*entity.Movie, error) {
	return g.res.update(ctx, id, req)
}

func (g *movieGateway) Delete(ctx context.Context, id int64) error {
	return g.res.remove(ctx, id)
}
