package gateway

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

type UserGateway interface {
	List(ctx context.Context) ([]entity.User, error)
	Create(ctx context.Context, req *request.UserRequest) (*entity.User, error)
	Update(ctx context.Context, id int64, req *request.UserUpdateRequest) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type userGateway struct {
	res resource[entity.User]
}

func newUserGateway(c *client) UserGateway {
	return &userGateway{res: resource[entity.User]{kind: entity.KindUser, client: c}}
}

func (g *userGateway) List(ctx context.Context) ([]entity.User, error) {
	return g.res.list(ctx)
}

func (g *userGateway) Create(ctx context.Context, req *request.UserRequest) (*entity.User, error) {
	return g.res.create(ctx, req)
}

func (g *userGateway) Update(ctx context.Context, id int64, req *request.UserUpdateRequest) (*entity.User, error) {
	return g.res.update(ctx, id, req)
}

func (g *userGateway) Delete(ctx context.Context, id int64) error {
	return g.res.remove(ctx, id)
}
