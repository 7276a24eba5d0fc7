package gateway

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

type RentalGateway interface {
	List(ctx context.Context) ([]entity.Rental, error)
	Create(ctx context.Context, req *request.RentalRequest) (*entity.Rental, error)
	Update(ctx context.Context, id int64, req *request.RentalUpdateRequest) (*entity.Rental, error)
	Delete(ctx context.Context, id int64) error
}

type rentalGateway struct {
	res resource[entity.Rental]
}

func newRentalGateway(c *client) RentalGateway {
	return &rentalGateway{res: resource[entity.Rental]{kind: entity.KindRental, client: c}}
}

func (g *rentalGateway) List(ctx context.Context) ([]entity.Rental, error) {
	return g.res.list(ctx)
}

func (g *rentalGateway) Create(ctx context.Context, req *request.RentalRequest) (*entity.Rental, error) {
	return g.res.create(ctx, req)
}

func (g *rentalGateway) Update(ctx context.Context, id int64, req *request.RentalUpdateRequest) (*entity.Rental, error) {
	return g.res.update(ctx, id, req)
}

func (g *rentalGateway) Delete(ctx context.Context, id int64) error {
	return g.res.remove(ctx, id)
}
