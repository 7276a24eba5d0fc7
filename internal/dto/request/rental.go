package request

type RentalRequest struct {
	UserID  int64  `json:"user_id" validate:"required,min=1"`
	MovieID int64  `json:"movie_id" validate:"required,min=1"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02,future_date"`
}

type RentalUpdateRequest struct {
	UserID  *int64  `json:"user_id,omitempty" validate:"omitempty,min=1"`
	MovieID *int64  `json:"movie_id,omitempty" validate:"omitempty,min=1"`
	DueDate *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02,future_date"`
}
