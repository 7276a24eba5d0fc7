package request

// RatingRequest carries the form field names (movieId, userId). The gateway
// renames them to the wire names before submitting.
type RatingRequest struct {
	MovieID int64  `json:"movieId" validate:"required,min=1"`
	UserID  int64  `json:"userId" validate:"required,min=1"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Review  string `json:"review" validate:"required,min=2,max=500"`
}

type RatingUpdateRequest struct {
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Review *string `json:"review,omitempty" validate:"omitempty,min=2,max=500"`
}
