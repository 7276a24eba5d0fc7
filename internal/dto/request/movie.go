package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Genre       string `json:"genre" validate:"required,max=50"`
	ReleaseYear int    `json:"release_year" validate:"required,min=1900,not_future_year"`
	Image       string `json:"image" validate:"required,url"`
}

type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,min=1,max=50"`
	ReleaseYear *int    `json:"release_year,omitempty" validate:"omitempty,min=1900,not_future_year"`
	Image       *string `json:"image,omitempty" validate:"omitempty,url"`
}
