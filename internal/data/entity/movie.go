package entity

type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"release_year"`
	Image       string `json:"image"`
}

func (m Movie) Key() int64 { return m.ID }
