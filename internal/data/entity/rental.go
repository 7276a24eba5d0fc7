package entity

type Rental struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	MovieID int64  `json:"movie_id"`
	DueDate string `json:"due_date"` // YYYY-MM-DD
}

func (r Rental) Key() int64 { return r.ID }
