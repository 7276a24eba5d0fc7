package entity

type Rating struct {
	ID        int64  `json:"id"`
	MovieID   int64  `json:"movie_id"`
	UserID    int64  `json:"user_id"`
	Rating    int    `json:"rating"` // 1-5
	Review    string `json:"review"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (r Rating) Key() int64 { return r.ID }
