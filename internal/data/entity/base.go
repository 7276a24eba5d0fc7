package entity

// Kind names a resource kind. Each kind owns one endpoint root on the backend.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindUser   Kind = "user"
	KindRental Kind = "rental"
	KindRating Kind = "rating"
)

// Kinds lists every resource kind in load order.
var Kinds = []Kind{KindMovie, KindUser, KindRental, KindRating}

// Path returns the collection endpoint for the kind, e.g. "/movies".
func (k Kind) Path() string {
	return "/" + string(k) + "s"
}

// Record is implemented by every entity the store mirrors.
type Record interface {
	Key() int64
}
