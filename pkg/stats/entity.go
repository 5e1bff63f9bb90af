package stats

import "context"

// Counts are the totals shown on the admin dashboard and by `joblens stats`.
type Counts struct {
	Users    int `json:"users"`
	Uploads  int `json:"uploads"`
	Searches int `json:"searches"`
}

// Repository is the read port for the totals.
type Repository interface {
	Counts(ctx context.Context) (Counts, error)
}
