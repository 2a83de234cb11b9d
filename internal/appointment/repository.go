package appointment

import "context"

// Repository stores appointments. It is append-only.
type Repository interface {
	Save(ctx context.Context, a *Appointment) error
}
