package appointment

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu           sync.Mutex
	appointments []Appointment
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = append(r.appointments, *a)
	return nil
}

// Snapshot returns a copy of everything saved so far.
func (r *InMemoryRepository) Snapshot() []Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}
