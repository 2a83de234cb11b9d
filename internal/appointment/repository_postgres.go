package appointment

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, a *Appointment) error {
	query := `
		INSERT INTO appointments (id, name, email, phone, preferred_date, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.Name, a.Email, a.Phone, a.Date, a.Message, a.CreatedAt,
	)
	return err
}
