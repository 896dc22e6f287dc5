package repository

import (
	"context"
	"errors"
	"time"

	"beautycrm_backend/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// User is a CRM user. Sales reps carry a region and a quota used for
// territory assignment.
type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Region    string    `json:"region"`
	Active    bool      `json:"active"`
	Quota     float64   `json:"quota"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateParams struct {
	FullName string
	Email    string
	Role     string
	Region   string
	Quota    float64
}

// Repository stores users.
type Repository struct {
	db db.Querier
}

// New creates a users repository.
func New(q db.Querier) *Repository {
	return &Repository{db: q}
}

const userColumns = "id, full_name, email, role, region, active, quota::float8, created_at"

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Region, &u.Active, &u.Quota, &u.CreatedAt)
	return u, err
}

// GetByID returns one user.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

// List returns every user ordered by name.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	return r.query(ctx, "SELECT "+userColumns+" FROM users ORDER BY full_name, id")
}

// ListActiveReps returns active sales reps, highest quota first.
func (r *Repository) ListActiveReps(ctx context.Context) ([]User, error) {
	return r.query(ctx, `SELECT `+userColumns+` FROM users
		WHERE active AND role = 'sales_rep'
		ORDER BY quota DESC, full_name, id`)
}

// Create inserts a user.
func (r *Repository) Create(ctx context.Context, p CreateParams) (User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (id, full_name, email, role, region, quota)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		uuid.New(), p.FullName, p.Email, p.Role, p.Region, p.Quota))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrDuplicateEmail
		}
		return User{}, err
	}
	return u, nil
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
