package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository stores one entity kind. It runs against a pool or, through
// WithTx, inside a caller-owned transaction.
type Repository struct {
	db    db.Querier
	table Table
}

// New creates a repository for table.
func New(q db.Querier, table Table) *Repository {
	return &Repository{db: q, table: table}
}

// WithTx returns a copy bound to tx.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx, table: r.table}
}

// Table returns the bound table.
func (r *Repository) Table() Table {
	return r.table
}

func (r *Repository) selectColumns() string {
	return fmt.Sprintf(`e.id, e.name, e.business_type, e.discovery_source,
		e.contact_name, e.contact_email, e.contact_phone, e.social_media_links,
		e.street, e.city, e.state, e.country, e.postal_code, e.estimated_value::float8,
		e.score, e.status, e.assigned_to, u.full_name, %s, e.about,
		(SELECT MAX(a.created_at) FROM entity_activities a WHERE a.entity_type = '%s' AND a.entity_id = e.id),
		e.created_at, e.modified_at`, r.table.OpportunityColumn, r.table.Kind)
}

func (r *Repository) fromClause() string {
	return fmt.Sprintf("%s e LEFT JOIN users u ON u.id = e.assigned_to", r.table.Name)
}

func (r *Repository) scan(row pgx.Row) (domain.Entity, error) {
	e := domain.Entity{Kind: r.table.Kind}
	var score *int16
	err := row.Scan(
		&e.ID, &e.Name, &e.BusinessType, &e.DiscoverySource,
		&e.ContactName, &e.ContactEmail, &e.ContactPhone, &e.SocialMediaLinks,
		&e.Street, &e.City, &e.State, &e.Country, &e.PostalCode, &e.EstimatedValue,
		&score, &e.Status, &e.AssignedTo, &e.AssignedToName, &e.ConvertedToOpportunityID, &e.About,
		&e.LastActivityAt,
		&e.CreatedAt, &e.ModifiedAt,
	)
	if err != nil {
		return domain.Entity{}, err
	}
	if score != nil {
		v := int(*score)
		e.Score = &v
	}
	return e, nil
}

// GetByID returns one entity.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domain.Entity, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE e.id = $1", r.selectColumns(), r.fromClause())
	e, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Entity{}, ErrNotFound
	}
	return e, err
}

// GetForUpdate reads and row-locks one entity. Must run inside a transaction.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Entity, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE e.id = $1 FOR UPDATE OF e", r.selectColumns(), r.fromClause())
	e, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Entity{}, ErrNotFound
	}
	return e, err
}

// List returns a filtered page and the total match count.
func (r *Repository) List(ctx context.Context, params ListParams) ([]domain.Entity, int, error) {
	whereClause, args, argIdx := buildListWhere(params)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s e WHERE %s", r.table.Name, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortOrder := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	args = append(args, params.Limit, params.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s %s NULLS LAST, e.id
		LIMIT $%d OFFSET $%d
	`, r.selectColumns(), r.fromClause(), whereClause, mapSortColumn(params.SortBy), sortOrder, argIdx, argIdx+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]domain.Entity, 0)
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}
	return items, total, nil
}

// ListActiveAfter pages through non-terminal rows ordered by id, starting
// after the given cursor. uuid.Nil starts from the beginning.
func (r *Repository) ListActiveAfter(ctx context.Context, after uuid.UUID, limit int) ([]domain.Entity, error) {
	et, _ := domain.TypeByKind(r.table.Kind)
	terminal := append([]string{et.Statuses[len(et.Statuses)-1]}, et.NegativeStatuses...)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE e.id > $1 AND NOT (e.status = ANY($2))
		ORDER BY e.id
		LIMIT $3
	`, r.selectColumns(), r.fromClause())

	rows, err := r.db.Query(ctx, query, after, terminal, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Entity, 0, limit)
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// Create inserts a row and returns its id.
func (r *Repository) Create(ctx context.Context, p CreateParams) (uuid.UUID, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, name, business_type, discovery_source,
			contact_name, contact_email, contact_phone, social_media_links,
			street, city, state, country, postal_code, estimated_value,
			score, status, assigned_to, about
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`, r.table.Name)

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		p.ID, p.Name, p.BusinessType, p.DiscoverySource,
		p.ContactName, p.ContactEmail, p.ContactPhone, p.SocialMediaLinks,
		p.Street, p.City, p.State, p.Country, p.PostalCode, p.EstimatedValue,
		p.Score, p.Status, p.AssignedTo, p.About,
	).Scan(&id)
	return id, err
}

// UpdateStatus applies a status change guarded by the previously observed
// status. A nil Score leaves the score untouched.
func (r *Repository) UpdateStatus(ctx context.Context, p UpdateStatusParams) (domain.Entity, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, score = COALESCE($3, score), modified_at = now()
		WHERE id = $1 AND status = $4
	`, r.table.Name)

	tag, err := r.db.Exec(ctx, query, p.ID, p.ToStatus, p.Score, p.FromStatus)
	if err != nil {
		return domain.Entity{}, err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return domain.Entity{}, err
		}
		return domain.Entity{}, ErrStatusConflict
	}
	return r.GetByID(ctx, p.ID)
}

// UpdateScore persists a recomputed score.
func (r *Repository) UpdateScore(ctx context.Context, id uuid.UUID, score int) error {
	query := fmt.Sprintf("UPDATE %s SET score = $2, modified_at = now() WHERE id = $1", r.table.Name)
	return r.execOne(ctx, query, id, score)
}

// Assign sets the sales rep.
func (r *Repository) Assign(ctx context.Context, id uuid.UUID, repID uuid.UUID) error {
	query := fmt.Sprintf("UPDATE %s SET assigned_to = $2, modified_at = now() WHERE id = $1", r.table.Name)
	return r.execOne(ctx, query, id, repID)
}

// UpdateAbout stores generated about text.
func (r *Repository) UpdateAbout(ctx context.Context, id uuid.UUID, about string) error {
	query := fmt.Sprintf("UPDATE %s SET about = $2, modified_at = now() WHERE id = $1", r.table.Name)
	return r.execOne(ctx, query, id, about)
}

// LinkOpportunity records the opportunity created from a prospect and,
// when status is non-empty, moves it to that status.
func (r *Repository) LinkOpportunity(ctx context.Context, id uuid.UUID, opportunityID uuid.UUID, status string) error {
	if r.table.Kind != domain.KindProspect {
		return fmt.Errorf("%s rows cannot link opportunities", r.table.Kind)
	}
	return r.execOne(ctx, `
		UPDATE prospects
		SET converted_to_opportunity_id = $2,
			status = COALESCE(NULLIF($3, ''), status),
			modified_at = now()
		WHERE id = $1
	`, id, opportunityID, status)
}

func (r *Repository) execOne(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func buildListWhere(params ListParams) (string, []interface{}, int) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if params.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.AssignedTo != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("e.assigned_to = $%d", argIdx))
		args = append(args, *params.AssignedTo)
		argIdx++
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(e.name ILIKE $%d OR e.city ILIKE $%d OR e.contact_name ILIKE $%d)",
			argIdx, argIdx, argIdx,
		))
		args = append(args, "%"+search+"%")
		argIdx++
	}

	return strings.Join(whereClauses, " AND "), args, argIdx
}

func mapSortColumn(sortBy string) string {
	switch sortBy {
	case "name":
		return "e.name"
	case "score":
		return "e.score"
	case "status":
		return "e.status"
	case "city":
		return "e.city"
	case "createdAt":
		return "e.created_at"
	default:
		return "e.modified_at"
	}
}
