package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"icecreams/internal/domain/icecream"
)

type IceCreamRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewIceCreamRepository(storage *Storage, log *slog.Logger) *IceCreamRepository {
	return &IceCreamRepository{
		storage: storage,
		log:     log.With("component", "icecream_repository"),
	}
}

func (r *IceCreamRepository) Insert(ctx context.Context, flavor string, quantity int) (int, error) {
	const query = `INSERT INTO icecreams (sabor, cantidad) VALUES ($1, $2) RETURNING id`

	q, release, err := r.storage.conn.acquire(ctx)
	if err != nil {
		r.log.Error("failed to connect", "error", err)
		return 0, fmt.Errorf("insert icecream: %w", err)
	}
	defer release()

	var id int
	if err := q.QueryRow(ctx, query, flavor, quantity).Scan(&id); err != nil {
		r.log.Error("failed to insert icecream", "sabor", flavor, "error", err)
		return 0, fmt.Errorf("insert icecream: %w", err)
	}

	return id, nil
}

func (r *IceCreamRepository) FetchOne(ctx context.Context, id int) (*icecream.IceCream, error) {
	const query = `SELECT id, sabor, cantidad FROM icecreams WHERE id = $1`

	q, release, err := r.storage.conn.acquire(ctx)
	if err != nil {
		r.log.Error("failed to connect", "error", err)
		return nil, fmt.Errorf("fetch icecream: %w", err)
	}
	defer release()

	ic, err := scanIceCream(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, icecream.ErrNotFound
		}
		r.log.Error("failed to fetch icecream", "id", id, "error", err)
		return nil, fmt.Errorf("fetch icecream: %w", err)
	}

	return ic, nil
}

func (r *IceCreamRepository) FetchAll(ctx context.Context) ([]icecream.IceCream, error) {
	const query = `SELECT id, sabor, cantidad FROM icecreams`

	q, release, err := r.storage.conn.acquire(ctx)
	if err != nil {
		r.log.Error("failed to connect", "error", err)
		return nil, fmt.Errorf("fetch icecreams: %w", err)
	}
	defer release()

	rows, err := q.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to fetch icecreams", "error", err)
		return nil, fmt.Errorf("fetch icecreams: %w", err)
	}
	defer rows.Close()

	items := []icecream.IceCream{}
	for rows.Next() {
		ic, err := scanIceCream(rows)
		if err != nil {
			return nil, fmt.Errorf("scan icecream: %w", err)
		}
		items = append(items, *ic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch icecreams: %w", err)
	}
	return items, nil
}

func (r *IceCreamRepository) Update(ctx context.Context, id int, flavor string, quantity int) (int64, error) {
	const query = `UPDATE icecreams SET sabor = $1, cantidad = $2 WHERE id = $3`

	q, release, err := r.storage.conn.acquire(ctx)
	if err != nil {
		r.log.Error("failed to connect", "error", err)
		return 0, fmt.Errorf("update icecream: %w", err)
	}
	defer release()

	tag, err := q.Exec(ctx, query, flavor, quantity, id)
	if err != nil {
		r.log.Error("failed to update icecream", "id", id, "error", err)
		return 0, fmt.Errorf("update icecream: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *IceCreamRepository) Delete(ctx context.Context, id int) (int64, error) {
	const query = `DELETE FROM icecreams WHERE id = $1`

	q, release, err := r.storage.conn.acquire(ctx)
	if err != nil {
		r.log.Error("failed to connect", "error", err)
		return 0, fmt.Errorf("delete icecream: %w", err)
	}
	defer release()

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete icecream", "id", id, "error", err)
		return 0, fmt.Errorf("delete icecream: %w", err)
	}

	return tag.RowsAffected(), nil
}

// cantidad is nullable in the schema; NULL reads as zero.
func scanIceCream(row pgx.Row) (*icecream.IceCream, error) {
	var (
		id       int
		ic       icecream.IceCream
		quantity *int
	)

	if err := row.Scan(&id, &ic.Flavor, &quantity); err != nil {
		return nil, err
	}

	ic.ID = &id
	if quantity != nil {
		ic.Quantity = *quantity
	}
	return &ic, nil
}
