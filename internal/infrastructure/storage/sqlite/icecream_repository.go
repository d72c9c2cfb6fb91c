package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
	db, err := r.storage.open()
	if err != nil {
		return 0, fmt.Errorf("insert icecream: %w", err)
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `INSERT INTO icecreams (sabor, cantidad) VALUES (?, ?)`, flavor, quantity)
	if err != nil {
		r.log.Error("failed to insert icecream", "sabor", flavor, "error", err)
		return 0, fmt.Errorf("insert icecream: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert icecream: %w", err)
	}
	return int(id), nil
}

func (r *IceCreamRepository) FetchOne(ctx context.Context, id int) (*icecream.IceCream, error) {
	db, err := r.storage.open()
	if err != nil {
		return nil, fmt.Errorf("fetch icecream: %w", err)
	}
	defer db.Close()

	row := db.QueryRowContext(ctx, `SELECT id, sabor, cantidad FROM icecreams WHERE id = ?`, id)
	ic, err := scanIceCream(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, icecream.ErrNotFound
		}
		r.log.Error("failed to fetch icecream", "id", id, "error", err)
		return nil, fmt.Errorf("fetch icecream: %w", err)
	}
	return ic, nil
}

func (r *IceCreamRepository) FetchAll(ctx context.Context) ([]icecream.IceCream, error) {
	db, err := r.storage.open()
	if err != nil {
		return nil, fmt.Errorf("fetch icecreams: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, sabor, cantidad FROM icecreams`)
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
	return r.exec(ctx, "update icecream", `UPDATE icecreams SET sabor = ?, cantidad = ? WHERE id = ?`, flavor, quantity, id)
}

func (r *IceCreamRepository) Delete(ctx context.Context, id int) (int64, error) {
	return r.exec(ctx, "delete icecream", `DELETE FROM icecreams WHERE id = ?`, id)
}

func (r *IceCreamRepository) exec(ctx context.Context, op, query string, args ...interface{}) (int64, error) {
	db, err := r.storage.open()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to "+op, "error", err)
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.RowsAffected()
}

func scanIceCream(row interface {
	Scan(dest ...interface{}) error
}) (*icecream.IceCream, error) {
	var (
		id       int
		ic       icecream.IceCream
		quantity sql.NullInt64
	)

	if err := row.Scan(&id, &ic.Flavor, &quantity); err != nil {
		return nil, err
	}

	ic.ID = &id
	ic.Quantity = int(quantity.Int64)
	return &ic, nil
}
