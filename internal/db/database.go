package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wellywell/orderdesk/internal/types"
)

const orderColumns = `id::text AS id, user_id, status, items, total_price, created_at`

type Database struct {
	pool *pgxpool.Pool
}

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

func (d *Database) Close() {
	d.pool.Close()
}

func (d *Database) CreateUser(ctx context.Context, username string, password string, isAdmin bool) error {

	query := `
		INSERT INTO auth_user (username, password, is_admin)
		VALUES ($1, $2, $3)
		`
	_, err := d.pool.Exec(ctx, query, username, password, isAdmin)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return fmt.Errorf("%w", &UserExistsError{Username: username})
		}
		return err
	}
	return nil
}

// GrantAdmin marks existing users as admins; unknown names are skipped.
func (d *Database) GrantAdmin(ctx context.Context, usernames []string) error {
	if len(usernames) == 0 {
		return nil
	}
	query := `
		UPDATE auth_user
		SET is_admin = TRUE
		WHERE username = ANY($1)`

	_, err := d.pool.Exec(ctx, query, usernames)
	if err != nil {
		return fmt.Errorf("failed granting admin %w", err)
	}
	return nil
}

func (d *Database) GetUserHashedPassword(ctx context.Context, username string) (string, error) {
	query := `
		SELECT password
		FROM auth_user
		WHERE username = $1`

	row := d.pool.QueryRow(ctx, query, username)

	var password string

	err := row.Scan(&password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w", &UserNotFoundError{Username: username})
		}
		return "", fmt.Errorf("unexpected DB error %w", err)
	}
	return password, nil
}

func (d *Database) GetUser(ctx context.Context, username string) (*types.User, error) {
	query := `
		SELECT id, username, is_admin
		FROM auth_user
		WHERE username = $1`

	rows, err := d.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &UserNotFoundError{Username: username})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &user, nil
}

// InsertOrder stores a new pending order and returns it with its generated id.
func (d *Database) InsertOrder(ctx context.Context, userID int, items []types.OrderItem) (*types.OrderRecord, error) {

	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	if items == nil {
		items = []types.OrderItem{}
	}

	query := `
		INSERT INTO user_order (id, user_id, status, items, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orderColumns

	rows, err := d.pool.Query(ctx, query, uuid.NewString(), userID, types.PendingStatus, items, total)
	if err != nil {
		return nil, fmt.Errorf("failed inserting order %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.OrderRecord])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &order, nil
}

func (d *Database) GetOrder(ctx context.Context, id string) (*types.OrderRecord, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM user_order
		WHERE id = $1`

	rows, err := d.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.OrderRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: id})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &order, nil
}

func (d *Database) GetUserOrders(ctx context.Context, userID int) ([]types.OrderRecord, error) {

	query := `
		SELECT ` + orderColumns + `
		FROM user_order
		WHERE user_id = $1
		ORDER BY created_at, id
		LIMIT 1000
	`
	return d.collectOrders(ctx, query, userID)
}

func (d *Database) GetAllOrders(ctx context.Context) ([]types.OrderRecord, error) {

	query := `
		SELECT ` + orderColumns + `
		FROM user_order
		ORDER BY created_at DESC, id
		LIMIT 1000
	`
	return d.collectOrders(ctx, query)
}

func (d *Database) collectOrders(ctx context.Context, query string, args ...any) ([]types.OrderRecord, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.OrderRecord])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves the order from one status to another. The update
// only applies while the row still holds from; otherwise ErrStatusConflict.
func (d *Database) UpdateOrderStatus(ctx context.Context, id string, from, to types.Status) (*types.OrderRecord, error) {
	query := `
		UPDATE user_order
		SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING ` + orderColumns

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, query, to, id, from)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error %w", err)
	}
	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.OrderRecord])
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unexpected DB error %w", err)
		}

		var exists bool
		row := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM user_order WHERE id = $1)`, id)
		if err := row.Scan(&exists); err != nil {
			return nil, fmt.Errorf("unexpected DB error %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: id})
		}
		return nil, fmt.Errorf("%w", ErrStatusConflict)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &order, nil
}
