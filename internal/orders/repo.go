package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgStore is the Postgres-backed order repository.
type PgStore struct {
	DB *pgxpool.Pool
}

// InitSchema creates the tables the bot needs if they do not exist yet.
// Called once at startup, after the pool has been pinged.
func (s *PgStore) InitSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS food_details (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL,
			image BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_list (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			username TEXT,
			name TEXT,
			item_ordered TEXT NOT NULL,
			quantity BIGINT,
			remarks TEXT,
			contact_number BIGINT,
			location TEXT,
			collection_time TEXT,
			receipt_image BYTEA,
			status TEXT NOT NULL DEFAULT 'PENDING'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_list_user_status ON order_list (user_id, status)`,
		`CREATE TABLE IF NOT EXISTS collection_time (
			id BIGSERIAL PRIMARY KEY,
			time_options TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS offer_table (
			id BIGSERIAL PRIMARY KEY,
			offer TEXT NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := s.DB.Exec(ctx, q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *PgStore) Menu(ctx context.Context, category Weekday) ([]MenuItem, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT name, price FROM food_details WHERE category=$1 ORDER BY id ASC`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var (
			name  string
			price string
		)
		if err := rows.Scan(&name, &price); err != nil {
			return nil, err
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("bad price for %q: %w", name, err)
		}
		out = append(out, MenuItem{Name: name, Price: p, Category: category})
	}
	return out, rows.Err()
}

func (s *PgStore) CategoryPhoto(ctx context.Context, category Weekday) ([]byte, error) {
	var img []byte
	err := s.DB.QueryRow(ctx,
		`SELECT image FROM food_details WHERE category=$1 ORDER BY id ASC LIMIT 1`,
		string(category)).Scan(&img)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return img, err
}

// UpdateMenuItem overwrites the category's representative row. The match is
// by category, not by item name, so a category holding several rows cannot
// have one of them targeted individually.
func (s *PgStore) UpdateMenuItem(ctx context.Context, name string, image []byte, price decimal.Decimal, category Weekday) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE food_details SET name=$1, image=$2, price=$3 WHERE category=$4`,
		name, image, price.Round(2).StringFixed(2), string(category))
	return err
}

func (s *PgStore) CollectionTimes(ctx context.Context) ([]string, error) {
	return s.stringColumn(ctx, `SELECT time_options FROM collection_time ORDER BY id ASC`)
}

func (s *PgStore) Offers(ctx context.Context) ([]string, error) {
	return s.stringColumn(ctx, `SELECT offer FROM offer_table ORDER BY id ASC`)
}

func (s *PgStore) stringColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PgStore) AddOrder(ctx context.Context, userID int64, username, name, item string) error {
	_, err := s.DB.Exec(ctx,
		`INSERT INTO order_list (user_id, username, name, item_ordered, status)
		 VALUES ($1, $2, $3, $4, 'PENDING')`,
		userID, username, name, item)
	return err
}

func (s *PgStore) LatestPendingItem(ctx context.Context, userID int64) (string, error) {
	var item string
	err := s.DB.QueryRow(ctx,
		`SELECT item_ordered FROM order_list
		 WHERE user_id=$1 AND status='PENDING' ORDER BY id DESC LIMIT 1`,
		userID).Scan(&item)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return item, err
}

func (s *PgStore) SetQuantity(ctx context.Context, quantity int64, userID int64, item string) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE order_list SET quantity=$1
		 WHERE id = (SELECT max(id) FROM order_list
		             WHERE user_id=$2 AND status='PENDING' AND item_ordered=$3)`,
		quantity, userID, item)
	return err
}

func (s *PgStore) SetRemarks(ctx context.Context, remarks string, userID int64, item string) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE order_list SET remarks=$1
		 WHERE id = (SELECT max(id) FROM order_list
		             WHERE user_id=$2 AND status='PENDING' AND item_ordered=$3)`,
		remarks, userID, item)
	return err
}

func (s *PgStore) SetFullName(ctx context.Context, name string, userID int64) error {
	return s.setPendingField(ctx, `name`, name, userID)
}

func (s *PgStore) SetContactNumber(ctx context.Context, number int64, userID int64) error {
	return s.setPendingField(ctx, `contact_number`, number, userID)
}

func (s *PgStore) SetCollectionTime(ctx context.Context, collectionTime string, userID int64) error {
	return s.setPendingField(ctx, `collection_time`, collectionTime, userID)
}

func (s *PgStore) SetLocation(ctx context.Context, location string, userID int64) error {
	return s.setPendingField(ctx, `location`, location, userID)
}

func (s *PgStore) SetReceiptImage(ctx context.Context, image []byte, userID int64) error {
	return s.setPendingField(ctx, `receipt_image`, image, userID)
}

// setPendingField stamps a cart-level field onto every pending row of the
// user. Column names come from the callers above, never from user input.
func (s *PgStore) setPendingField(ctx context.Context, column string, value any, userID int64) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE order_list SET `+column+`=$1 WHERE user_id=$2 AND status='PENDING'`,
		value, userID)
	return err
}

func (s *PgStore) MarkAllPaid(ctx context.Context, userID int64) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE order_list SET status='PAID' WHERE user_id=$1`, userID)
	return err
}

func (s *PgStore) PendingOrder(ctx context.Context, userID int64) ([]CartLine, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT o.item_ordered, o.quantity, COALESCE(f.price, 0)
		 FROM order_list o
		 LEFT JOIN food_details f ON f.name = o.item_ordered
		 WHERE o.user_id=$1 AND o.status='PENDING'
		 ORDER BY o.id ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CartLine
	for rows.Next() {
		var (
			line  CartLine
			price string
		)
		if err := rows.Scan(&line.Item, &line.Quantity, &price); err != nil {
			return nil, err
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("bad price for %q: %w", line.Item, err)
		}
		line.UnitPrice = p
		if line.Quantity != nil {
			line.LineTotal = p.Mul(decimal.NewFromInt(*line.Quantity))
		}
		out = append(out, line)
	}
	return out, rows.Err()
}

func (s *PgStore) DeletePending(ctx context.Context, userID int64) error {
	_, err := s.DB.Exec(ctx,
		`DELETE FROM order_list WHERE user_id=$1 AND status='PENDING'`, userID)
	return err
}

// DeletePaid removes the user's paid rows. Deleting for a user with no paid
// rows is a no-op, not an error.
func (s *PgStore) DeletePaid(ctx context.Context, userID int64) error {
	_, err := s.DB.Exec(ctx,
		`DELETE FROM order_list WHERE user_id=$1 AND status='PAID'`, userID)
	return err
}

func (s *PgStore) PaidOrders(ctx context.Context) ([]PaidOrder, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT COALESCE(collection_time, ''), user_id, COALESCE(username, ''),
		        COALESCE(name, ''), contact_number, item_ordered, quantity,
		        COALESCE(location, ''), COALESCE(remarks, ''), receipt_image
		 FROM order_list WHERE status='PAID' ORDER BY collection_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PaidOrder
	for rows.Next() {
		var o PaidOrder
		if err := rows.Scan(&o.CollectionTime, &o.UserID, &o.Username, &o.Name,
			&o.ContactNumber, &o.Item, &o.Quantity, &o.Location, &o.Remarks,
			&o.ReceiptImage); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *PgStore) Purge(ctx context.Context) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM order_list`)
	return err
}
