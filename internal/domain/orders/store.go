package orders

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const orderColumns = `
  order_id, order_date, customer, contact, tier, garment_type, loads,
  additionals, misc_amount, amount, payment_type, payment_status,
  work_status, notes, created_at`

func (s *Store) Insert(ctx context.Context, o Order) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO orders (order_id, order_date, customer, contact, tier,
      garment_type, loads, additionals, misc_amount, amount,
      payment_type, payment_status, work_status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
  `, o.OrderID, o.OrderDate, o.Customer, o.Contact, o.Tier,
		o.GarmentType, o.Loads, o.Additionals, o.MiscAmount, o.Amount,
		o.PaymentType, o.PaymentStatus, o.WorkStatus, o.Notes)
	return err
}

func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	row := s.DB.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE order_id = $1`, orderID)

	var o Order
	if err := scanOrder(row, &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Search matches the query against order ids and customer names,
// case-insensitively. An empty query lists everything.
func (s *Store) Search(ctx context.Context, query, workStatus string, limit int) ([]Order, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+orderColumns+`
    FROM orders
    WHERE ($1 = '' OR order_id ILIKE '%' || $1 || '%' OR customer ILIKE '%' || $1 || '%')
      AND ($2 = '' OR work_status = $2)
    ORDER BY created_at DESC
    LIMIT $3
  `, query, workStatus, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (s *Store) UpdateStatus(ctx context.Context, orderID string, upd StatusUpdate) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE orders
    SET payment_type = $1,
        payment_status = $2,
        work_status = $3,
        notes = $4
    WHERE order_id = $5
  `, upd.PaymentType, upd.PaymentStatus, upd.WorkStatus, upd.Notes, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, orderID string) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DashboardFor aggregates the front-desk counters for the given day.
func (s *Store) DashboardFor(ctx context.Context, day time.Time) (*Dashboard, error) {
	var d Dashboard
	err := s.DB.QueryRow(ctx, `
    SELECT
      COALESCE(SUM(amount) FILTER (WHERE order_date = $1 AND payment_status = 'Paid'), 0),
      COALESCE(SUM(amount) FILTER (WHERE order_date = $1 AND payment_status = 'Paid' AND payment_type = 'Cash'), 0),
      COALESCE(SUM(amount) FILTER (WHERE order_date = $1 AND payment_status = 'Paid' AND payment_type = 'GCash'), 0),
      COALESCE(SUM(amount) FILTER (WHERE payment_status = 'Unpaid'), 0),
      COUNT(*) FILTER (WHERE work_status = 'WIP'),
      COUNT(*) FILTER (WHERE work_status = 'Ready'),
      COUNT(*) FILTER (WHERE order_date = $1),
      COUNT(*) FILTER (WHERE payment_status = 'Unpaid'),
      COUNT(*) FILTER (WHERE order_date = $1 AND work_status = 'Claimed')
    FROM orders
  `, day).Scan(
		&d.SalesToday, &d.CashToday, &d.GCashToday, &d.UnpaidTotal,
		&d.WIPCount, &d.ReadyCount, &d.OrdersToday, &d.UnpaidOrders, &d.ClaimedToday,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner, o *Order) error {
	return row.Scan(
		&o.OrderID, &o.OrderDate, &o.Customer, &o.Contact, &o.Tier,
		&o.GarmentType, &o.Loads, &o.Additionals, &o.MiscAmount, &o.Amount,
		&o.PaymentType, &o.PaymentStatus, &o.WorkStatus, &o.Notes, &o.CreatedAt,
	)
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
