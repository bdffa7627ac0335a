package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zagadou92/franc1500/internal/dashboard"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// invoiceFilter matches invoices whose customer, amount, date or status contains $1.
const invoiceFilter = `
	customers.name ILIKE $1 OR
	customers.email ILIKE $1 OR
	invoices.amount::text ILIKE $1 OR
	invoices.date::text ILIKE $1 OR
	invoices.status ILIKE $1`

// containsPattern turns a free-text query into an ILIKE substring pattern.
func containsPattern(query string) string {
	return "%" + query + "%"
}

func (s *Store) ListRevenue(ctx context.Context) ([]dashboard.Revenue, error) {
	query := `SELECT month, revenue FROM revenue`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing revenue: %w", err)
	}
	defer rows.Close()

	var revenue []dashboard.Revenue

	for rows.Next() {
		var r dashboard.Revenue
		if err := rows.Scan(&r.Month, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scanning revenue: %w", err)
		}

		revenue = append(revenue, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revenue rows: %w", err)
	}

	return revenue, nil
}

func (s *Store) ListLatestInvoices(ctx context.Context, limit int) ([]dashboard.LatestInvoice, error) {
	query := `
		SELECT invoices.id, invoices.amount, customers.name, customers.image_url, customers.email
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing latest invoices: %w", err)
	}
	defer rows.Close()

	var invoices []dashboard.LatestInvoice

	for rows.Next() {
		var inv dashboard.LatestInvoice
		if err := rows.Scan(&inv.ID, &inv.Amount, &inv.Name, &inv.ImageURL, &inv.Email); err != nil {
			return nil, fmt.Errorf("scanning latest invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating latest invoice rows: %w", err)
	}

	return invoices, nil
}

func (s *Store) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return count, nil
}

func (s *Store) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting customers: %w", err)
	}

	return count, nil
}

func (s *Store) InvoiceStatusTotals(ctx context.Context) (dashboard.StatusTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = $1 THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = $2 THEN amount ELSE 0 END), 0) AS pending
		FROM invoices`

	// SUM over bigint yields numeric.
	var paid, pending decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, dashboard.StatusPaid, dashboard.StatusPending).Scan(&paid, &pending); err != nil {
		return dashboard.StatusTotals{}, fmt.Errorf("summing invoice totals: %w", err)
	}

	return dashboard.StatusTotals{
		Paid:    paid.IntPart(),
		Pending: pending.IntPart(),
	}, nil
}

func (s *Store) ListFilteredInvoices(ctx context.Context, filter string, limit, offset int) ([]dashboard.InvoiceRow, error) {
	query := `
		SELECT
			invoices.id, invoices.customer_id, invoices.amount, invoices.date, invoices.status,
			customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceFilter + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, containsPattern(filter), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing filtered invoices: %w", err)
	}
	defer rows.Close()

	var invoices []dashboard.InvoiceRow

	for rows.Next() {
		var (
			inv    dashboard.InvoiceRow
			status string
		)

		if err := rows.Scan(
			&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Date, &status,
			&inv.Name, &inv.Email, &inv.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		inv.Status = dashboard.Status(status)
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}

func (s *Store) CountFilteredInvoices(ctx context.Context, filter string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceFilter

	var count int64
	if err := s.db.QueryRowContext(ctx, query, containsPattern(filter)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting filtered invoices: %w", err)
	}

	return count, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*dashboard.InvoiceForm, error) {
	query := `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status
		FROM invoices
		WHERE invoices.id = $1`

	var (
		inv    dashboard.InvoiceForm
		cents  int64
		status string
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &cents, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dashboard.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	inv.Amount = dashboard.CentsToAmount(cents)
	inv.Status = dashboard.Status(status)

	return &inv, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]dashboard.CustomerField, error) {
	query := `SELECT id, name FROM customers ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []dashboard.CustomerField

	for rows.Next() {
		var c dashboard.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

func (s *Store) ListFilteredCustomers(ctx context.Context, filter string) ([]dashboard.CustomerRow, error) {
	query := `
		SELECT
			customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = $2 THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = $3 THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name ILIKE $1 OR customers.email ILIKE $1
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`

	rows, err := s.db.QueryContext(ctx, query, containsPattern(filter), dashboard.StatusPending, dashboard.StatusPaid)
	if err != nil {
		return nil, fmt.Errorf("listing filtered customers: %w", err)
	}
	defer rows.Close()

	var customers []dashboard.CustomerRow

	for rows.Next() {
		var (
			c             dashboard.CustomerRow
			pending, paid decimal.Decimal
		)

		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.ImageURL,
			&c.TotalInvoices, &pending, &paid,
		); err != nil {
			return nil, fmt.Errorf("scanning customer row: %w", err)
		}

		c.TotalPending = pending.IntPart()
		c.TotalPaid = paid.IntPart()
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}
