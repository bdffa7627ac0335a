package dashboard

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by the repository when a single-record lookup matches no row.
var ErrNotFound = errors.New("not found")

const (
	// PageSize is the number of invoices returned per page of filtered results.
	PageSize = 6

	// LatestInvoicesLimit caps the latest invoices list.
	LatestInvoicesLimit = 5
)

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Revenue is one month of the revenue report.
type Revenue struct {
	Month   string
	Revenue int64
}

// LatestInvoice is a recent invoice joined with its customer.
type LatestInvoice struct {
	ID       uuid.UUID
	Name     string
	ImageURL string
	Email    string
	Amount   int64 // Amount in cents
}

// InvoiceRow is an invoice joined with its customer, as listed in the invoices table.
type InvoiceRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Email      string
	ImageURL   string
	Date       time.Time
	Amount     int64 // Amount in cents
	Status     Status
}

// InvoiceForm is a single invoice prepared for editing.
// Amount is expressed in currency units, not cents.
type InvoiceForm struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Status     Status
}

// CustomerField is the id/name pair used by customer pickers.
type CustomerField struct {
	ID   uuid.UUID
	Name string
}

// CustomerRow is a customer with its invoice aggregates.
type CustomerRow struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64 // Cents
	TotalPaid     int64 // Cents
}

// StatusTotals holds the summed invoice amounts per status, in cents.
type StatusTotals struct {
	Paid    int64
	Pending int64
}

// CardData is the summary shown on the dashboard cards.
type CardData struct {
	NumberOfInvoices     int64
	NumberOfCustomers    int64
	TotalPaidInvoices    int64 // Cents
	TotalPendingInvoices int64 // Cents
}
