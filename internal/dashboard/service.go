package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	ListRevenue(ctx context.Context) ([]Revenue, error)
	ListLatestInvoices(ctx context.Context, limit int) ([]LatestInvoice, error)

	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	InvoiceStatusTotals(ctx context.Context) (StatusTotals, error)

	ListFilteredInvoices(ctx context.Context, query string, limit, offset int) ([]InvoiceRow, error)
	CountFilteredInvoices(ctx context.Context, query string) (int64, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceForm, error)

	ListCustomers(ctx context.Context) ([]CustomerField, error)
	ListFilteredCustomers(ctx context.Context, query string) ([]CustomerRow, error)
}

// Service serves the dashboard queries. It never returns an error: failures are
// logged and turned into the operation's empty or zero value.
//
// A Service without a repository runs in skip-database mode and answers every
// call with the default value without touching the database.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{repo: repo, log: logger}
}

// SkipDatabase reports whether the service was built without a repository.
func (s *Service) SkipDatabase() bool {
	return s.repo == nil
}

func (s *Service) FetchRevenue(ctx context.Context) []Revenue {
	if s.SkipDatabase() {
		return []Revenue{}
	}

	revenue, err := s.repo.ListRevenue(ctx)
	if err != nil {
		s.log.Error("failed to fetch revenue data", "error", err)
		return []Revenue{}
	}

	return nonNil(revenue)
}

func (s *Service) FetchLatestInvoices(ctx context.Context) []LatestInvoice {
	if s.SkipDatabase() {
		return []LatestInvoice{}
	}

	invoices, err := s.repo.ListLatestInvoices(ctx, LatestInvoicesLimit)
	if err != nil {
		s.log.Error("failed to fetch the latest invoices", "error", err)
		return []LatestInvoice{}
	}

	return nonNil(invoices)
}

// FetchCardData runs the three summary queries concurrently and merges them.
// If any of them fails the whole summary is zero.
func (s *Service) FetchCardData(ctx context.Context) CardData {
	if s.SkipDatabase() {
		return CardData{}
	}

	var (
		invoices  int64
		customers int64
		totals    StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountInvoices(gctx)
		if err != nil {
			return fmt.Errorf("counting invoices: %w", err)
		}

		invoices = n

		return nil
	})

	g.Go(func() error {
		n, err := s.repo.CountCustomers(gctx)
		if err != nil {
			return fmt.Errorf("counting customers: %w", err)
		}

		customers = n

		return nil
	})

	g.Go(func() error {
		t, err := s.repo.InvoiceStatusTotals(gctx)
		if err != nil {
			return fmt.Errorf("summing invoice totals: %w", err)
		}

		totals = t

		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to fetch card data", "error", err)
		return CardData{}
	}

	return CardData{
		NumberOfInvoices:     invoices,
		NumberOfCustomers:    customers,
		TotalPaidInvoices:    totals.Paid,
		TotalPendingInvoices: totals.Pending,
	}
}

// FetchFilteredInvoices returns one page of invoices matching query.
// The page is not validated; pages below 1 produce a negative offset.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int) []InvoiceRow {
	if s.SkipDatabase() {
		return []InvoiceRow{}
	}

	invoices, err := s.repo.ListFilteredInvoices(ctx, query, PageSize, Offset(page))
	if err != nil {
		s.log.Error("failed to fetch invoices", "error", err, "query", query, "page", page)
		return []InvoiceRow{}
	}

	return nonNil(invoices)
}

func (s *Service) FetchInvoicesPages(ctx context.Context, query string) int {
	if s.SkipDatabase() {
		return 0
	}

	count, err := s.repo.CountFilteredInvoices(ctx, query)
	if err != nil {
		s.log.Error("failed to fetch total number of invoices", "error", err, "query", query)
		return 0
	}

	return TotalPages(count)
}

// FetchInvoiceByID returns the invoice with its amount in currency units,
// or nil when it does not exist or cannot be loaded.
func (s *Service) FetchInvoiceByID(ctx context.Context, id uuid.UUID) *InvoiceForm {
	if s.SkipDatabase() {
		return nil
	}

	invoice, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Warn("invoice not found", "id", id)
			return nil
		}

		s.log.Error("failed to fetch invoice", "error", err, "id", id)

		return nil
	}

	return invoice
}

func (s *Service) FetchCustomers(ctx context.Context) []CustomerField {
	if s.SkipDatabase() {
		return []CustomerField{}
	}

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		s.log.Error("failed to fetch all customers", "error", err)
		return []CustomerField{}
	}

	return nonNil(customers)
}

func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) []CustomerRow {
	if s.SkipDatabase() {
		return []CustomerRow{}
	}

	customers, err := s.repo.ListFilteredCustomers(ctx, query)
	if err != nil {
		s.log.Error("failed to fetch customer table", "error", err, "query", query)
		return []CustomerRow{}
	}

	return nonNil(customers)
}

// Offset returns the row offset of the given 1-based page.
func Offset(page int) int {
	return (page - 1) * PageSize
}

// TotalPages rounds count up to whole pages of PageSize.
func TotalPages(count int64) int {
	if count <= 0 {
		return 0
	}

	return int((count + PageSize - 1) / PageSize)
}

// CentsToAmount converts an integer amount in cents to currency units.
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
