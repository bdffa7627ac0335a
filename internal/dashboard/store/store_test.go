package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zagadou92/franc1500/internal/dashboard"
	"github.com/zagadou92/franc1500/internal/dashboard/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return store.New(db), mock
}

func TestStore_ListRevenue(t *testing.T) {
	type testCase struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		want    []dashboard.Revenue
		wantErr bool
	}

	tests := []testCase{
		{
			name: "Success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT month, revenue FROM revenue")).
					WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).
						AddRow("Jan", int64(2000)).
						AddRow("Feb", int64(1800)))
			},
			want: []dashboard.Revenue{
				{Month: "Jan", Revenue: 2000},
				{Month: "Feb", Revenue: 1800},
			},
		},
		{
			name: "QueryError",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM revenue")).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)
			tt.setup(mock)

			got, err := s.ListRevenue(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "listing revenue")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_ListLatestInvoices(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY invoices.date DESC LIMIT $1")).
		WithArgs(dashboard.LatestInvoicesLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "name", "image_url", "email"}).
			AddRow(id.String(), int64(15795), "Delba de Oliveira", "/customers/delba.png", "delba@oliveira.com"))

	got, err := s.ListLatestInvoices(context.Background(), dashboard.LatestInvoicesLimit)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dashboard.LatestInvoice{
		ID:       id,
		Name:     "Delba de Oliveira",
		ImageURL: "/customers/delba.png",
		Email:    "delba@oliveira.com",
		Amount:   15795,
	}, got[0])
}

func TestStore_Counts(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM invoices")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(13)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM customers")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))

	invoices, err := s.CountInvoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(13), invoices)

	customers, err := s.CountCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), customers)
}

func TestStore_InvoiceStatusTotals(t *testing.T) {
	type testCase struct {
		name    string
		paid    any
		pending any
		want    dashboard.StatusTotals
	}

	tests := []testCase{
		{
			name:    "NumericStrings",
			paid:    "125000",
			pending: "4400",
			want:    dashboard.StatusTotals{Paid: 125000, Pending: 4400},
		},
		{
			name:    "EmptyTable",
			paid:    int64(0),
			pending: int64(0),
			want:    dashboard.StatusTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			mock.ExpectQuery(regexp.QuoteMeta("FROM invoices")).
				WithArgs("paid", "pending").
				WillReturnRows(sqlmock.NewRows([]string{"paid", "pending"}).AddRow(tt.paid, tt.pending))

			got, err := s.InvoiceStatusTotals(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_ListFilteredInvoices(t *testing.T) {
	s, mock := newStore(t)

	var (
		id         = uuid.New()
		customerID = uuid.New()
		date       = time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	)

	mock.ExpectQuery(regexp.QuoteMeta("invoices.status ILIKE $1 ORDER BY invoices.date DESC LIMIT $2 OFFSET $3")).
		WithArgs("%lee%", dashboard.PageSize, 12).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "amount", "date", "status", "name", "email", "image_url",
		}).AddRow(id.String(), customerID.String(), int64(8945), date, "paid", "Lee Robinson", "lee@robinson.com", "/customers/lee.png"))

	got, err := s.ListFilteredInvoices(context.Background(), "lee", dashboard.PageSize, 12)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dashboard.InvoiceRow{
		ID:         id,
		CustomerID: customerID,
		Name:       "Lee Robinson",
		Email:      "lee@robinson.com",
		ImageURL:   "/customers/lee.png",
		Date:       date,
		Amount:     8945,
		Status:     dashboard.StatusPaid,
	}, got[0])
}

func TestStore_CountFilteredInvoices(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM invoices JOIN customers")).
		WithArgs("%pending%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	got, err := s.CountFilteredInvoices(context.Background(), "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestStore_GetInvoice(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()

	type testCase struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		verify  func(t *testing.T, inv *dashboard.InvoiceForm)
		wantErr error
	}

	tests := []testCase{
		{
			name: "ConvertsCents",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("WHERE invoices.id = $1")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status"}).
						AddRow(id.String(), customerID.String(), int64(125000), "pending"))
			},
			verify: func(t *testing.T, inv *dashboard.InvoiceForm) {
				assert.Equal(t, id, inv.ID)
				assert.Equal(t, customerID, inv.CustomerID)
				assert.True(t, inv.Amount.Equal(decimal.RequireFromString("1250.00")), "got %s", inv.Amount)
				assert.Equal(t, dashboard.StatusPending, inv.Status)
			},
		},
		{
			name: "NotFound",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("WHERE invoices.id = $1")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status"}))
			},
			wantErr: dashboard.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)
			tt.setup(mock)

			got, err := s.GetInvoice(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestStore_ListCustomers(t *testing.T) {
	s, mock := newStore(t)

	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM customers ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(first.String(), "Amy Burns").
			AddRow(second.String(), "Balazs Orban"))

	got, err := s.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dashboard.CustomerField{
		{ID: first, Name: "Amy Burns"},
		{ID: second, Name: "Balazs Orban"},
	}, got)
}

func TestStore_ListFilteredCustomers(t *testing.T) {
	s, mock := newStore(t)

	withInvoices, withoutInvoices := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN invoices ON customers.id = invoices.customer_id")).
		WithArgs("%a%", "pending", "paid").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid",
		}).
			AddRow(withInvoices.String(), "Amy Burns", "amy@burns.com", "/customers/amy.png", int64(3), "20348", "54246").
			AddRow(withoutInvoices.String(), "Hector Simpson", "hector@simpson.com", "/customers/hector.png", int64(0), "0", "0"))

	got, err := s.ListFilteredCustomers(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(3), got[0].TotalInvoices)
	assert.Equal(t, int64(20348), got[0].TotalPending)
	assert.Equal(t, int64(54246), got[0].TotalPaid)

	assert.Equal(t, dashboard.CustomerRow{
		ID:       withoutInvoices,
		Name:     "Hector Simpson",
		Email:    "hector@simpson.com",
		ImageURL: "/customers/hector.png",
	}, got[1])
}

func TestStore_ListFilteredCustomers_Error(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM customers")).
		WillReturnError(errors.New("syntax error"))

	got, err := s.ListFilteredCustomers(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, got)
}
