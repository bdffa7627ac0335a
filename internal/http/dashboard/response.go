package dashboard

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/zagadou92/franc1500/internal/dashboard"
)

type revenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type cardResponse struct {
	NumberOfInvoices     int64 `json:"number_of_invoices"`
	NumberOfCustomers    int64 `json:"number_of_customers"`
	TotalPaidInvoices    int64 `json:"total_paid_invoices"`
	TotalPendingInvoices int64 `json:"total_pending_invoices"`
}

type latestInvoiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   int64     `json:"amount"`
}

type invoiceRowResponse struct {
	ID         uuid.UUID        `json:"id"`
	CustomerID uuid.UUID        `json:"customer_id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	ImageURL   string           `json:"image_url"`
	Date       string           `json:"date"`
	Amount     int64            `json:"amount"`
	Status     dashboard.Status `json:"status"`
}

type invoiceFormResponse struct {
	ID         uuid.UUID        `json:"id"`
	CustomerID uuid.UUID        `json:"customer_id"`
	Amount     json.Number      `json:"amount"`
	Status     dashboard.Status `json:"status"`
}

type customerFieldResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type customerRowResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}

type pagesResponse struct {
	TotalPages int `json:"total_pages"`
}

func toRevenueResponse(revenue []dashboard.Revenue) []revenueResponse {
	resp := make([]revenueResponse, len(revenue))
	for i, r := range revenue {
		resp[i] = revenueResponse{Month: r.Month, Revenue: r.Revenue}
	}

	return resp
}

func toCardResponse(c dashboard.CardData) cardResponse {
	return cardResponse{
		NumberOfInvoices:     c.NumberOfInvoices,
		NumberOfCustomers:    c.NumberOfCustomers,
		TotalPaidInvoices:    c.TotalPaidInvoices,
		TotalPendingInvoices: c.TotalPendingInvoices,
	}
}

func toLatestInvoiceResponse(invoices []dashboard.LatestInvoice) []latestInvoiceResponse {
	resp := make([]latestInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = latestInvoiceResponse{
			ID:       inv.ID,
			Name:     inv.Name,
			ImageURL: inv.ImageURL,
			Email:    inv.Email,
			Amount:   inv.Amount,
		}
	}

	return resp
}

func toInvoiceRowResponse(invoices []dashboard.InvoiceRow) []invoiceRowResponse {
	resp := make([]invoiceRowResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = invoiceRowResponse{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Name:       inv.Name,
			Email:      inv.Email,
			ImageURL:   inv.ImageURL,
			Date:       inv.Date.Format(time.DateOnly),
			Amount:     inv.Amount,
			Status:     inv.Status,
		}
	}

	return resp
}

func toInvoiceFormResponse(inv *dashboard.InvoiceForm) invoiceFormResponse {
	return invoiceFormResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     json.Number(inv.Amount.StringFixed(2)),
		Status:     inv.Status,
	}
}

func toCustomerFieldResponse(customers []dashboard.CustomerField) []customerFieldResponse {
	resp := make([]customerFieldResponse, len(customers))
	for i, c := range customers {
		resp[i] = customerFieldResponse{ID: c.ID, Name: c.Name}
	}

	return resp
}

func toCustomerRowResponse(customers []dashboard.CustomerRow) []customerRowResponse {
	resp := make([]customerRowResponse, len(customers))
	for i, c := range customers {
		resp[i] = customerRowResponse{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  c.TotalPending,
			TotalPaid:     c.TotalPaid,
		}
	}

	return resp
}
