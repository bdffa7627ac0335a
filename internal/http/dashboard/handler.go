package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zagadou92/franc1500/internal/dashboard"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/revenue", h.revenue)
	r.Get("/cards", h.cards)

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.invoices)
		r.Get("/latest", h.latestInvoices)
		r.Get("/pages", h.invoicesPages)
		r.Get("/{id}", h.invoice)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.customers)
		r.Get("/filtered", h.filteredCustomers)
	})
}

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toRevenueResponse(h.svc.FetchRevenue(r.Context())))
}

func (h *Handler) cards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toCardResponse(h.svc.FetchCardData(r.Context())))
}

func (h *Handler) latestInvoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toLatestInvoiceResponse(h.svc.FetchLatestInvoices(r.Context())))
}

func (h *Handler) invoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 {
			page = p
		}
	}

	writeJSON(w, toInvoiceRowResponse(h.svc.FetchFilteredInvoices(r.Context(), query, page)))
}

func (h *Handler) invoicesPages(w http.ResponseWriter, r *http.Request) {
	pages := h.svc.FetchInvoicesPages(r.Context(), r.URL.Query().Get("query"))
	writeJSON(w, pagesResponse{TotalPages: pages})
}

func (h *Handler) invoice(w http.ResponseWriter, r *http.Request) {
	// An id that is not a uuid cannot name an invoice.
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	inv := h.svc.FetchInvoiceByID(r.Context(), id)
	if inv == nil {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	writeJSON(w, toInvoiceFormResponse(inv))
}

func (h *Handler) customers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toCustomerFieldResponse(h.svc.FetchCustomers(r.Context())))
}

func (h *Handler) filteredCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	writeJSON(w, toCustomerRowResponse(h.svc.FetchFilteredCustomers(r.Context(), query)))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
