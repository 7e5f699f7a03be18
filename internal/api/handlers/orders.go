package handlers

import (
	"drone-delivery-service/internal/api/dto"
	"drone-delivery-service/internal/ports"
	"log"
	"net/http"
	"strings"
	"time"
)

// OrderHandler exposes read-only order retrieval endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date, ok := parseDate(w, r, r.URL.Query().Get("date"))
	if !ok {
		return
	}

	items, err := h.Repo.ListOrders(r.Context(), date)
	if err != nil {
		log.Printf("list orders failed: date=%s err=%v", date.Format(time.DateOnly), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{
		Date:  date.Format(time.DateOnly),
		Items: make([]dto.OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.OrderItemResponse{
			OrderNo:      it.OrderNo,
			DeliveryDate: it.DeliveryDate.Format(time.DateOnly),
			Customer:     it.Customer,
			DeliverTo:    it.DeliverTo,
			Item:         it.Item,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// parseDate reads a YYYY-MM-DD date, answering 400 itself when it is
// missing or malformed.
func parseDate(w http.ResponseWriter, r *http.Request, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		writeError(w, r, http.StatusBadRequest, "date is required")
		return time.Time{}, false
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
