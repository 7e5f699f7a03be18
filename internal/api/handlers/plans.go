package handlers

import (
	"drone-delivery-service/internal/adapters/geojson"
	"drone-delivery-service/internal/api/dto"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"
)

type PlanHandler struct {
	Deps     services.PlanDayDeps
	Params   domain.FlightParams
	FeePence int
}

// Plan runs the day planner for the requested date and reports the
// deliveries made. A journey cut short by an unreachable target is still
// reported, with the failure in the error field.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	date, ok := parseDate(w, r, req.Date)
	if !ok {
		return
	}

	svcReq := services.PlanDayRequest{
		Date:     date,
		Params:   h.Params,
		FeePence: h.FeePence,
	}

	plan, err := services.PlanDay(r.Context(), svcReq, h.Deps)
	if plan == nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan day failed: date=%s err=%v", req.Date, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.PlanResponse{
		Date:        date.Format(time.DateOnly),
		Termination: plan.Journey.Termination.String(),
		Moves:       plan.Journey.Moves(),
		Deliveries:  make([]dto.DeliveryResponse, 0, len(plan.Deliveries)),
	}
	if err != nil {
		log.Printf("plan day incomplete: date=%s err=%v", req.Date, err)
		res.Error = err.Error()
	}
	for _, d := range plan.Deliveries {
		res.TotalPence += d.CostInPence
		res.Deliveries = append(res.Deliveries, dto.DeliveryResponse{
			OrderNo:     d.OrderNo,
			DeliveredTo: d.DeliveredTo,
			CostInPence: d.CostInPence,
		})
	}

	if req.IncludeRoute {
		route, err := geojson.Marshal(plan.Journey.Positions)
		if err != nil {
			log.Printf("encode route failed: date=%s err=%v", req.Date, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		res.Route = route
	}

	writeJSON(w, r, http.StatusOK, res)
}
