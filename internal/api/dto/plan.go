package dto

import "encoding/json"

type PlanRequest struct {
	Date         string `json:"date"`
	IncludeRoute bool   `json:"include_route"`
}

type DeliveryResponse struct {
	OrderNo     string `json:"order_no"`
	DeliveredTo string `json:"delivered_to"`
	CostInPence int    `json:"cost_in_pence"`
}

type PlanResponse struct {
	Date        string             `json:"date"`
	Termination string             `json:"termination"`
	Moves       int                `json:"moves"`
	TotalPence  int                `json:"total_pence"`
	Deliveries  []DeliveryResponse `json:"deliveries"`
	Error       string             `json:"error,omitempty"`
	Route       json.RawMessage    `json:"route,omitempty"`
}
