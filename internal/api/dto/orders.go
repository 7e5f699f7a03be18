package dto

type OrderItemResponse struct {
	OrderNo      string `json:"order_no"`
	DeliveryDate string `json:"delivery_date"`
	Customer     string `json:"customer"`
	DeliverTo    string `json:"deliver_to"`
	Item         string `json:"item"`
}

type ListOrdersResponse struct {
	Date  string              `json:"date"`
	Items []OrderItemResponse `json:"items"`
}
