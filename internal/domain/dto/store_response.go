package dto

import "time"

// StoreResponse acknowledges a single stored observation.
type StoreResponse struct {
	Message   string    `json:"message" example:"data point stored successfully"`
	Symbol    string    `json:"symbol" example:"AAPL"`
	Timestamp time.Time `json:"timestamp"`
}

// BatchResponse acknowledges a stored batch. Symbols lists the distinct
// symbols that appeared in the batch, in first-seen order.
type BatchResponse struct {
	Message string   `json:"message" example:"data batch stored successfully"`
	Count   int      `json:"count" example:"2"`
	Symbols []string `json:"symbols" example:"AAPL,GOOGL"`
}
