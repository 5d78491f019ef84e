package dto

import "stockpulse/internal/domain/models"

// BatchRequest is the body of POST /api/v1/stocks/data/batch.
type BatchRequest struct {
	DataPoints []models.Observation `json:"data_points"`
}
