package service

import "github.com/YZcontent/yz-ad-club-backend/models"

// Aggregate builds the batch response from per-item results. It keeps the
// order of results and derives both counters from them.
func Aggregate(businessID string, results []models.ItemResult) models.SyncResponse {
	items := make([]models.ItemResult, len(results))
	copy(items, results)

	resp := models.SyncResponse{
		Success:    true,
		BusinessID: businessID,
		Items:      items,
	}

	for _, item := range items {
		switch item.Status {
		case models.ItemStatusSuccess:
			resp.SyncedCount++
		case models.ItemStatusError:
			resp.FailedCount++
		default:
			resp.FailedCount++
		}
	}

	return resp
}
