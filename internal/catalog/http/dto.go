package http

import "github.com/brisastudio/studio-booking-backend/internal/catalog"

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DurationMin int     `json:"duration"`
	Price       float64 `json:"price"`
}

func NewServiceResponse(s catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		DurationMin: s.DurationMin,
		Price:       s.Price,
	}
}
