package models

import (
	"github.com/google/uuid"
)

// Location - географическая точка, к которой привязаны заявления
type Location struct {
	ID           uuid.UUID `json:"id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	County       string    `json:"county,omitempty"`
	SubCounty    string    `json:"sub_county,omitempty"`
	City         string    `json:"city,omitempty"`
	Address      *string   `json:"address,omitempty"`
	LocationType string    `json:"location_type"`
	IsActive     bool      `json:"is_active"`
}

// DisplayName возвращает человекочитаемое название локации
func (l *Location) DisplayName() string {
	if l.Address != nil && *l.Address != "" {
		return *l.Address
	}
	for _, name := range []string{l.City, l.SubCounty, l.County} {
		if name != "" {
			return name
		}
	}
	return l.ID.String()
}
