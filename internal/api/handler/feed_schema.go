package handler

import "time"

type feedQuery struct {
	Limit int `query:"limit" validate:"min=0,max=200"`
}

type feedEventResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	Message    string    `json:"message"`
	Amount     float64   `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	ClientLink string    `json:"client_link"`
}

type feedResponse struct {
	Data  []feedEventResponse `json:"data"`
	Count int                 `json:"count"`
}
