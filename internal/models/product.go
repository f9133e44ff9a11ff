package models

import "time"

type Product struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Category         string     `json:"category"`
	RLPrice          float64    `json:"rl_price"`
	ParceladoPrice   float64    `json:"parcelado_price,omitempty"`
	KKsPrice         float64    `json:"kks_price,omitempty"`
	Quantity         int        `json:"quantity"`
	ImageURL         string     `json:"image_url,omitempty"`
	VideoURL         string     `json:"video_url,omitempty"`
	ExternalVideoURL string     `json:"external_video_url,omitempty"`
	IsActive         bool       `json:"is_active"`
	Plan             string     `json:"plan,omitempty"`
	PlanExpiresAt    *time.Time `json:"plan_expires_at,omitempty"`
	DisplayOrder     *int       `json:"display_order,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
