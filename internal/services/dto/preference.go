package dto

type PreferenceResponse struct {
	Theme   string `json:"theme"`
	Density string `json:"density"`
}

type UpdatePreferenceRequest struct {
	Theme   string `json:"theme" validate:"omitempty,oneof=light dark system"`
	Density string `json:"density" validate:"omitempty,oneof=comfortable compact"`
}
