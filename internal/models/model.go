package models

// ModelInfo describes an outcome model for configuration screens and exports
type ModelInfo struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	BestFor       string  `json:"best_for"`
	DefaultWeight float64 `json:"default_weight"`
}
