package model

import "time"

// EvaluationRun is a persisted audit record of one evaluated scenario: the
// planner's scores, the baseline sample count, and the total score's rank
// percentile, z-score and significance flag. Per-metric baseline statistics
// are not stored. It is not trip or booking state.
type EvaluationRun struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt           time.Time `json:"created_at"`
	ScenarioName        string    `json:"scenario_name"`
	TransportMode       string    `json:"transport_mode"`
	NumPlaces           int       `json:"num_places"`
	DurationDays        int       `json:"duration_days"`
	NumBaselineSamples  int       `json:"num_baseline_samples"`
	Success             bool      `json:"success"`
	ErrorMessage        string    `json:"error_message,omitempty"`
	DistanceScore       float64   `json:"distance_score"`
	TimeWindowScore     float64   `json:"time_window_score"`
	DistributionScore   float64   `json:"distribution_score"`
	ClusteringScore     float64   `json:"clustering_score"`
	TotalScore          float64   `json:"total_score"`
	TotalRankPercentile float64   `json:"total_rank_percentile"`
	TotalZScore         float64   `json:"total_z_score"`
	TotalSignificant    bool      `json:"total_significant"`
}
