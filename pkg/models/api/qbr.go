package api

import "time"

type Company struct {
	Name string `json:"name"`
}

type AccountMetrics struct {
	CompanyName         string  `json:"company_name"`
	HealthScore         float64 `json:"health_score"`
	ContractValue       float64 `json:"contract_value"`
	CSATScore           float64 `json:"csat_score"`
	ActiveUsers         int     `json:"active_users"`
	FeatureAdoptionRate float64 `json:"feature_adoption_rate"`
	TicketVolume        int     `json:"ticket_volume"`
	RenewalProbability  float64 `json:"renewal_probability"`
	Quarter             string  `json:"qbr_quarter"`
	Year                int     `json:"qbr_year"`
}

type GenerateRequest struct {
	Template   string `json:"template"`
	View       string `json:"view"`
	Model      string `json:"model"`
	ChunkCount int    `json:"chunk_count"`
	UseHistory bool   `json:"use_history"`
	Validation bool   `json:"validation"`
}

type GeneratedReport struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Model     string    `json:"model"`
	Content   string    `json:"content"`
	Template  string    `json:"template"`
	View      string    `json:"view"`
	CreatedAt time.Time `json:"created_at"`
}

type SearchResult struct {
	CompanyName string `json:"company_name"`
	Snippet     string `json:"snippet"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	// Answer is set only when the search fell through to the completion
	// service; Results is empty in that case.
	Answer string `json:"answer,omitempty"`
}

type Options struct {
	Templates   []string `json:"templates"`
	Views       []string `json:"views"`
	Models      []string `json:"models"`
	ChunkCounts []int    `json:"chunk_counts"`
}

type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
