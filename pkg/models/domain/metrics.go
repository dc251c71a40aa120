package domain

// AccountMetrics is one company's metrics snapshot for a reporting period.
// Fetched fresh from the warehouse per request, never cached.
type AccountMetrics struct {
	CompanyName         string
	HealthScore         float64 // 0-100
	ContractValue       float64 // USD
	CSATScore           float64 // 1-5
	ActiveUsers         int
	FeatureAdoptionRate float64 // 0-1
	TicketVolume        int
	RenewalProbability  float64 // 0-100
	Quarter             string  // e.g. "Q4"
	Year                int
}

// HistoricalSnippet is an excerpt of another company's past QBR used as
// generation context.
type HistoricalSnippet struct {
	CompanyName string
	Content     string
}
