// Package datagen synthesizes a demo QBR dataset: per-quarter account
// metrics for fabricated companies across five industries, plus a fixed
// set of control records. Output is deterministic for a given seed.
package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"
)

var industryNames = map[string][]string{
	"Technology": {
		"Cloud Nexus", "Digital Frontier", "Quantum Systems", "Cyber Logic",
		"Data Dynamics", "Tech Matrix", "AI Solutions", "Silicon Bridge",
		"Network Atlas", "Binary Systems", "Cloud Forge", "Cyber Peak",
		"Data Sphere", "Edge Computing", "Future Stack",
	},
	"Healthcare": {
		"MediCare Plus", "Health Dynamics", "Care Solutions", "Wellness Systems",
		"Med Analytics", "Health Innovations", "Care Matrix", "Vitality Group",
		"Medical Dynamics", "Health Metrics", "Patient Care Pro", "BioTech Solutions",
		"Health Catalyst", "Care Connect", "Wellness Partners",
	},
	"Finance": {
		"Capital Partners", "Wealth Metrics", "Finance Direct", "Investment Logic",
		"Asset Analytics", "Wealth Dynamics", "Capital Forge", "Finance Focus",
		"Investment Core", "Wealth Systems", "Capital Matrix", "Finance Analytics",
		"Asset Partners", "Wealth Logic", "Investment Direct",
	},
	"Manufacturing": {
		"Industrial Systems", "Manufacturing Plus", "Production Pro", "Factory Focus",
		"Industrial Dynamics", "Manufacturing Logic", "Production Systems", "Assembly Tech",
		"Industrial Solutions", "Manufacturing Core", "Production Analytics", "Factory Systems",
		"Industrial Matrix", "Manufacturing Edge", "Production Dynamics",
	},
	"Retail": {
		"Retail Solutions", "Commerce Pro", "Market Systems", "Retail Dynamics",
		"Commerce Logic", "Market Focus", "Retail Analytics", "Commerce Direct",
		"Market Plus", "Retail Core", "Commerce Systems", "Market Dynamics",
		"Retail Matrix", "Commerce Analytics", "Market Solutions",
	},
}

var industries = []string{"Technology", "Healthcare", "Finance", "Manufacturing", "Retail"}

// Record is one synthetic company-quarter row.
type Record struct {
	CompanyID           string
	CompanyName         string
	Industry            string
	Size                string
	ContractValue       int
	ContractStart       string
	ContractExpiration  string
	Quarter             string
	Year                int
	DealStage           string
	RenewalProbability  int
	UpsellOpportunity   int
	ActiveUsers         int
	FeatureAdoptionRate float64
	CustomIntegrations  int
	PendingFeatureReqs  int
	TicketVolume        int
	AvgResolutionHours  float64
	CSATScore           float64
	SLAComplianceRate   float64

	// MEDDICC sales qualification.
	SuccessMetricsDefined     bool
	ROICalculated             bool
	EstimatedROIValue         int
	EconomicBuyerIdentified   bool
	ExecutiveSponsorEngaged   bool
	DecisionMakerLevel        string
	DecisionProcessDocumented bool
	NextStepsDefined          bool
	DecisionTimelineClear     bool
	TechnicalCriteriaMet      bool
	BusinessCriteriaMet       bool
	SuccessCriteriaDefined    string
	PainPointsDocumented      string
	PainImpactLevel           string
	UrgencyLevel              string
	ChampionIdentified        bool
	ChampionLevel             string
	ChampionEngagementScore   int

	// Competition.
	CompetitiveSituation string
	CompetitivePosition  string

	HealthScore float64
}

// Generator produces a deterministic dataset for a given seed.
type Generator struct {
	numRecords int
	rng        *rand.Rand
}

func NewGenerator(numRecords int, seed int64) *Generator {
	return &Generator{
		numRecords: numRecords,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Generate builds the dataset: numRecords random rows followed by the
// five fixed control records.
func (g *Generator) Generate() []Record {
	// Fiscal year starts in February.
	current := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)

	used := make(map[string]map[string]bool)
	for _, industry := range industries {
		used[industry] = make(map[string]bool)
	}

	records := make([]Record, 0, g.numRecords+len(controlRecords))
	for i := 0; i < g.numRecords; i++ {
		current = current.AddDate(0, 0, g.rng.Intn(4))

		industry := industries[g.rng.Intn(len(industries))]
		name := g.pickName(industry, used[industry])

		r := Record{
			CompanyID:          fmt.Sprintf("COMP%04d", i),
			CompanyName:        name,
			Industry:           industry,
			Size:               pick(g.rng, "Small", "Medium", "Enterprise"),
			ContractValue:      10000 + g.rng.Intn(90001),
			ContractStart:      current.Format("2006-01-02"),
			ContractExpiration: current.AddDate(1, 0, 0).Format("2006-01-02"),
		}
		r.Quarter, r.Year = fiscalPeriod(current)
		g.fillMetrics(&r)
		records = append(records, r)
	}

	for _, r := range controlRecords {
		g.fillMetrics(&r)
		records = append(records, r)
	}
	return records
}

func (g *Generator) pickName(industry string, used map[string]bool) string {
	names := industryNames[industry]
	available := make([]string, 0, len(names))
	for _, n := range names {
		if !used[n] {
			available = append(available, n)
		}
	}
	if len(available) == 0 {
		for _, n := range names {
			delete(used, n)
		}
		available = names
	}
	name := available[g.rng.Intn(len(available))]
	used[name] = true
	return name
}

func (g *Generator) fillMetrics(r *Record) {
	r.DealStage = pick(g.rng, "Implementation", "Live", "At Risk", "Stable")
	r.RenewalProbability = 60 + g.rng.Intn(41)
	r.UpsellOpportunity = []int{0, 5000, 10000, 15000, 20000}[g.rng.Intn(5)]
	r.ActiveUsers = 5 + g.rng.Intn(96)
	r.FeatureAdoptionRate = round2(0.4 + g.rng.Float64()*0.55)
	r.CustomIntegrations = g.rng.Intn(6)
	r.PendingFeatureReqs = g.rng.Intn(11)
	r.TicketVolume = 5 + g.rng.Intn(46)
	r.AvgResolutionHours = round1(1 + g.rng.Float64()*47)
	r.CSATScore = round1(3.5 + g.rng.Float64()*1.5)
	r.SLAComplianceRate = round2(0.8 + g.rng.Float64()*0.2)
	g.fillSalesQualification(r)
	r.HealthScore = HealthScore(r.RenewalProbability, r.FeatureAdoptionRate, r.SLAComplianceRate, r.CSATScore)
}

func (g *Generator) fillSalesQualification(r *Record) {
	r.SuccessMetricsDefined = g.coin()
	r.ROICalculated = g.coin()
	if g.rng.Float64() > 0.3 {
		r.EstimatedROIValue = 50000 + g.rng.Intn(450001)
	}

	r.EconomicBuyerIdentified = g.coin()
	r.ExecutiveSponsorEngaged = g.coin()
	r.DecisionMakerLevel = pick(g.rng, "C-Level", "VP", "Director", "Manager")

	r.DecisionProcessDocumented = g.coin()
	r.NextStepsDefined = g.coin()
	r.DecisionTimelineClear = g.coin()

	r.TechnicalCriteriaMet = g.coin()
	r.BusinessCriteriaMet = g.coin()
	r.SuccessCriteriaDefined = pick(g.rng,
		"Cost Reduction", "Revenue Growth", "Efficiency Gains",
		"Risk Mitigation", "Customer Satisfaction", "Time Savings")

	r.PainPointsDocumented = pick(g.rng,
		"Manual Processes", "Data Accuracy", "Reporting Delays",
		"Customer Churn", "Resource Constraints", "Compliance Risk")
	r.PainImpactLevel = pick(g.rng, "High", "Medium", "Low")
	r.UrgencyLevel = pick(g.rng, "High", "Medium", "Low")

	r.ChampionIdentified = g.coin()
	r.ChampionLevel = pick(g.rng, "C-Level", "VP", "Director", "Manager")
	r.ChampionEngagementScore = 1 + g.rng.Intn(5)

	r.CompetitiveSituation = pick(g.rng, "Single", "Multiple", "None")
	r.CompetitivePosition = pick(g.rng, "Leader", "Strong", "Weak")
}

func (g *Generator) coin() bool {
	return g.rng.Intn(2) == 1
}

// HealthScore is the weighted account-health formula: renewal 30%,
// adoption 30%, SLA compliance 20%, CSAT 20%, rounded to one decimal.
func HealthScore(renewalProbability int, adoptionRate, slaRate, csat float64) float64 {
	return round1(float64(renewalProbability)*0.3 +
		adoptionRate*100*0.3 +
		slaRate*100*0.2 +
		csat/5*100*0.2)
}

// fiscalPeriod maps a calendar date to the fiscal quarter and year.
// February is fiscal month 1, January fiscal month 12.
func fiscalPeriod(t time.Time) (string, int) {
	month := int(t.Month())
	fiscalMonth := (month-2+12)%12 + 1
	quarter := (fiscalMonth-1)/3 + 1
	year := t.Year()
	if month < 2 {
		year--
	}
	return fmt.Sprintf("Q%d", quarter), year
}

// controlRecords are the fixed demo accounts appended after the random
// rows; their metrics are still randomized.
var controlRecords = []Record{
	controlRecord("COMP0750", "Kohlleffel Inc", 150000),
	controlRecord("COMP0751", "Hrncir Inc", 160000),
	controlRecord("COMP0752", "Millman Inc", 170000),
	controlRecord("COMP0753", "Tony Kelly Inc", 180000),
	controlRecord("COMP0754", "Kai Lee Inc", 190000),
}

func controlRecord(id, name string, contractValue int) Record {
	return Record{
		CompanyID:          id,
		CompanyName:        name,
		Industry:           "Technology",
		Size:               "Small",
		ContractValue:      contractValue,
		ContractStart:      "2024-02-01",
		ContractExpiration: "2025-01-31",
		Quarter:            "Q4",
		Year:               2024,
	}
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// WriteCSV writes the dataset with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	header := []string{
		"company_id", "company_name", "industry", "size", "contract_value",
		"contract_start_date", "contract_expiration_date", "qbr_quarter", "qbr_year",
		"deal_stage", "renewal_probability", "upsell_opportunity", "active_users",
		"feature_adoption_rate", "custom_integrations", "pending_feature_requests",
		"ticket_volume", "avg_resolution_time_hours", "csat_score",
		"sla_compliance_rate",
		"success_metrics_defined", "roi_calculated", "estimated_roi_value",
		"economic_buyer_identified", "executive_sponsor_engaged", "decision_maker_level",
		"decision_process_documented", "next_steps_defined", "decision_timeline_clear",
		"technical_criteria_met", "business_criteria_met", "success_criteria_defined",
		"pain_points_documented", "pain_impact_level", "urgency_level",
		"champion_identified", "champion_level", "champion_engagement_score",
		"competitive_situation", "competitive_position",
		"health_score",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.CompanyID,
			r.CompanyName,
			r.Industry,
			r.Size,
			strconv.Itoa(r.ContractValue),
			r.ContractStart,
			r.ContractExpiration,
			r.Quarter,
			strconv.Itoa(r.Year),
			r.DealStage,
			strconv.Itoa(r.RenewalProbability),
			strconv.Itoa(r.UpsellOpportunity),
			strconv.Itoa(r.ActiveUsers),
			strconv.FormatFloat(r.FeatureAdoptionRate, 'f', 2, 64),
			strconv.Itoa(r.CustomIntegrations),
			strconv.Itoa(r.PendingFeatureReqs),
			strconv.Itoa(r.TicketVolume),
			strconv.FormatFloat(r.AvgResolutionHours, 'f', 1, 64),
			strconv.FormatFloat(r.CSATScore, 'f', 1, 64),
			strconv.FormatFloat(r.SLAComplianceRate, 'f', 2, 64),
			strconv.FormatBool(r.SuccessMetricsDefined),
			strconv.FormatBool(r.ROICalculated),
			strconv.Itoa(r.EstimatedROIValue),
			strconv.FormatBool(r.EconomicBuyerIdentified),
			strconv.FormatBool(r.ExecutiveSponsorEngaged),
			r.DecisionMakerLevel,
			strconv.FormatBool(r.DecisionProcessDocumented),
			strconv.FormatBool(r.NextStepsDefined),
			strconv.FormatBool(r.DecisionTimelineClear),
			strconv.FormatBool(r.TechnicalCriteriaMet),
			strconv.FormatBool(r.BusinessCriteriaMet),
			r.SuccessCriteriaDefined,
			r.PainPointsDocumented,
			r.PainImpactLevel,
			r.UrgencyLevel,
			strconv.FormatBool(r.ChampionIdentified),
			r.ChampionLevel,
			strconv.Itoa(r.ChampionEngagementScore),
			r.CompetitiveSituation,
			r.CompetitivePosition,
			strconv.FormatFloat(r.HealthScore, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.CompanyID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
