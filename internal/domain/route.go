package domain

// GScore carries the accumulated per-criterion cost of a search node.
// Each field grows monotonically along a path; the search combines
// them with the active Weights to rank nodes.
type GScore struct {
	Distance            float64
	TerrainDifficulty   float64
	EnvironmentalImpact float64
	ConstructionCost    float64
	MaintenanceAccess   float64
}

// Combined returns the weighted sum of the five components, the value
// the search actually orders nodes by.
func (g GScore) Combined(w Weights) float64 {
	return g.Distance*w[CriterionDistance] +
		g.TerrainDifficulty*w[CriterionTerrainDifficulty] +
		g.EnvironmentalImpact*w[CriterionEnvironmentalImpact] +
		g.ConstructionCost*w[CriterionConstructionCost] +
		g.MaintenanceAccess*w[CriterionMaintenanceAccess]
}

// Add returns the componentwise sum of g and o.
func (g GScore) Add(o GScore) GScore {
	return GScore{
		Distance:            g.Distance + o.Distance,
		TerrainDifficulty:   g.TerrainDifficulty + o.TerrainDifficulty,
		EnvironmentalImpact: g.EnvironmentalImpact + o.EnvironmentalImpact,
		ConstructionCost:    g.ConstructionCost + o.ConstructionCost,
		MaintenanceAccess:   g.MaintenanceAccess + o.MaintenanceAccess,
	}
}

// RouteMetrics carries the derived, human-facing numbers for a route
// plus search bookkeeping.
type RouteMetrics struct {
	TotalDistanceKM           float64
	EstimatedCostMillions     float64
	TerrainDifficultyScore    float64
	EnvironmentalImpactScore  float64
	EstimatedConstructionDays float64
	AlternativeNum            int
	Found                     bool
}

// RouteResult is a single computed route: its polyline and derived
// metrics. The zero value with Found=false represents a failed search.
type RouteResult struct {
	Polyline []Point
	Metrics  RouteMetrics
}
