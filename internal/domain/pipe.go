package domain

// PipeType names the medium a pipeline segment is built to carry. The
// cost model applies a different construction-cost and environmental
// factor per type, and the construction-time estimate a different
// build-rate factor.
type PipeType string

const (
	PipeTypeOil   PipeType = "oil"
	PipeTypeGas   PipeType = "gas"
	PipeTypeWater PipeType = "water"
)

// PipeMaterial names the pipe wall material, which feeds the
// construction cost model's material factor.
type PipeMaterial string

const (
	PipeMaterialSteel     PipeMaterial = "steel"
	PipeMaterialPlastic   PipeMaterial = "plastic"
	PipeMaterialComposite PipeMaterial = "composite"
)

// PipeSpec describes the physical pipeline to be routed. It is
// immutable input to the cost model and the construction-time
// estimate; the terrain oracle does not take it.
type PipeSpec struct {
	Type           PipeType     `json:"type"`
	DiameterMM     float64      `json:"diameter_mm"`
	Material       PipeMaterial `json:"material"`
	MaxPressureATM float64      `json:"max_pressure_atm"`
}
