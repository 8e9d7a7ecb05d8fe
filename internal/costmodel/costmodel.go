// Package costmodel implements the pure cost functions from the
// pipeline construction economics: construction cost per segment and
// environmental impact score, both parametrized by pipe type,
// diameter, material, and local terrain difficulty.
package costmodel

import (
	"math"

	"github.com/pipeline-route-engine/internal/domain"
)

var materialFactors = map[domain.PipeMaterial]float64{
	domain.PipeMaterialSteel:     1.0,
	domain.PipeMaterialPlastic:   0.8,
	domain.PipeMaterialComposite: 1.4,
}

var constructionPipeFactors = map[domain.PipeType]float64{
	domain.PipeTypeOil:   1.2,
	domain.PipeTypeGas:   1.3,
	domain.PipeTypeWater: 0.9,
}

var impactBase = map[domain.PipeType]float64{
	domain.PipeTypeOil:   0.7,
	domain.PipeTypeGas:   0.5,
	domain.PipeTypeWater: 0.2,
}

// ConstructionCost estimates the cost in millions of rubles to build
// distanceKM of pipe at the given diameter/material/pipe type over
// terrain with difficulty t.
func ConstructionCost(distanceKM, diameterMM float64, material domain.PipeMaterial, t float64, pipeType domain.PipeType) float64 {
	baseCostPerKM := 2e-5*diameterMM*diameterMM + 0.01*diameterMM

	materialFactor := materialFactors[material]
	if materialFactor == 0 {
		materialFactor = 1.0
	}
	pipeFactor := constructionPipeFactors[pipeType]
	if pipeFactor == 0 {
		pipeFactor = 1.0
	}

	terrainFactor := 1.0 + 2.0*t*t

	return baseCostPerKM * materialFactor * pipeFactor * terrainFactor * distanceKM
}

// EnvironmentalImpact scores a segment's environmental disruption in
// [0, 1], combining pipe type, diameter, and terrain difficulty.
func EnvironmentalImpact(pipeType domain.PipeType, diameterMM, t float64) float64 {
	base, ok := impactBase[pipeType]
	if !ok {
		base = 0.5
	}

	normD := clamp((diameterMM-100)/1900, 0, 1)
	diameterFactor := 0.3 + 0.7*normD
	terrainFactor := 0.5 + 0.5*t

	impact := 0.5*base + 0.2*diameterFactor + 0.3*terrainFactor
	return clamp(impact, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
