package parameter

import "math"

// ReferenceExtent is the shorter field dimension the size ratios below were tuned against
const ReferenceExtent = 1080.0

// Reference sizes in field units at ReferenceExtent
const (
	refPlayerSpeed       = 200.0 // units per second
	refHazardSpeed       = 300.0 // units per second
	refHazardRadius      = 45.0
	refHazardSpawnMargin = 50.0
	refPickupSize        = refHazardRadius * 2
	refInnerMarkerRadius = refPickupSize
	refOuterMarkerSize   = refPickupSize * 5
	refPlayerSize        = 4.0
	refTrailDrawSize     = 2.0
	refSpawnInset        = 200.0
)

// Tuning holds every size-derived constant for one play field
// All lengths scale linearly with the shorter field dimension
type Tuning struct {
	Width, Height float64

	PlayerSpeed  float64
	PlayerSize   float64
	TrailSize    float64
	SpawnInset   float64
	HazardSpeed  float64
	HazardRadius float64
	HazardMargin float64

	PickupSize        float64
	InnerMarkerRadius float64
	OuterMarkerSize   float64

	TurnRate float64
}

// NewTuning derives a Tuning for a field of the given size
// Callers validate dimensions; see config.Validate
func NewTuning(width, height float64) Tuning {
	k := math.Min(width, height) / ReferenceExtent
	return Tuning{
		Width:             width,
		Height:            height,
		PlayerSpeed:       refPlayerSpeed * k,
		PlayerSize:        refPlayerSize * k,
		TrailSize:         refTrailDrawSize * k,
		SpawnInset:        refSpawnInset * k,
		HazardSpeed:       refHazardSpeed * k,
		HazardRadius:      refHazardRadius * k,
		HazardMargin:      refHazardSpawnMargin * k,
		PickupSize:        refPickupSize * k,
		InnerMarkerRadius: refInnerMarkerRadius * k,
		OuterMarkerSize:   refOuterMarkerSize * k,
		TurnRate:          TurnRate,
	}
}
