package twophase

import "errors"

// ErrBoundaryCondition is returned by the boiling correlations when
// called without a wall boundary condition.
var ErrBoundaryCondition = errors.New("either q or Te is needed for this correlation")

type bcKind int

const (
	bcUnset bcKind = iota
	bcHeatFlux
	bcExcessTemperature
)

// BoundaryCondition is the known thermal condition at the tube wall:
// either the wall heat flux q [W/m^2] or the wall excess temperature
// Te [K] (wall minus saturation). A value holds exactly one of the two,
// so a correlation can never be handed both; the zero value holds
// neither and is rejected with ErrBoundaryCondition. Zero is a valid
// payload for either variant.
type BoundaryCondition struct {
	kind bcKind
	v    float64
}

// HeatFlux specifies the wall heat flux q [W/m^2].
func HeatFlux(q float64) BoundaryCondition {
	return BoundaryCondition{kind: bcHeatFlux, v: q}
}

// ExcessTemperature specifies the wall excess temperature Te [K].
func ExcessTemperature(Te float64) BoundaryCondition {
	return BoundaryCondition{kind: bcExcessTemperature, v: Te}
}

// Q returns the heat flux and whether this condition carries one.
func (bc BoundaryCondition) Q() (float64, bool) {
	return bc.v, bc.kind == bcHeatFlux
}

// Te returns the excess temperature and whether this condition carries
// one.
func (bc BoundaryCondition) Te() (float64, bool) {
	return bc.v, bc.kind == bcExcessTemperature
}
