package geometries

import (
	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/optical"
)

// Gas identifiers accepted by the gas commands.
const (
	NaturalXe  = "naturalXe"
	EnrichedXe = "enrichedXe"
	DepletedXe = "depletedXe"
)

// buildGas creates a xenon gas with its scintillation properties.
func buildGas(origin, gas string, pressure, temperature, scYield, eLifetime float64) (*material.Material, error) {
	var (
		gasMat *material.Material
		err    error
	)
	switch gas {
	case NaturalXe:
		gasMat, err = material.GXe(pressure, temperature)
	case EnrichedXe:
		gasMat, err = material.GXeEnriched(pressure, temperature)
	case DepletedXe:
		gasMat, err = material.GXeDepleted(pressure, temperature)
	default:
		return nil, exception.New(origin, "Construct()", exception.ErrUnknownGas,
			"Unknown kind of gas %q, valid options are: naturalXe, enrichedXe, depletedXe.", gas)
	}
	if err != nil {
		return nil, exception.New(origin, "Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	props, err := optical.GXe(pressure, temperature, scYield, eLifetime)
	if err != nil {
		return nil, exception.New(origin, "Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	if err := gasMat.SetPropertiesTable(props); err != nil {
		return nil, exception.New(origin, "Construct()", exception.ErrInvalidConfiguration, "%v", err)
	}
	return gasMat, nil
}
