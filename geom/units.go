// SPDX-License-Identifier: MIT

package geom

// Device resolution used for unit conversion.
const (
	// PxPerInch is the number of device units in one inch.
	PxPerInch = 96.0
	// PxPerMM is the number of device units in one millimetre.
	PxPerMM = PxPerInch / 25.4
	// MMPerInch is the number of millimetres in one inch.
	MMPerInch = 25.4
)

// PxToIn converts device units to inches.
func PxToIn(px float64) float64 { return px / PxPerInch }

// InToPx converts inches to device units.
func InToPx(in float64) float64 { return in * PxPerInch }

// PxToMM converts device units to millimetres.
func PxToMM(px float64) float64 { return px / PxPerMM }

// MMToPx converts millimetres to device units.
func MMToPx(mm float64) float64 { return mm * PxPerMM }

// InToMM converts inches to millimetres.
func InToMM(in float64) float64 { return in * MMPerInch }

// MMToIn converts millimetres to inches.
func MMToIn(mm float64) float64 { return mm / MMPerInch }
