package models

import (
	"time"

	"github.com/KirkDiggler/kegweb/internal/units"
)

// Keg represents a physical keg and the calibration used to convert its pours
type Keg struct {
	// ID is the unique identifier for the keg
	ID string

	// Name is the display name of the keg, usually the tap it is on
	Name string

	// BeverageName is the name of the beverage being served
	BeverageName string

	// MLPerTick is the flow meter calibration, in raw volume units per tick
	MLPerTick float64

	// MLPerVolumeUnit converts one raw volume unit into millilitres.
	// Zero is treated as 1, meaning volumes are already recorded in mL.
	MLPerVolumeUnit float64

	// CaloriesPerML is the energy content of the beverage
	CaloriesPerML float64

	// FullVolumeML is the volume of the keg when it was tapped
	FullVolumeML float64

	// ServedVolumeML is the total volume poured from the keg so far
	ServedVolumeML float64

	// Online indicates the keg is currently connected to a tap
	Online bool

	// TappedAt is when the keg was first tapped
	TappedAt time.Time
}

// mlPerUnit returns the effective volume unit size
func (k *Keg) mlPerUnit() float64 {
	if k.MLPerVolumeUnit <= 0 {
		return 1
	}
	return k.MLPerVolumeUnit
}

// ToML converts a raw volume to millilitres
func (k *Keg) ToML(volume float64) float64 {
	return volume * k.mlPerUnit()
}

// ToOunces converts a raw volume to US fluid ounces
func (k *Keg) ToOunces(volume float64) float64 {
	return units.MLToOunces(k.ToML(volume))
}

// ToCalories converts a raw volume to calories
func (k *Keg) ToCalories(volume float64) float64 {
	return k.ToML(volume) * k.CaloriesPerML
}

// VolumeForTicks converts a flow meter tick count to a raw volume
func (k *Keg) VolumeForTicks(ticks int64) float64 {
	return float64(ticks) * k.MLPerTick
}

// RemainingVolumeML returns how much is left in the keg
func (k *Keg) RemainingVolumeML() float64 {
	return k.FullVolumeML - k.ServedVolumeML
}

// PercentFull returns the remaining volume as a percentage, clamped to [0, 100]
func (k *Keg) PercentFull() float64 {
	if k.FullVolumeML <= 0 {
		return 0
	}
	pct := k.RemainingVolumeML() / k.FullVolumeML * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// IsEmpty reports whether the keg has nothing left to pour
func (k *Keg) IsEmpty() bool {
	return k.RemainingVolumeML() <= 0
}
