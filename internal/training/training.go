// Package training implements the per-sport calculators for distance,
// mean speed and spent calories.
package training

import "github.com/sstent/ftracker/internal/models"

const (
	LenStep   = 0.65 // step length in meters
	MInKm     = 1000
	MinInH    = 60
	KmhInMsec = 0.278
	CmInM     = 100
)

// Training is implemented by every supported workout type.
type Training interface {
	Name() string
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// Base holds the readings shared by all workout types. It has no
// SpentCalories: a type embedding Base satisfies Training only once it
// provides its own formula.
type Base struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg

	lenStep float64
}

func newBase(action int, duration, weight, lenStep float64) Base {
	return Base{
		Action:   action,
		Duration: duration,
		Weight:   weight,
		lenStep:  lenStep,
	}
}

func (b Base) Hours() float64 {
	return b.Duration
}

// Distance returns the covered distance in km.
func (b Base) Distance() float64 {
	return float64(b.Action) * b.lenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (b Base) MeanSpeed() float64 {
	return b.Distance() / b.Duration
}

// ShowTrainingInfo computes every metric of t once and packs them into a
// summary ready for formatting.
func ShowTrainingInfo(t Training) models.InfoMessage {
	return models.InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
