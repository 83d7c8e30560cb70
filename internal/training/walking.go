package training

import "math"

const (
	WalkingCaloriesWeightMultiplier = 0.035
	WalkingSpeedHeightMultiplier    = 0.029
)

var _ Training = (*SportsWalking)(nil)

// SportsWalking is a race walk. Height is kept in centimeters.
type SportsWalking struct {
	Base
	Height float64
}

// NewSportsWalking builds a walk; height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		Base:   newBase(action, duration, weight, LenStep),
		Height: height,
	}
}

func (w *SportsWalking) Name() string {
	return "SportsWalking"
}

func (w *SportsWalking) SpentCalories() float64 {
	speedMs := w.MeanSpeed() * KmhInMsec
	heightM := w.Height / CmInM
	return (WalkingCaloriesWeightMultiplier*w.Weight +
		(math.Pow(speedMs, 2)/heightM)*WalkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * MinInH
}
