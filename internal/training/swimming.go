package training

const (
	SwimmingLenStep                  = 1.38 // stroke length in meters
	SwimmingCaloriesMeanSpeedShift   = 1.1
	SwimmingCaloriesWeightMultiplier = 2
)

var _ Training = (*Swimming)(nil)

// Swimming is a pool session. Action counts strokes, while speed is taken
// from the pool length and the number of laps.
type Swimming struct {
	Base
	LengthPool float64 // meters
	CountPool  int
}

// NewSwimming builds a pool session from strokes, hours, weight, pool
// length in meters and the number of laps.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) *Swimming {
	return &Swimming{
		Base:       newBase(action, duration, weight, SwimmingLenStep),
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (s *Swimming) Name() string {
	return "Swimming"
}

func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + SwimmingCaloriesMeanSpeedShift) *
		SwimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}
