package training

const (
	RunningCaloriesMeanSpeedMultiplier = 18
	RunningCaloriesMeanSpeedShift      = 1.79
)

var _ Training = (*Running)(nil)

// Running is a run measured in steps.
type Running struct {
	Base
}

// NewRunning builds a run from its step count, hours and body weight in kg.
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{Base: newBase(action, duration, weight, LenStep)}
}

func (r *Running) Name() string {
	return "Running"
}

func (r *Running) SpentCalories() float64 {
	speedTerm := float64(RunningCaloriesMeanSpeedMultiplier*r.MeanSpeed()) + RunningCaloriesMeanSpeedShift
	perKilo := float64(speedTerm*r.Weight) / MInKm
	return perKilo * float64(r.Duration*MinInH)
}
