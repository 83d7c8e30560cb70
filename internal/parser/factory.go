package parser

import (
	"fmt"
	"math"

	"github.com/sstent/ftracker/internal/training"
)

type constructor struct {
	fields int
	build  func(data []float64) (training.Training, error)
}

var constructors = map[WorkoutType]constructor{
	WorkoutTypeSwimming: {
		fields: 5,
		build: func(data []float64) (training.Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			countPool, err := wholeNumber("count_pool", data[4])
			if err != nil {
				return nil, err
			}
			return training.NewSwimming(action, data[1], data[2], data[3], countPool), nil
		},
	},
	WorkoutTypeRunning: {
		fields: 3,
		build: func(data []float64) (training.Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			return training.NewRunning(action, data[1], data[2]), nil
		},
	},
	WorkoutTypeWalking: {
		fields: 4,
		build: func(data []float64) (training.Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			height, err := positive("height", data[3])
			if err != nil {
				return nil, err
			}
			return training.NewSportsWalking(action, data[1], data[2], height), nil
		},
	},
}

// ReadPackage builds the calculator for a sensor package. The readings are
// positional and their count must match the workout type.
func ReadPackage(code string, data []float64) (training.Training, error) {
	workoutType, err := DetectWorkoutType(code)
	if err != nil {
		return nil, err
	}

	c, ok := constructors[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	if len(data) != c.fields {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrFieldCount, workoutType, c.fields, len(data))
	}

	// duration is the second reading for every workout type
	if _, err := positive("duration", data[1]); err != nil {
		return nil, err
	}

	return c.build(data)
}

// positive rejects readings that would be used as a divisor.
func positive(name string, v float64) (float64, error) {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidField, name, v)
	}
	return v, nil
}

func wholeNumber(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidField, name, v)
	}
	if v < math.MinInt || v >= -math.MinInt {
		return 0, fmt.Errorf("%w: %s is out of range, got %v", ErrInvalidField, name, v)
	}
	return int(v), nil
}
