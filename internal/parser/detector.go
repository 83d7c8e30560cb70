// internal/parser/detector.go
package parser

import (
	"errors"
	"fmt"
)

type WorkoutType string

const (
	WorkoutTypeSwimming WorkoutType = "SWM"
	WorkoutTypeRunning  WorkoutType = "RUN"
	WorkoutTypeWalking  WorkoutType = "WLK"
)

var (
	// ErrUnknownWorkoutType is returned for codes other than SWM, RUN and WLK.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrFieldCount is returned when a package carries the wrong number of readings.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrInvalidField is returned when a reading cannot be used as the expected field.
	ErrInvalidField = errors.New("invalid field")
)

// DetectWorkoutType maps a sensor code to a known workout type.
func DetectWorkoutType(code string) (WorkoutType, error) {
	t := WorkoutType(code)
	if _, ok := constructors[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	return t, nil
}
