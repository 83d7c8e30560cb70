package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoMessage_Message(t *testing.T) {
	tests := []struct {
		name     string
		msg      InfoMessage
		expected string
	}{
		{
			name: "running",
			msg: InfoMessage{
				TrainingType: "Running",
				Duration:     1,
				Distance:     9.75,
				Speed:        9.75,
				Calories:     797.805,
			},
			expected: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		},
		{
			name: "rounds to three decimals",
			msg: InfoMessage{
				TrainingType: "Swimming",
				Duration:     1.5,
				Distance:     0.9936,
				Speed:        1.0,
				Calories:     336,
			},
			expected: "Тип тренировки: Swimming; Длительность: 1.500 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name:     "zero values",
			msg:      InfoMessage{TrainingType: "SportsWalking"},
			expected: "Тип тренировки: SportsWalking; Длительность: 0.000 ч.; Дистанция: 0.000 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.msg.Message())
		})
	}
}

func TestInfoMessage_String(t *testing.T) {
	msg := InfoMessage{TrainingType: "Running", Duration: 2, Distance: 1, Speed: 0.5, Calories: 10}
	assert.Equal(t, msg.Message(), fmt.Sprint(msg))
}
