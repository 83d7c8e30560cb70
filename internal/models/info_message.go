package models

import "fmt"

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage contains the metrics computed for a single training session
type InfoMessage struct {
	TrainingType string
	Duration     float64 // in hours
	Distance     float64 // in km
	Speed        float64 // in km/h
	Calories     float64 // in kcal
}

// Message renders the summary line shown to the user.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate,
		m.TrainingType,
		m.Duration,
		m.Distance,
		m.Speed,
		m.Calories,
	)
}

func (m InfoMessage) String() string {
	return m.Message()
}
