package models

import "time"

// WeeklyScheduleBlock é um bloco recorrente; horários HH:MM no fuso do profissional
type WeeklyScheduleBlock struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index:idx_weekly_professional_day;not null" json:"professionalId"`

	DayOfWeek int    `gorm:"index:idx_weekly_professional_day;not null" json:"dayOfWeek"`
	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
}

// ExceptionDate sobrepõe a agenda semanal em uma data específica
type ExceptionDate struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_exception_professional_date;not null" json:"professionalId"`

	Date        string  `gorm:"size:10;uniqueIndex:idx_exception_professional_date;not null" json:"date"`
	IsAvailable bool    `gorm:"not null" json:"isAvailable"`
	StartTime   *string `gorm:"size:5" json:"startTime,omitempty"`
	EndTime     *string `gorm:"size:5" json:"endTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
