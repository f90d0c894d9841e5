package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID       uint `gorm:"index;not null" json:"clientId"`
	ProfessionalID uint `gorm:"index;not null" json:"professionalId"`
	ServiceID      uint `gorm:"not null" json:"serviceId"`

	AppointmentDate time.Time `gorm:"not null;index" json:"appointmentDate"`
	Duration        int       `gorm:"not null" json:"duration"`
	EndAt           time.Time `gorm:"not null" json:"endAt"`

	Status string `gorm:"size:20;not null;default:'RESERVED'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MoveTo reposiciona o agendamento mantendo a duração copiada do serviço
func (a *Appointment) MoveTo(start time.Time) {
	a.AppointmentDate = start
	a.EndAt = start.Add(time.Duration(a.Duration) * time.Minute)
}
