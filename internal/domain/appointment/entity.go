package appointment

import (
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/httperr"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/session"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Reschedule(ap *models.Appointment, start time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.MoveTo(start)
	return nil
}

// ===============================
// Actor rules
// ===============================

// Party diz se a sessão é o cliente ou o profissional do agendamento
type Party int

const (
	PartyNone Party = iota
	PartyClient
	PartyProfessional
)

// PartyOf recebe o UserID dono do perfil profissional do agendamento
func PartyOf(ap *models.Appointment, s session.Session, professionalUserID uint) Party {
	if s.IsProfessional() && professionalUserID == s.UserID {
		return PartyProfessional
	}
	if ap.ClientID == s.UserID {
		return PartyClient
	}
	return PartyNone
}

func RequireParty(p Party) error {
	if p == PartyNone {
		return httperr.Forbidden("forbidden", "Você não participa deste agendamento.")
	}
	return nil
}

func RequireProfessional(p Party) error {
	if p != PartyProfessional {
		return httperr.Forbidden("forbidden", "Somente o profissional pode concluir o agendamento.")
	}
	return nil
}
