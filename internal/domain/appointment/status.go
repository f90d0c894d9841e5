package appointment

import "github.com/BruksfildServices01/booking-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusInterested é um lead vindo do CRM; o núcleo de agendamento nunca cria esse status
	StatusInterested Status = "INTERESTED"
	StatusReserved   Status = "RESERVED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusReserved {
		return httperr.InvalidState("invalid_state", "Somente agendamentos reservados podem ser cancelados.")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusReserved {
		return httperr.InvalidState("invalid_state", "Somente agendamentos reservados podem ser concluídos.")
	}
	return nil
}

// CanReschedule define se um agendamento pode mudar de horário
func CanReschedule(current Status) error {
	if current != StatusReserved {
		return httperr.InvalidState("invalid_state", "Somente agendamentos reservados podem ser remarcados.")
	}
	return nil
}

// InitialStatus é o status de todo agendamento criado pelo núcleo
func InitialStatus() Status {
	return StatusReserved
}
