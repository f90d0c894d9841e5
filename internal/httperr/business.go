package httperr

import "errors"

// ===============================
// Kinds
// ===============================

type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindSlotConflict Kind = "slot_conflict"
	KindInvalidState Kind = "invalid_state"
	KindForbidden    Kind = "forbidden"
)

// ===============================
// Business error
// ===============================

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func New(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

// ErrBusiness mantém o atalho antigo: código sem mensagem, tratado como entrada inválida
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalidInput, Code: code}
}

func InvalidInput(code, message string) error {
	return New(KindInvalidInput, code, message)
}

func NotFoundErr(code, message string) error {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) error {
	return New(KindConflict, code, message)
}

func SlotConflict(code, message string) error {
	return New(KindSlotConflict, code, message)
}

func InvalidState(code, message string) error {
	return New(KindInvalidState, code, message)
}

func Forbidden(code, message string) error {
	return New(KindForbidden, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}
