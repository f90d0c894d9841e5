package validators

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adiciona as tags usadas pelos DTOs ao validador do gin:
//
//	hhmm    "HH:MM" entre 00:00 e 23:59
//	isodate "YYYY-MM-DD"
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", hhmm); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", isoDate)
}

func hhmm(fl validator.FieldLevel) bool {
	return IsHHMM(fl.Field().String())
}

func isoDate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}

func IsHHMM(v string) bool {
	if len(v) != 5 {
		return false
	}
	_, err := time.Parse("15:04", v)
	return err == nil
}

func IsISODate(v string) bool {
	if len(v) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}
