package httperr

import "errors"

// Códigos de negócio do core de agendamento.
const (
	CodeInPast              = "in_past"
	CodeOutsideHours        = "outside_business_hours"
	CodeTimeConflict        = "time_conflict"
	CodeInvalidDateOrTime   = "invalid_date_or_time"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeProviderNotFound    = "provider_not_found"
	CodeServiceNotFound     = "service_not_found"
	CodeProductNotFound     = "product_not_found"
	CodeEmptySelection      = "empty_selection"
	CodeInvalidState        = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de um erro de negócio ("" se não for um).
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
