package httperr

import "errors"

// Códigos de negócio do fluxo de anamnese. Handlers traduzem cada código
// para status HTTP + mensagem amigável.
const (
	CodeMissingFields        = "missing_fields"
	CodeInvalidCPF           = "invalid_cpf"
	CodeUnknownProfessional  = "unknown_professional"
	CodeProfessionalMismatch = "professional_mismatch"
	CodeDuplicateCPF         = "duplicate_cpf"
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
