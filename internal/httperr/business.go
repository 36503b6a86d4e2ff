package httperr

import "errors"

// BusinessError é a violação de regra de negócio que as coleções e os
// use cases devolvem (invalid_state, duplicate_email,
// insufficient_stock...). O handler traduz o código em status HTTP; o
// código em si vai no corpo, estável para a UI.
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
