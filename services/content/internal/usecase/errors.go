package usecase

import "errors"

var (
	// ErrBackendUnavailable is returned by writes when no database is configured.
	ErrBackendUnavailable = errors.New("Banco de dados não configurado")
	ErrStorageUnavailable = errors.New("Armazenamento de arquivos não configurado")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("Você não tem permissão para editar este perfil.")
)

// UserError carries a message that is safe to show to the person who made
// the request. The underlying cause stays available through errors.Is/As.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func userError(message string, err error) error {
	return &UserError{Message: message, Err: err}
}
