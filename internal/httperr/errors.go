package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindUnauthorized
	KindNotFound
	KindConflict
)

var kindStatus = map[Kind]int{
	KindInvalid:      http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
}

// Status returns the HTTP status for the kind; unknown kinds map to 500.
func (k Kind) Status() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error é o erro de domínio produzido pelos casos de uso.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on Kind and Code so sentinel errors work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func NotFoundErr(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func ConflictErr(code, message string) *Error {
	return New(KindConflict, code, message)
}

func UnauthorizedErr(code, message string) *Error {
	return New(KindUnauthorized, code, message)
}

func InvalidErr(code, message string) *Error {
	return New(KindInvalid, code, message)
}

// As extracts a domain error from the chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	de, ok := As(err)
	return ok && de.Kind == kind
}

// Erros de domínio compartilhados entre os casos de uso.
var (
	ErrUserNotFound                = NotFoundErr("user_not_found", "Usuário não encontrado")
	ErrUserAlreadyExists           = ConflictErr("user_already_exists", "Usuário já cadastrado")
	ErrInvalidCredentials          = UnauthorizedErr("invalid_credentials", "Email ou senha incorretos")
	ErrInvalidEmailDomain          = InvalidErr("invalid_email_domain", "O domínio do e-mail informado não parece ser válido")
	ErrProfessionalNotFound        = NotFoundErr("professional_not_found", "Profissional não encontrado")
	ErrProfessionalAlreadyExists   = ConflictErr("professional_already_exists", "Profissional já cadastrado")
	ErrClientNotFound              = NotFoundErr("client_not_found", "Cliente não encontrado")
	ErrClientAlreadyExists         = ConflictErr("client_already_exists", "Cliente já cadastrado")
	ErrServiceNotFound             = NotFoundErr("service_not_found", "Serviço não encontrado")
	ErrProfessionalServiceNotFound = NotFoundErr("professional_service_not_found", "Serviço do profissional não encontrado")
	ErrAlreadyLinked               = ConflictErr("professional_service_already_exists", "Profissional já possui esse serviço")
	ErrAppointmentNotFound         = NotFoundErr("appointment_not_found", "Agendamento não encontrado")
	ErrInvalidImage                = InvalidErr("invalid_image", "Imagem inválida")
	ErrInvalidDate                 = InvalidErr("invalid_date", "Data inválida")
)
