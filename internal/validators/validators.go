package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

var (
	imageDataRe = regexp.MustCompile(`^data:image/(jpeg|png);base64,[A-Za-z0-9+/=]+$`)
	imageURLRe  = regexp.MustCompile(`^https?://(localhost|([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}|(\d{1,3}\.){3}\d{1,3})(:\d{1,5})?(/\S*)?$`)
)

var appointmentStatuses = map[string]struct{}{
	"pending":   {},
	"confirmed": {},
	"completed": {},
	"canceled":  {},
}

func IsImageData(s string) bool {
	return imageDataRe.MatchString(s)
}

func IsImageURL(s string) bool {
	return imageURLRe.MatchString(s)
}

// Register instala as regras customizadas no validador usado pelo gin.
// Os nomes de campo reportados passam a ser os do JSON/query/uri.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	rules := map[string]validator.Func{
		"imagedata": func(fl validator.FieldLevel) bool {
			return IsImageData(fl.Field().String())
		},
		"imageurl": func(fl validator.FieldLevel) bool {
			return IsImageURL(fl.Field().String())
		},
		"datestring": func(fl validator.FieldLevel) bool {
			return timezone.IsParseable(fl.Field().String())
		},
		"appointment_status": func(fl validator.FieldLevel) bool {
			_, ok := appointmentStatuses[fl.Field().String()]
			return ok
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ======================================================
// ERROR FORMAT
// ======================================================

// Fields converte um erro de binding em entradas {message, field}.
// Qualquer erro que não seja de validação (JSON malformado, tipo errado)
// vira uma entrada única no campo "body".
func Fields(err error) []httperr.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []httperr.FieldError{{Message: "Corpo da requisição inválido", Field: "body"}}
	}

	out := make([]httperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, httperr.FieldError{
			Message: message(fe),
			Field:   fe.Field(),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "uuid", "uuid4":
		return "ID deve ser um UUID"
	case "email":
		return "E-mail inválido"
	case "min":
		if fe.Kind() == reflect.String {
			return "Deve ter pelo menos " + fe.Param() + " caracteres"
		}
		return "Deve ser no mínimo " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Deve ter no máximo " + fe.Param() + " caracteres"
		}
		return "Deve ser no máximo " + fe.Param()
	case "gt":
		return "Deve ser um número positivo"
	case "oneof":
		return "Valor inválido, use um de: " + fe.Param()
	case "imagedata", "imageurl", "imagedata|imageurl":
		return "Formato de imagem inválido"
	case "datestring":
		return "Data inválida"
	case "appointment_status":
		return "Status inválido"
	default:
		return "Valor inválido"
	}
}
