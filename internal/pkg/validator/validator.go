package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"userhub/internal/domain"
	apperror "userhub/internal/errors"
)

// Padrões de formato por tipo de campo. Todos são ancorados (casamento total).
var patterns = map[string]*regexp.Regexp{
	"alnum_id":        regexp.MustCompile(`^[A-Za-z0-9]+$`),
	"person_name":     regexp.MustCompile(`^[a-zA-Z\-]+$`),
	"house_user_name": regexp.MustCompile(`^[a-zA-Z0-9_]+$`),
	"email_address":   regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`),
	"phone":           regexp.MustCompile(`^\+(?:[0-9] ?){6,14}[0-9]$`),
	"brand":           regexp.MustCompile(`^[a-zA-Z\s]+$`),
	"model":           regexp.MustCompile(`^[a-zA-Z0-9\s]+$`),
	"town":            regexp.MustCompile(`^[A-Za-z\-\s]*$`),
	"address":         regexp.MustCompile(`^[A-Za-z-]+$`),
	"year":            regexp.MustCompile(`^\d{4}$`),
	"date":            regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	"passport_number": regexp.MustCompile(`^\d{9}$`),
}

var nationalityPattern = regexp.MustCompile(`^[\p{L} -]+$`)

const (
	nationalityMinLen = 2
	nationalityMaxLen = 90
)

// Validator encapsula o validator/v10 com as tags de formato do userhub registradas.
// É seguro para uso concorrente.
type Validator struct {
	validate *validator.Validate
}

// New cria o Validator e registra as tags customizadas.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Mensagens usam o nome JSON do campo (userName, carVinCode...).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	for tag, re := range patterns {
		// Os erros de registro só ocorrem com tag vazia ou função nil.
		_ = v.RegisterValidation(tag, matchFunc(re))
	}
	_ = v.RegisterValidation("nationality", validateNationality)
	_ = v.RegisterValidation("supported_country", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedCountry(fl.Field().String())
	})

	return &Validator{validate: v}
}

// matchFunc aplica o padrão à forma textual do campo (inteiros em decimal).
func matchFunc(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, ok := textOf(fl.Field())
		return ok && re.MatchString(value)
	}
}

func textOf(field reflect.Value) (string, bool) {
	switch field.Kind() {
	case reflect.String:
		return field.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(field.Uint(), 10), true
	default:
		return "", false
	}
}

func validateNationality(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	n := utf8.RuneCountInString(value)
	if n < nationalityMinLen || n > nationalityMaxLen {
		return false
	}
	return nationalityPattern.MatchString(value)
}

// Struct valida todos os campos anotados com `validate`.
// Retorna nil ou um ValidationError (400) descrevendo o primeiro campo inválido.
func (v *Validator) Struct(s interface{}) error {
	return translate("", v.validate.Struct(s))
}

// Check valida um valor isolado (parâmetro de path ou query) contra as tags.
// label é o nome usado na mensagem. Um ponteiro nil é considerado ausente e passa.
func (v *Validator) Check(label string, value interface{}, tag string) error {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return nil
	}
	if rv.Kind() == reflect.Ptr {
		value = rv.Elem().Interface()
	}
	return translate(label, v.validate.Var(value, tag))
}

func translate(label string, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.NewInternalError("Falha inesperada na validação", err)
	}

	fe := fieldErrs[0]
	field := fe.Field()
	if label != "" {
		field = label
	}
	return apperror.NewValidationError(message(field, fe.Tag(), fe.Value()))
}

// message monta o texto devolvido ao cliente para cada tag violada.
func message(field, tag string, raw interface{}) string {
	value := fmt.Sprint(raw)
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "passport_number":
		return fmt.Sprintf("Passport number more or less than 9 or invalid passport number characters: %s", value)
	case "supported_country":
		return fmt.Sprintf("Unsupported country requested: %s", value)
	case "oneof":
		return fmt.Sprintf("Gender not specified: %s", value)
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("Invalid %s value: %s", field, value)
	case "phone":
		if field == "userPhone" {
			return fmt.Sprintf("Invalid phone number format: %s", value)
		}
		return fmt.Sprintf("Invalid phone number characters: %s", value)
	case "nationality":
		if n := utf8.RuneCountInString(value); n < nationalityMinLen || n > nationalityMaxLen {
			return fmt.Sprintf("Your nationality length less 2 or more 90: %s", value)
		}
		return "Invalid parameter value: nationality contains invalid characters"
	default:
		return fmt.Sprintf("Invalid %s characters: %s", field, value)
	}
}
