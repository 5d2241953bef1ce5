package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shrine-functions/internal/pkg/errors"
	"github.com/shrine-functions/internal/pkg/utils"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В сообщениях об ошибках используем имена полей из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
			return false
		}
		return utils.IsFinite(f.Float())
	})

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return utils.TrimWhitespace(f.String()) != ""
	})
}

// Validate - валидация структуры; первая ошибка поля превращается в invalid-argument
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.ErrInvalidRequest
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "finite":
		return errors.FieldNotFinite(fe.Field())
	default:
		return errors.FieldRequired(fe.Field())
	}
}

