package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// place_filter - одно из all/nursing/changing/accessible
	_ = validate.RegisterValidation("place_filter", func(fl validator.FieldLevel) bool {
		return domain.PlaceFilter(fl.Field().String()).Valid()
	})
}

// Validate - валидация структуры. Ошибки полей возвращаются как ErrInvalidRequest
// с деталями вида {"field": "tag"}.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(details)
}
