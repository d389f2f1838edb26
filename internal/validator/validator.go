package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// adultAge is the minimum age, in years, a student must have reached
// by the time of insert.
const adultAge = 18

var (
	validate *govalidator.Validate
	// trans is the singleton English translator for validation errors.
	trans ut.Translator
)

func init() {
	validate = govalidator.New(govalidator.WithRequiredStructEnabled())

	// Use JSON tag name for field names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("adult", validateAdult)

	// Register English translations.
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	_ = validate.RegisterTranslation("adult", trans,
		func(ut ut.Translator) error {
			return ut.Add("adult", "{0} must be at least 18 years in the past", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, _ := ut.T("adult", fe.Field())
			return t
		},
	)
}

// validateAdult checks that a time.Time field lies at least adultAge
// years before now.
func validateAdult(fl govalidator.FieldLevel) bool {
	dob, ok := fl.Field().Interface().(time.Time)
	if !ok || dob.IsZero() {
		return false
	}
	cutoff := time.Now().AddDate(-adultAge, 0, 0)
	return !dob.After(cutoff)
}

// Struct validates dst against its validate tags.
// Returns nil on success or a translated field error map on failure.
func Struct(dst interface{}) map[string]string {
	if err := validate.Struct(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// TranslateErrors takes a validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}
