// internal/app/system/inputval/inputval.go
//
// Package inputval validates request parameters. Struct tags use
// go-playground/validator; errors are reported by json field name with
// English messages.
package inputval

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	leaveTypeTag  = "leavetype"
	eduLevelTag   = "edulevel"
	certSourceTag = "certsource"
	pageCodeTag   = "pagecode"
	yearFilterTag = "yearfilter"

	pageCodeRegex   = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)
	yearFilterRegex = regexp.MustCompile(`^(?i:all|[0-9]{4})$`)
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(leaveTypeTag, func(fl validator.FieldLevel) bool {
		return IsValidLeaveType(fl.Field().String())
	})
	_ = validate.RegisterValidation(eduLevelTag, func(fl validator.FieldLevel) bool {
		return IsValidEducationLevel(fl.Field().String())
	})
	_ = validate.RegisterValidation(certSourceTag, func(fl validator.FieldLevel) bool {
		return IsValidCertificateSource(fl.Field().String())
	})
	_ = validate.RegisterValidation(pageCodeTag, func(fl validator.FieldLevel) bool {
		return pageCodeRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation(yearFilterTag, func(fl validator.FieldLevel) bool {
		return yearFilterRegex.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{leaveTypeTag, eduLevelTag, certSourceTag, pageCodeTag, yearFilterTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustom)
	}
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case leaveTypeTag:
		return fe.Field() + " must be a known leave type"
	case eduLevelTag:
		return fe.Field() + " must be one of " + strings.Join(models.EducationLevels, ", ")
	case certSourceTag:
		return fe.Field() + " must be internal or external"
	case pageCodeTag:
		return fe.Field() + " may only contain letters, digits, dots, dashes and underscores"
	case yearFilterTag:
		return fe.Field() + " must be All or a four digit year"
	default:
		return fe.Error()
	}
}

// Errors maps json field names to messages.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e[k])
	}
	return strings.Join(parts, "; ")
}

// Struct validates v. It returns nil or an Errors value.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := Errors{}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Translate(translator)
	}
	return out
}

// IsValidLeaveType reports whether s is one of the fixed leave types.
func IsValidLeaveType(s string) bool {
	return models.IsLeaveType(strings.TrimSpace(s))
}

// IsValidEducationLevel reports whether s is one of the classified levels.
func IsValidEducationLevel(s string) bool {
	s = models.NormalizeLevel(s)
	for _, l := range models.EducationLevels {
		if s == l {
			return true
		}
	}
	return false
}

// IsValidCertificateSource reports whether s names a certificate source.
func IsValidCertificateSource(s string) bool {
	switch models.CertificateSource(strings.ToLower(strings.TrimSpace(s))) {
	case models.CertInternal, models.CertExternal:
		return true
	}
	return false
}
