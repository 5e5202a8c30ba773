package validation

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskhub/internal/core/domain"
)

const (
	TagClock   = "hhmm"
	TagTaxCode = "taxcode"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator
// engine. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation(TagClock, validClock)
		_ = v.RegisterValidation(TagTaxCode, validTaxCode)
	})
}

func validClock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClock(fl.Field().String())
	return err == nil
}

func validTaxCode(fl validator.FieldLevel) bool {
	return domain.ValidTaxCode(fl.Field().String())
}

// FailedOn reports whether err is a validation error raised by tag.
func FailedOn(err error, tag string) bool {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range errs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
