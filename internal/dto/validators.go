package dto

import (
	"reflect"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding tags used by the request DTOs:
//
//	sharetxtype  the value is a known domain.ShareTransactionType
//	decimalgt0   a decimal strictly greater than zero
//	decimalgte0  a decimal greater than or equal to zero
//
// decimal.Decimal fields are validated through their string form.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("sharetxtype", func(fl validator.FieldLevel) bool {
		return domain.ShareTransactionType(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimalgt0", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("decimalgte0", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
}
