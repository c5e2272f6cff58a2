package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the ledger validation rules on gin's validator engine.
// It is safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("money", validateMoney)
	})
}

// decimalValue lets tags such as required and money see a decimal as a string.
// A zero amount reads as empty so that required rejects it.
func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok || d.IsZero() {
		return ""
	}
	return d.String()
}

// validateMoney accepts non-negative values with at most two decimal places.
func validateMoney(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if d.IsNegative() {
		return false
	}
	return d.Equal(d.Round(domain.MoneyScale))
}
