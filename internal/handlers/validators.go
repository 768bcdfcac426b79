package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// RegisterValidators adds domain enum validations to gin's binding validator,
// so malformed enums are rejected at bind time with a field-level message.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("vouchertype", func(fl validator.FieldLevel) bool {
		return domain.VoucherType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.AccountType(fl.Field().String()).Valid()
	})
}
