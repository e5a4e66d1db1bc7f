package v1

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"cryptomine/api/internal/domain"
	"cryptomine/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("crypto", validateCrypto)
	v.RegisterValidation("amount", validateAmount)

	return v
}

func validateCrypto(fl validator.FieldLevel) bool {
	return !domain.StrToCrypto(fl.Field().String()).IsNone()
}

// amounts travel as strings so no precision is lost in transit;
// accepted values are positive with at most 8 decimal places
func validateAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.IsPositive() && amount.Exponent() >= -8
}

// runValidation binds and validates; returns false after answering the
// request when anything is off.
func (h *Handler) runValidation(c *gin.Context, data any) bool {
	v := newValidator()

	err := v.Struct(data)
	if err == nil {
		return true
	}

	validationErrs, castErr := utils.SafeCast[validator.ValidationErrors](err)
	if castErr != nil || validationErrs == nil {
		h.log.Debug("validation cast failed", "error", err.Error())
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return false
	}

	validationErr := validationErrs[0]
	responseErr(c, http.StatusBadRequest, formatValidationErr(data, validationErr), "")
	return false
}

func formatValidationErr(data any, err validator.FieldError) string {
	jsonTag := getJSONTag(data, err.Field())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", jsonTag)
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of '%s'", jsonTag, err.Param())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s characters long", jsonTag, err.Param())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters long", jsonTag, err.Param())
	case "crypto":
		return fmt.Sprintf("field '%s' must be one of '%s'", jsonTag, strings.Join(domain.Cryptos[1:], " "))
	case "amount":
		return fmt.Sprintf("field '%s' must be a positive decimal with at most 8 decimal places", jsonTag)
	default:
		return fmt.Sprintf("invalid field '%s'", jsonTag)
	}
}

func getJSONTag(structType any, fieldName string) string {
	typ := reflect.TypeOf(structType)
	field, _ := typ.FieldByName(fieldName)
	tag := field.Tag.Get("json")
	if tag == "" {
		return fieldName
	}
	return tag
}
