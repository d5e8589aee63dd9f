package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rogerio-castellano/soda-stock/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("soda_size", func(fl validator.FieldLevel) bool {
		return models.SodaSize(fl.Field().String()).Valid()
	})
	return v
}

func validateSoda(dto models.SodaDTO) []ValidationError {
	return validationErrors(validate.Struct(dto))
}

func validateQuantity(req QuantityRequest) []ValidationError {
	return validationErrors(validate.Struct(req))
}

func validationErrors(err error) []ValidationError {
	errs := []ValidationError{}
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return append(errs, ValidationError{Field: "body", Description: err.Error()})
	}
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:       fe.Field(),
			Description: fe.Field() + " " + validationMessage(fe),
		})
	}
	return errs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "soda_size":
		names := make([]string, 0, len(models.AllSizes()))
		for _, s := range models.AllSizes() {
			names = append(names, string(s))
		}
		return "must be one of " + strings.Join(names, ", ")
	}
	return "is invalid"
}
