package http

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	// Sri Lankan NIC: 9 digits + V/X, or 12 digits
	reNIC = regexp.MustCompile(`^\d{9}[vVxX]$|^\d{12}$`)
	// structured loan number: 12-<town>-<group>-<seq>
	reLoanNumber = regexp.MustCompile(`^12-\d{3}-\d{3}-\d{3,}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("nic", func(fl validator.FieldLevel) bool {
		return reNIC.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("loannumber", func(fl validator.FieldLevel) bool {
		return reLoanNumber.MatchString(fl.Field().String())
	})
	// daily/weekly/monthly
	_ = v.RegisterValidation("loantype", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "daily", "weekly", "monthly":
			return true
		}
		return false
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors -> []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "nic":
			out = append(out, FieldError{Field: field, Message: "must be 9 digits + V/X or 12 digits"})
		case "loannumber":
			out = append(out, FieldError{Field: field, Message: "must look like 12-000-000-000"})
		case "loantype":
			out = append(out, FieldError{Field: field, Message: "must be daily, weekly or monthly"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
