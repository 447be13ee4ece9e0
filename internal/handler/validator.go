package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hollowpine/frontier/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for container kinds, body slots and panels
	_ = v.RegisterValidation("containerkind", validateContainerKind)
	_ = v.RegisterValidation("bodyslot", validateBodySlot)
	_ = v.RegisterValidation("panel", validatePanel)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "containerkind":
			errs[field] = ErrMsgInvalidContainerKind
		case "bodyslot":
			errs[field] = "Invalid body slot"
		case "panel":
			errs[field] = ErrMsgInvalidPanel
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidPanels defines the player-side panels transfers may target
var ValidPanels = map[string]bool{
	string(domain.LocationInventory): true,
	string(domain.LocationHotbar):    true,
}

// Custom validation function for container kind
func validateContainerKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if kind == "" {
		return true
	}
	return domain.ValidContainerKinds[domain.ContainerKind(strings.ToLower(kind))]
}

// Custom validation function for body slot
func validateBodySlot(fl validator.FieldLevel) bool {
	slot := fl.Field().String()
	if slot == "" {
		return true
	}
	return domain.ValidBodySlots[domain.BodySlot(strings.ToLower(slot))]
}

// Custom validation function for player-side panels
func validatePanel(fl validator.FieldLevel) bool {
	panel := fl.Field().String()
	if panel == "" {
		return true
	}
	return ValidPanels[strings.ToLower(panel)]
}
