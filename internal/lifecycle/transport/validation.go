package transport

import (
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/platform/validator"
)

// RegisterValidations adds the lifecycle enum tags used by ImportRow.
func RegisterValidations(val *validator.Validator) error {
	if err := val.RegisterValidation("businesstype", validator.OneOf(domain.BusinessTypes...)); err != nil {
		return err
	}
	return val.RegisterValidation("discoverysource", validator.OneOf(domain.DiscoverySources...))
}
