package domain

import (
	"fmt"

	"uniportal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidatePayload checks a draft payload before it reaches storage.
func ValidatePayload(payload DraftPayload) error {
	if payload.Recipient == nil {
		return errors.ErrMissingRecipient
	}
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}
	return nil
}

func ValidatePatch(patch DraftPatch) error {
	if err := validate.Struct(patch); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}
	return nil
}

func ValidateReceived(payload ReceivedPayload) error {
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}
	return nil
}
