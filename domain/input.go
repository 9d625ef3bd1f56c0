package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"mealbridge/errors"
)

var validate = validator.New()

// DonationInput is what a donor submits to list surplus food. The
// server fills in identity, donor reference, creation time and the
// initial pending status.
type DonationInput struct {
	FoodName    string    `json:"foodName" validate:"required"`
	Quantity    string    `json:"quantity" validate:"required"`
	Description string    `json:"description"`
	ExpiryTime  time.Time `json:"expiryTime" validate:"required"`
	Image       string    `json:"image,omitempty"`
	Location    Location  `json:"location"`
	Notes       string    `json:"notes,omitempty"`
}

// Validate rejects incomplete submissions before any network call.
func (in DonationInput) Validate(now time.Time) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	if in.Location.Address == "" {
		return fmt.Errorf("%w: pickup address is required", errors.ErrInvalidInput)
	}
	if !in.ExpiryTime.After(now) {
		return fmt.Errorf("%w: expiry time must be in the future", errors.ErrInvalidInput)
	}
	if in.Image != "" {
		raw, err := imagePayload(in.Image)
		if err != nil {
			return fmt.Errorf("%w: image must be base64 encoded", errors.ErrInvalidInput)
		}
		if mime := mimetype.Detect(raw).String(); !strings.HasPrefix(mime, "image/") {
			return fmt.Errorf("%w: image payload sniffed as %s", errors.ErrInvalidInput, mime)
		}
	}
	return nil
}

// imagePayload strips the optional data URI prefix and decodes the
// base64 body the client submits for an image.
func imagePayload(image string) ([]byte, error) {
	if strings.HasPrefix(image, "data:") {
		i := strings.Index(image, ",")
		if i < 0 {
			return nil, fmt.Errorf("data URI without a payload separator")
		}
		image = image[i+1:]
	}
	return base64.StdEncoding.DecodeString(image)
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         Role   `json:"role" validate:"required,oneof=donor ngo admin"`
	Organization string `json:"organization,omitempty"`
}

func (in RegisterInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	return nil
}
