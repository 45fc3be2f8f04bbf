package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProductForm is the admin create/update payload before the image is
// attached. Specifications keep insertion order only at the display
// layer; keys are unique by construction of the map.
type ProductForm struct {
	Name           string            `json:"name" validate:"required,max=200"`
	Description    string            `json:"description" validate:"max=5000"`
	Model          string            `json:"model" validate:"max=120"`
	Category       string            `json:"category" validate:"max=60"`
	Badge          string            `json:"badge" validate:"max=60"`
	Rating         float64           `json:"rating" validate:"gte=0,lte=5"`
	Reviews        int               `json:"reviews" validate:"gte=0"`
	Features       []string          `json:"features" validate:"dive,max=300"`
	Applications   []string          `json:"applications" validate:"dive,max=300"`
	Specifications map[string]string `json:"specifications" validate:"dive,keys,max=120,endkeys,max=500"`
}

// Validate checks the form, tagging failures with ErrValidation so the
// transport layer can map them to a client error.
func (f ProductForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// Data converts the form into the writable document fields. The image
// reference is attached by the caller after upload.
func (f ProductForm) Data() ProductData {
	return ProductData{
		Name:           f.Name,
		Description:    f.Description,
		Model:          f.Model,
		Category:       f.Category,
		Badge:          f.Badge,
		Rating:         f.Rating,
		Reviews:        f.Reviews,
		Features:       f.Features,
		Applications:   f.Applications,
		Specifications: f.Specifications,
	}
}
