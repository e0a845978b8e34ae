package exercise

import (
	"fmt"
	"strconv"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// GenerateInput holds the parameters for exercise generation.
type GenerateInput struct {
	Words   []domain.WordRef
	Context string
	Types   []domain.ExerciseType
}

// Validate checks all fields and collects all errors.
func (i *GenerateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	}
	if len(i.Types) == 0 {
		errs = append(errs, domain.FieldError{Field: "types", Message: "required (at least 1)"})
	}
	for idx, t := range i.Types {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fieldIdx("types", idx),
				Message: fmt.Sprintf("unknown exercise type %q", t),
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// QuizInput holds the parameters for quiz generation.
type QuizInput struct {
	Words   []domain.WordRef
	Context string
	Limit   int
}

// Validate checks all fields and collects all errors.
func (i *QuizInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fieldIdx formats an indexed field path like "types[0]".
func fieldIdx(parent string, idx int) string {
	return parent + "[" + strconv.Itoa(idx) + "]"
}
