package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CommentSubmission is the normalized result of a valid comment form.
type CommentSubmission struct {
	Text   string `validate:"required,max=500"`
	Rating int    `validate:"min=1,max=5"`
	Accept bool   `validate:"eq=true"`
}

// FieldErrors maps a form field name to its message. Keys match the form
// field names used by the template: comment, note, acceptConditions.
type FieldErrors map[string]string

var validate = validator.New()

// ValidateComment checks a raw form submission and either returns the
// normalized record or one message per failing field. Submission is
// all-or-nothing: any message means rejection.
//
// The rating arrives as untyped input; it is accepted only when the trimmed
// value parses as an integer. Empty string is not silently coerced to zero.
func ValidateComment(comment, note, accept string) (*CommentSubmission, FieldErrors) {
	fieldErrs := FieldErrors{}

	sub := &CommentSubmission{
		Text:   strings.TrimSpace(comment),
		Accept: accept == "on" || accept == "true",
	}

	rating, convErr := strconv.Atoi(strings.TrimSpace(note))
	if convErr != nil {
		fieldErrs["note"] = "La note est invalide."
	} else {
		sub.Rating = rating
	}

	if err := validate.Struct(sub); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				switch fe.Field() {
				case "Text":
					if fe.Tag() == "required" {
						fieldErrs["comment"] = "Veuillez renseigner un commentaire."
					} else {
						fieldErrs["comment"] = "Le commentaire ne doit pas dépasser 500 caractères."
					}
				case "Rating":
					if _, failed := fieldErrs["note"]; failed {
						// Coercion already failed; the zero value tripping
						// the range check is not a second error.
						continue
					}
					if fe.Tag() == "min" {
						fieldErrs["note"] = "La note minimale est 1."
					} else {
						fieldErrs["note"] = "La note maximale est 5."
					}
				case "Accept":
					fieldErrs["acceptConditions"] = "Vous devez accepter les conditions générales."
				}
			}
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return sub, nil
}
