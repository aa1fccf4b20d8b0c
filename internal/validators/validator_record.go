package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-pass-import/models"
)

const (
	FieldLabel    = "label"
	FieldPassword = "password"
	FieldColor    = "color"
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RecordValidator validates tags, folders and passwords of an import.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Tag:
		return v.validateTag(value, fields...)
	case *models.Tag:
		return v.validateTag(*value, fields...)

	case models.Folder:
		return v.validateFolder(value, fields...)
	case *models.Folder:
		return v.validateFolder(*value, fields...)

	case models.Password:
		return v.validatePassword(value, fields...)
	case *models.Password:
		return v.validatePassword(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RecordValidator) validateTag(tag models.Tag, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel, FieldColor}
	}
	for _, field := range fields {
		switch field {
		case FieldLabel:
			if err := validateLabel(tag.Label); err != nil {
				return err
			}
		case FieldColor:
			if tag.Color != "" && !colorPattern.MatchString(tag.Color) {
				return fmt.Errorf("%w: %q", ErrInvalidColor, tag.Color)
			}
		default:
			return fmt.Errorf("%w: %q for tag", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordValidator) validateFolder(folder models.Folder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel}
	}
	for _, field := range fields {
		switch field {
		case FieldLabel:
			if err := validateLabel(folder.Label); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q for folder", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordValidator) validatePassword(password models.Password, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel, FieldPassword}
	}
	for _, field := range fields {
		switch field {
		case FieldLabel:
			if err := validateLabel(password.Label); err != nil {
				return err
			}
		case FieldPassword:
			if password.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %q for password", ErrUnknownField, field)
		}
	}
	return nil
}

func validateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	return nil
}
