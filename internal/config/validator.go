package config

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prism/internal/style"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	elementNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("element_name", func(fl validator.FieldLevel) bool {
			return elementNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument checks the document schema and element name uniqueness.
// In strict mode every element's style and placement are checked against
// their enumerated domains as well.
func ValidateDocument(doc *Document, strict bool) error {
	if doc == nil {
		return prismerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Elements))
	for i, el := range doc.Elements {
		if first, exists := seen[el.Name]; exists {
			return prismerrors.NewValidationError(
				fieldForElement(i, "name"),
				fmt.Sprintf("duplicate element name %q (first defined at elements[%d])", el.Name, first),
				nil,
			)
		}
		seen[el.Name] = i

		if !strict {
			continue
		}
		if err := style.Validate(el.Style); err != nil {
			return fmt.Errorf("%s: %w", fieldForElement(i, "style"), err)
		}
		if el.Placement != nil {
			if err := el.Placement.Validate(); err != nil {
				return fmt.Errorf("%s: %w", fieldForElement(i, "placement"), err)
			}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if stdErrors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return prismerrors.NewValidationError(field, msg, err)
	}

	return prismerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving a path
// like elements[0].name.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForElement(index int, field string) string {
	return fmt.Sprintf("elements[%d].%s", index, field)
}
