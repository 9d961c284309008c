package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/emtionre/satisfaction-service/internal/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	vv := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their query parameter name
	vv.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("query"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return vv
}

// DateQuery is ?date=YYYY-MM-DD.
type DateQuery struct {
	Date string `query:"date" validate:"required,len=10,datetime=2006-01-02"`
}

// MinuteQuery is ?date=YYYY-MM-DD&time=HH:mm.
type MinuteQuery struct {
	Date string `query:"date" validate:"required,len=10,datetime=2006-01-02"`
	Time string `query:"time" validate:"required,len=5,datetime=15:04"`
}

// Struct validates q and turns failures into a validation AppError whose
// meta maps each bad query parameter to a hint.
func Struct(q any) error {
	err := v.Struct(q)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validate: %w", err)
	}
	meta := make(map[string]string, len(ves))
	for _, fe := range ves {
		meta[fe.Field()] = hint(fe)
	}
	return domain.ErrValidationMeta("invalid query param", meta)
}

func hint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime", "len":
		switch fe.Field() {
		case "date":
			return "expected YYYY-MM-DD"
		case "time":
			return "expected HH:mm"
		}
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
