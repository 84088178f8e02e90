package validators

import (
	"errors"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// New returns the shared validator. Struct tags use json names in errors.
func New() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(jsonName)
	})
	return instance
}

// Fields lists the fields that failed validation, sorted.
func Fields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field())
	}
	sort.Strings(out)
	return out
}
