package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiranacart/delivery-api/schema"
)

// ZoneSource loads the full zone record set from a system of record.
// Sources feed ZoneStore.Refresh; they are never on the detection
// request path.
type ZoneSource interface {
	LoadZones(ctx context.Context) ([]schema.DeliveryZone, error)
}

type MultipleSourceErrors struct {
	errors []error
}

func (e *MultipleSourceErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleSourceErrors(errors []error) *MultipleSourceErrors {
	return &MultipleSourceErrors{
		errors: errors,
	}
}

// MultipleZoneSource tries each source in order and returns the first
// successful load.
type MultipleZoneSource struct {
	sources []ZoneSource
}

func NewMultipleZoneSource(sources ...ZoneSource) *MultipleZoneSource {
	return &MultipleZoneSource{
		sources: sources,
	}
}

func (m *MultipleZoneSource) LoadZones(ctx context.Context) ([]schema.DeliveryZone, error) {
	var errors []error
	for _, source := range m.sources {
		zones, err := source.LoadZones(ctx)
		if err != nil {
			errors = append(errors, err)
			continue
		}
		return zones, nil
	}

	return nil, NewMultipleSourceErrors(errors)
}
