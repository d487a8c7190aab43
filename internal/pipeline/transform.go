package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/couchcryptid/grib-param-service/internal/observability"
)

// ParamResolver implements Resolver against a built parameter registry.
type ParamResolver struct {
	registry *domain.Registry
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewResolver creates a ParamResolver over reg.
func NewResolver(reg *domain.Registry, logger *slog.Logger, metrics *observability.Metrics) *ParamResolver {
	return &ParamResolver{registry: reg, logger: logger, metrics: metrics}
}

// Resolve parses the descriptor, looks its parameter up and serializes the
// result. Lookup outcomes are counted whether or not they succeed.
func (r *ParamResolver) Resolve(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	d, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	field, err := domain.ResolveField(r.registry, d, raw.Value)
	r.metrics.Lookups.WithLabelValues(lookupOutcome(err)).Inc()
	if err != nil {
		return domain.OutputEvent{}, err
	}

	r.logger.Debug("parameter resolved",
		"table", field.Table.String(),
		"code", field.Parameter.Code,
		"abbreviation", field.Parameter.Abbreviation,
	)
	return domain.SerializeResolvedField(field)
}

func lookupOutcome(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeFound
	case errors.Is(err, domain.ErrTableNotFound):
		return observability.OutcomeTableNotFound
	default:
		return observability.OutcomeCodeNotFound
	}
}
