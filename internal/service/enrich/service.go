package enrich

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"commerce-lake/internal/domain"
)

// Service composes the feature derivers and rollup builders per entity type
// and persists the enriched partition.
type Service struct {
	clean    domain.PartitionStore
	enriched domain.PartitionStore
	runs     domain.RunRepository // nil disables run history
	logger   *slog.Logger
}

// NewService creates an enrichment service reading clean partitions and
// writing enriched ones.
func NewService(clean, enriched domain.PartitionStore, runs domain.RunRepository, logger *slog.Logger) *Service {
	return &Service{clean: clean, enriched: enriched, runs: runs, logger: logger}
}

// AllResult reports which entity types an EnrichAll call processed.
type AllResult struct {
	Date     time.Time           `json:"date"`
	Enriched []domain.EntityType `json:"enriched"`
	Skipped  []domain.EntityType `json:"skipped"`
}

// Enrich reads the clean partition for (entity, day), applies the entity's
// derivation pipeline, and writes the enriched partition. A missing input
// partition yields a NotFoundError; deriver failures yield a
// ComputationError. Every attempt is recorded in the run history.
func (s *Service) Enrich(ctx context.Context, entity domain.EntityType, day time.Time) (*domain.Table, error) {
	var transform func(*domain.Table) (*domain.Table, error)
	switch entity {
	case domain.EntityOrders:
		transform = enrichOrdersTable
	case domain.EntityClients:
		transform = enrichClientsTable
	case domain.EntityProducts:
		transform = enrichProductsTable
	default:
		return nil, domain.ErrValidation("entity type %q cannot be enriched", entity)
	}

	run := &domain.EnrichmentRun{
		ID:        uuid.NewString(),
		Entity:    entity,
		Date:      day,
		Status:    domain.RunRunning,
		StartedAt: time.Now().UTC(),
	}
	s.recordStart(ctx, run)

	in, err := s.clean.Read(ctx, entity, day)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			s.recordFinish(ctx, run.ID, domain.RunSkipped, 0, 0, err.Error())
		} else {
			s.recordFinish(ctx, run.ID, domain.RunFailed, 0, 0, err.Error())
		}
		return nil, err
	}

	out, err := transform(in)
	if err != nil {
		s.logger.Error("enrichment failed",
			"entity", entity, "date", day.Format("2006-01-02"), "error", err)
		s.recordFinish(ctx, run.ID, domain.RunFailed, 0, 0, err.Error())
		return nil, err
	}

	if err := s.enriched.Write(ctx, entity, day, out); err != nil {
		s.recordFinish(ctx, run.ID, domain.RunFailed, 0, 0, err.Error())
		return nil, err
	}

	s.recordFinish(ctx, run.ID, domain.RunSucceeded, out.Len(), len(out.Columns()), "")
	s.logger.Info("partition enriched",
		"entity", entity,
		"date", day.Format("2006-01-02"),
		"rows", out.Len(),
		"columns", len(out.Columns()),
	)
	return out, nil
}

// EnrichAll enriches all primary entity types for one day. A missing clean
// partition for one type is logged and skipped; any other failure aborts
// the whole operation for that date.
func (s *Service) EnrichAll(ctx context.Context, day time.Time) (AllResult, error) {
	res := AllResult{Date: day}
	for _, entity := range domain.PrimaryEntityTypes() {
		_, err := s.Enrich(ctx, entity, day)
		if err != nil {
			var notFound *domain.NotFoundError
			if errors.As(err, &notFound) {
				s.logger.Warn("clean partition missing, skipping",
					"entity", entity, "date", day.Format("2006-01-02"))
				res.Skipped = append(res.Skipped, entity)
				continue
			}
			return res, err
		}
		res.Enriched = append(res.Enriched, entity)
	}
	return res, nil
}

// enrichOrdersTable runs the order pipeline: temporal features, price
// categories, quantity metrics, revenue features, then the customer and
// product rollup joins.
func enrichOrdersTable(t *domain.Table) (*domain.Table, error) {
	out, err := AddTemporalFeatures(t, "order_date")
	if err != nil {
		return nil, err
	}
	if out, err = AddPriceCategories(out, "price"); err != nil {
		return nil, err
	}
	if out, err = AddQuantityMetrics(out); err != nil {
		return nil, err
	}
	if out, err = addOrderRevenueFeatures(out); err != nil {
		return nil, err
	}
	if out, err = AddCustomerInsights(out); err != nil {
		return nil, err
	}
	return AddProductInsights(out)
}

func enrichClientsTable(t *domain.Table) (*domain.Table, error) {
	out, err := AddTemporalFeatures(t, "registration_date")
	if err != nil {
		return nil, err
	}
	return addEmailFeatures(out), nil
}

func enrichProductsTable(t *domain.Table) (*domain.Table, error) {
	out, err := AddPriceCategories(t, "price")
	if err != nil {
		return nil, err
	}
	return addProductNameFeatures(out), nil
}

func (s *Service) recordStart(ctx context.Context, run *domain.EnrichmentRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Create(ctx, run); err != nil {
		s.logger.Warn("record run start failed", "run", run.ID, "error", err)
	}
}

func (s *Service) recordFinish(ctx context.Context, id string, status domain.RunStatus, rows, cols int, errMsg string) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Finish(ctx, id, status, rows, cols, errMsg); err != nil {
		s.logger.Warn("record run finish failed", "run", id, "error", err)
	}
}
