package recommendation

import (
	"context"
	"errors"
	"fmt"

	"incotermFinder/domain"
	"incotermFinder/pkg/logger"
)

type recommendationService struct{}

func NewRecommendationService() *recommendationService {
	return &recommendationService{}
}

func (s *recommendationService) Recommend(ctx context.Context, answers domain.WizardAnswer) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		RecommendRequestsTotal.WithLabelValues(outcomeError).Inc()
		return nil, fmt.Errorf("context error: %w", err)
	}

	tid := TraceIDFromContext(ctx)

	recs, err := Score(answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncompleteInput):
			RecommendRequestsTotal.WithLabelValues(outcomeIncomplete).Inc()
		case errors.Is(err, ErrInvalidAnswer):
			RecommendRequestsTotal.WithLabelValues(outcomeInvalid).Inc()
		default:
			RecommendRequestsTotal.WithLabelValues(outcomeError).Inc()
		}
		logger.Warn("incoterm_recommend_rejected", "trace_id", tid, "error", err)
		return nil, err
	}

	RecommendRequestsTotal.WithLabelValues(outcomeOK).Inc()
	if len(recs) > 0 {
		TopRecommendationTotal.WithLabelValues(recs[0].Code).Inc()
	}

	logger.Debug("incoterm_recommend",
		"trace_id", tid,
		"transport", answers.Transport,
		"shipping_party", answers.ShippingParty,
		"customs", answers.Customs,
		"insurance", answers.Insurance,
		"risk_preference", answers.RiskPreference,
		"result_count", len(recs),
	)

	return recs, nil
}

func (s *recommendationService) GetQuestions(ctx context.Context) ([]domain.WizardQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return Questions(), nil
}
