package recommendation

import (
	"context"
	"testing"

	"incotermFinder/domain"
	"incotermFinder/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetNop()
	m.Run()
}

func TestRecommendationService_Recommend(t *testing.T) {
	svc := NewRecommendationService()
	ctx := ContextWithTraceID(context.Background(), "trace-1")

	okBefore := testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(outcomeOK))
	topBefore := testutil.ToFloat64(TopRecommendationTotal.WithLabelValues("DAP"))

	recs, err := svc.Recommend(ctx, domain.WizardAnswer{
		Transport:      domain.AnswerNeutral,
		ShippingParty:  domain.AnswerNeutral,
		Customs:        domain.AnswerNeutral,
		Insurance:      domain.AnswerNeutral,
		RiskPreference: domain.RiskLate,
	})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "DAP", recs[0].Code)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(outcomeOK)))
	assert.Equal(t, topBefore+1, testutil.ToFloat64(TopRecommendationTotal.WithLabelValues("DAP")))
}

func TestRecommendationService_Incomplete(t *testing.T) {
	svc := NewRecommendationService()

	before := testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(outcomeIncomplete))

	recs, err := svc.Recommend(context.Background(), domain.WizardAnswer{Transport: domain.TransportSea})
	assert.ErrorIs(t, err, ErrIncompleteInput)
	assert.Nil(t, recs)
	assert.Equal(t, before+1, testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(outcomeIncomplete)))
}

func TestRecommendationService_CancelledContext(t *testing.T) {
	svc := NewRecommendationService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recommend(ctx, domain.WizardAnswer{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.GetQuestions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendationService_GetQuestions(t *testing.T) {
	qs, err := NewRecommendationService().GetQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 5)

	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
		assert.NotEmpty(t, q.Options, q.ID)
	}
	assert.Equal(t, []string{"transport", "shippingParty", "customs", "insurance", "riskPreference"}, ids)
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	assert.Equal(t, "abc", TraceIDFromContext(ContextWithTraceID(context.Background(), "abc")))
}
