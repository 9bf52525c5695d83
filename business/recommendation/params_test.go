package recommendation

import (
	"net/url"
	"testing"

	"incotermFinder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	values, err := url.ParseQuery("t=Sea&s=buyer&c=seller&i=optional&r=early")
	require.NoError(t, err)

	got := ParseParams(values)
	assert.Equal(t, domain.WizardAnswer{
		Transport:      "sea",
		ShippingParty:  "buyer",
		Customs:        "seller",
		Insurance:      "optional",
		RiskPreference: "early",
	}, got)
	assert.NoError(t, Validate(got))
}

func TestParseParams_Partial(t *testing.T) {
	values, err := url.ParseQuery("t=air&r=")
	require.NoError(t, err)

	got := ParseParams(values)
	assert.Equal(t, "air", got.Transport)
	assert.Empty(t, got.RiskPreference)
	assert.ErrorIs(t, Validate(got), ErrIncompleteInput)
}

func TestEncodeParams_RoundTrip(t *testing.T) {
	for _, a := range allAnswers() {
		values, err := url.ParseQuery(EncodeParams(a))
		require.NoError(t, err)
		assert.Equal(t, a, ParseParams(values))
	}
}

func TestEncodeParams_OmitsUnset(t *testing.T) {
	assert.Equal(t, "r=late&t=multi", EncodeParams(domain.WizardAnswer{Transport: "multi", RiskPreference: "late"}))
	assert.Empty(t, EncodeParams(domain.WizardAnswer{}))
}
