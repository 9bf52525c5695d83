package recommendation

import (
	"net/url"
	"strings"

	"incotermFinder/domain"
)

// Short query keys used by shareable result links.
const (
	ParamTransport      = "t"
	ParamShippingParty  = "s"
	ParamCustoms        = "c"
	ParamInsurance      = "i"
	ParamRiskPreference = "r"
)

// ParseParams reads answers from query values. Absent keys stay unset; Validate decides
// whether the result is usable.
func ParseParams(values url.Values) domain.WizardAnswer {
	get := func(key string) string {
		return strings.ToLower(strings.TrimSpace(values.Get(key)))
	}

	return domain.WizardAnswer{
		Transport:      get(ParamTransport),
		ShippingParty:  get(ParamShippingParty),
		Customs:        get(ParamCustoms),
		Insurance:      get(ParamInsurance),
		RiskPreference: get(ParamRiskPreference),
	}
}

// EncodeParams is the inverse of ParseParams; unset answers are omitted.
func EncodeParams(a domain.WizardAnswer) string {
	values := url.Values{}
	set := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}

	set(ParamTransport, a.Transport)
	set(ParamShippingParty, a.ShippingParty)
	set(ParamCustoms, a.Customs)
	set(ParamInsurance, a.Insurance)
	set(ParamRiskPreference, a.RiskPreference)

	return values.Encode()
}
