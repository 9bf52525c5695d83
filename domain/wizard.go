package domain

// Answer values. The empty string means the question has not been answered yet.
const (
	AnswerNeutral = "neutral"

	TransportSea   = "sea"
	TransportAir   = "air"
	TransportLand  = "land"
	TransportMulti = "multi"

	PartySeller = "seller"
	PartyBuyer  = "buyer"

	InsuranceRequired = "required"
	InsuranceOptional = "optional"

	RiskEarly  = "early"
	RiskMiddle = "middle"
	RiskLate   = "late"
)

// Question ids, in the order the wizard asks them.
const (
	QuestionTransport      = "transport"
	QuestionShippingParty  = "shippingParty"
	QuestionCustoms        = "customs"
	QuestionInsurance      = "insurance"
	QuestionRiskPreference = "riskPreference"
)

type WizardAnswer struct {
	Transport      string `json:"transport"`
	ShippingParty  string `json:"shipping_party"`
	Customs        string `json:"customs"`
	Insurance      string `json:"insurance"`
	RiskPreference string `json:"risk_preference"`
}

type Recommendation struct {
	Code            string   `json:"code"`
	MatchPercentage int      `json:"match_percentage"`
	Reasons         []string `json:"reasons"`
}

type WizardOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type WizardQuestion struct {
	ID       string         `json:"id"`
	Question string         `json:"question"`
	HelpText string         `json:"help_text"`
	Options  []WizardOption `json:"options"`
}
