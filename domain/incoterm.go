package domain

type TransportMode string

const (
	TransportModeSea TransportMode = "sea"
	TransportModeAny TransportMode = "any"
)

type Responsibility struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Incoterm is one trade term of the static catalog. Records are never mutated after start-up.
type Incoterm struct {
	Code           string        `json:"code"`
	FullName       string        `json:"full_name"`
	TransportMode  TransportMode `json:"transport_mode"`
	KeyPoint       string        `json:"key_point"`
	Description    string        `json:"description"`
	WhenToUse      []string      `json:"when_to_use"`
	CommonMistakes []string      `json:"common_mistakes"`

	// 0-100 position on the delivery timeline
	RiskTransferPoint int `json:"risk_transfer_point"`
	CostTransferPoint int `json:"cost_transfer_point"`

	SellerResponsibilities []Responsibility `json:"seller_responsibilities"`
	BuyerResponsibilities  []Responsibility `json:"buyer_responsibilities"`
}

type ComparisonRow struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type Comparison struct {
	Codes []string        `json:"codes"`
	Rows  []ComparisonRow `json:"rows"`
}
