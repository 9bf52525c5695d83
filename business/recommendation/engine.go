package recommendation

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"incotermFinder/business/incoterm"
	"incotermFinder/domain"
)

const (
	TopN       = 3
	MaxReasons = 4
)

var (
	ErrIncompleteInput = errors.New("incomplete wizard answers")
	ErrInvalidAnswer   = errors.New("invalid wizard answer")
	ErrUnknownQuestion = errors.New("unknown wizard question")
)

// match is the per-term tally before ranking.
type match struct {
	code    string
	score   int
	total   int
	reasons []string
}

func (m match) percentage() int {
	if m.total == 0 {
		return 0
	}
	return int(math.Round(float64(m.score) / float64(m.total) * 100))
}

// Score ranks every catalog term against a complete set of answers and returns the best TopN,
// highest match first. Equal percentages keep catalog order. Safe for concurrent use.
func Score(answers domain.WizardAnswer) ([]domain.Recommendation, error) {
	if err := Validate(answers); err != nil {
		return nil, err
	}

	return rank(scoreAll(answers))
}

// rank turns tallies into the final top TopN list, applying the reason cap and the key point
// fallback for entries that matched without a reason.
func rank(matches []match) ([]domain.Recommendation, error) {
	recs := make([]domain.Recommendation, 0, len(matches))
	for _, m := range matches {
		reasons := m.reasons
		if len(reasons) > MaxReasons {
			reasons = reasons[:MaxReasons]
		}
		recs = append(recs, domain.Recommendation{
			Code:            m.code,
			MatchPercentage: m.percentage(),
			Reasons:         reasons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})

	if len(recs) > TopN {
		recs = recs[:TopN]
	}

	for i := range recs {
		if len(recs[i].Reasons) == 0 {
			term, err := incoterm.ByCode(recs[i].Code)
			if err != nil {
				return nil, err
			}
			recs[i].Reasons = []string{term.KeyPoint}
		}
	}

	return recs, nil
}

// scoreAll tallies every term in catalog order.
func scoreAll(a domain.WizardAnswer) []match {
	terms := incoterm.All()
	out := make([]match, 0, len(terms))

	for _, term := range terms {
		attrs, ok := profiles[term.Code]
		if !ok {
			continue
		}

		m := match{code: term.Code, reasons: []string{}}

		if a.Transport != domain.AnswerNeutral {
			m.total++
			if slices.Contains(attrs.transportModes, a.Transport) {
				m.score++
				switch {
				case a.Transport == domain.TransportSea && term.TransportMode == domain.TransportModeSea:
					m.reasons = append(m.reasons, "Designed specifically for sea transport")
				case a.Transport != domain.TransportSea && term.TransportMode == domain.TransportModeAny:
					m.reasons = append(m.reasons, fmt.Sprintf("Works for %s transport", a.Transport))
				}
			}
		}

		if a.ShippingParty != domain.AnswerNeutral {
			m.total++
			if attrs.shippingParty == a.ShippingParty {
				m.score++
				if attrs.shippingParty == domain.PartySeller {
					m.reasons = append(m.reasons, "Seller arranges main carriage")
				} else {
					m.reasons = append(m.reasons, "Buyer controls shipping arrangements")
				}
			}
		}

		if a.Customs != domain.AnswerNeutral {
			m.total++
			if attrs.exportClearance == a.Customs {
				m.score++
				if attrs.exportClearance == domain.PartySeller {
					m.reasons = append(m.reasons, "Seller handles export clearance")
				} else {
					m.reasons = append(m.reasons, "Buyer handles export clearance")
				}
			}
		}

		if a.Insurance != domain.AnswerNeutral {
			m.total++
			if attrs.insuranceRequired == (a.Insurance == domain.InsuranceRequired) {
				m.score++
				if attrs.insuranceRequired {
					m.reasons = append(m.reasons, "Seller must provide insurance coverage")
				} else {
					m.reasons = append(m.reasons, "Flexible insurance arrangements")
				}
			}
		}

		// risk preference has no neutral option and always counts
		m.total++
		if attrs.riskTransfer == a.RiskPreference {
			m.score++
			switch attrs.riskTransfer {
			case domain.RiskEarly:
				m.reasons = append(m.reasons, "Risk transfers early, giving buyer control")
			case domain.RiskMiddle:
				m.reasons = append(m.reasons, "Balanced risk transfer point")
			case domain.RiskLate:
				m.reasons = append(m.reasons, "Seller bears most transit risk")
			}
		}

		out = append(out, m)
	}

	return out
}

// Validate reports ErrIncompleteInput naming every unset field, or ErrInvalidAnswer for a
// value outside the question's option set.
func Validate(a domain.WizardAnswer) error {
	var missing []string
	for _, q := range questions {
		v := AnswerFor(a, q.ID)
		if v == "" {
			missing = append(missing, q.ID)
			continue
		}
		if !slices.Contains(allowedAnswers[q.ID], v) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, q.ID, v)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteInput, strings.Join(missing, ", "))
	}

	return nil
}

// AnswerFor returns the stored value for a question id, or "" when unset or unknown.
func AnswerFor(a domain.WizardAnswer, questionID string) string {
	switch questionID {
	case domain.QuestionTransport:
		return a.Transport
	case domain.QuestionShippingParty:
		return a.ShippingParty
	case domain.QuestionCustoms:
		return a.Customs
	case domain.QuestionInsurance:
		return a.Insurance
	case domain.QuestionRiskPreference:
		return a.RiskPreference
	}
	return ""
}

// WithAnswer returns a copy of a with one question answered.
func WithAnswer(a domain.WizardAnswer, questionID, value string) (domain.WizardAnswer, error) {
	allowed, ok := allowedAnswers[questionID]
	if !ok {
		return a, fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	if !slices.Contains(allowed, value) {
		return a, fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, questionID, value)
	}

	switch questionID {
	case domain.QuestionTransport:
		a.Transport = value
	case domain.QuestionShippingParty:
		a.ShippingParty = value
	case domain.QuestionCustoms:
		a.Customs = value
	case domain.QuestionInsurance:
		a.Insurance = value
	case domain.QuestionRiskPreference:
		a.RiskPreference = value
	}

	return a, nil
}
