package incoterm

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"incotermFinder/domain"
)

var (
	ErrIncotermNotFound     = errors.New("incoterm not found")
	ErrInvalidTransportMode = errors.New("invalid transport mode")
	ErrInvalidComparison    = errors.New("compare needs between 2 and 4 incoterms")
)

const (
	MinCompare = 2
	MaxCompare = 4
)

// All returns the catalog in its fixed order.
func All() []domain.Incoterm {
	out := make([]domain.Incoterm, len(table))
	copy(out, table)
	return out
}

// Codes returns every code in catalog order.
func Codes() []string {
	out := make([]string, 0, len(table))
	for _, it := range table {
		out = append(out, it.Code)
	}
	return out
}

// ByCode looks a term up ignoring case.
func ByCode(code string) (domain.Incoterm, error) {
	code = strings.TrimSpace(code)
	for _, it := range table {
		if strings.EqualFold(it.Code, code) {
			return it, nil
		}
	}
	return domain.Incoterm{}, fmt.Errorf("%w: %q", ErrIncotermNotFound, code)
}

func ByTransportMode(mode domain.TransportMode) ([]domain.Incoterm, error) {
	if mode != domain.TransportModeSea && mode != domain.TransportModeAny {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransportMode, mode)
	}

	out := make([]domain.Incoterm, 0, len(table))
	for _, it := range table {
		if it.TransportMode == mode {
			out = append(out, it)
		}
	}
	return out, nil
}

type comparisonAttribute struct {
	key   string
	label string
	value func(domain.Incoterm) string
}

var comparisonAttributes = []comparisonAttribute{
	{"transportMode", "Transport Mode", func(i domain.Incoterm) string {
		if i.TransportMode == domain.TransportModeSea {
			return "Sea Only"
		}
		return "Any Mode"
	}},
	{"riskTransfer", "Risk Transfer Point", func(i domain.Incoterm) string {
		return strconv.Itoa(i.RiskTransferPoint) + "%"
	}},
	{"costTransfer", "Cost Transfer Point", func(i domain.Incoterm) string {
		return strconv.Itoa(i.CostTransferPoint) + "%"
	}},
	{"exportClearance", "Export Clearance", func(i domain.Incoterm) string {
		return partyIf(i.Code == "EXW", "Buyer", "Seller")
	}},
	{"importClearance", "Import Clearance", func(i domain.Incoterm) string {
		return partyIf(i.Code == "DDP", "Seller", "Buyer")
	}},
	{"mainCarriage", "Main Carriage", func(i domain.Incoterm) string {
		return partyIf(slices.Contains([]string{"EXW", "FCA", "FAS", "FOB"}, i.Code), "Buyer", "Seller")
	}},
	{"insurance", "Insurance Required", func(i domain.Incoterm) string {
		return partyIf(i.Code == "CIF" || i.Code == "CIP", "Yes (Seller)", "No (Optional)")
	}},
	{"unloading", "Unloading", func(i domain.Incoterm) string {
		return partyIf(i.Code == "DPU", "Seller", "Buyer")
	}},
}

func partyIf(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// Compare lays the given terms side by side, one row per attribute, values in argument order.
// Duplicate codes are collapsed before the count is checked.
func Compare(codes ...string) (domain.Comparison, error) {
	terms := make([]domain.Incoterm, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		it, err := ByCode(c)
		if err != nil {
			return domain.Comparison{}, err
		}
		if _, dup := seen[it.Code]; dup {
			continue
		}
		seen[it.Code] = struct{}{}
		terms = append(terms, it)
	}

	if len(terms) < MinCompare || len(terms) > MaxCompare {
		return domain.Comparison{}, fmt.Errorf("%w: got %d", ErrInvalidComparison, len(terms))
	}

	cmp := domain.Comparison{
		Codes: make([]string, 0, len(terms)),
		Rows:  make([]domain.ComparisonRow, 0, len(comparisonAttributes)),
	}
	for _, it := range terms {
		cmp.Codes = append(cmp.Codes, it.Code)
	}
	for _, attr := range comparisonAttributes {
		row := domain.ComparisonRow{Key: attr.key, Label: attr.label, Values: make([]string, 0, len(terms))}
		for _, it := range terms {
			row.Values = append(row.Values, attr.value(it))
		}
		cmp.Rows = append(cmp.Rows, row)
	}

	return cmp, nil
}
