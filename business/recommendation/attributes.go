package recommendation

import "incotermFinder/domain"

// profile holds the attributes a term is matched on. Every catalog code has exactly one.
type profile struct {
	transportModes    []string
	shippingParty     string
	exportClearance   string
	insuranceRequired bool
	riskTransfer      string
}

var allModes = []string{domain.TransportAir, domain.TransportLand, domain.TransportMulti, domain.TransportSea}

var seaOnly = []string{domain.TransportSea}

var profiles = map[string]profile{
	"EXW": {allModes, domain.PartyBuyer, domain.PartyBuyer, false, domain.RiskEarly},
	"FCA": {allModes, domain.PartyBuyer, domain.PartySeller, false, domain.RiskEarly},
	"CPT": {allModes, domain.PartySeller, domain.PartySeller, false, domain.RiskMiddle},
	"CIP": {allModes, domain.PartySeller, domain.PartySeller, true, domain.RiskMiddle},
	"DAP": {allModes, domain.PartySeller, domain.PartySeller, false, domain.RiskLate},
	"DPU": {allModes, domain.PartySeller, domain.PartySeller, false, domain.RiskLate},
	"DDP": {allModes, domain.PartySeller, domain.PartySeller, false, domain.RiskLate},
	"FAS": {seaOnly, domain.PartyBuyer, domain.PartySeller, false, domain.RiskEarly},
	"FOB": {seaOnly, domain.PartyBuyer, domain.PartySeller, false, domain.RiskEarly},
	"CFR": {seaOnly, domain.PartySeller, domain.PartySeller, false, domain.RiskMiddle},
	"CIF": {seaOnly, domain.PartySeller, domain.PartySeller, true, domain.RiskMiddle},
}
