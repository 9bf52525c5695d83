package recommendation

import "incotermFinder/domain"

var questions = []domain.WizardQuestion{
	{
		ID:       domain.QuestionTransport,
		Question: "What mode of transport will you primarily use?",
		HelpText: "Sea-only Incoterms (FAS, FOB, CFR, CIF) can only be used for ocean/sea shipping.",
		Options: []domain.WizardOption{
			{Value: domain.TransportSea, Label: "Sea/Ocean shipping", Description: "Container ships, bulk carriers, tankers"},
			{Value: domain.TransportAir, Label: "Air freight", Description: "Cargo planes, express air services"},
			{Value: domain.TransportLand, Label: "Road/Rail", Description: "Trucks, trains, or combination"},
			{Value: domain.TransportMulti, Label: "Multiple modes", Description: "Combination of sea, air, and/or land"},
		},
	},
	{
		ID:       domain.QuestionShippingParty,
		Question: "Who should arrange the main transportation?",
		HelpText: "This determines whether the seller or buyer is responsible for booking and paying for the main carriage.",
		Options: []domain.WizardOption{
			{Value: domain.PartySeller, Label: "The Seller", Description: "Seller books freight, often better rates"},
			{Value: domain.PartyBuyer, Label: "The Buyer", Description: "Buyer controls shipping, uses own forwarder"},
			{Value: domain.AnswerNeutral, Label: "Not sure / Either", Description: "Open to either arrangement"},
		},
	},
	{
		ID:       domain.QuestionCustoms,
		Question: "Who should handle export customs clearance?",
		HelpText: "Export clearance happens in the seller's country. Usually the seller handles this as they know local requirements.",
		Options: []domain.WizardOption{
			{Value: domain.PartySeller, Label: "The Seller", Description: "Standard practice for most international sales"},
			{Value: domain.PartyBuyer, Label: "The Buyer", Description: "Only practical if buyer has presence in seller's country"},
			{Value: domain.AnswerNeutral, Label: "Not sure", Description: "Recommend seller handles export clearance"},
		},
	},
	{
		ID:       domain.QuestionInsurance,
		Question: "Should the seller be required to provide cargo insurance?",
		HelpText: "CIF and CIP require seller to provide insurance. Other terms leave insurance optional.",
		Options: []domain.WizardOption{
			{Value: domain.InsuranceRequired, Label: "Yes, include insurance", Description: "Seller must provide transit insurance"},
			{Value: domain.InsuranceOptional, Label: "No, I'll arrange my own", Description: "Buyer arranges insurance if needed"},
			{Value: domain.AnswerNeutral, Label: "Not sure", Description: "Consider your risk tolerance"},
		},
	},
	{
		ID:       domain.QuestionRiskPreference,
		Question: "When should risk transfer from seller to buyer?",
		HelpText: "Early transfer means buyer bears more transit risk. Late transfer means seller bears more risk.",
		Options: []domain.WizardOption{
			{Value: domain.RiskEarly, Label: "As early as possible", Description: "Buyer takes risk from pickup/port"},
			{Value: domain.RiskMiddle, Label: "Somewhere in transit", Description: "Risk transfers at origin but seller pays freight"},
			{Value: domain.RiskLate, Label: "As late as possible", Description: "Seller bears risk until destination"},
		},
	},
}

// allowedAnswers lists every value the engine accepts per question. Transport has no neutral
// option in the wizard but callers outside it may still pass one.
var allowedAnswers = map[string][]string{
	domain.QuestionTransport:      {domain.TransportSea, domain.TransportAir, domain.TransportLand, domain.TransportMulti, domain.AnswerNeutral},
	domain.QuestionShippingParty:  {domain.PartySeller, domain.PartyBuyer, domain.AnswerNeutral},
	domain.QuestionCustoms:        {domain.PartySeller, domain.PartyBuyer, domain.AnswerNeutral},
	domain.QuestionInsurance:      {domain.InsuranceRequired, domain.InsuranceOptional, domain.AnswerNeutral},
	domain.QuestionRiskPreference: {domain.RiskEarly, domain.RiskMiddle, domain.RiskLate},
}

// Questions returns the wizard questions in the order they are asked.
func Questions() []domain.WizardQuestion {
	out := make([]domain.WizardQuestion, len(questions))
	copy(out, questions)
	return out
}

func QuestionCount() int {
	return len(questions)
}
