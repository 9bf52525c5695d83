package incoterm

import "incotermFinder/domain"

// table is the fixed catalog order. Recommendation ties are broken by this order, so entries
// must not be reordered.
var table = []domain.Incoterm{
	// any mode
	{
		Code:          "EXW",
		FullName:      "Ex Works",
		TransportMode: domain.TransportModeAny,
		KeyPoint:      "Minimum seller obligation - buyer takes all risk from seller's premises",
		Description:   "Ex Works means the seller delivers when it places the goods at the disposal of the buyer at the seller's premises or another named place (works, factory, warehouse, etc.). The seller does not need to load the goods on any collecting vehicle, nor does it need to clear the goods for export, where such clearance is applicable.",
		WhenToUse: []string{
			"When buyer has strong logistics capabilities in seller's country",
			"For domestic transactions where export is not involved",
			"When buyer wants maximum control over shipping",
			"When seller has limited export experience",
		},
		CommonMistakes: []string{
			"Seller failing to assist with export clearance when needed",
			"Buyer underestimating logistics complexity in foreign country",
			"Not clarifying who loads goods onto transport vehicle",
			"Using for international trade without proper export documentation",
		},
		RiskTransferPoint: 5,
		CostTransferPoint: 5,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "exw-s1", Label: "Packaging", Description: "Package goods appropriately for collection"},
			{ID: "exw-s2", Label: "Marking", Description: "Mark goods for identification"},
			{ID: "exw-s3", Label: "Notice", Description: "Notify buyer when goods are available"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "exw-b1", Label: "Collection", Description: "Collect goods from seller's premises"},
			{ID: "exw-b2", Label: "Loading", Description: "Load goods onto transport vehicle"},
			{ID: "exw-b3", Label: "Export Clearance", Description: "Handle all export formalities"},
			{ID: "exw-b4", Label: "Main Carriage", Description: "Arrange and pay for all transportation"},
			{ID: "exw-b5", Label: "Import Clearance", Description: "Handle all import formalities"},
			{ID: "exw-b6", Label: "Duties & Taxes", Description: "Pay all duties and taxes"},
			{ID: "exw-b7", Label: "Insurance", Description: "Arrange insurance if desired"},
		},
	},
	{
		Code:          "FCA",
		FullName:      "Free Carrier",
		TransportMode: domain.TransportModeAny,
		KeyPoint:      "Seller delivers to carrier at named place - most versatile term",
		Description:   "Free Carrier means the seller delivers the goods to the carrier or another person nominated by the buyer at the seller's premises or another named place. The parties are well advised to specify as clearly as possible the point within the named place of delivery, as risk passes to the buyer at that point.",
		WhenToUse: []string{
			"For containerized cargo and multimodal transport",
			"When goods are delivered to a terminal or transport hub",
			"As a modern replacement for FOB when not using sea transport",
			"When buyer nominates their own carrier",
		},
		CommonMistakes: []string{
			"Not specifying exact delivery point clearly",
			"Confusion about loading responsibilities at different locations",
			"Using FOB when FCA is more appropriate for containers",
			"Not obtaining on-board bill of lading when required for letter of credit",
		},
		RiskTransferPoint: 15,
		CostTransferPoint: 15,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "fca-s1", Label: "Packaging", Description: "Package goods for transport"},
			{ID: "fca-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "fca-s3", Label: "Delivery", Description: "Deliver to carrier at named place"},
			{ID: "fca-s4", Label: "Loading (at premises)", Description: "Load onto carrier if at seller's premises"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "fca-b1", Label: "Main Carriage", Description: "Arrange and pay for main transport"},
			{ID: "fca-b2", Label: "Unloading (at premises)", Description: "Unload if delivered at seller's premises"},
			{ID: "fca-b3", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "fca-b4", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "fca-b5", Label: "Insurance", Description: "Arrange insurance if desired"},
		},
	},
	{
		Code:          "CPT",
		FullName:      "Carriage Paid To",
		TransportMode: domain.TransportModeAny,
		KeyPoint:      "Seller pays for carriage but risk transfers at handover to first carrier",
		Description:   "Carriage Paid To means the seller delivers the goods to the carrier or another person nominated by the seller at an agreed place and that the seller must contract for and pay the costs of carriage necessary to bring the goods to the named place of destination. Risk transfers when goods are handed to the first carrier.",
		WhenToUse: []string{
			"When seller can negotiate better freight rates",
			"For multimodal transport to inland destinations",
			"When buyer wants delivered pricing but accepts transit risk",
			"As CFR equivalent for non-sea shipments",
		},
		CommonMistakes: []string{
			"Confusing risk transfer point with delivery point",
			"Buyer not arranging insurance for transit",
			"Not specifying destination clearly",
			"Assuming seller bears risk until destination",
		},
		RiskTransferPoint: 20,
		CostTransferPoint: 75,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "cpt-s1", Label: "Packaging", Description: "Package goods for transport"},
			{ID: "cpt-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "cpt-s3", Label: "Main Carriage", Description: "Contract and pay for carriage to destination"},
			{ID: "cpt-s4", Label: "Delivery", Description: "Deliver to first carrier"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "cpt-b1", Label: "Risk from Handover", Description: "Bear risk from handover to first carrier"},
			{ID: "cpt-b2", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "cpt-b3", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "cpt-b4", Label: "Insurance", Description: "Arrange insurance (recommended)"},
			{ID: "cpt-b5", Label: "Unloading", Description: "Unload at destination"},
		},
	},
	{
		Code:          "CIP",
		FullName:      "Carriage and Insurance Paid To",
		TransportMode: domain.TransportModeAny,
		KeyPoint:      "Like CPT but seller must provide insurance coverage",
		Description:   "Carriage and Insurance Paid To means the seller delivers the goods to the carrier, pays for carriage to the named destination, and must obtain insurance against the buyer's risk of loss or damage during carriage. Under Incoterms 2020, CIP requires 'all risks' insurance coverage (ICC A or equivalent).",
		WhenToUse: []string{
			"When buyer requires seller to provide insurance",
			"For high-value goods requiring comprehensive coverage",
			"When seller can obtain better insurance rates",
			"As CIF equivalent for non-sea transport",
		},
		CommonMistakes: []string{
			"Not providing adequate insurance coverage level",
			"Confusion about who benefits from insurance claim",
			"Not understanding ICC A vs ICC C coverage requirements",
			"Forgetting insurance is minimum only - buyer may need more",
		},
		RiskTransferPoint: 20,
		CostTransferPoint: 80,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "cip-s1", Label: "Packaging", Description: "Package goods for transport"},
			{ID: "cip-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "cip-s3", Label: "Main Carriage", Description: "Contract and pay for carriage to destination"},
			{ID: "cip-s4", Label: "Insurance", Description: "Obtain 'all risks' insurance (ICC A or equivalent)"},
			{ID: "cip-s5", Label: "Delivery", Description: "Deliver to first carrier"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "cip-b1", Label: "Risk from Handover", Description: "Bear risk from handover to first carrier"},
			{ID: "cip-b2", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "cip-b3", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "cip-b4", Label: "Unloading", Description: "Unload at destination"},
		},
	},
	{
		Code:          "DAP",
		FullName:      "Delivered at Place",
		TransportMode: domain.TransportModeAny,
		KeyPoint:      "Seller delivers ready for unloading at named destination",
		Description:   "Delivered at Place means the seller delivers when the goods are placed at the disposal of the buyer on the arriving means of transport ready for unloading at the named place of destination. The seller bears all risks involved in bringing the goods to the named place. Buyer handles import clearance.",
		WhenToUse: []string{
			"When seller wants to control delivery to final destination",
			"For door-to-door delivery without import clearance",
			"When buyer cannot handle import formalities",
			"For destinations where seller has logistics presence",
		},
		CommonMistakes: []string{
			"Seller not accounting for delays at destination",
			"Not clarifying exact delivery address",
			"Confusion about who unloads the goods",
			"Not considering import clearance delays affecting delivery",
		},
		RiskTransferPoint: 90,
		CostTransferPoint: 85,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "dap-s1", Label: "Packaging", Description: "Package goods for transport"},
			{ID: "dap-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "dap-s3", Label: "Main Carriage", Description: "Arrange and pay for all transport"},
			{ID: "dap-s4", Label: "Delivery", Description: "Deliver to named place ready for unloading"},
			{ID: "dap-s5", Label: "Transit Risk", Description: "Bear all transit risks"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "dap-b1", Label: "Unloading", Description: "Unload goods from arriving vehicle"},
			{ID: "dap-b2", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "dap-b3", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
		},
	},
	{
		Code:          "DPU",
		FullName:      "Delivered at Place Unloaded",
		TransportMode: domain.TransportModeAny,
		KeyPoint:      "Seller delivers and unloads at named destination",
		Description:   "Delivered at Place Unloaded means the seller delivers when the goods, once unloaded from the arriving means of transport, are placed at the disposal of the buyer at a named place of destination. The seller bears all risks involved in bringing the goods to and unloading them at the named place. This is the only Incoterm requiring seller to unload.",
		WhenToUse: []string{
			"When seller has capability to unload at destination",
			"For deliveries to terminals or warehouses",
			"When buyer cannot arrange unloading equipment",
			"For bulk cargo requiring specialized unloading",
		},
		CommonMistakes: []string{
			"Not having unloading equipment at destination",
			"Underestimating unloading costs and time",
			"Not specifying exact unloading point",
			"Using when buyer has better unloading facilities",
		},
		RiskTransferPoint: 92,
		CostTransferPoint: 88,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "dpu-s1", Label: "Packaging", Description: "Package goods for transport"},
			{ID: "dpu-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "dpu-s3", Label: "Main Carriage", Description: "Arrange and pay for all transport"},
			{ID: "dpu-s4", Label: "Unloading", Description: "Unload goods at destination"},
			{ID: "dpu-s5", Label: "Delivery", Description: "Place unloaded goods at buyer's disposal"},
			{ID: "dpu-s6", Label: "Transit Risk", Description: "Bear all risks until unloaded"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "dpu-b1", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "dpu-b2", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "dpu-b3", Label: "Onward Transport", Description: "Arrange any further transport"},
		},
	},
	{
		Code:          "DDP",
		FullName:      "Delivered Duty Paid",
		TransportMode: domain.TransportModeAny,
		KeyPoint:      "Maximum seller obligation - seller delivers cleared for import",
		Description:   "Delivered Duty Paid means the seller delivers the goods when the goods are placed at the disposal of the buyer, cleared for import on the arriving means of transport ready for unloading at the named place of destination. The seller bears all the costs and risks involved in bringing the goods to the place of destination and has an obligation to clear the goods for import and pay any duty.",
		WhenToUse: []string{
			"When seller wants to provide complete door-to-door service",
			"For e-commerce and consumer goods deliveries",
			"When buyer cannot or will not handle import formalities",
			"When seller has import capability in destination country",
		},
		CommonMistakes: []string{
			"Seller not registered for import in destination country",
			"Underestimating import duties and taxes",
			"Not understanding VAT/GST recovery implications",
			"Using when buyer could recover import VAT but seller cannot",
		},
		RiskTransferPoint: 95,
		CostTransferPoint: 95,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "ddp-s1", Label: "Packaging", Description: "Package goods for transport"},
			{ID: "ddp-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "ddp-s3", Label: "Main Carriage", Description: "Arrange and pay for all transport"},
			{ID: "ddp-s4", Label: "Import Clearance", Description: "Clear goods for import"},
			{ID: "ddp-s5", Label: "Duties & Taxes", Description: "Pay all import duties and taxes"},
			{ID: "ddp-s6", Label: "Delivery", Description: "Deliver to named place ready for unloading"},
			{ID: "ddp-s7", Label: "All Risks", Description: "Bear all risks until delivery"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "ddp-b1", Label: "Unloading", Description: "Unload goods from arriving vehicle"},
			{ID: "ddp-b2", Label: "Receipt", Description: "Take delivery of goods"},
		},
	},

	// sea only
	{
		Code:          "FAS",
		FullName:      "Free Alongside Ship",
		TransportMode: domain.TransportModeSea,
		KeyPoint:      "Seller delivers alongside vessel at port - sea transport only",
		Description:   "Free Alongside Ship means the seller delivers when the goods are placed alongside the vessel nominated by the buyer at the named port of shipment. The risk of loss or damage to the goods passes when the goods are alongside the ship. The buyer bears all costs and risks from that moment.",
		WhenToUse: []string{
			"For bulk cargo loaded directly onto ships",
			"When buyer wants control over loading onto vessel",
			"For goods requiring specialized loading equipment",
			"When buyer has charter party or vessel booking",
		},
		CommonMistakes: []string{
			"Using for containerized cargo (use FCA instead)",
			"Not specifying exact delivery point at port",
			"Confusion about who pays for port handling",
			"Not clarifying 'alongside' location precisely",
		},
		RiskTransferPoint: 25,
		CostTransferPoint: 25,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "fas-s1", Label: "Packaging", Description: "Package goods for sea transport"},
			{ID: "fas-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "fas-s3", Label: "Delivery", Description: "Deliver goods alongside vessel"},
			{ID: "fas-s4", Label: "Pre-carriage", Description: "Transport to port of shipment"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "fas-b1", Label: "Loading", Description: "Load goods onto vessel"},
			{ID: "fas-b2", Label: "Main Carriage", Description: "Arrange and pay for sea freight"},
			{ID: "fas-b3", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "fas-b4", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "fas-b5", Label: "Insurance", Description: "Arrange insurance if desired"},
		},
	},
	{
		Code:          "FOB",
		FullName:      "Free On Board",
		TransportMode: domain.TransportModeSea,
		KeyPoint:      "Seller delivers on board vessel - most common sea term",
		Description:   "Free On Board means the seller delivers the goods on board the vessel nominated by the buyer at the named port of shipment. The risk of loss or damage to the goods passes when the goods are on board the vessel, and the buyer bears all costs from that moment. FOB is appropriate only for sea or inland waterway transport.",
		WhenToUse: []string{
			"For bulk cargo and non-containerized goods via sea",
			"When buyer has vessel or freight arrangements",
			"For traditional commodity trading",
			"When buyer wants control over main sea carriage",
		},
		CommonMistakes: []string{
			"Using for containerized cargo (use FCA instead)",
			"Assuming FOB works for air freight (it doesn't)",
			"Not understanding 'on board' means crossing ship's rail",
			"Using for multimodal transport",
		},
		RiskTransferPoint: 30,
		CostTransferPoint: 30,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "fob-s1", Label: "Packaging", Description: "Package goods for sea transport"},
			{ID: "fob-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "fob-s3", Label: "Delivery", Description: "Deliver goods on board vessel"},
			{ID: "fob-s4", Label: "Pre-carriage", Description: "Transport to port of shipment"},
			{ID: "fob-s5", Label: "Loading", Description: "Load goods onto vessel"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "fob-b1", Label: "Main Carriage", Description: "Arrange and pay for sea freight"},
			{ID: "fob-b2", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "fob-b3", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "fob-b4", Label: "Insurance", Description: "Arrange insurance if desired"},
			{ID: "fob-b5", Label: "Unloading", Description: "Unload at destination port"},
		},
	},
	{
		Code:          "CFR",
		FullName:      "Cost and Freight",
		TransportMode: domain.TransportModeSea,
		KeyPoint:      "Seller pays freight but risk transfers on board at origin port",
		Description:   "Cost and Freight means the seller delivers the goods on board the vessel at the port of shipment. The seller must contract for and pay the costs and freight necessary to bring the goods to the named port of destination. However, risk transfers when goods are on board at origin, not at destination.",
		WhenToUse: []string{
			"When seller can negotiate better sea freight rates",
			"For delivered pricing via sea without insurance",
			"When buyer will arrange own insurance",
			"For commodity trades with CFR pricing convention",
		},
		CommonMistakes: []string{
			"Assuming seller bears risk until destination",
			"Buyer not arranging marine insurance",
			"Using for containerized cargo (use CPT instead)",
			"Not understanding the split between cost and risk points",
		},
		RiskTransferPoint: 30,
		CostTransferPoint: 75,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "cfr-s1", Label: "Packaging", Description: "Package goods for sea transport"},
			{ID: "cfr-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "cfr-s3", Label: "Delivery", Description: "Deliver goods on board vessel"},
			{ID: "cfr-s4", Label: "Loading", Description: "Load goods onto vessel"},
			{ID: "cfr-s5", Label: "Main Carriage", Description: "Contract and pay for sea freight to destination"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "cfr-b1", Label: "Risk from Loading", Description: "Bear risk once goods are on board"},
			{ID: "cfr-b2", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "cfr-b3", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "cfr-b4", Label: "Insurance", Description: "Arrange marine insurance (recommended)"},
			{ID: "cfr-b5", Label: "Unloading", Description: "Unload at destination port"},
		},
	},
	{
		Code:          "CIF",
		FullName:      "Cost, Insurance and Freight",
		TransportMode: domain.TransportModeSea,
		KeyPoint:      "Like CFR but seller must provide marine insurance",
		Description:   "Cost, Insurance and Freight means the seller delivers the goods on board the vessel at the port of shipment. The seller must contract for and pay the costs, freight, and insurance to bring the goods to the named port of destination. Under Incoterms 2020, CIF requires minimum insurance (ICC C or equivalent). Risk still transfers on board at origin.",
		WhenToUse: []string{
			"When buyer requires seller to provide insurance",
			"For international sea trade with insurance requirement",
			"When seller can obtain competitive insurance rates",
			"For letter of credit transactions requiring CIF pricing",
		},
		CommonMistakes: []string{
			"Assuming seller bears risk until destination",
			"Not understanding ICC C is minimum coverage only",
			"Buyer not arranging additional insurance if needed",
			"Using for containerized cargo (use CIP instead)",
		},
		RiskTransferPoint: 30,
		CostTransferPoint: 80,
		SellerResponsibilities: []domain.Responsibility{
			{ID: "cif-s1", Label: "Packaging", Description: "Package goods for sea transport"},
			{ID: "cif-s2", Label: "Export Clearance", Description: "Clear goods for export"},
			{ID: "cif-s3", Label: "Delivery", Description: "Deliver goods on board vessel"},
			{ID: "cif-s4", Label: "Loading", Description: "Load goods onto vessel"},
			{ID: "cif-s5", Label: "Main Carriage", Description: "Contract and pay for sea freight to destination"},
			{ID: "cif-s6", Label: "Insurance", Description: "Obtain minimum insurance coverage (ICC C)"},
		},
		BuyerResponsibilities: []domain.Responsibility{
			{ID: "cif-b1", Label: "Risk from Loading", Description: "Bear risk once goods are on board"},
			{ID: "cif-b2", Label: "Import Clearance", Description: "Handle import formalities"},
			{ID: "cif-b3", Label: "Duties & Taxes", Description: "Pay import duties and taxes"},
			{ID: "cif-b4", Label: "Unloading", Description: "Unload at destination port"},
		},
	},
}
