package priorart

var defaultReferences = []Reference{
	{
		ID:             "thiers",
		Name:           "Thiers",
		PatentNumber:   "9,019,698",
		Citation:       "U.S. Patent No. 9,019,698",
		Type:           TypePatent,
		FilingDate:     "2012-05-21",
		Relevance:      "Primary reference - protective case with dock interface assembly, magnetic coupling, alignment features",
		BaseConfidence: 92,
		Figures:        []string{"Fig. 3", "Fig. 5", "Fig. 9"},
		KeyTeachings: []string{
			"Case assembly with front cover and rear cover (Fig. 9)",
			"Dock interface assembly with contacts (Abstract)",
			"Internal wires connecting PCB to connector (10:52-57)",
			"Bumpers at corners for shock protection (9:34-40)",
			"Magnetic coupling between case and dock",
			"Alignment feature for docking (claim 1)",
		},
		ClaimElementsCovered: []string{
			"protective case/cover",
			"panel with exterior surface",
			"skirt surrounding panel",
			"male plug/connector",
			"contactors",
			"female nest",
			"docking system",
			"internal conductors/wires",
		},
	},
	{
		ID:             "supran-408",
		Name:           "Supran '408",
		PatentNumber:   "8,553,408",
		Citation:       "U.S. Patent No. 8,553,408",
		Type:           TypePatent,
		FilingDate:     "2011-09-06",
		Relevance:      "Protective sleeve with conductive charging, conductive ring contacts, indentations for alignment",
		BaseConfidence: 90,
		Figures:        []string{"Fig. 10", "Fig. 13", "Fig. 15"},
		KeyTeachings: []string{
			"Form-fitted sleeve for mobile device (7:33-36)",
			"Conductive ring 42 with indentations 41 (14:30-33)",
			"Sleeve provides protection (9:58-67)",
			"Mating connector 27 for docking",
			"Protrusions 47 on base for alignment",
			"Dam/indentation around contacts",
			"Magnetic coupling mechanism for mounting",
			"Indexing members for discrete rotational orientation",
		},
		ClaimElementsCovered: []string{
			"protective sleeve/cover",
			"conductive ring contacts",
			"alignment indentations",
			"docking system",
			"locator dam",
			"magnetic coupling",
			"nesting appendage",
		},
	},
	{
		ID:             "supran-416",
		Name:           "Supran '416",
		PatentNumber:   "9,060,416",
		Citation:       "U.S. Patent No. 9,060,416",
		Type:           TypePatent,
		FilingDate:     "2011-09-06",
		Relevance:      "Divisional of '408 - conductive charging with CENTRAL magnetic mount interface, exposed electrical contacts",
		BaseConfidence: 93,
		Figures:        []string{"Fig. 1", "Fig. 2", "Fig. 3", "Fig. 10"},
		KeyTeachings: []string{
			"Coupling mechanism with magnet for removable coupling (claim 1)",
			"Central magnetic mount - circular mounting with central axis of symmetry (4:24-27)",
			"Exposed electrical contacts for conductive charging (claim 9)",
			"Indexing members/protrusions for discrete rotational alignment (claim 6)",
			"Mounting surface extends along plane parallel to base (claim 1)",
			"Magnet maintains coupling in vertical orientation (claim 4)",
			"Sleeve configured to removably receive mobile device (claim 10)",
		},
		ClaimElementsCovered: []string{
			"magnetic coupling",
			"central magnetic mount interface",
			"exposed electrical contacts",
			"docking connector",
			"alignment/indexing features",
			"protective sleeve",
			"nesting appendage",
			"conductive charging",
		},
	},
	{
		ID:             "hoellwarth-850",
		Name:           "Hoellwarth '850",
		PatentNumber:   "9,939,850",
		Citation:       "U.S. Patent No. 9,939,850",
		Type:           TypePatent,
		FilingDate:     "2015-06-26",
		Relevance:      "Primary for later patents - shell, adapter, male plug, contactors in detail",
		BaseConfidence: 94,
		Figures:        []string{"Fig. 4", "Fig. 5", "Fig. 9"},
		KeyTeachings: []string{
			"Shell with skirt surrounding panel (Fig. 4-5)",
			"Adapter positioned within shell (Fig. 9)",
			"Connector 44 with multiple contactors (42:60-43:3)",
			"Second contactors exposed on exterior",
			"Adapter fixedly positioned in skirt",
		},
		ClaimElementsCovered: []string{
			"protective shell/cover",
			"panel and skirt",
			"adapter",
			"male plug",
			"first contactors on plug",
			"second contactors on exterior",
			"female nest/cavity",
		},
	},
	{
		ID:             "hoellwarth-343",
		Name:           "Hoellwarth '343",
		PatentNumber:   "9,595,343",
		Citation:       "U.S. Patent No. 9,595,343",
		Type:           TypePatent,
		FilingDate:     "2015-03-13",
		Relevance:      "Docking station/base complementary to Hoellwarth '850",
		BaseConfidence: 89,
		KeyTeachings: []string{
			"Base station for receiving protected device",
			"Docking connector with mating contacts",
			"Alignment features on base",
		},
		ClaimElementsCovered: []string{
			"docking station",
			"docking connector",
			"base with tray",
		},
	},
	{
		ID:             "kim-781",
		Name:           "Kim-781",
		PatentNumber:   "WO 2014/010781",
		Citation:       "WO 2014/010781",
		Type:           TypePublication,
		FilingDate:     "2013-07-12",
		Relevance:      "Charging apparatus with terminal casing, concentric ring electrodes",
		BaseConfidence: 89,
		Figures:        []string{"Fig. 1", "Fig. 2", "Fig. 3"},
		KeyTeachings: []string{
			"Terminal casing 100 for mobile device (Abstract, [11])",
			"Charging mount 200 ([31])",
			"Electrode part 110 on backside",
			"Concentric ring electrodes 111-114",
			"Lead wires 119 connecting electrodes",
		},
		ClaimElementsCovered: []string{
			"protective case/casing",
			"charging mount/dock",
			"ring electrodes/contactors",
			"internal conductors",
		},
	},
	{
		ID:             "kim-099",
		Name:           "Kim '099",
		PatentNumber:   "US 2015/0011099",
		Citation:       "U.S. Pub. No. 2015/0011099",
		Type:           TypePublication,
		FilingDate:     "2013-07-03",
		Relevance:      "Sliding connector protecting case - flexible case with connector",
		BaseConfidence: 88,
		KeyTeachings: []string{
			"Protecting case with sliding connector ([0002])",
			"Connector slides to connect to device port ([0009])",
			"Flexible protective case body",
			"Circuit apparatus in case connected via connector",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"sliding connector",
			"male plug",
			"flexible shell",
		},
	},
	{
		ID:             "rayner-494",
		Name:           "Rayner-494",
		PatentNumber:   "9,229,494",
		Citation:       "U.S. Patent No. 9,229,494",
		Type:           TypePatent,
		FilingDate:     "2013-03-15",
		Relevance:      "Protective housing with alignment features, contactors, waterproof",
		BaseConfidence: 85,
		Figures:        []string{"Fig. 16A-F"},
		KeyTeachings: []string{
			"Housing for protecting device from shock, liquid, dust (Abstract)",
			"Complementary alignment pins and holes (49:5-7)",
			"Recessed contactors for pairing",
			"Housing separate from device, fitted within",
		},
		ClaimElementsCovered: []string{
			"protective housing/case",
			"alignment features",
			"contactors",
			"spaced front/back faces",
		},
	},
	{
		ID:             "wilson",
		Name:           "Wilson",
		PatentNumber:   "8,867,209",
		Citation:       "U.S. Patent No. 8,867,209",
		Type:           TypePatent,
		FilingDate:     "2012-06-28",
		Relevance:      "Protective cover with integrated adapter",
		BaseConfidence: 86,
		Figures:        []string{"Fig. 1"},
		KeyTeachings: []string{
			"Shell with integrated adapter (Fig. 1)",
			"Male plug extending into cavity",
			"Exterior contactors",
		},
		ClaimElementsCovered: []string{
			"protective shell",
			"integrated adapter",
			"male plug",
		},
	},
	{
		ID:             "iport-launchport",
		Name:           "iPort LaunchPort",
		Citation:       "iPort LaunchPort Product (Pre-2014)",
		Type:           TypeProduct,
		Relevance:      "Commercial product showing protective case with Lightning plug and magnetic charging",
		BaseConfidence: 83,
		KeyTeachings: []string{
			"Protective case for iPad",
			"Lightning connector integration",
			"Magnetic mounting to wall/base",
			"Charging through case",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"male plug (Lightning)",
			"magnetic coupling",
			"charging dock",
		},
	},
	{
		ID:             "infinea-tab-m",
		Name:           "Infinea Tab M",
		Citation:       "Infinite Peripherals Infinea Tab M",
		Type:           TypeProduct,
		Relevance:      "Commercial iPad case with exposed contactors and connector",
		BaseConfidence: 80,
		KeyTeachings: []string{
			"Protective case for iPad",
			"Exposed contactors on exterior",
			"Male plug for device connection",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"exposed contactors",
			"male connector",
		},
	},
	{
		ID:             "duracell-mygrid",
		Name:           "Duracell myGrid",
		Citation:       "Duracell myGrid Charging System (2009)",
		Type:           TypeProduct,
		Relevance:      "Power Sleeve with conductive contacts for charging pad - case with contacts that interface with dock",
		BaseConfidence: 88,
		KeyTeachings: []string{
			"Power Sleeve slips over device and acts as protective case",
			"Four small metal contacts on back of sleeve (Gadgeteer review 2009)",
			"Contacts interface with charging pad surface",
			"Conductive charging through case contacts",
			"Multiple device types supported via sleeves",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"exposed contactors",
			"second contactors on exterior",
			"docking system",
			"conductive charging",
		},
	},
	{
		ID:             "linea-pro",
		Name:           "Linea Pro / Apple EasyPay",
		Citation:       "Infinite Peripherals Linea Pro (2009)",
		Type:           TypeProduct,
		Relevance:      "Sled-style enclosure with dock connector and charging dock - used in Apple retail",
		BaseConfidence: 85,
		KeyTeachings: []string{
			"Sled-style protective enclosure for iPhone/iPod (mid-2009)",
			"30-pin dock connector integration",
			"Dedicated charging dock",
			"Male connector inside sled connects to device",
			"Used in Apple retail stores for EasyPay",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"male plug",
			"docking system",
			"docking station",
		},
	},
	{
		ID:             "mophie-juice-pack",
		Name:           "Mophie Juice Pack + Dock",
		Citation:       "Mophie Juice Pack and Charging Dock (2011)",
		Type:           TypeProduct,
		Relevance:      "Battery case with pogo pin contacts that interface with charging dock",
		BaseConfidence: 87,
		KeyTeachings: []string{
			"Battery case that surrounds and protects device",
			"Pogo pin contacts on bottom of case",
			"Dedicated dock with matching pogo pins",
			"Charges on contact - drop and go",
			"Pass-through USB for device charging",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"second contactors on exterior",
			"docking system",
			"docking station",
			"docking connector",
		},
	},
	{
		ID:             "iport-charge-case",
		Name:           "iPort Charge Case and Stand",
		Citation:       "iPort Charge Case and Stand (November 2013)",
		Type:           TypeProduct,
		Relevance:      "Dana Innovations product - protective case with conductive contacts that mate with dock contacts",
		BaseConfidence: 92,
		KeyTeachings: []string{
			"Protective case with raised conductive contacts on back (Nov 2013)",
			"Dock has matching raised contacts that align with case contacts",
			"Magnetic alignment between case and dock",
			"Conductive charging - not inductive (iLounge review)",
			"Charges automatically when case contacts meet dock contacts",
			"Portrait and landscape orientation support",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"second contactors on exterior",
			"docking system",
			"docking station",
			"docking connector",
			"magnetic coupling",
		},
	},
	{
		ID:             "honeywell-captuvo",
		Name:           "Honeywell Captuvo SL22",
		Citation:       "Honeywell Captuvo SL22 Enterprise Sled (July 2012)",
		Type:           TypeProduct,
		Relevance:      "Enterprise sled for iPod/iPhone with dedicated charging cradle/Homebase",
		BaseConfidence: 85,
		KeyTeachings: []string{
			"Enterprise sled enclosure for iPod Touch (July 2012)",
			"Dedicated charging cradle (Homebase/ChargeBase)",
			"Sled drops into cradle for charging",
			"Dock connector integration inside sled",
			"Used in retail/enterprise environments",
		},
		ClaimElementsCovered: []string{
			"protective case",
			"male plug",
			"docking system",
			"docking station",
		},
	},
}
