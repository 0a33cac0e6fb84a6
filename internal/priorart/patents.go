package priorart

var defaultPatentPriorArt = []PatentPriorArt{
	{PatentID: "140", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "kim-781", "rayner-494", "iport-launchport", "infinea-tab-m", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "141", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "kim-781", "rayner-494", "iport-launchport", "infinea-tab-m", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "142", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "kim-781", "rayner-494", "iport-launchport", "infinea-tab-m", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "275", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "kim-781", "rayner-494", "iport-launchport", "infinea-tab-m", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "279", ReferenceIDs: []string{"kim-099", "rayner-494", "thiers", "supran-408", "supran-416", "iport-launchport", "infinea-tab-m", "linea-pro", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "444", ReferenceIDs: []string{"hoellwarth-850", "hoellwarth-343", "wilson", "rayner-494", "iport-launchport", "infinea-tab-m", "supran-408", "supran-416", "thiers", "duracell-mygrid", "mophie-juice-pack", "linea-pro", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "458", ReferenceIDs: []string{"hoellwarth-850", "thiers", "supran-408", "supran-416", "kim-099", "rayner-494", "iport-launchport", "infinea-tab-m", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "535", ReferenceIDs: []string{"hoellwarth-850", "wilson", "thiers", "supran-408", "supran-416", "kim-099", "rayner-494", "iport-launchport", "infinea-tab-m", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "550", ReferenceIDs: []string{"hoellwarth-850", "thiers", "supran-408", "supran-416", "kim-099", "rayner-494", "hoellwarth-343", "iport-launchport", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "387", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "kim-781", "rayner-494", "iport-launchport", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "639", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "kim-781", "iport-launchport", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "026", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "kim-781", "iport-launchport", "linea-pro", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "330", ReferenceIDs: []string{"thiers", "supran-408", "supran-416", "rayner-494", "kim-781", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "658", ReferenceIDs: []string{"supran-408", "supran-416", "thiers", "kim-781", "iport-launchport", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "399", ReferenceIDs: []string{"hoellwarth-850", "thiers", "supran-408", "supran-416", "hoellwarth-343", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "515", ReferenceIDs: []string{"hoellwarth-850", "thiers", "supran-408", "supran-416", "hoellwarth-343", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "334", ReferenceIDs: []string{"hoellwarth-850", "thiers", "supran-408", "supran-416", "hoellwarth-343", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
	{PatentID: "884", ReferenceIDs: []string{"hoellwarth-850", "thiers", "supran-408", "supran-416", "kim-099", "hoellwarth-343", "duracell-mygrid", "mophie-juice-pack", "iport-charge-case", "honeywell-captuvo"}},
}

var defaultClaimElements = []PatentClaims{
	{PatentID: "140", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "male_plug", "first_contactors", "second_contactors", "female_nest"}},
		{Label: "Claim 7", Elements: []string{"docking_system", "docking_station", "docking_connector"}},
	}},
	{PatentID: "141", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "male_plug", "first_contactors"}},
		{Label: "Claim 13", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "142", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "male_plug", "second_contactors"}},
		{Label: "Claim 14", Elements: []string{"docking_system", "docking_station"}},
	}},
	{PatentID: "275", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "interior_cavity", "male_plug", "first_contactors", "second_contactors", "internal_conductors"}},
		{Label: "Claim 19", Elements: []string{"docking_system", "docking_station", "docking_connector"}},
	}},
	{PatentID: "279", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "flexible_shell", "panel_exterior", "skirt_perimeter", "male_plug", "second_contactors"}},
		{Label: "Claim 9", Elements: []string{"docking_system", "docking_connector"}},
		{Label: "Claim 20", Elements: []string{"protective_cover", "panel_exterior", "female_nest"}},
	}},
	{PatentID: "444", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "female_nest", "adapter", "male_plug", "first_contactors", "second_contactors"}},
		{Label: "Claim 19", Elements: []string{"protective_cover", "female_nest", "adapter", "male_plug", "first_contactors", "second_contactors"}},
		{Label: "Claim 28", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "458", Claims: []Claim{
		{Label: "Claim 12", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "adapter", "male_plug", "first_contactors", "second_contactors"}},
		{Label: "Claim 20", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "535", Claims: []Claim{
		{Label: "Claim 15", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "adapter", "male_plug", "first_contactors", "second_contactors"}},
		{Label: "Claim 19", Elements: []string{"docking_system", "docking_station"}},
	}},
	{PatentID: "550", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "male_plug", "first_contactors"}},
		{Label: "Claim 7", Elements: []string{"docking_system", "docking_station"}},
		{Label: "Claim 9", Elements: []string{"protective_cover", "second_contactors"}},
		{Label: "Claim 13", Elements: []string{"docking_system"}},
		{Label: "Claim 17", Elements: []string{"protective_cover", "adapter"}},
		{Label: "Claim 18", Elements: []string{"protective_cover", "panel_exterior"}},
		{Label: "Claim 21", Elements: []string{"docking_system", "docking_station"}},
		{Label: "Claim 27", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "387", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "flexible_shell", "panel_exterior", "skirt_perimeter", "adapter", "male_plug", "second_contactors", "hard_shell"}},
		{Label: "Claim 8", Elements: []string{"hard_shell", "flexible_shell", "adapter"}},
		{Label: "Claim 17", Elements: []string{"docking_system", "docking_station", "docking_connector"}},
	}},
	{PatentID: "639", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "flexible_shell", "panel_exterior", "skirt_perimeter", "adapter", "male_plug", "second_contactors", "locator_dam", "magnetic_coupling"}},
		{Label: "Claim 5", Elements: []string{"protective_cover", "nesting_appendage"}},
		{Label: "Claim 15", Elements: []string{"docking_system", "docking_station"}},
	}},
	{PatentID: "026", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "flexible_shell", "adapter", "male_plug", "internal_conductors"}},
		{Label: "Claim 10", Elements: []string{"protective_cover", "adapter", "internal_conductors"}},
		{Label: "Claim 18", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "330", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "flexible_shell", "transparent_window", "adapter", "male_plug"}},
		{Label: "Claim 12", Elements: []string{"docking_system", "docking_station"}},
	}},
	{PatentID: "658", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "interior_cavity", "adapter", "male_plug", "ring_contacts"}},
		{Label: "Claim 13", Elements: []string{"docking_system", "docking_connector", "ring_contacts"}},
	}},
	{PatentID: "399", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "adapter", "male_plug", "first_contactors", "second_contactors"}},
		{Label: "Claim 14", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "515", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "interior_cavity", "adapter", "male_plug", "second_contactors"}},
		{Label: "Claim 15", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "334", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "adapter", "male_plug", "second_contactors"}},
		{Label: "Claim 12", Elements: []string{"docking_system", "docking_connector"}},
	}},
	{PatentID: "884", Claims: []Claim{
		{Label: "Claim 1", Elements: []string{"protective_cover", "panel_exterior", "skirt_perimeter", "adapter", "male_plug", "first_contactors", "second_contactors"}},
		{Label: "Claim 13", Elements: []string{"docking_system", "docking_connector"}},
	}},
}
