package priorart

var defaultCoverage = CoverageTable{
	"thiers": {
		"protective_cover":    95,
		"panel_exterior":      92,
		"skirt_perimeter":     90,
		"interior_cavity":     88,
		"adapter":             85,
		"male_plug":           90,
		"first_contactors":    88,
		"second_contactors":   82,
		"female_nest":         85,
		"docking_system":      92,
		"docking_station":     90,
		"docking_connector":   88,
		"internal_conductors": 90,
		"magnetic_coupling":   85,
		"alignment_features":  80,
	},
	"supran-408": {
		"protective_cover":   90,
		"panel_exterior":     85,
		"skirt_perimeter":    85,
		"interior_cavity":    88,
		"flexible_shell":     92,
		"male_plug":          82,
		"first_contactors":   80,
		"second_contactors":  88,
		"ring_contacts":      95,
		"docking_system":     88,
		"docking_connector":  85,
		"locator_dam":        90,
		"alignment_features": 90,
		"nesting_appendage":  88,
		"magnetic_coupling":  90,
	},
	"supran-416": {
		"protective_cover":   88,
		"flexible_shell":     90,
		"magnetic_coupling":  95,
		"docking_system":     90,
		"docking_connector":  92,
		"docking_station":    90,
		"alignment_features": 92,
		"nesting_appendage":  92,
		"ring_contacts":      90,
		"locator_dam":        88,
	},
	"hoellwarth-850": {
		"protective_cover":    96,
		"panel_exterior":      95,
		"skirt_perimeter":     95,
		"interior_cavity":     94,
		"flexible_shell":      90,
		"adapter":             96,
		"male_plug":           95,
		"first_contactors":    94,
		"second_contactors":   95,
		"female_nest":         92,
		"docking_system":      90,
		"internal_conductors": 92,
	},
	"hoellwarth-343": {
		"docking_system":    92,
		"docking_station":   94,
		"docking_connector": 95,
	},
	"kim-781": {
		"protective_cover":    90,
		"panel_exterior":      85,
		"adapter":             82,
		"male_plug":           85,
		"first_contactors":    88,
		"second_contactors":   90,
		"ring_contacts":       92,
		"docking_system":      85,
		"docking_station":     88,
		"internal_conductors": 85,
	},
	"kim-099": {
		"protective_cover": 88,
		"flexible_shell":   90,
		"adapter":          85,
		"male_plug":        90,
		"first_contactors": 82,
	},
	"rayner-494": {
		"protective_cover":   88,
		"panel_exterior":     85,
		"interior_cavity":    82,
		"hard_shell":         90,
		"alignment_features": 92,
		"second_contactors":  80,
		"transparent_window": 85,
	},
	"wilson": {
		"protective_cover":  88,
		"panel_exterior":    86,
		"skirt_perimeter":   85,
		"adapter":           90,
		"male_plug":         88,
		"second_contactors": 82,
	},
	"iport-launchport": {
		"protective_cover":  85,
		"male_plug":         88,
		"docking_system":    85,
		"docking_station":   88,
		"magnetic_coupling": 92,
	},
	"infinea-tab-m": {
		"protective_cover":  82,
		"male_plug":         80,
		"second_contactors": 85,
	},
	"duracell-mygrid": {
		"protective_cover":  90,
		"second_contactors": 92,
		"docking_system":    88,
		"docking_station":   88,
		"docking_connector": 85,
	},
	"linea-pro": {
		"protective_cover": 85,
		"male_plug":        90,
		"docking_system":   85,
		"docking_station":  88,
	},
	"mophie-juice-pack": {
		"protective_cover":  90,
		"second_contactors": 92,
		"docking_system":    90,
		"docking_station":   90,
		"docking_connector": 90,
	},
	"iport-charge-case": {
		"protective_cover":  95,
		"second_contactors": 95,
		"docking_system":    95,
		"docking_station":   95,
		"docking_connector": 95,
		"magnetic_coupling": 90,
	},
	"honeywell-captuvo": {
		"protective_cover": 85,
		"male_plug":        88,
		"docking_system":   88,
		"docking_station":  90,
	},
}
