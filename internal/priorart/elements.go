package priorart

var defaultElements = []ElementType{
	{ID: "protective_cover", Weight: 1.0, Description: "Protective cover/case/shell for electronic device"},
	{ID: "panel_exterior", Weight: 0.9, Description: "Panel with exterior surface"},
	{ID: "skirt_perimeter", Weight: 0.9, Description: "Skirt surrounding panel perimeter"},
	{ID: "interior_cavity", Weight: 0.8, Description: "Interior cavity formed by panel and skirt"},
	{ID: "flexible_shell", Weight: 0.85, Description: "Flexible/elastomeric shell material"},
	{ID: "adapter", Weight: 1.0, Description: "Adapter supported by shell"},
	{ID: "male_plug", Weight: 0.95, Description: "Male plug with connectors"},
	{ID: "first_contactors", Weight: 0.9, Description: "First contactors on male plug"},
	{ID: "second_contactors", Weight: 0.9, Description: "Second contactors exposed on exterior"},
	{ID: "female_nest", Weight: 0.85, Description: "Female nest/socket"},
	{ID: "docking_system", Weight: 1.0, Description: "Docking system comprising cover and dock"},
	{ID: "docking_station", Weight: 0.9, Description: "Docking station/cradle with base"},
	{ID: "docking_connector", Weight: 0.9, Description: "Docking connector to mate with contactors"},
	{ID: "locator_dam", Weight: 0.8, Description: "Locator dam surrounding contactor"},
	{ID: "magnetic_coupling", Weight: 0.8, Description: "Magnetic element for coupling"},
	{ID: "hard_shell", Weight: 0.85, Description: "Hard shell around flexible cover"},
	{ID: "transparent_window", Weight: 0.75, Description: "Transparent window panel"},
	{ID: "ring_contacts", Weight: 0.85, Description: "Ring-shaped contactor contacts"},
	{ID: "internal_conductors", Weight: 0.8, Description: "Internal electrical conductors/wires"},
	{ID: "alignment_features", Weight: 0.8, Description: "Alignment pins/holes/features"},
	{ID: "nesting_appendage", Weight: 0.75, Description: "Male nesting appendage"},
}
