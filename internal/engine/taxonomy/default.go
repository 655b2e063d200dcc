package taxonomy

import "github.com/oakmere/drainsight/internal/model"

// Default returns the built-in defect taxonomy that ships with drainsight.
// Codes follow the MSCC-style coding used by UK CCTV survey contractors.
// Grades are the standard's defaults before any percentage escalation.
func Default() []model.DefectEntry {
	return []model.DefectEntry{
		// Structural defects.
		{Code: "X", Category: model.Structural, DefaultGrade: 5, ActionPriority: 100,
			RiskNarrative: "Collapsed pipe. Total loss of structural integrity and flow capacity.",
			Action:        "Excavate and replace the collapsed length"},
		{Code: "B", Category: model.Structural, DefaultGrade: 4, ActionPriority: 90,
			RiskNarrative: "Broken pipe. Pieces visibly displaced; collapse likely if unaddressed.",
			Action:        "Excavate and replace, or install a structural liner"},
		{Code: "H", Category: model.Structural, DefaultGrade: 4, ActionPriority: 88,
			RiskNarrative: "Hole in pipe wall. Ground loss and void formation risk.",
			Action:        "Install structural patch repair over the hole"},
		{Code: "FM", Category: model.Structural, DefaultGrade: 4, ActionPriority: 85,
			RiskNarrative: "Multiple fractures. Pipe wall integrity severely compromised.",
			Action:        "Line the section with a structural CIPP liner"},
		{Code: "FC", Category: model.Structural, DefaultGrade: 3, ActionPriority: 80,
			RiskNarrative: "Circumferential fracture. Wall fragments displaced; deterioration expected.",
			Action:        "Install a structural patch liner at the fracture"},
		{Code: "FL", Category: model.Structural, DefaultGrade: 3, ActionPriority: 79,
			RiskNarrative: "Longitudinal fracture. Wall fragments displaced along the pipe axis.",
			Action:        "Install a structural patch liner at the fracture"},
		{Code: "D", Category: model.Structural, DefaultGrade: 3, ActionPriority: 75,
			RiskNarrative: "Deformed sewer. Cross-section distorted; capacity and integrity reduced.",
			Action:        "Re-round and line the deformed length, or excavate and replace"},
		{Code: "CM", Category: model.Structural, DefaultGrade: 3, ActionPriority: 70,
			RiskNarrative: "Multiple cracks. Early-stage structural deterioration over the length.",
			Action:        "Line the cracked length"},
		{Code: "CX", Category: model.Structural, DefaultGrade: 3, ActionPriority: 65,
			RiskNarrative: "Defective connection. Poorly formed or damaged lateral connection.",
			Action:        "Re-form the connection with a top-hat repair"},
		{Code: "CC", Category: model.Structural, DefaultGrade: 2, ActionPriority: 60,
			RiskNarrative: "Circumferential crack. Wall cracked but fragments in place.",
			Action:        "Install a patch repair at the crack"},
		{Code: "CL", Category: model.Structural, DefaultGrade: 2, ActionPriority: 59,
			RiskNarrative: "Longitudinal crack. Wall cracked but fragments in place.",
			Action:        "Install a patch repair at the crack"},
		{Code: "CR", Category: model.Structural, DefaultGrade: 2, ActionPriority: 58,
			RiskNarrative: "Crack. Wall cracked but fragments in place.",
			Action:        "Install a patch repair at the crack"},
		{Code: "JDL", Category: model.Structural, DefaultGrade: 3, ActionPriority: 55,
			RiskNarrative: "Joint displaced, large. Spigot displaced more than pipe wall thickness.",
			Action:        "Install a patch repair across the displaced joint"},
		{Code: "JDM", Category: model.Structural, DefaultGrade: 2, ActionPriority: 45,
			RiskNarrative: "Joint displaced, medium. Spigot displaced up to pipe wall thickness.",
			Action:        "Install a patch repair across the displaced joint"},
		{Code: "OJL", Category: model.Structural, DefaultGrade: 3, ActionPriority: 50,
			RiskNarrative: "Open joint, large. Adjacent pipes separated by more than wall thickness.",
			Action:        "Install a patch repair across the open joint"},
		{Code: "OJM", Category: model.Structural, DefaultGrade: 2, ActionPriority: 44,
			RiskNarrative: "Open joint, medium. Adjacent pipes separated by up to wall thickness.",
			Action:        "Install a patch repair across the open joint"},
		{Code: "SR", Category: model.Structural, DefaultGrade: 1, ActionPriority: 30,
			RiskNarrative: "Sealing ring intruding. Displaced ring visible at joint.",
			Action:        "Remove or trim the intruding sealing ring"},

		// Service defects.
		{Code: "RM", Category: model.Service, DefaultGrade: 4, ActionPriority: 62,
			RiskNarrative: "Root mass. Flow substantially obstructed by root intrusion.",
			Action:        "Remove the root mass and seal the point of entry"},
		{Code: "OB", Category: model.Service, DefaultGrade: 3, ActionPriority: 52,
			RiskNarrative: "Obstruction. Object restricting the bore.",
			Action:        "Remove the obstruction and resurvey"},
		{Code: "IG", Category: model.Service, DefaultGrade: 4, ActionPriority: 49,
			RiskNarrative: "Infiltration, gushing. High groundwater ingress through defect.",
			Action:        "Seal the ingress point by injection or lining"},
		{Code: "IR", Category: model.Service, DefaultGrade: 3, ActionPriority: 48,
			RiskNarrative: "Infiltration, running. Continuous groundwater ingress.",
			Action:        "Seal the ingress point by injection or lining"},
		{Code: "ID", Category: model.Service, DefaultGrade: 2, ActionPriority: 42,
			RiskNarrative: "Infiltration, dripping. Intermittent groundwater ingress.",
			Action:        "Monitor and seal if ingress worsens"},
		{Code: "IS", Category: model.Service, DefaultGrade: 1, ActionPriority: 28,
			RiskNarrative: "Infiltration, seeping. Damp ingress visible at joint or defect.",
			Action:        "No immediate action; note for future survey"},
		{Code: "DER", Category: model.Service, DefaultGrade: 2, ActionPriority: 40,
			RiskNarrative: "Deposits, coarse. Settled gravel or rubble reducing the bore.",
			Action:        "Desilt and jet the section, then resurvey"},
		{Code: "DES", Category: model.Service, DefaultGrade: 2, ActionPriority: 39,
			RiskNarrative: "Deposits, fine. Settled silt reducing the bore.",
			Action:        "Desilt and jet the section, then resurvey"},
		{Code: "DEG", Category: model.Service, DefaultGrade: 2, ActionPriority: 38,
			RiskNarrative: "Deposits, grease. Attached grease reducing the bore.",
			Action:        "Degrease by jetting and recutting"},
		{Code: "DEE", Category: model.Service, DefaultGrade: 2, ActionPriority: 37,
			RiskNarrative: "Encrustation. Attached mineral deposits reducing the bore.",
			Action:        "Remove encrustation by mechanical cleaning"},
		{Code: "RF", Category: model.Service, DefaultGrade: 2, ActionPriority: 35,
			RiskNarrative: "Roots, fine. Fine root intrusion at joint or defect.",
			Action:        "Cut roots and apply root treatment"},
		{Code: "WL", Category: model.Service, DefaultGrade: 1, ActionPriority: 20,
			RiskNarrative: "Water level. Standing water indicating a gradient defect upstream or downstream.",
			Action:        "Check gradient; cleanse and resurvey if level persists"},

		// Junction and connection features: reportable only when close to a
		// structural defect that may need cut-and-patch access.
		{Code: "JN", Category: model.Construction, DefaultGrade: 0, ActionPriority: 10, IsJunction: true,
			RiskNarrative: "Junction. Lateral junction within the section.",
			Action:        "Allow for reopening the junction after lining or patching"},
		{Code: "CN", Category: model.Construction, DefaultGrade: 0, ActionPriority: 10, IsJunction: true,
			RiskNarrative: "Connection. Lateral connection within the section.",
			Action:        "Allow for reopening the connection after lining or patching"},

		// Line-of-sewer observations: non-defect, retained for the record.
		{Code: "LD", Category: model.Construction, DefaultGrade: 0, ActionPriority: 5,
			RiskNarrative: "Line deviates down.", Action: "Cleanse and resurvey to confirm gradient"},
		{Code: "LU", Category: model.Construction, DefaultGrade: 0, ActionPriority: 5,
			RiskNarrative: "Line deviates up.", Action: "Cleanse and resurvey to confirm gradient"},
		{Code: "LL", Category: model.Construction, DefaultGrade: 0, ActionPriority: 5,
			RiskNarrative: "Line deviates left.", Action: "Cleanse and resurvey to confirm line"},
		{Code: "LR", Category: model.Construction, DefaultGrade: 0, ActionPriority: 5,
			RiskNarrative: "Line deviates right.", Action: "Cleanse and resurvey to confirm line"},
		{Code: "LC", Category: model.Construction, DefaultGrade: 0, ActionPriority: 5,
			RiskNarrative: "Line curves. Built bend in the section.", Action: "Cleanse and resurvey to confirm line"},
		{Code: "NCP", Category: model.Construction, DefaultGrade: 0, ActionPriority: 1,
			RiskNarrative: "No coding present.", Action: "No action required"},

		// Survey metadata: never defects, always excluded from classification.
		{Code: "MH", Category: model.Construction, DefaultGrade: 0, IsMetadata: true,
			RiskNarrative: "Manhole."},
		{Code: "ST", Category: model.Construction, DefaultGrade: 0, IsMetadata: true,
			RiskNarrative: "Start node."},
		{Code: "FN", Category: model.Construction, DefaultGrade: 0, IsMetadata: true,
			RiskNarrative: "Finish node."},
		{Code: "SA", Category: model.Construction, DefaultGrade: 0, IsMetadata: true,
			RiskNarrative: "Survey abandoned."},
	}
}

// DefaultRepairMethods returns the built-in repair-method reference table,
// keyed by structural code.
func DefaultRepairMethods() map[string][]string {
	return map[string][]string{
		"X":   {"Excavate and replace"},
		"B":   {"Excavate and replace", "Structural CIPP lining"},
		"H":   {"Structural patch liner", "Excavate and replace"},
		"FM":  {"Structural CIPP lining", "Excavate and replace"},
		"FC":  {"Structural patch liner", "Structural CIPP lining"},
		"FL":  {"Structural patch liner", "Structural CIPP lining"},
		"D":   {"Re-round and line", "Excavate and replace"},
		"CM":  {"Structural CIPP lining"},
		"CX":  {"Top-hat connection repair", "Excavate and re-form connection"},
		"CC":  {"Patch liner"},
		"CL":  {"Patch liner"},
		"CR":  {"Patch liner"},
		"JDL": {"Patch liner", "Excavate and re-joint"},
		"JDM": {"Patch liner"},
		"OJL": {"Patch liner", "Excavate and re-joint"},
		"OJM": {"Patch liner"},
		"SR":  {"Cut and remove sealing ring"},
	}
}

// DefaultCleaningMethods returns the built-in cleaning-method reference
// table, keyed by service code.
func DefaultCleaningMethods() map[string][]string {
	return map[string][]string{
		"DER": {"High-pressure water jetting", "Desilting"},
		"DES": {"High-pressure water jetting", "Desilting"},
		"DEG": {"Degreasing", "High-pressure water jetting"},
		"DEE": {"Mechanical scraping", "High-pressure water jetting"},
		"RF":  {"Root cutting", "Chemical root treatment"},
		"RM":  {"Root cutting", "Winching"},
		"OB":  {"Winching", "High-pressure water jetting"},
		"WL":  {"High-pressure water jetting"},
	}
}
