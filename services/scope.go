package services

// BuildScopeOfWork splits the work items between installer and customer.
// Fixed company bullets come first, then the routable items in the order
// civil, net-meter, electrical, plumbing (each landing on exactly one side
// per its scope flag), then the fixed customer bullets. Net-meter work only
// applies to grid-tied variants and plumbing only to the water products.
func BuildScopeOfWork(cfg ProjectConfiguration) ScopeOfWork {
	cfg = cfg.withDefaults()
	solar := cfg.ProjectType.IsSolar()

	var company, customer []string
	if solar {
		company = append(company,
			"Supply of all materials listed in the bill of materials",
			"Installation, testing and commissioning of the solar power plant",
			"Transportation of materials to the site",
		)
	} else {
		company = append(company,
			"Supply of the equipment and standard accessories",
			"Installation, testing and commissioning at the site",
		)
	}

	route := func(assignment ScopeAssignment, text string) {
		if assignment == CustomerScope {
			customer = append(customer, text)
		} else {
			company = append(company, text)
		}
	}

	route(cfg.CivilScope, "Civil work including foundation and structure grouting")
	if cfg.ProjectType.GridTied() {
		route(cfg.NetMeterScope, "Net meter application, liaisoning and EB approval works")
	}
	if solar {
		route(cfg.ElectricalScope, "Electrical wiring from inverter to distribution board")
	} else {
		route(cfg.ElectricalScope, "Electrical wiring up to the utilization point")
		route(cfg.PlumbingScope, "Plumbing and pipeline work up to the utilization point")
	}

	if solar {
		customer = append(customer,
			"Provision of shadow-free roof space for the solar array",
			"Power and water supply during installation",
		)
	} else {
		customer = append(customer, "Power and water supply during installation")
	}

	return ScopeOfWork{CompanyScope: company, CustomerScope: customer}
}

// WarrantyTerms returns the standard warranty lines for the variant. The
// wording is printed verbatim on the documents.
func WarrantyTerms(p ProjectType) []string {
	switch p {
	case ProjectTypeOnGrid:
		return []string{
			"25 years performance warranty on solar PV modules",
			"5 years manufacturer warranty on grid tie inverter",
			"1 year warranty on balance of system components",
			"5 years workmanship warranty on the installation",
		}
	case ProjectTypeOffGrid:
		return []string{
			"25 years performance warranty on solar PV modules",
			"2 years manufacturer warranty on off-grid inverter",
			"5 years pro-rata warranty on batteries",
			"2 years workmanship warranty on the installation",
		}
	case ProjectTypeHybrid:
		return []string{
			"25 years performance warranty on solar PV modules",
			"5 years manufacturer warranty on hybrid inverter",
			"5 years pro-rata warranty on batteries",
			"5 years workmanship warranty on the installation",
		}
	case ProjectTypeWaterHeater:
		return []string{
			"5 years warranty on the solar water heater tank",
			"2 years warranty on the heating system and accessories",
			"1 year workmanship warranty on the installation",
		}
	case ProjectTypeWaterPump:
		return []string{
			"2 years warranty on the pump and controller",
			"25 years performance warranty on solar PV modules",
			"1 year workmanship warranty on the installation",
		}
	}
	return nil
}

// DefaultDocumentRequirements is the subsidy document checklist used when
// the quotation metadata does not supply one.
var DefaultDocumentRequirements = []string{
	"Recent electricity bill copy",
	"Aadhaar card copy",
	"PAN card copy",
	"Passport size photograph",
	"Property tax receipt copy",
	"Cancelled cheque leaf or bank passbook copy",
}

// DefaultPhysicalDamageExclusions lists what the warranty never covers.
var DefaultPhysicalDamageExclusions = []string{
	"Physical damage to modules, inverter or batteries after handover",
	"Damage caused by flood, storm, lightning strike or other natural calamity",
	"Damage caused by unauthorized repair or modification",
}

// Commercial term defaults applied when the metadata leaves them blank.
const (
	DefaultAdvancePercentage = 80
	DefaultDeliveryTimeframe = "Within 4 weeks from receipt of advance payment"
)
