package services

// SubsidySlabs are the capital subsidy amounts for grid-connected rooftop
// systems on residential properties, by capacity band. Bands are inclusive
// of their upper bound: up to 1 kW pays 30,000, above 1 up to 2 kW pays
// 60,000, above 2 up to 10 kW pays the 78,000 cap, and anything larger gets
// nothing.
var SubsidySlabs = []struct {
	UpToKW float64
	Amount float64
}{
	{1, 30000},
	{2, 60000},
	{10, 78000},
}

// CalculateSubsidy returns the government subsidy for the given system. Only
// residential on-grid and hybrid systems qualify; every other combination
// returns 0, as do zero-capacity systems.
func CalculateSubsidy(kw float64, property PropertyType, project ProjectType) float64 {
	if property != PropertyResidential || !project.GridTied() {
		return 0
	}
	if kw <= 0 {
		return 0
	}
	for _, slab := range SubsidySlabs {
		if kw <= slab.UpToKW {
			return slab.Amount
		}
	}
	return 0
}
