package planner

import "fmt"

// EvaluateBudget sums the cost of every scheduled event and compares it
// against ceiling. A ceiling of 0 means no budget was given.
func EvaluateBudget(it Itinerary, ceiling float64) (BudgetSummary, []string) {
	var total float64
	for _, day := range it {
		for _, ev := range day.Events {
			total += ev.Cost
		}
	}

	within := ceiling == 0 || total <= ceiling
	log := []string{fmt.Sprintf("Budget: estimated total activity cost = $%.2f.", total)}

	switch {
	case ceiling == 0:
		log = append(log, "Budget: no budget provided.")
	case within:
		log = append(log, "Budget: within budget.")
	default:
		log = append(log, fmt.Sprintf("Budget: WARNING itinerary exceeds budget of $%.2f.", ceiling))
	}

	return BudgetSummary{Total: total, WithinBudget: within}, log
}
