package tracker

import (
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryStatus is the budget-vs-actual state of one category in a month.
type CategoryStatus struct {
	Spent      decimal.Decimal `json:"spent"`
	Budget     decimal.Decimal `json:"budget"`  // Zero when no budget is configured
	Balance    decimal.Decimal `json:"balance"` // Budget - Spent
	Percent    decimal.Decimal `json:"percent"` // Spent of Budget in percent, zero when no budget
	OverBudget bool            `json:"overBudget"`
}

// Trend compares the current month's spend with the previous one.
type Trend struct {
	CurrentTotal  decimal.Decimal `json:"currentTotal"`
	PreviousTotal decimal.Decimal `json:"previousTotal"`
	Delta         decimal.Decimal `json:"delta"`
	PercentChange decimal.Decimal `json:"percentChange"` // Zero when the previous month had no spend
}

// Projection extrapolates the current month's spend to the end of the
// month from the daily average so far.
type Projection struct {
	TotalSoFar     decimal.Decimal `json:"totalSoFar"`
	DaysElapsed    int             `json:"daysElapsed"`
	DaysRemaining  int             `json:"daysRemaining"`
	DailyAverage   decimal.Decimal `json:"dailyAverage"`
	ProjectedTotal decimal.Decimal `json:"projectedTotal"`

	// RecommendedDaily is the daily spend for the rest of the month that
	// would end it at the previous month's total. It is omitted on the
	// last day of the month.
	RecommendedDaily *decimal.Decimal `json:"recommendedDaily,omitempty"`
}

// CategoryStatus reports budget-vs-actual per category for the month. The
// result covers the union of categories with spend and categories with a
// budget; categories with neither are omitted.
func (t *Tracker) CategoryStatus(userID int64, month types.Month) (map[models.Category]CategoryStatus, error) {
	totals, err := t.MonthlyTotals(userID, month)
	if err != nil {
		return nil, err
	}

	budgets, err := t.CategoryBudgets(userID, month)
	if err != nil {
		return nil, err
	}

	status := make(map[models.Category]CategoryStatus, len(totals)+len(budgets))
	for _, total := range totals {
		status[total.Category] = CategoryStatus{Spent: total.Total}
	}

	for category, budget := range budgets {
		s := status[category]
		s.Budget = budget
		status[category] = s
	}

	for category, s := range status {
		s.Balance = s.Budget.Sub(s.Spent)
		if s.Budget.IsPositive() {
			s.Percent = s.Spent.Div(s.Budget).Mul(hundred)
			s.OverBudget = s.Spent.GreaterThan(s.Budget)
		}
		status[category] = s
	}

	return status, nil
}

// MonthOverMonth compares the current month's spend so far with the full
// previous calendar month, crossing year boundaries where needed.
func (t *Tracker) MonthOverMonth(userID int64) (Trend, error) {
	month := t.CurrentMonth()

	current, err := t.monthTotal(userID, month)
	if err != nil {
		return Trend{}, err
	}

	previous, err := t.monthTotal(userID, month.Previous())
	if err != nil {
		return Trend{}, err
	}

	trend := Trend{
		CurrentTotal:  current,
		PreviousTotal: previous,
		Delta:         current.Sub(previous),
	}

	if previous.IsPositive() {
		trend.PercentChange = trend.Delta.Div(previous).Mul(hundred)
	}

	return trend, nil
}

// Projection extrapolates the month's spend linearly from the daily
// average so far, using the actual calendar length of the month.
func (t *Tracker) Projection(userID int64) (Projection, error) {
	now := t.now()
	month := types.MonthOf(now)

	total, err := t.monthTotal(userID, month)
	if err != nil {
		return Projection{}, err
	}

	projection := Projection{
		TotalSoFar:    total,
		DaysElapsed:   now.Day(),
		DaysRemaining: month.Days() - now.Day(),
	}

	if projection.DaysElapsed > 0 {
		projection.DailyAverage = total.Div(decimal.NewFromInt(int64(projection.DaysElapsed)))
		projection.ProjectedTotal = projection.DailyAverage.Mul(decimal.NewFromInt(int64(month.Days())))
	}

	if projection.DaysRemaining > 0 {
		previous, err := t.monthTotal(userID, month.Previous())
		if err != nil {
			return Projection{}, err
		}

		recommended := previous.Sub(total).Div(decimal.NewFromInt(int64(projection.DaysRemaining)))
		projection.RecommendedDaily = &recommended
	}

	return projection, nil
}

// MonthlySummary returns the user's current-month spend by category,
// largest first.
func (t *Tracker) MonthlySummary(userID int64) ([]CategoryTotal, error) {
	return t.MonthlyTotals(userID, t.CurrentMonth())
}

func (t *Tracker) monthTotal(userID int64, month types.Month) (decimal.Decimal, error) {
	entries, err := t.entriesInRange(userID, month.First(), month.AddDate(0, 1).First())
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, entry := range entries {
		sum = sum.Add(entry.Amount)
	}

	return sum, nil
}
