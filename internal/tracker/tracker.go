// Package tracker implements the ledger and recurrence engine: recording
// expenses, materializing recurring charges, budget upkeep and the
// aggregated reports the presentation layer renders.
package tracker

import (
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	expensesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_expenses_recorded_total",
		Help: "Number of expense entries appended to the ledger.",
	})

	chargesMaterialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_recurring_charges_materialized_total",
		Help: "Number of ledger entries posted by the recurrence engine.",
	})
)

// Tracker is the core engine. All operations are partitioned by user ID;
// no state is kept between calls, the presentation layer passes everything
// explicitly.
type Tracker struct {
	db  *gorm.DB
	now func() time.Time
}

// New returns a Tracker using the passed database. The clock may be nil, in
// which case the current UTC time is used. Tests pass a fixed clock to pin
// scheduling decisions to a specific day.
func New(db *gorm.DB, clock func() time.Time) *Tracker {
	if clock == nil {
		clock = func() time.Time {
			return time.Now().In(time.UTC)
		}
	}

	return &Tracker{
		db:  db,
		now: clock,
	}
}

// Now returns the tracker's clock reading.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// CurrentMonth returns the month the tracker's clock is in. All budget
// writes and period-relative reports use this single derivation so that one
// request never straddles two period boundaries.
func (t *Tracker) CurrentMonth() types.Month {
	return types.MonthOf(t.now())
}
