package performance

import (
	"testing"
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

func flowEvent(flowType model.CashFlowType, amount float64, date time.Time) model.CashFlowEvent {
	return model.CashFlowEvent{Type: flowType, Amount: amount, Date: date}
}

// TestClassify_SignConventions checks each recognized type lands in the
// right total with the right sign in the dated series.
func TestClassify_SignConventions(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		event           model.CashFlowEvent
		wantContributed float64
		wantDistributed float64
		wantFees        float64
		wantSigned      float64
	}{
		{
			name:            "capital call is negative outflow",
			event:           flowEvent(model.CashFlowCapitalCall, 1000, date),
			wantContributed: 1000,
			wantSigned:      -1000,
		},
		{
			name:            "distribution is positive inflow",
			event:           flowEvent(model.CashFlowDistribution, 500, date),
			wantDistributed: 500,
			wantSigned:      500,
		},
		{
			name:       "management fee is negative outflow",
			event:      flowEvent(model.CashFlowManagementFee, 50, date),
			wantFees:   50,
			wantSigned: -50,
		},
		{
			name:       "carry is positive in the series",
			event:      flowEvent(model.CashFlowCarry, 80, date),
			wantFees:   80,
			wantSigned: 80,
		},
		{
			name:            "recallable decrements distributed but stays positive",
			event:           flowEvent(model.CashFlowRecallable, 200, date),
			wantDistributed: -200,
			wantSigned:      200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify([]model.CashFlowEvent{tt.event})

			if c.Contributed != tt.wantContributed {
				t.Errorf("Contributed = %v, want %v", c.Contributed, tt.wantContributed)
			}
			if c.Distributed != tt.wantDistributed {
				t.Errorf("Distributed = %v, want %v", c.Distributed, tt.wantDistributed)
			}
			if c.Fees != tt.wantFees {
				t.Errorf("Fees = %v, want %v", c.Fees, tt.wantFees)
			}
			if len(c.SignedSeries) != 1 {
				t.Fatalf("Expected 1 signed entry, got %d", len(c.SignedSeries))
			}
			if c.SignedSeries[0].Amount != tt.wantSigned {
				t.Errorf("Signed amount = %v, want %v", c.SignedSeries[0].Amount, tt.wantSigned)
			}
		})
	}
}

// TestClassify_RecallableAsymmetry covers the clawback scenario: a
// recallable distribution reduces the running distributed total while
// remaining a positive dated entry for the IRR series.
func TestClassify_RecallableAsymmetry(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []model.CashFlowEvent{
		flowEvent(model.CashFlowCapitalCall, 100000, base),
		flowEvent(model.CashFlowDistribution, 60000, base.AddDate(1, 0, 0)),
		flowEvent(model.CashFlowRecallable, 20000, base.AddDate(2, 0, 0)),
	}

	c := Classify(events)

	if c.Distributed != 40000 {
		t.Errorf("Distributed = %v, want 40000", c.Distributed)
	}
	if len(c.SignedSeries) != 3 {
		t.Fatalf("Expected 3 signed entries, got %d", len(c.SignedSeries))
	}
	if c.SignedSeries[2].Amount != 20000 {
		t.Errorf("Recallable signed amount = %v, want +20000", c.SignedSeries[2].Amount)
	}
}

// TestClassify_UnknownTypeIgnored verifies permissive-ignore: a record
// with an unrecognized type contributes nothing anywhere and never
// causes a failure.
func TestClassify_UnknownTypeIgnored(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []model.CashFlowEvent{
		flowEvent(model.CashFlowCapitalCall, 1000, date),
		flowEvent(model.CashFlowType("stock_split"), 999, date),
	}

	c := Classify(events)

	if c.Contributed != 1000 {
		t.Errorf("Contributed = %v, want 1000", c.Contributed)
	}
	if c.Distributed != 0 || c.Fees != 0 {
		t.Errorf("Unknown type leaked into totals: distributed=%v fees=%v", c.Distributed, c.Fees)
	}
	if len(c.SignedSeries) != 1 {
		t.Errorf("Expected 1 signed entry, got %d", len(c.SignedSeries))
	}
}

// TestClassify_Empty returns zeroed totals for no events.
func TestClassify_Empty(t *testing.T) {
	c := Classify(nil)

	if c.Contributed != 0 || c.Distributed != 0 || c.Fees != 0 {
		t.Errorf("Expected zero totals, got %+v", c)
	}
	if len(c.SignedSeries) != 0 {
		t.Errorf("Expected empty signed series, got %d entries", len(c.SignedSeries))
	}
}
