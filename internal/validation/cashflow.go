package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// ValidCashFlowType contains the allowed cash flow type values.
var ValidCashFlowType = map[string]bool{
	string(model.CashFlowCapitalCall):   true,
	string(model.CashFlowDistribution):  true,
	string(model.CashFlowManagementFee): true,
	string(model.CashFlowCarry):         true,
	string(model.CashFlowRecallable):    true,
}

// ValidateCreateCashFlow validates a cash flow creation request.
//
// Required fields:
//   - type: Must be one of: capital_call, distribution, management_fee, carry, recallable_distribution
//   - amount: Must be non-negative (direction comes from the type)
//   - date: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateCashFlow(req request.CreateCashFlowRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidCashFlowType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Amount < 0.0 {
		errors["amount"] = "amount cannot be negative"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
