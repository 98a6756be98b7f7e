package model

import "time"

// CashFlowType enumerates the recognized cash-flow record types.
// Unrecognized values are tolerated by the performance engine and
// contribute nothing to any total.
type CashFlowType string

// Recognized cash-flow types.
const (
	CashFlowCapitalCall   CashFlowType = "capital_call"
	CashFlowDistribution  CashFlowType = "distribution"
	CashFlowManagementFee CashFlowType = "management_fee"
	CashFlowCarry         CashFlowType = "carry"
	CashFlowRecallable    CashFlowType = "recallable"
)

// CashFlowEvent represents a single dated cash movement on an asset.
// Amount is always a non-negative magnitude; the direction of the flow
// is derived from Type, never stored as a negative amount.
type CashFlowEvent struct {
	ID        string       `json:"id"`
	AssetID   string       `json:"assetId"`
	Type      CashFlowType `json:"type"`
	Amount    float64      `json:"amount"`
	Date      time.Time    `json:"date"`
	Note      string       `json:"note,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
}
