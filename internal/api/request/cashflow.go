package request

// CreateCashFlowRequest represents the request body for recording a
// cash flow event against an asset. Amount is a non-negative
// magnitude; the type determines its direction.
type CreateCashFlowRequest struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Note   string  `json:"note,omitempty"`
}
