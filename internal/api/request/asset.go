package request

// CreateAssetRequest represents the request body for creating an asset
type CreateAssetRequest struct {
	Name         string  `json:"name"`
	AssetType    string  `json:"assetType"`
	Currency     string  `json:"currency"`
	CurrentValue float64 `json:"currentValue"`
}

// UpdateValuationRequest represents the request body for recording a
// fresh manual valuation on an asset
type UpdateValuationRequest struct {
	CurrentValue float64 `json:"currentValue"`
}
