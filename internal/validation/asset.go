package validation

import (
	"fmt"
	"strings"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
)

// ValidAssetType contains the allowed asset type values.
var ValidAssetType = map[string]bool{
	"private_equity": true, "angel": true, "venture": true, "other": true,
}

// ValidateCreateAsset validates an asset creation request.
//
// Required fields:
//   - name: Must be non-empty
//   - assetType: Must be one of: private_equity, angel, venture, other
//   - currency: Must be a 3-letter code
//   - currentValue: Must be non-negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.AssetType) == "" {
		errors["assetType"] = "assetType is required"
	} else if !ValidAssetType[req.AssetType] {
		errors["assetType"] = fmt.Sprintf("invalid type: %s", req.AssetType)
	}

	if len(req.Currency) != 3 {
		errors["currency"] = "currency must be a 3-letter code"
	}

	if req.CurrentValue < 0.0 {
		errors["currentValue"] = "currentValue cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateValuation validates a manual valuation update request.
func ValidateUpdateValuation(req request.UpdateValuationRequest) error {
	if req.CurrentValue < 0.0 {
		return &Error{Fields: map[string]string{
			"currentValue": "currentValue cannot be negative",
		}}
	}

	return nil
}
