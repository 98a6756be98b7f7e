package validation

import (
	"errors"
	"testing"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
)

func TestValidateCreateCashFlow(t *testing.T) {
	tests := []struct {
		name      string
		req       request.CreateCashFlowRequest
		wantField string
	}{
		{
			name: "valid capital call",
			req:  request.CreateCashFlowRequest{Type: "capital_call", Amount: 50000, Date: "2023-01-15"},
		},
		{
			name: "valid recallable distribution",
			req:  request.CreateCashFlowRequest{Type: "recallable_distribution", Amount: 10000, Date: "2024-06-30"},
		},
		{
			name:      "unknown type",
			req:       request.CreateCashFlowRequest{Type: "wire_transfer", Amount: 100, Date: "2023-01-15"},
			wantField: "type",
		},
		{
			name:      "missing type",
			req:       request.CreateCashFlowRequest{Amount: 100, Date: "2023-01-15"},
			wantField: "type",
		},
		{
			name:      "negative amount",
			req:       request.CreateCashFlowRequest{Type: "distribution", Amount: -5, Date: "2023-01-15"},
			wantField: "amount",
		},
		{
			name: "zero amount allowed",
			req:  request.CreateCashFlowRequest{Type: "management_fee", Amount: 0, Date: "2023-01-15"},
		},
		{
			name:      "bad date format",
			req:       request.CreateCashFlowRequest{Type: "carry", Amount: 100, Date: "15-01-2023"},
			wantField: "date",
		},
		{
			name:      "missing date",
			req:       request.CreateCashFlowRequest{Type: "carry", Amount: 100},
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateCashFlow(tt.req)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var vErr *Error
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation Error, got %v", err)
			}
			if _, ok := vErr.Fields[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, vErr.Fields)
			}
		})
	}
}

func TestValidateCreateAsset(t *testing.T) {
	tests := []struct {
		name      string
		req       request.CreateAssetRequest
		wantField string
	}{
		{
			name: "valid asset",
			req:  request.CreateAssetRequest{Name: "Acme Fund II", AssetType: "private_equity", Currency: "EUR", CurrentValue: 100000},
		},
		{
			name:      "missing name",
			req:       request.CreateAssetRequest{AssetType: "angel", Currency: "USD"},
			wantField: "name",
		},
		{
			name:      "invalid asset type",
			req:       request.CreateAssetRequest{Name: "X", AssetType: "crypto", Currency: "USD"},
			wantField: "assetType",
		},
		{
			name:      "bad currency",
			req:       request.CreateAssetRequest{Name: "X", AssetType: "other", Currency: "EURO"},
			wantField: "currency",
		},
		{
			name:      "negative valuation",
			req:       request.CreateAssetRequest{Name: "X", AssetType: "venture", Currency: "USD", CurrentValue: -1},
			wantField: "currentValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateAsset(tt.req)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var vErr *Error
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation Error, got %v", err)
			}
			if _, ok := vErr.Fields[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, vErr.Fields)
			}
		})
	}
}
