package model

import "time"

// Asset represents a manually tracked private-markets position from the database.
type Asset struct {
	ID           string    `json:"id"`
	SpaceID      string    `json:"spaceId"`
	Name         string    `json:"name"`
	AssetType    string    `json:"assetType"`
	Currency     string    `json:"currency"`
	CurrentValue float64   `json:"currentValue"`
	IsArchived   bool      `json:"isArchived"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// AssetFilter for querying assets within a space.
type AssetFilter struct {
	Types           []string
	IncludeArchived bool
}

// AssetPosition is the read-only snapshot the performance engine
// consumes: the asset's current valuation plus its full time-ordered
// cash-flow history. The engine never mutates it.
type AssetPosition struct {
	ID           string
	Name         string
	Currency     string
	CurrentValue float64
	Events       []CashFlowEvent
}

// Space represents a tenant boundary. Access checks happen before any
// request reaches the services in this repository.
type Space struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
