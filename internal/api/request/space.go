package request

// CreateSpaceRequest represents the request body for creating a space
type CreateSpaceRequest struct {
	Name string `json:"name"`
}
