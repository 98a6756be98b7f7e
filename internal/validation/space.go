package validation

import (
	"strings"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
)

// ValidateCreateSpace validates a space creation request.
func ValidateCreateSpace(req request.CreateSpaceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &Error{Fields: map[string]string{
			"name": "name is required",
		}}
	}

	return nil
}
