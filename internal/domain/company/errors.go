package company

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no company matches the id.
var ErrNotFound = errors.New("company not found")

// NotFoundMessage is the client-facing message for a missing company.
func NotFoundMessage(id int64) string {
	return fmt.Sprintf("Company ID %d does not exist!", id)
}
