package employee

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no employee matches the id.
var ErrNotFound = errors.New("employee not found")

// NotFoundMessage is the client-facing message for a missing employee.
func NotFoundMessage(id int64) string {
	return fmt.Sprintf("Employee ID %d does not exist!", id)
}
