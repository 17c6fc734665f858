package riot

import "fmt"

// ErrNotFound is returned when the Riot API answers 404 for a resource.
var ErrNotFound = fmt.Errorf("not found")

// APIError carries a non-200 upstream response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api status %d: %s", e.Status, e.Body)
}
