package portfolio

import "errors"

// ErrProjectIndex is returned when a project index does not address an
// existing entry.
var ErrProjectIndex = errors.New("project index out of range")

// RemoveProjectAt returns a new slice with the project at index removed.
// Survivors keep their relative order; entries after index shift down by one.
func RemoveProjectAt(projects []Project, index int) ([]Project, error) {
	if index < 0 || index >= len(projects) {
		return nil, ErrProjectIndex
	}
	remaining := make([]Project, 0, len(projects)-1)
	remaining = append(remaining, projects[:index]...)
	remaining = append(remaining, projects[index+1:]...)
	return remaining, nil
}
