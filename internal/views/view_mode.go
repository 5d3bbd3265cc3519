package views

// ViewMode is the vegetables page layout.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// ParseViewMode falls back to grid for anything unrecognised.
func ParseViewMode(value string) ViewMode {
	if ViewMode(value) == ViewModeList {
		return ViewModeList
	}
	return ViewModeGrid
}
