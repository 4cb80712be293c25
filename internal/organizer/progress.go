package organizer

// ProgressReporter receives per-file progress. current is 1-based and reaches
// total after the last file.
type ProgressReporter interface {
	Report(current, total int)
}

// ProgressFunc adapts a plain function to ProgressReporter.
type ProgressFunc func(current, total int)

func (f ProgressFunc) Report(current, total int) {
	f(current, total)
}

// Percent converts a progress pair to a 0-100 integer percentage.
func Percent(current, total int) int {
	if total <= 0 {
		return 0
	}
	return current * 100 / total
}
