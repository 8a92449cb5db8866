package app

// Screen represents the current view in the compose flow
type Screen int

const (
	ScreenTypeSelect Screen = iota
	ScreenScopeInput
	ScreenSubjectInput
	ScreenBodyInput
	ScreenBreakingInput
	ScreenPreview
)

func (s Screen) String() string {
	names := []string{
		"TypeSelect",
		"ScopeInput",
		"SubjectInput",
		"BodyInput",
		"BreakingInput",
		"Preview",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
