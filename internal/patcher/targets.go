package patcher

// DefaultTargets lists the profile section components rewritten by default,
// relative to the web app root.
var DefaultTargets = []string{
	"src/app/[locale]/(app)/case/[caseId]/profile/care-intent-section.tsx",
	"src/app/[locale]/(app)/case/[caseId]/profile/conditions-section.tsx",
	"src/app/[locale]/(app)/case/[caseId]/profile/contacts-section.tsx",
	"src/app/[locale]/(app)/case/[caseId]/profile/measurements-section.tsx",
	"src/app/[locale]/(app)/case/[caseId]/profile/medications-section.tsx",
	"src/app/[locale]/(app)/case/[caseId]/profile/profile-section.tsx",
}

// Targets returns a copy of DefaultTargets.
func Targets() []string {
	out := make([]string, len(DefaultTargets))
	copy(out, DefaultTargets)
	return out
}
