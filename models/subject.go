package models

// Subject identifies one of the fixed curriculum subjects.
type Subject string

const (
	SubjectMaths     Subject = "maths"
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
	SubjectEnglish   Subject = "english"
)

// AllSubjects lists every curriculum subject in display order.
var AllSubjects = []Subject{SubjectMaths, SubjectPhysics, SubjectChemistry, SubjectEnglish}

// ValidSubject reports whether s is part of the fixed subject set.
func ValidSubject(s Subject) bool {
	for _, sub := range AllSubjects {
		if sub == s {
			return true
		}
	}
	return false
}
