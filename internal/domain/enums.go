package domain

// Subject is the fixed set of tutoring subjects a companion can teach.
type Subject string

const (
	SubjectMaths     Subject = "maths"
	SubjectLanguage  Subject = "language"
	SubjectScience   Subject = "science"
	SubjectHistory   Subject = "history"
	SubjectCoding    Subject = "coding"
	SubjectEconomics Subject = "economics"
)

func (s Subject) String() string { return string(s) }

func (s Subject) IsValid() bool {
	switch s {
	case SubjectMaths, SubjectLanguage, SubjectScience, SubjectHistory,
		SubjectCoding, SubjectEconomics:
		return true
	}
	return false
}

// Voice selects the synthesized voice used for the companion's speech.
type Voice string

const (
	VoiceMale   Voice = "male"
	VoiceFemale Voice = "female"
)

func (v Voice) String() string { return string(v) }

func (v Voice) IsValid() bool {
	switch v {
	case VoiceMale, VoiceFemale:
		return true
	}
	return false
}

// Style selects the companion's delivery style.
type Style string

const (
	StyleFormal Style = "formal"
	StyleCasual Style = "casual"
)

func (s Style) String() string { return string(s) }

func (s Style) IsValid() bool {
	switch s {
	case StyleFormal, StyleCasual:
		return true
	}
	return false
}
