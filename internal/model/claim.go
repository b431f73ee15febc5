package model

// PersonalInfo holds the identity facts a claimant self-reports.
// Contact fields are carried for record-keeping but never validated.
type PersonalInfo struct {
	Name        string `json:"name" yaml:"name"`
	DOB         string `json:"dob,omitempty" yaml:"dob,omitempty"` // YYYY-MM-DD or DD/MM/YYYY
	Citizenship string `json:"citizenship,omitempty" yaml:"citizenship,omitempty"`
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
	Gender      string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// DegreeLevel categorizes the claimed qualification
type DegreeLevel string

const (
	DegreeAssociate   DegreeLevel = "associate"
	DegreeBachelor    DegreeLevel = "bachelor"
	DegreeMaster      DegreeLevel = "master"
	DegreeDoctorate   DegreeLevel = "doctorate"
	DegreeCertificate DegreeLevel = "certificate"
	DegreeDiploma     DegreeLevel = "diploma"
	DegreeOther       DegreeLevel = "other"
)

// Season is a graduation season
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// AcademicInfo holds the academic facts a claimant self-reports
type AcademicInfo struct {
	University       string      `json:"university" yaml:"university"`
	DegreeLevel      DegreeLevel `json:"degree_level,omitempty" yaml:"degree_level,omitempty"`
	Major            string      `json:"major,omitempty" yaml:"major,omitempty"`
	StudyMode        string      `json:"study_mode,omitempty" yaml:"study_mode,omitempty"`
	Grade            string      `json:"grade,omitempty" yaml:"grade,omitempty"`
	GraduationYear   string      `json:"graduation_year,omitempty" yaml:"graduation_year,omitempty"` // 4-digit
	GraduationSeason Season      `json:"graduation_season,omitempty" yaml:"graduation_season,omitempty"`
}
