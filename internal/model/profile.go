package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaritalStatus is the closed set of marital states a profile may declare.
type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "Single"
	MaritalEngaged MaritalStatus = "Engaged"
	MaritalMarried MaritalStatus = "Married"
)

// ParseMaritalStatus accepts the canonical values and the Portuguese form labels.
func ParseMaritalStatus(s string) (MaritalStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "solteiro", "solteira":
		return MaritalSingle, true
	case "engaged", "noivo", "noiva":
		return MaritalEngaged, true
	case "married", "casado", "casada":
		return MaritalMarried, true
	default:
		return "", false
	}
}

// AllowsSpouse reports whether a spouse name is meaningful for the status.
func (m MaritalStatus) AllowsSpouse() bool {
	return m == MaritalEngaged || m == MaritalMarried
}

// Consent records explicit agreement to the platform terms.
type Consent bool

// ConsentAffirmative is the only submitted value that counts as agreement.
const ConsentAffirmative = "on"

// ParseConsent returns true only for the affirmative sentinel.
func ParseConsent(v string) Consent {
	return Consent(v == ConsentAffirmative)
}

// Experience is one entry of the professional history.
type Experience struct {
	Description string `json:"description"`
	Company     string `json:"company"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
}

// Specialty is a course or specialization.
type Specialty struct {
	Name        string `json:"name"`
	Institution string `json:"institution"`
}

// Achievement is a notable professional accomplishment.
type Achievement struct {
	Description string `json:"description"`
	Company     string `json:"company"`
	Year        string `json:"year"`
}

// Profile is the Carômetro questionnaire, one per user.
type Profile struct {
	ID     uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`

	DisplayName      string  `json:"display_name" gorm:"size:100;not null"`
	CurrentRole      *string `json:"current_role" gorm:"size:150"`
	Company          *string `json:"company" gorm:"size:150"`
	StartYearCompany *int16  `json:"start_year_company" gorm:"type:smallint"`
	City             *string `json:"city" gorm:"size:100"`
	LinkedIn         *string `json:"linkedin" gorm:"column:linkedin;size:255"`

	Experiences     datatypes.JSONSlice[Experience]  `json:"experiences" gorm:"column:experiences_json"`
	Specialties     datatypes.JSONSlice[Specialty]   `json:"specialties" gorm:"column:specialties_json"`
	Achievements    datatypes.JSONSlice[Achievement] `json:"achievements" gorm:"column:achievements_json"`
	LeadershipWords datatypes.JSONSlice[string]      `json:"leadership_words" gorm:"column:leadership_words_json"`
	Values          datatypes.JSONSlice[string]      `json:"values" gorm:"column:values_json"`
	Hobbies         datatypes.JSONSlice[string]      `json:"hobbies" gorm:"column:hobbies_json"`

	MaritalStatus  *MaritalStatus              `json:"marital_status" gorm:"type:enum('Single','Engaged','Married')"`
	SpouseName     *string                     `json:"spouse_name" gorm:"size:150"`
	ChildrenNumber int16                       `json:"children_number" gorm:"type:smallint;not null;default:0"`
	ChildrenNames  datatypes.JSONSlice[string] `json:"children_names" gorm:"column:children_names_json"`
	PetCount       int16                       `json:"pet_count" gorm:"type:smallint;not null;default:0"`
	PetSpecies     datatypes.JSONSlice[string] `json:"pet_species" gorm:"column:pet_species_json"`

	AgreeTerms Consent `json:"agree_terms" gorm:"not null;default:false"`
	Notes      *string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name used by the existing deployment.
func (Profile) TableName() string { return "tbl_carometro" }

// SetMaritalStatus stores the status and couples the spouse name to it:
// the spouse is dropped unless the status allows one.
func (p *Profile) SetMaritalStatus(status *MaritalStatus, spouse *string) {
	p.MaritalStatus = status
	if status == nil || !status.AllowsSpouse() || spouse == nil {
		p.SpouseName = nil
		return
	}
	p.SpouseName = spouse
}

// SetChildren stores the declared count and at most that many names.
func (p *Profile) SetChildren(count int16, names []string) {
	if count < 0 {
		count = 0
	}
	if len(names) > int(count) {
		names = names[:count]
	}
	p.ChildrenNumber = count
	p.ChildrenNames = names
}

// BeforeSave re-applies the personal-life invariants on every write.
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	p.SetMaritalStatus(p.MaritalStatus, p.SpouseName)
	p.SetChildren(p.ChildrenNumber, p.ChildrenNames)
	if p.PetCount < 0 {
		p.PetCount = 0
	}
	return nil
}
