// Package carometro turns a submitted Carômetro questionnaire form into a model.Profile.
//
// Repeated record groups (experiences, specialties, achievements) may arrive in two encodings:
//
//	experiences[][description]=A&experiences[][company]=X    parallel lists, zipped by position
//	experiences[0][description]=A&experiences[0][company]=X  explicit per-record index
//
// When any indexed key is present for a group, the indexed encoding wins for that group.
package carometro

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "mentoria/internal/errors"
	"mentoria/internal/model"
)

const (
	fieldDisplayName      = "display_name"
	fieldCurrentRole      = "current_role"
	fieldCompany          = "company"
	fieldStartYearCompany = "start_year_company"
	fieldCity             = "city"
	fieldLinkedIn         = "linkedin"
	fieldNotes            = "notes"
	fieldMaritalStatus    = "marital_status"
	fieldSpouseName       = "spouse_name"
	fieldChildrenNumber   = "children_number"
	fieldChildNamePrefix  = "child_name_"
	fieldChildrenNames    = "children_names"
	fieldPetCount         = "pet_count"
	fieldPetSpeciesList   = "pet_species_list"
	fieldAgreeTerms       = "agree_terms"

	groupExperiences  = "experiences"
	groupSpecialties  = "specialties"
	groupAchievements = "achievements"

	listLeadershipWords = "leadership_words"
	listValues          = "values"
	listHobbies         = "hobbies"
)

// Options tunes how repeated groups are decoded.
type Options struct {
	// StrictGroups rejects parallel lists of unequal length instead of truncating to the shortest.
	StrictGroups bool
}

// Aggregator maps flat form values onto a profile.
type Aggregator struct {
	opts Options
}

// NewAggregator creates a new aggregator.
func NewAggregator(opts Options) *Aggregator {
	return &Aggregator{opts: opts}
}

// Aggregate overwrites every questionnaire field of profile with the submitted form.
// A nil profile starts a new record for userID. The result is not persisted.
func (a *Aggregator) Aggregate(profile *model.Profile, userID uint, form url.Values) (*model.Profile, error) {
	displayName := strings.TrimSpace(form.Get(fieldDisplayName))
	if displayName == "" {
		return nil, apperrors.NewValidationError(fieldDisplayName, "is required")
	}

	experiences, err := a.experiences(form)
	if err != nil {
		return nil, err
	}
	specialties, err := a.specialties(form)
	if err != nil {
		return nil, err
	}
	achievements, err := a.achievements(form)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &model.Profile{}
	}
	profile.UserID = userID

	profile.DisplayName = displayName
	profile.CurrentRole = optionalString(form, fieldCurrentRole)
	profile.Company = optionalString(form, fieldCompany)
	profile.StartYearCompany = optionalSmallInt(form, fieldStartYearCompany)
	profile.City = optionalString(form, fieldCity)
	profile.LinkedIn = optionalString(form, fieldLinkedIn)
	profile.Notes = optionalString(form, fieldNotes)

	profile.Experiences = experiences
	profile.Specialties = specialties
	profile.Achievements = achievements

	profile.LeadershipWords = stringList(form, listLeadershipWords)
	profile.Values = stringList(form, listValues)
	profile.Hobbies = stringList(form, listHobbies)

	var status *model.MaritalStatus
	if s, ok := model.ParseMaritalStatus(form.Get(fieldMaritalStatus)); ok {
		status = &s
	}
	profile.SetMaritalStatus(status, optionalString(form, fieldSpouseName))

	childrenCount := smallInt(form, fieldChildrenNumber)
	profile.SetChildren(childrenCount, childNames(form, childrenCount))

	profile.PetCount = smallInt(form, fieldPetCount)
	profile.PetSpecies = SplitSpecies(form.Get(fieldPetSpeciesList))

	profile.AgreeTerms = model.ParseConsent(form.Get(fieldAgreeTerms))

	return profile, nil
}

func (a *Aggregator) experiences(form url.Values) ([]model.Experience, error) {
	rows, err := a.readGroup(form, groupExperiences, []string{"description", "company", "start_year", "end_year"})
	if err != nil {
		return nil, err
	}
	out := make([]model.Experience, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Experience{
			Description: r["description"],
			Company:     r["company"],
			StartYear:   r["start_year"],
			EndYear:     r["end_year"],
		})
	}
	return out, nil
}

func (a *Aggregator) specialties(form url.Values) ([]model.Specialty, error) {
	rows, err := a.readGroup(form, groupSpecialties, []string{"name", "institution"})
	if err != nil {
		return nil, err
	}
	out := make([]model.Specialty, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Specialty{Name: r["name"], Institution: r["institution"]})
	}
	return out, nil
}

func (a *Aggregator) achievements(form url.Values) ([]model.Achievement, error) {
	rows, err := a.readGroup(form, groupAchievements, []string{"description", "company", "year"})
	if err != nil {
		return nil, err
	}
	out := make([]model.Achievement, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Achievement{Description: r["description"], Company: r["company"], Year: r["year"]})
	}
	return out, nil
}

// childNames collects child_name_1..count and the children_names[] list, dropping blanks.
func childNames(form url.Values, count int16) []string {
	names := make([]string, 0, count)
	for i := 1; i <= int(count); i++ {
		if name := strings.TrimSpace(form.Get(fmt.Sprintf("%s%d", fieldChildNamePrefix, i))); name != "" {
			names = append(names, name)
		}
	}
	for _, name := range stringList(form, fieldChildrenNames) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// SplitSpecies parses a comma-separated species list, trimming and dropping empty tokens.
func SplitSpecies(s string) []string {
	out := []string{}
	for _, token := range strings.Split(s, ",") {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// stringList reads name[] (or bare name) verbatim.
func stringList(form url.Values, name string) []string {
	values, ok := form[name+"[]"]
	if !ok {
		values = form[name]
	}
	return append([]string{}, values...)
}

func optionalString(form url.Values, name string) *string {
	v := strings.TrimSpace(form.Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func optionalSmallInt(form url.Values, name string) *int16 {
	n, err := strconv.ParseInt(strings.TrimSpace(form.Get(name)), 10, 16)
	if err != nil {
		return nil
	}
	v := int16(n)
	return &v
}

// smallInt reads a non-negative count; absent, invalid or negative input yields 0.
func smallInt(form url.Values, name string) int16 {
	n := optionalSmallInt(form, name)
	if n == nil || *n < 0 {
		return 0
	}
	return *n
}
