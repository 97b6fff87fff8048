// Package forms holds the static catalog of California court forms and
// the helpers around it (county names, caller-side validation).
package forms

import "docupal-backend/models"

// CategoryDisplayNames maps form categories to their display labels
var CategoryDisplayNames = map[models.FormCategory]string{
	models.CategoryFamily:   "Family Law",
	models.CategoryProbate:  "Probate",
	models.CategoryCivil:    "Civil",
	models.CategoryCriminal: "Criminal",
}

// catalog is the full form set, in display order. Loaded once, read-only.
var catalog = []models.PetitionForm{
	{
		ID:                "fl-100",
		Code:              "FL-100",
		Name:              "Petition for Dissolution, Legal Separation, or Nullity",
		Category:          models.CategoryFamily,
		Description:       "This form is used to start a divorce, legal separation, or annulment case in California.",
		EstimatedTime:     "15-30 minutes",
		RequiredDocuments: []string{"ID", "Marriage Certificate"},
		Fields: map[string][]string{
			"petitioner": {"fullName", "dateOfBirth", "address", "phone", "email"},
			"respondent": {"fullName", "dateOfBirth", "address"},
			"case":       {"marriageDate", "separationDate", "county"},
			"children":   {"hasMinorChildren"},
		},
	},
	{
		ID:                "fl-200",
		Code:              "FL-200",
		Name:              "Petition to Establish Parental Relationship",
		Category:          models.CategoryFamily,
		Description:       "This form is used to establish paternity and parental rights.",
		EstimatedTime:     "20-35 minutes",
		RequiredDocuments: []string{"ID", "Birth Certificate"},
		Fields: map[string][]string{
			"petitioner": {"fullName", "dateOfBirth", "address", "phone", "email"},
			"respondent": {"fullName", "dateOfBirth", "address"},
			"children":   {"childName", "childDateOfBirth", "childGender"},
		},
	},
	{
		ID:                "de-111",
		Code:              "DE-111",
		Name:              "Petition for Probate",
		Category:          models.CategoryProbate,
		Description:       "This form is used to open a probate case after someone dies.",
		EstimatedTime:     "25-40 minutes",
		RequiredDocuments: []string{"Death Certificate", "Will", "ID"},
		Fields: map[string][]string{
			"petitioner": {"fullName", "address", "phone", "email"},
			"decedent":   {"fullName", "dateOfDeath", "placeOfDeath"},
			"estate":     {"estimatedValue", "hasWill"},
		},
	},
	{
		ID:                "gc-210",
		Code:              "GC-210",
		Name:              "Petition for Appointment of Guardian of Minor",
		Category:          models.CategoryProbate,
		Description:       "This form is used to request guardianship of a minor child.",
		EstimatedTime:     "30-45 minutes",
		RequiredDocuments: []string{"ID", "Child's Birth Certificate", "Parental Consent"},
		Fields: map[string][]string{
			"petitioner": {"fullName", "dateOfBirth", "address", "phone", "email"},
			"child":      {"fullName", "dateOfBirth", "currentAddress"},
			"parents":    {"motherName", "fatherName", "parentStatus"},
		},
	},
	{
		ID:                "cr-180",
		Code:              "CR-180",
		Name:              "Petition for Dismissal (Expungement)",
		Category:          models.CategoryCivil,
		Description:       "This form is used to request dismissal of a criminal conviction.",
		EstimatedTime:     "15-25 minutes",
		RequiredDocuments: []string{"ID", "Case Information", "Probation Records"},
		Fields: map[string][]string{
			"petitioner": {"fullName", "dateOfBirth", "address", "phone"},
			"case":       {"caseNumber", "convictionDate", "charges", "county"},
		},
	},
	{
		ID:                "sc-100",
		Code:              "SC-100",
		Name:              "Plaintiff's Claim and Order to Go to Small Claims Court",
		Category:          models.CategoryCivil,
		Description:       "This form is used to file a small claims case for amounts up to $10,000.",
		EstimatedTime:     "10-20 minutes",
		RequiredDocuments: []string{"ID", "Supporting Documents", "Proof of Service"},
		Fields: map[string][]string{
			"plaintiff": {"fullName", "address", "phone", "email"},
			"defendant": {"fullName", "address"},
			"claim":     {"amount", "reason", "supportingEvidence"},
		},
	},
	{
		ID:                "mc-410",
		Code:              "MC-410",
		Name:              "Motion to Change or Set Aside Judgment",
		Category:          models.CategoryCivil,
		Description:       "This form is used to request a change to a court judgment.",
		EstimatedTime:     "20-30 minutes",
		RequiredDocuments: []string{"ID", "Original Judgment", "Supporting Evidence"},
		Fields: map[string][]string{
			"movant":  {"fullName", "address", "phone", "email"},
			"case":    {"caseNumber", "judgmentDate", "requestedChange"},
			"grounds": {"legalBasis", "supportingEvidence"},
		},
	},
	{
		ID:                "adopt-200",
		Code:              "ADOPT-200",
		Name:              "Adoption Request",
		Category:          models.CategoryFamily,
		Description:       "This form is used to request adoption of a child.",
		EstimatedTime:     "45-60 minutes",
		RequiredDocuments: []string{"ID", "Child's Birth Certificate", "Home Study Report"},
		Fields: map[string][]string{
			"petitioner": {"fullName", "dateOfBirth", "address", "phone", "email"},
			"child":      {"fullName", "dateOfBirth", "currentAddress"},
			"biological": {"motherName", "fatherName", "consentStatus"},
		},
	},
}

var byCode = func() map[string]*models.PetitionForm {
	m := make(map[string]*models.PetitionForm, len(catalog))
	for i := range catalog {
		m[catalog[i].Code] = &catalog[i]
	}
	return m
}()

// All returns every form in the catalog, in display order
func All() []models.PetitionForm {
	return catalog
}

// Lookup returns the form with the given code, or nil if unknown
func Lookup(code string) *models.PetitionForm {
	return byCode[code]
}

// DisplayName returns the "CODE - Name" label used throughout the UI
func DisplayName(form *models.PetitionForm) string {
	return form.Code + " - " + form.Name
}
