package models

import (
	"database/sql/driver"
	"encoding/json"
)

// Gender represents a child's gender on court forms
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// PetitionerInfo holds the petitioner's personal details.
// Empty string means the field has not been filled in.
type PetitionerInfo struct {
	FullName    string `json:"fullName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// RespondentInfo holds the respondent's personal details
type RespondentInfo struct {
	FullName    string `json:"fullName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Address     string `json:"address,omitempty"`
}

// CaseInfo holds case-level details. County is a lowercase-hyphenated
// token from the California county list (e.g. "los-angeles").
type CaseInfo struct {
	MarriageDate   string `json:"marriageDate,omitempty"`
	SeparationDate string `json:"separationDate,omitempty"`
	County         string `json:"county,omitempty"`
	CaseNumber     string `json:"caseNumber,omitempty"`
}

// Child represents one minor child listed on a petition
type Child struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      Gender `json:"gender,omitempty"`
}

// CaseRecord is the filled-in state for one petition. All fields are
// optional; the renderer skips anything that is empty.
type CaseRecord struct {
	Petitioner       PetitionerInfo `json:"petitioner"`
	Respondent       RespondentInfo `json:"respondent"`
	CaseInfo         CaseInfo       `json:"case"`
	HasMinorChildren bool           `json:"hasMinorChildren"`
	Children         []Child        `json:"children,omitempty"`
}

// Value implements driver.Valuer for JSONB
func (c CaseRecord) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *CaseRecord) Scan(value interface{}) error {
	if value == nil {
		*c = CaseRecord{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*c = CaseRecord{}
		return nil
	}

	return json.Unmarshal(bytes, c)
}

// HasPetitionerData reports whether any petitioner field is filled in
func (c *CaseRecord) HasPetitionerData() bool {
	p := c.Petitioner
	return p.FullName != "" || p.DateOfBirth != "" || p.Address != "" || p.Phone != "" || p.Email != ""
}

// HasRespondentData reports whether any respondent field is filled in
func (c *CaseRecord) HasRespondentData() bool {
	r := c.Respondent
	return r.FullName != "" || r.DateOfBirth != "" || r.Address != ""
}
