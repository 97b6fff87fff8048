package forms

import (
	"testing"

	"docupal-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 8)

	seen := make(map[string]bool)
	for _, form := range all {
		assert.NotEmpty(t, form.Code)
		assert.NotEmpty(t, form.Name)
		assert.Contains(t, CategoryDisplayNames, form.Category)
		assert.False(t, seen[form.Code], "duplicate form code %s", form.Code)
		seen[form.Code] = true
	}
}

func TestLookup(t *testing.T) {
	form := Lookup("FL-100")
	require.NotNil(t, form)
	assert.Equal(t, "Petition for Dissolution, Legal Separation, or Nullity", form.Name)
	assert.Equal(t, models.CategoryFamily, form.Category)

	assert.Nil(t, Lookup("FL-999"))
	assert.Nil(t, Lookup("fl-100"), "lookup is case-sensitive on the official code")
}

func TestDisplayName(t *testing.T) {
	form := Lookup("SC-100")
	require.NotNil(t, form)
	assert.Equal(t, "SC-100 - Plaintiff's Claim and Order to Go to Small Claims Court", DisplayName(form))
}

func TestCountyTokenRoundTrip(t *testing.T) {
	for _, name := range CaliforniaCounties {
		token := CountyToken(name)
		assert.Equal(t, name, CountyName(token))
		assert.True(t, ValidCounty(token), "token %q", token)
	}
}

func TestCountyToken(t *testing.T) {
	assert.Equal(t, "los-angeles", CountyToken("Los Angeles"))
	assert.Equal(t, "san-luis-obispo", CountyToken(" San Luis Obispo "))
}

func TestCountyNameUnknownToken(t *testing.T) {
	assert.Equal(t, "new york", CountyName("new-york"))
	assert.False(t, ValidCounty("new-york"))
}

func TestValidateCaseRecordFamily(t *testing.T) {
	form := Lookup("FL-100")
	record := &models.CaseRecord{}

	errs := ValidateCaseRecord(record, form)
	assert.Equal(t, []string{
		"Petitioner full name is required",
		"Respondent full name is required",
		"County of filing is required",
	}, errs)

	record.Petitioner.FullName = "John Smith"
	record.Respondent.FullName = "Jane Doe"
	record.CaseInfo.County = "los-angeles"
	assert.Empty(t, ValidateCaseRecord(record, form))
}

func TestValidateCaseRecordNonFamily(t *testing.T) {
	form := Lookup("DE-111")
	record := &models.CaseRecord{}

	errs := ValidateCaseRecord(record, form)
	assert.Equal(t, []string{"Petitioner full name is required"}, errs)

	record.Petitioner.FullName = "John Smith"
	assert.Empty(t, ValidateCaseRecord(record, form))
}
