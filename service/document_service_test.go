package service

import (
	"testing"
	"time"

	"docupal-backend/forms"
	"docupal-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutLines(p *pageLayout) []string {
	lines := make([]string, 0, len(p.texts))
	for _, op := range p.texts {
		lines = append(lines, op.text)
	}
	return lines
}

func fullRecord() models.CaseRecord {
	record := models.CaseRecord{}
	record.Petitioner.FullName = "John Smith"
	record.Petitioner.Address = "123 Main Street, Sacramento, CA 95814"
	record.Petitioner.Phone = "(555) 123-4567"
	record.Petitioner.Email = "john.smith@example.com"
	record.Respondent.FullName = "Jane Doe"
	record.Respondent.Address = "456 Oak Avenue, Sacramento, CA 95814"
	record.CaseInfo.MarriageDate = "2020-06-15"
	record.CaseInfo.SeparationDate = "2024-01-10"
	record.CaseInfo.County = "san-diego"
	record.HasMinorChildren = true
	record.Children = []models.Child{
		{Name: "Sam Doe", DateOfBirth: "2015-04-01", Gender: models.GenderMale},
		{Name: "Alex Doe"},
	}
	return record
}

func TestGenerateAllFamilyFullSet(t *testing.T) {
	s := NewDocumentService()
	form := forms.Lookup("FL-100")
	require.NotNil(t, form)

	files := []*models.UploadedFile{
		{Filename: "marriage-certificate.pdf", Category: models.FileCategoryLegal, Size: 1536},
	}

	docs, err := s.GenerateAll(form, fullRecord(), files)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, models.DocumentTypePetition, docs[0].Type)
	assert.Equal(t, "FL-100-filled.pdf", docs[0].Filename)
	assert.Equal(t, models.DocumentTypeProofOfService, docs[1].Type)
	assert.Equal(t, "POS-040-proof-of-service.pdf", docs[1].Filename)
	assert.Equal(t, models.DocumentTypeExhibits, docs[2].Type)
	assert.Equal(t, "exhibits-index.pdf", docs[2].Filename)

	for _, doc := range docs {
		assert.True(t, len(doc.Data) > 4, "%s should have content", doc.Filename)
		assert.Equal(t, "%PDF", string(doc.Data[:4]))
		assert.NotEmpty(t, doc.Size)
	}
}

func TestGenerateAllProbatePetitionOnly(t *testing.T) {
	s := NewDocumentService()
	form := forms.Lookup("DE-111")
	require.NotNil(t, form)

	docs, err := s.GenerateAll(form, models.CaseRecord{}, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, models.DocumentTypePetition, docs[0].Type)
	assert.Equal(t, "DE-111-filled.pdf", docs[0].Filename)
}

func TestGenerateAllCriminalPetitionOnly(t *testing.T) {
	s := NewDocumentService()
	form := &models.PetitionForm{
		Code:     "CR-409",
		Name:     "Petition to Seal Arrest Record",
		Category: models.CategoryCriminal,
	}

	docs, err := s.GenerateAll(form, models.CaseRecord{}, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, models.DocumentTypePetition, docs[0].Type)
}

func TestGenerateAllFamilyScenario(t *testing.T) {
	s := NewDocumentService()
	form := forms.Lookup("FL-100")
	require.NotNil(t, form)

	record := models.CaseRecord{}
	record.Petitioner.FullName = "Jane Doe"
	record.Respondent.FullName = "John Doe"
	record.CaseInfo.County = "los-angeles"
	record.HasMinorChildren = true
	record.Children = []models.Child{
		{Name: "Sam Doe", DateOfBirth: "2015-04-01", Gender: models.GenderMale},
	}

	files := []*models.UploadedFile{
		{Filename: "marriage-certificate.pdf", Category: models.FileCategoryLegal, Size: 2048},
	}

	docs, err := s.GenerateAll(form, record, files)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	lines := layoutLines(s.buildPetition(form, &record))
	assert.Contains(t, lines, "COUNTY OF LOS ANGELES")
	assert.Contains(t, lines, "1. Sam Doe - DOB: 2015-04-01 - Gender: male")
}

func TestGenerateAllCivilIncludesProofOfService(t *testing.T) {
	s := NewDocumentService()
	form := forms.Lookup("SC-100")
	require.NotNil(t, form)

	docs, err := s.GenerateAll(form, models.CaseRecord{}, nil)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, models.DocumentTypeProofOfService, docs[1].Type)
}

func TestGenerateAllUnknownForm(t *testing.T) {
	s := NewDocumentService()

	docs, err := s.GenerateAll(nil, models.CaseRecord{}, nil)
	assert.ErrorIs(t, err, ErrUnknownForm)
	assert.Nil(t, docs)
}

func TestPetitionLayoutEmptyRecord(t *testing.T) {
	s := NewDocumentService(DocumentWithClock(func() time.Time {
		return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	}))
	form := forms.Lookup("FL-100")

	layout := s.buildPetition(form, &models.CaseRecord{})

	// Header, two caption lines and the two footer lines; no sections.
	require.Len(t, layout.texts, 5)
	lines := layoutLines(layout)
	assert.Equal(t, "FL-100 - Petition for Dissolution, Legal Separation, or Nullity", lines[0])
	assert.Equal(t, "SUPERIOR COURT OF CALIFORNIA", lines[1])
	assert.Equal(t, "COUNTY OF LOS ANGELES", lines[2])
	assert.Equal(t, "Generated on: 3/5/2024", lines[3])
	assert.Equal(t, "This document was generated by CA Legal Petition Auto-Filler", lines[4])
}

func TestPetitionLayoutSections(t *testing.T) {
	s := NewDocumentService(DocumentWithClock(func() time.Time {
		return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	}))
	form := forms.Lookup("FL-100")
	record := fullRecord()

	lines := layoutLines(s.buildPetition(form, &record))

	assert.Contains(t, lines, "COUNTY OF SAN DIEGO")
	assert.Contains(t, lines, "PETITIONER INFORMATION")
	assert.Contains(t, lines, "Name: John Smith")
	assert.Contains(t, lines, "Address: 123 Main Street, Sacramento, CA 95814")
	assert.Contains(t, lines, "RESPONDENT INFORMATION")
	assert.Contains(t, lines, "Name: Jane Doe")
	assert.Contains(t, lines, "CASE INFORMATION")
	assert.Contains(t, lines, "Date of Marriage: 2020-06-15")
	assert.Contains(t, lines, "Date of Separation: 2024-01-10")
	assert.Contains(t, lines, "MINOR CHILDREN")
	assert.Contains(t, lines, "1. Sam Doe - DOB: 2015-04-01 - Gender: male")
	assert.Contains(t, lines, "2. Alex Doe - DOB: N/A - Gender: N/A")
}

func TestPetitionLayoutRespondentOnlyForFamily(t *testing.T) {
	s := NewDocumentService()
	record := fullRecord()

	lines := layoutLines(s.buildPetition(forms.Lookup("SC-100"), &record))

	assert.NotContains(t, lines, "RESPONDENT INFORMATION")
}

func TestPetitionLayoutChildRowNumbering(t *testing.T) {
	s := NewDocumentService()
	record := fullRecord()
	record.Children = []models.Child{
		{Name: ""},
		{Name: "Alex Doe", DateOfBirth: "2018-09-20", Gender: models.GenderFemale},
	}

	lines := layoutLines(s.buildPetition(forms.Lookup("FL-100"), &record))

	assert.Contains(t, lines, "1. Alex Doe - DOB: 2018-09-20 - Gender: female")
}

func TestProofOfServiceLayoutBlanks(t *testing.T) {
	s := NewDocumentService()
	form := forms.Lookup("FL-100")

	lines := layoutLines(s.buildProofOfService(form, &models.CaseRecord{}))

	assert.Contains(t, lines, "POS-040 - PROOF OF SERVICE BY MAIL")
	assert.Contains(t, lines, "☐ FL-100 - Petition for Dissolution, Legal Separation, or Nullity")
	assert.Contains(t, lines, "Name: _________________________")
	assert.Contains(t, lines, "Address: _________________________")
}

func TestProofOfServiceLayoutFilled(t *testing.T) {
	s := NewDocumentService()
	record := fullRecord()

	lines := layoutLines(s.buildProofOfService(forms.Lookup("FL-100"), &record))

	assert.Contains(t, lines, "Name: Jane Doe")
	assert.Contains(t, lines, "Name: John Smith")
}

func TestExhibitsIndexLayout(t *testing.T) {
	s := NewDocumentService(DocumentWithClock(func() time.Time {
		return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	}))

	files := []*models.UploadedFile{
		{Filename: "marriage-certificate.pdf", Category: models.FileCategoryLegal, Size: 1536},
		{Filename: "a-very-long-scanned-document-filename-from-the-copier.pdf", Size: 0},
	}

	layout := s.buildExhibitsIndex(files)
	lines := layoutLines(layout)

	assert.Contains(t, lines, "EXHIBITS INDEX")
	assert.Contains(t, lines, "A")
	assert.Contains(t, lines, "B")
	assert.Contains(t, lines, "marriage-certificate.pdf")
	assert.Contains(t, lines, "a-very-long-scanned-documen...")
	assert.Contains(t, lines, "legal")
	assert.Contains(t, lines, "General")
	assert.Contains(t, lines, "1.5 KB")
	assert.Contains(t, lines, "0 Bytes")
	assert.Contains(t, lines, "Generated on: 3/5/2024")
	assert.NotContains(t, lines, "This document was generated by CA Legal Petition Auto-Filler")

	require.Len(t, layout.lines, 1)
	assert.Equal(t, 125.0, layout.lines[0].y1)
}

func TestExhibitLabel(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, exhibitLabel(tt.index), "index %d", tt.index)
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short.pdf", truncateName("short.pdf"))
	assert.Equal(t, "exactly-thirty-characters!.pdf", truncateName("exactly-thirty-characters!.pdf"))
	assert.Equal(t, "a-very-long-scanned-documen...",
		truncateName("a-very-long-scanned-document-filename-from-the-copier.pdf"))
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{2359296, "2.25 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes), "%d bytes", tt.bytes)
	}
}
