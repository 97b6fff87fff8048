package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"docupal-backend/models"
	"docupal-backend/recognize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func textFile(text string) *models.UploadedFile {
	return &models.UploadedFile{
		Filename:      "statement.txt",
		MimeType:      "text/plain",
		ExtractedText: &text,
	}
}

func TestExtractData(t *testing.T) {
	s := NewExtractionService()

	text := "Petitioner: John Smith\n" +
		"Respondent: Jane Doe\n" +
		"Date of Marriage: 6/15/2020\n" +
		"Phone: (555) 123-4567\n" +
		"Email: john.smith@example.com\n" +
		"SSN: ***-**-1234\n" +
		"Case No: 24STFL01234\n" +
		"Address: 123 Main Street, Sacramento, CA 95814\n"

	data := s.ExtractData(text)

	require.GreaterOrEqual(t, len(data.Names), 2)
	assert.Equal(t, "John Smith", data.Names[0])
	assert.Equal(t, "Jane Doe", data.Names[1])

	assert.Equal(t, []string{"6/15/2020"}, data.Dates)
	assert.Equal(t, []string{"123 Main Street, Sacramento, CA 95814"}, data.Addresses)
	assert.Equal(t, []string{"(555) 123-4567"}, data.Phones)
	assert.Equal(t, []string{"john.smith@example.com"}, data.Emails)
	assert.Equal(t, []string{"***-**-1234"}, data.SSNLast4)
	assert.Equal(t, []string{"24STFL01234"}, data.CaseNumbers)
}

func TestExtractDataDateFormats(t *testing.T) {
	s := NewExtractionService()

	data := s.ExtractData("Married 6/15/2020, separated 12-01-2023, filed 2024-02-01, served March 3, 2024")

	assert.Equal(t, []string{"6/15/2020", "12-01-2023", "2024-02-01", "March 3, 2024"}, data.Dates)
}

func TestExtractDataDedupesPreservingOrder(t *testing.T) {
	s := NewExtractionService()

	data := s.ExtractData("John Smith and Jane Doe. John Smith signed below.")

	assert.Equal(t, []string{"John Smith", "Jane Doe"}, data.Names)
}

func TestExtractDataEmptyKindsStayNil(t *testing.T) {
	s := NewExtractionService()

	data := s.ExtractData("nothing of interest here")

	assert.Nil(t, data.Names)
	assert.Nil(t, data.Dates)
	assert.Nil(t, data.Addresses)
	assert.Nil(t, data.Phones)
	assert.Nil(t, data.Emails)
	assert.Nil(t, data.SSNLast4)
	assert.Nil(t, data.CaseNumbers)
}

func TestExtractDataNeverMatchesRawSSN(t *testing.T) {
	s := NewExtractionService()

	data := s.ExtractData("SSN: 123-45-6789 and masked ***-**-6789")

	assert.Equal(t, []string{"***-**-6789"}, data.SSNLast4)
}

func TestExtractDataCaseNumberPrefixes(t *testing.T) {
	s := NewExtractionService()

	data := s.ExtractData("Case No: 24STFL01234\nDocket No. CV-2024-100\nFile No: PR-555")

	assert.Equal(t, []string{"24STFL01234", "CV-2024-100", "PR-555"}, data.CaseNumbers)
}

func TestExtractAndMergeFillsOnlyEmptyFields(t *testing.T) {
	s := NewExtractionService(ExtractionWithClock(fixedClock(2024, time.June, 1)))

	files := []*models.UploadedFile{
		textFile("Petitioner: John Smith\nRespondent: Jane Doe\n" +
			"Phone: (555) 123-4567\nEmail: john.smith@example.com\n" +
			"Address: 123 Main Street, Sacramento, CA 95814"),
	}

	record := models.CaseRecord{}
	record.Petitioner.FullName = "Maria Garcia" // user-entered, must survive

	merged := s.ExtractAndMerge(files, record)

	assert.Equal(t, "Maria Garcia", merged.Petitioner.FullName)
	assert.Equal(t, "123 Main Street, Sacramento, CA 95814", merged.Petitioner.Address)
	assert.Equal(t, "(555) 123-4567", merged.Petitioner.Phone)
	assert.Equal(t, "john.smith@example.com", merged.Petitioner.Email)

	// First distinct name still fills the petitioner slot conceptually;
	// since that slot is taken, the second candidate goes to respondent.
	assert.Equal(t, "Jane Doe", merged.Respondent.FullName)
}

func TestExtractAndMergeDedupesAcrossFiles(t *testing.T) {
	s := NewExtractionService(ExtractionWithClock(fixedClock(2024, time.June, 1)))

	files := []*models.UploadedFile{
		textFile("Petitioner: John Smith"),
		textFile("Party: John Smith\nSpouse: Jane Doe"),
	}

	merged := s.ExtractAndMerge(files, models.CaseRecord{})

	assert.Equal(t, "John Smith", merged.Petitioner.FullName)
	assert.Equal(t, "Jane Doe", merged.Respondent.FullName)
}

func TestExtractAndMergeMarriageDateWindow(t *testing.T) {
	s := NewExtractionService(ExtractionWithClock(fixedClock(2024, time.June, 1)))

	// The future hearing date is outside the window; the marriage date
	// is the first candidate that parses and falls within ten years.
	files := []*models.UploadedFile{
		textFile("Hearing scheduled 1/1/2099. Married on 3/10/2021."),
	}

	merged := s.ExtractAndMerge(files, models.CaseRecord{})

	assert.Equal(t, "2021-03-10", merged.CaseInfo.MarriageDate)
}

func TestExtractAndMergeMarriageDateTooOld(t *testing.T) {
	s := NewExtractionService(ExtractionWithClock(fixedClock(2024, time.June, 1)))

	files := []*models.UploadedFile{
		textFile("Married on 6/15/1998."),
	}

	merged := s.ExtractAndMerge(files, models.CaseRecord{})

	assert.Empty(t, merged.CaseInfo.MarriageDate)
}

func TestExtractAndMergeKeepsUserMarriageDate(t *testing.T) {
	s := NewExtractionService(ExtractionWithClock(fixedClock(2024, time.June, 1)))

	record := models.CaseRecord{}
	record.CaseInfo.MarriageDate = "2019-01-01"

	files := []*models.UploadedFile{
		textFile("Married on 3/10/2021."),
	}

	merged := s.ExtractAndMerge(files, record)

	assert.Equal(t, "2019-01-01", merged.CaseInfo.MarriageDate)
}

func TestExtractAndMergeSkipsUnrecognizedFiles(t *testing.T) {
	s := NewExtractionService()

	files := []*models.UploadedFile{
		{Filename: "scan.png", MimeType: "image/png"}, // no extracted text
		nil,
		textFile("Petitioner: John Smith"),
	}

	merged := s.ExtractAndMerge(files, models.CaseRecord{})

	assert.Equal(t, "John Smith", merged.Petitioner.FullName)
}

func TestProcessFileRecognized(t *testing.T) {
	recognizer := recognize.Func(func(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
		return "Contact: alice@example.com", nil
	})
	s := NewExtractionService(ExtractionWithRecognizer(recognizer))

	pf := s.ProcessFile(context.Background(), "bank-statement.pdf", "application/pdf", []byte("%PDF-1.4"))

	assert.True(t, pf.Recognized)
	assert.Equal(t, "Contact: alice@example.com", pf.Text)
	assert.Equal(t, []string{"alice@example.com"}, pf.Data.Emails)
	assert.Equal(t, models.FileCategoryFinancial, pf.Category)
	assert.Equal(t, int64(8), pf.Size)
}

func TestProcessFileAbsorbsRecognitionFailure(t *testing.T) {
	recognizer := recognize.Func(func(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
		return "", errors.New("backend unavailable")
	})
	s := NewExtractionService(ExtractionWithRecognizer(recognizer))

	pf := s.ProcessFile(context.Background(), "marriage-certificate.jpg", "image/jpeg", []byte{0xFF, 0xD8})

	assert.False(t, pf.Recognized)
	assert.Empty(t, pf.Text)
	assert.Empty(t, pf.Data.Names)
	assert.Equal(t, models.FileCategoryLegal, pf.Category)
}

func TestProcessFileWithoutRecognizer(t *testing.T) {
	s := NewExtractionService()

	pf := s.ProcessFile(context.Background(), "notes.pdf", "application/pdf", []byte("%PDF"))

	assert.False(t, pf.Recognized)
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		filename string
		want     models.FileCategory
	}{
		{"drivers-license.pdf", models.FileCategoryIdentity},
		{"passport-scan.jpg", models.FileCategoryIdentity},
		{"marriage-certificate.pdf", models.FileCategoryLegal},
		{"court-order.pdf", models.FileCategoryLegal},
		{"bank-statement.pdf", models.FileCategoryFinancial},
		{"2023-w2.pdf", models.FileCategoryFinancial},
		{"property-deed.pdf", models.FileCategoryProperty},
		{"lease-agreement.pdf", models.FileCategoryProperty},
		{"photo.png", models.FileCategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategory(tt.filename))
		})
	}
}
