package service

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"docupal-backend/models"
	"docupal-backend/recognize"
)

// ExtractedData holds typed candidate values pulled out of one
// document's recognized text. Kinds with no matches stay nil.
type ExtractedData struct {
	Names       []string `json:"names,omitempty"`
	Dates       []string `json:"dates,omitempty"`
	Addresses   []string `json:"addresses,omitempty"`
	Phones      []string `json:"phones,omitempty"`
	Emails      []string `json:"emails,omitempty"`
	SSNLast4    []string `json:"socialSecurityNumbers,omitempty"`
	CaseNumbers []string `json:"caseNumbers,omitempty"`
}

// ProcessedFile is the per-upload result of recognition + extraction.
// A file whose text could not be recognized keeps its metadata with
// Recognized false and no candidates.
type ProcessedFile struct {
	Filename   string
	MimeType   string
	Size       int64
	Category   models.FileCategory
	Recognized bool
	Text       string
	Data       ExtractedData
}

// Candidate patterns. A name can match more than one pattern; all
// matches are unioned and deduped by exact string, so "John Smith"
// and "John Michael Smith" stay separate candidates.
var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+`), // First Middle Last
		regexp.MustCompile(`[A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+`),     // First M. Last
		regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`),             // First Last
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),   // MM/DD/YYYY
		regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),   // MM-DD-YYYY
		regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),   // YYYY-MM-DD
		regexp.MustCompile(`[A-Z][a-z]+ \d{1,2}, \d{4}`), // Month DD, YYYY
	}

	addressPattern = regexp.MustCompile(`\d+\s+[A-Z][a-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Boulevard|Blvd|Lane|Ln)[,\s]+[A-Z][a-z\s]+[,\s]+[A-Z]{2}\s+\d{5}`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}-\d{4}`), // (555) 123-4567
		regexp.MustCompile(`\d{3}-\d{3}-\d{4}`),       // 555-123-4567
		regexp.MustCompile(`\d{3}\.\d{3}\.\d{4}`),     // 555.123.4567
		regexp.MustCompile(`\d{10}`),                  // 5551234567
	}

	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Only the masked form is ever matched; raw SSNs are never extracted.
	ssnPattern = regexp.MustCompile(`\*{3}-\*{2}-\d{4}`)

	caseNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Case\s+No[:.]\s*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)Docket\s+No[:.]\s*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)File\s+No[:.]\s*([A-Z0-9-]+)`),
	}

	candidateDateLayouts = []string{"1/2/2006", "1-2-2006", "2006-1-2", "January 2, 2006"}
)

// ExtractionService turns recognized text into structured candidate
// values and merges them into case records without overwriting
// anything the user already entered.
type ExtractionService struct {
	recognizer recognize.Recognizer
	now        func() time.Time
}

// ExtractionServiceOption is a functional option for ExtractionService
type ExtractionServiceOption func(*ExtractionService)

// ExtractionWithRecognizer sets the text recognition backend
func ExtractionWithRecognizer(r recognize.Recognizer) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.recognizer = r
	}
}

// ExtractionWithClock sets the time source used for the marriage-date
// window
func ExtractionWithClock(now func() time.Time) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.now = now
	}
}

// NewExtractionService creates a new extraction service
func NewExtractionService(opts ...ExtractionServiceOption) *ExtractionService {
	s := &ExtractionService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractData runs every candidate pattern over one document's text.
// Each kind is deduped by exact string, first occurrence wins.
func (s *ExtractionService) ExtractData(text string) ExtractedData {
	var data ExtractedData

	var names []string
	for _, p := range namePatterns {
		names = append(names, p.FindAllString(text, -1)...)
	}
	data.Names = dedupe(names)

	var dates []string
	for _, p := range datePatterns {
		dates = append(dates, p.FindAllString(text, -1)...)
	}
	data.Dates = dedupe(dates)

	data.Addresses = dedupe(addressPattern.FindAllString(text, -1))

	var phones []string
	for _, p := range phonePatterns {
		phones = append(phones, p.FindAllString(text, -1)...)
	}
	data.Phones = dedupe(phones)

	data.Emails = dedupe(emailPattern.FindAllString(text, -1))
	data.SSNLast4 = dedupe(ssnPattern.FindAllString(text, -1))

	var caseNumbers []string
	for _, p := range caseNumberPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			caseNumbers = append(caseNumbers, m[1])
		}
	}
	data.CaseNumbers = dedupe(caseNumbers)

	return data
}

// ProcessFile recognizes and extracts one upload. Recognition failures
// are absorbed: the file keeps its metadata and inferred category but
// carries no text or candidates.
func (s *ExtractionService) ProcessFile(ctx context.Context, filename, mimeType string, data []byte) ProcessedFile {
	pf := ProcessedFile{
		Filename: filename,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Category: InferCategory(filename),
	}

	if s.recognizer == nil {
		return pf
	}

	text, err := s.recognizer.Recognize(ctx, filename, mimeType, data)
	if err != nil {
		log.Printf("Warning: text recognition failed for %s: %v", filename, err)
		return pf
	}

	pf.Recognized = true
	pf.Text = text
	pf.Data = s.ExtractData(text)
	return pf
}

// ExtractAndMerge fills gaps in record from candidates extracted across
// all files, in file order. Fields the user already filled are never
// touched, and nothing here can fail: at worst a field stays unset.
func (s *ExtractionService) ExtractAndMerge(files []*models.UploadedFile, record models.CaseRecord) models.CaseRecord {
	var names, dates, addresses, phones, emails []string

	for _, f := range files {
		if f == nil || f.ExtractedText == nil {
			continue
		}
		data := s.ExtractData(*f.ExtractedText)
		names = append(names, data.Names...)
		dates = append(dates, data.Dates...)
		addresses = append(addresses, data.Addresses...)
		phones = append(phones, data.Phones...)
		emails = append(emails, data.Emails...)
	}

	names = dedupe(names)
	addresses = dedupe(addresses)

	if record.Petitioner.FullName == "" && len(names) > 0 {
		record.Petitioner.FullName = names[0]
	}
	if record.Petitioner.Address == "" && len(addresses) > 0 {
		record.Petitioner.Address = addresses[0]
	}
	if record.Petitioner.Phone == "" && len(phones) > 0 {
		record.Petitioner.Phone = phones[0]
	}
	if record.Petitioner.Email == "" && len(emails) > 0 {
		record.Petitioner.Email = emails[0]
	}

	if record.Respondent.FullName == "" && len(names) > 1 {
		record.Respondent.FullName = names[1]
	}
	if record.Respondent.Address == "" && len(addresses) > 1 {
		record.Respondent.Address = addresses[1]
	}

	if record.CaseInfo.MarriageDate == "" {
		if date, ok := s.inferMarriageDate(dates); ok {
			record.CaseInfo.MarriageDate = date
		}
	}

	return record
}

// inferMarriageDate picks the first candidate date (in extraction
// order) that parses and falls strictly inside the trailing ten-year
// window, reformatted to YYYY-MM-DD.
func (s *ExtractionService) inferMarriageDate(candidates []string) (string, bool) {
	now := s.now()
	tenYearsAgo := now.AddDate(-10, 0, 0)

	for _, raw := range candidates {
		parsed, ok := parseCandidateDate(raw)
		if !ok {
			continue
		}
		if parsed.After(tenYearsAgo) && parsed.Before(now) {
			return parsed.Format("2006-01-02"), true
		}
	}
	return "", false
}

func parseCandidateDate(raw string) (time.Time, bool) {
	for _, layout := range candidateDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InferCategory guesses a document category from filename keywords
func InferCategory(filename string) models.FileCategory {
	name := strings.ToLower(filename)

	switch {
	case containsAny(name, "license", "id", "passport"):
		return models.FileCategoryIdentity
	case containsAny(name, "marriage", "birth", "death", "court", "order"):
		return models.FileCategoryLegal
	case containsAny(name, "pay", "tax", "bank", "statement", "w2", "1099"):
		return models.FileCategoryFinancial
	case containsAny(name, "deed", "lease", "title", "registration"):
		return models.FileCategoryProperty
	default:
		return models.FileCategoryGeneral
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// dedupe removes exact duplicates preserving first-seen order. Empty
// input collapses to nil so unmatched kinds are omitted entirely.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
