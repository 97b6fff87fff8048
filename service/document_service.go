package service

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"docupal-backend/forms"
	"docupal-backend/models"

	"github.com/go-pdf/fpdf"
)

var (
	ErrUnknownForm      = errors.New("unknown petition form")
	ErrGenerationFailed = errors.New("document generation failed")
)

// GeneratedDocument is one rendered PDF, ready for storage or download
type GeneratedDocument struct {
	Type     models.DocumentType
	Filename string
	Data     []byte
	Size     string // human-readable, e.g. "1.5 KB"
}

// Page geometry in points (US letter)
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	leftMargin = 50.0
	lineHeight = 20.0
)

var (
	colorHeading = [3]int{28, 64, 184} // legal blue
	colorBody    = [3]int{0, 0, 0}
	colorFooter  = [3]int{128, 128, 128}
)

// textOp is one positioned text run. Coordinates are measured from the
// top-left corner of the page.
type textOp struct {
	x, y  float64
	size  float64
	color [3]int
	text  string
}

// lineOp is one positioned rule
type lineOp struct {
	x1, y1, x2, y2 float64
	width          float64
}

// pageLayout is the ordered draw-instruction list for a single page.
// Layouts are built first, then rendered, so the content and placement
// logic stays independent of the PDF backend.
type pageLayout struct {
	texts []textOp
	lines []lineOp
}

func (p *pageLayout) text(x, y, size float64, color [3]int, text string) {
	p.texts = append(p.texts, textOp{x: x, y: y, size: size, color: color, text: text})
}

func (p *pageLayout) rule(x1, y1, x2, y2, width float64) {
	p.lines = append(p.lines, lineOp{x1: x1, y1: y1, x2: x2, y2: y2, width: width})
}

// DocumentService renders the filled PDF document set for a submission.
// It performs no I/O and holds no state across calls; generation is
// all-or-nothing.
type DocumentService struct {
	now func() time.Time
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocumentWithClock sets the time source used for footer timestamps
func DocumentWithClock(now func() time.Time) DocumentServiceOption {
	return func(s *DocumentService) {
		s.now = now
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateAll produces the document set for a submission: the petition
// always, proof of service for family and civil forms, and the exhibits
// index when supporting documents were uploaded. Any rendering failure
// aborts the whole batch; no partial set is returned.
func (s *DocumentService) GenerateAll(form *models.PetitionForm, record models.CaseRecord, files []*models.UploadedFile) ([]GeneratedDocument, error) {
	if form == nil {
		return nil, ErrUnknownForm
	}

	var documents []GeneratedDocument

	petition, err := s.renderDocument(models.DocumentTypePetition, form.Code+"-filled.pdf", s.buildPetition(form, &record))
	if err != nil {
		return nil, err
	}
	documents = append(documents, petition)

	if form.Category == models.CategoryFamily || form.Category == models.CategoryCivil {
		pos, err := s.renderDocument(models.DocumentTypeProofOfService, "POS-040-proof-of-service.pdf", s.buildProofOfService(form, &record))
		if err != nil {
			return nil, err
		}
		documents = append(documents, pos)
	}

	if len(files) > 0 {
		exhibits, err := s.renderDocument(models.DocumentTypeExhibits, "exhibits-index.pdf", s.buildExhibitsIndex(files))
		if err != nil {
			return nil, err
		}
		documents = append(documents, exhibits)
	}

	return documents, nil
}

// buildPetition lays out the main petition page. Sections appear only
// when their source data is filled in; an empty record still yields a
// valid page with just the header, caption and footer.
func (s *DocumentService) buildPetition(form *models.PetitionForm, record *models.CaseRecord) *pageLayout {
	p := &pageLayout{}

	p.text(leftMargin, 50, 16, colorHeading, forms.DisplayName(form))
	s.caption(p, record)

	y := 150.0

	if record.HasPetitionerData() {
		p.text(leftMargin, y, 14, colorHeading, "PETITIONER INFORMATION")
		y += 30
		y = s.field(p, y, "Name", record.Petitioner.FullName)
		y = s.field(p, y, "Address", record.Petitioner.Address)
		y = s.field(p, y, "Phone", record.Petitioner.Phone)
		y = s.field(p, y, "Email", record.Petitioner.Email)
	}

	if form.Category == models.CategoryFamily && record.HasRespondentData() {
		y += 20
		p.text(leftMargin, y, 14, colorHeading, "RESPONDENT INFORMATION")
		y += 30
		y = s.field(p, y, "Name", record.Respondent.FullName)
		y = s.field(p, y, "Address", record.Respondent.Address)
	}

	if record.CaseInfo.MarriageDate != "" || record.CaseInfo.SeparationDate != "" {
		y += 20
		p.text(leftMargin, y, 14, colorHeading, "CASE INFORMATION")
		y += 30
		y = s.field(p, y, "Date of Marriage", record.CaseInfo.MarriageDate)
		y = s.field(p, y, "Date of Separation", record.CaseInfo.SeparationDate)
	}

	if record.HasMinorChildren && len(record.Children) > 0 {
		named := 0
		for _, child := range record.Children {
			if child.Name != "" {
				named++
			}
		}
		if named > 0 {
			y += 20
			p.text(leftMargin, y, 14, colorHeading, "MINOR CHILDREN")
			y += 30
			row := 0
			for _, child := range record.Children {
				if child.Name == "" {
					continue
				}
				row++
				p.text(leftMargin, y, 10, colorBody, fmt.Sprintf("%d. %s - DOB: %s - Gender: %s",
					row, child.Name, orNA(child.DateOfBirth), orNA(string(child.Gender))))
				y += lineHeight
			}
		}
	}

	s.footer(p, true)
	return p
}

// buildProofOfService lays out the POS-040 proof-of-service-by-mail
// page. Missing respondent or server details fall back to blank lines
// for handwritten completion.
func (s *DocumentService) buildProofOfService(form *models.PetitionForm, record *models.CaseRecord) *pageLayout {
	const blank = "_________________________"

	p := &pageLayout{}

	p.text(leftMargin, 50, 16, colorHeading, "POS-040 - PROOF OF SERVICE BY MAIL")
	s.caption(p, record)

	y := 150.0
	p.text(leftMargin, y, 12, colorBody, "I served the following documents:")
	y += 30
	p.text(70, y, 10, colorBody, "☐ "+forms.DisplayName(form))

	y += 40
	p.text(leftMargin, y, 12, colorBody, "Person served:")
	y += 25
	p.text(70, y, 10, colorBody, "Name: "+orBlank(record.Respondent.FullName, blank))
	y += lineHeight
	p.text(70, y, 10, colorBody, "Address: "+orBlank(record.Respondent.Address, blank))

	y += 40
	p.text(leftMargin, y, 10, colorBody, "Date of service: _________________")

	y += 30
	p.text(leftMargin, y, 12, colorBody, "Method of service:")
	y += 25
	p.text(70, y, 10, colorBody, "☐ By mail to the address shown above")
	y += lineHeight
	p.text(70, y, 10, colorBody, "☐ Personal service")

	y += 60
	p.text(leftMargin, y, 12, colorBody, "Server information:")
	y += 25
	p.text(70, y, 10, colorBody, "Name: "+orBlank(record.Petitioner.FullName, blank))
	y += lineHeight
	p.text(70, y, 10, colorBody, "Address: "+orBlank(record.Petitioner.Address, blank))

	y += 40
	p.text(70, y, 10, colorBody, "Signature: _________________________     Date: _________")

	return p
}

// buildExhibitsIndex lays out the tabular index of uploaded documents.
// Exhibit labels run A..Z and continue AA, AB, ... past 26 files.
func (s *DocumentService) buildExhibitsIndex(files []*models.UploadedFile) *pageLayout {
	p := &pageLayout{}

	p.text(leftMargin, 50, 16, colorHeading, "EXHIBITS INDEX")
	p.text(leftMargin, 80, 12, colorBody, "Supporting Documents for Legal Petition")

	y := 120.0
	p.text(leftMargin, y, 12, colorBody, "Exhibit")
	p.text(120, y, 12, colorBody, "Document Name")
	p.text(350, y, 12, colorBody, "Category")
	p.text(450, y, 12, colorBody, "Size")
	p.rule(leftMargin, y+5, 550, y+5, 1)

	y += 25
	for i, file := range files {
		p.text(leftMargin, y, 10, colorBody, exhibitLabel(i))
		p.text(120, y, 10, colorBody, truncateName(file.Filename))
		p.text(350, y, 10, colorBody, categoryLabel(file.Category))
		p.text(450, y, 10, colorBody, FormatFileSize(file.Size))
		y += lineHeight
	}

	s.footer(p, false)
	return p
}

func (s *DocumentService) caption(p *pageLayout, record *models.CaseRecord) {
	county := record.CaseInfo.County
	if county == "" {
		county = "los-angeles"
	}
	p.text(leftMargin, 80, 12, colorBody, "SUPERIOR COURT OF CALIFORNIA")
	p.text(leftMargin, 100, 12, colorBody, "COUNTY OF "+strings.ToUpper(forms.CountyName(county)))
}

func (s *DocumentService) footer(p *pageLayout, attribution bool) {
	p.text(leftMargin, pageHeight-50, 8, colorFooter, "Generated on: "+s.now().Format("1/2/2006"))
	if attribution {
		p.text(leftMargin, pageHeight-35, 8, colorFooter, "This document was generated by CA Legal Petition Auto-Filler")
	}
}

// field emits one "Label: value" line and advances the cursor; absent
// values emit nothing at all.
func (s *DocumentService) field(p *pageLayout, y float64, label, value string) float64 {
	if value == "" {
		return y
	}
	p.text(leftMargin, y, 10, colorBody, label+": "+value)
	return y + lineHeight
}

// renderDocument turns a layout into PDF bytes via fpdf
func (s *DocumentService) renderDocument(docType models.DocumentType, filename string, layout *pageLayout) (GeneratedDocument, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, op := range layout.texts {
		pdf.SetFont("Helvetica", "", op.size)
		pdf.SetTextColor(op.color[0], op.color[1], op.color[2])
		pdf.Text(op.x, op.y, tr(op.text))
	}
	for _, op := range layout.lines {
		pdf.SetLineWidth(op.width)
		pdf.SetDrawColor(0, 0, 0)
		pdf.Line(op.x1, op.y1, op.x2, op.y2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return GeneratedDocument{}, fmt.Errorf("%w: render %s: %v", ErrGenerationFailed, docType, err)
	}

	data := buf.Bytes()
	return GeneratedDocument{
		Type:     docType,
		Filename: filename,
		Data:     data,
		Size:     FormatFileSize(int64(len(data))),
	}, nil
}

// exhibitLabel converts a zero-based index to an alphabetic label:
// 0 -> A, 25 -> Z, 26 -> AA, 27 -> AB, ...
func exhibitLabel(index int) string {
	label := ""
	n := index + 1
	for n > 0 {
		n--
		label = string(rune('A'+n%26)) + label
		n /= 26
	}
	return label
}

// truncateName shortens long filenames to 27 characters plus ellipsis
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= 30 {
		return name
	}
	return string(runes[:27]) + "..."
}

func categoryLabel(category models.FileCategory) string {
	if category == "" {
		return "General"
	}
	return string(category)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func orBlank(v, blank string) string {
	if v == "" {
		return blank
	}
	return v
}

// FormatFileSize renders a byte count as a binary-scaled human-readable
// string: "0 Bytes", "512 Bytes", "1.5 KB", "2.25 MB". Two decimal
// places at most, trailing zeros trimmed.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
