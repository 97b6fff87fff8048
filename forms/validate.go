package forms

import "docupal-backend/models"

// ValidateCaseRecord checks required fields for a form before document
// generation. This is the caller-side check: the renderer itself accepts
// incomplete records and leaves out whatever is missing.
func ValidateCaseRecord(record *models.CaseRecord, form *models.PetitionForm) []string {
	var errs []string

	if record.Petitioner.FullName == "" {
		errs = append(errs, "Petitioner full name is required")
	}

	if form.Category == models.CategoryFamily {
		if record.Respondent.FullName == "" {
			errs = append(errs, "Respondent full name is required")
		}
		if record.CaseInfo.County == "" {
			errs = append(errs, "County of filing is required")
		}
	}

	return errs
}
