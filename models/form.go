package models

// FormCategory represents the court division a form belongs to
type FormCategory string

const (
	CategoryFamily   FormCategory = "family"
	CategoryProbate  FormCategory = "probate"
	CategoryCivil    FormCategory = "civil"
	CategoryCriminal FormCategory = "criminal"
)

// PetitionForm describes one California court form. The catalog of
// forms is static: loaded once at startup and never mutated.
type PetitionForm struct {
	ID                string              `json:"id"`
	Code              string              `json:"code"`
	Name              string              `json:"name"`
	Category          FormCategory        `json:"category"`
	Description       string              `json:"description"`
	EstimatedTime     string              `json:"estimated_time"`
	RequiredDocuments []string            `json:"required_documents"`
	Fields            map[string][]string `json:"fields"`
}
