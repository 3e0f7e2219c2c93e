package domain

// ShareholderType distinguishes natural from legal persons.
type ShareholderType string

const (
	NaturalPerson ShareholderType = "NATURAL_PERSON"
	LegalPerson   ShareholderType = "LEGAL_PERSON"
)

// IsValid reports whether t is a known shareholder type.
func (t ShareholderType) IsValid() bool {
	return t == NaturalPerson || t == LegalPerson
}

// ContactInfo holds the optional contact details of a shareholder.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Shareholder is a natural or legal person that may hold shares in a tenant.
// It carries no computed state; holdings are derived from positions.
type Shareholder struct {
	ShareholderID  string          `json:"shareholderID"`
	TenantID       string          `json:"tenantID"`
	Name           string          `json:"name"`
	Type           ShareholderType `json:"type"`
	IdentityNumber string          `json:"identityNumber"` // personal or organisation number
	Contact        ContactInfo     `json:"contact"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
