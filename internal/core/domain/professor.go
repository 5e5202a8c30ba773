package domain

import (
	"regexp"
	"strings"
	"time"
)

var taxCodePattern = regexp.MustCompile(`^[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9]{3}[A-Z]$`)

type Professor struct {
	ID        string
	UserID    string
	Name      string
	Email     *string
	TaxCode   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateProfessorInput struct {
	Name    string
	Email   *string
	TaxCode *string
}

type UpdateProfessorInput struct {
	Name       *string
	Email      *string
	EmailSet   bool
	TaxCode    *string
	TaxCodeSet bool
}

// NormalizeTaxCode upper-cases and trims a fiscal code.
func NormalizeTaxCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidTaxCode reports whether code has the shape of an Italian fiscal code
// once normalized.
func ValidTaxCode(code string) bool {
	return taxCodePattern.MatchString(NormalizeTaxCode(code))
}
