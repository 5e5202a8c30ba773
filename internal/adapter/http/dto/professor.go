package dto

type ProfessorItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	TaxCode   *string `json:"tax_code,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CreateProfessorRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Email   *string `json:"email" binding:"omitempty,email,max=255"`
	TaxCode *string `json:"tax_code" binding:"omitempty,taxcode"`
}

type UpdateProfessorRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Email   *string `json:"email" binding:"omitempty,email,max=255"`
	TaxCode *string `json:"tax_code" binding:"omitempty,taxcode"`
}
