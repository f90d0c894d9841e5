package dto

type UpsertProfessionalRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Specialty string `json:"specialty" binding:"max=100"`
	Bio       string `json:"bio" binding:"max=500"`
	Phone     string `json:"phone" binding:"max=20"`
	Timezone  string `json:"timezone"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=255"`
	DurationMin int     `json:"durationMin" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
	IsActive    *bool   `json:"isActive"`
	CategoryID  *uint   `json:"categoryId"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"durationMin,omitempty" binding:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"isActive,omitempty"`
	CategoryID  *uint    `json:"categoryId,omitempty"`
}
