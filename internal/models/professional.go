package models

import "time"

// Professional é o perfil de quem atende; UserID vem do token emitido externamente
type Professional struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Specialty string    `gorm:"size:100" json:"specialty"`
	Bio       string    `gorm:"size:500" json:"bio"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Timezone  string    `gorm:"size:64" json:"timezone"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
