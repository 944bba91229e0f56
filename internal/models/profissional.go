package models

import "time"

// Profissional autenticável (tatuador) dono de um conjunto de fichas.
// A senha é guardada em texto puro por paridade com o sistema legado.
// Fraqueza conhecida e documentada; o campo nunca é serializado.
type Profissional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Senha    string `gorm:"size:100;not null" json:"-"`
	Telefone string `gorm:"size:20" json:"telefone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profissional) TableName() string {
	return "profissional_anamnese"
}
