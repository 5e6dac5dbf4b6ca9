package model

import "time"

type Entrega struct {
	Model
	ProjetoID uint      `gorm:"not null;index" json:"projeto_id"`
	Projeto   Projeto   `gorm:"foreignKey:ProjetoID;constraint:OnDelete:CASCADE" json:"-"`
	Descricao string    `gorm:"type:text;not null" json:"descricao"`
	Arquivo   string    `gorm:"type:varchar(255);not null" json:"arquivo"`
	DataEnvio time.Time `gorm:"autoCreateTime" json:"data_envio"`
}
