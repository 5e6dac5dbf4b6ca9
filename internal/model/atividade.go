package model

import "time"

type StatusAtividade string

const (
	AtividadePendente  StatusAtividade = "pendente"
	AtividadeConcluida StatusAtividade = "concluida"
)

func (s StatusAtividade) Valid() bool {
	return s == AtividadePendente || s == AtividadeConcluida
}

type Atividade struct {
	Model
	ProjetoID    uint            `gorm:"not null;index" json:"projeto_id"`
	Projeto      Projeto         `gorm:"foreignKey:ProjetoID;constraint:OnDelete:CASCADE" json:"-"`
	Descricao    string          `gorm:"type:text;not null" json:"descricao"`
	Status       StatusAtividade `gorm:"type:varchar(20);default:pendente;not null" json:"status"`
	DataRegistro time.Time       `gorm:"autoCreateTime" json:"data_registro"`
}
