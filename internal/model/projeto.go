package model

import "time"

type StatusProjeto string

const (
	ProjetoEmExecucao StatusProjeto = "em_execucao"
	ProjetoConcluido  StatusProjeto = "concluido"
	ProjetoSuspenso   StatusProjeto = "suspenso"
)

func (s StatusProjeto) Valid() bool {
	switch s {
	case ProjetoEmExecucao, ProjetoConcluido, ProjetoSuspenso:
		return true
	}
	return false
}

type Projeto struct {
	Model
	Titulo                 string        `gorm:"type:varchar(200);not null" json:"titulo"`
	Descricao              string        `gorm:"type:text;not null" json:"descricao"`
	Objetivos              string        `gorm:"type:text;not null" json:"objetivos"`
	ImpactoEsperado        string        `gorm:"type:text;not null" json:"impacto_esperado"`
	Status                 StatusProjeto `gorm:"type:varchar(20);default:em_execucao;not null" json:"status"`
	DataInicio             time.Time     `json:"data_inicio"`
	DataTerminoPrevista    *time.Time    `json:"data_termino_prevista"`
	DataConclusao          *time.Time    `json:"data_conclusao"`
	PropostaOrigemID       uint          `gorm:"uniqueIndex;not null" json:"proposta_origem_id"`
	PropostaOrigem         Proposta      `gorm:"foreignKey:PropostaOrigemID" json:"-"`
	ProfessorResponsavelID *uint         `json:"professor_responsavel_id"`
	ProfessorResponsavel   *Usuario      `gorm:"foreignKey:ProfessorResponsavelID" json:"-"`
}

// ProjetoDTO é a visão completa, com o nome do professor resolvido.
type ProjetoDTO struct {
	ID                     uint          `json:"id"`
	Titulo                 string        `json:"titulo"`
	Descricao              string        `json:"descricao"`
	Objetivos              string        `json:"objetivos"`
	ImpactoEsperado        string        `json:"impacto_esperado"`
	Status                 StatusProjeto `json:"status"`
	DataInicio             time.Time     `json:"data_inicio"`
	DataTerminoPrevista    *time.Time    `json:"data_termino_prevista"`
	DataConclusao          *time.Time    `json:"data_conclusao"`
	PropostaOrigemID       uint          `json:"proposta_origem_id"`
	ProfessorResponsavelID *uint         `json:"professor_responsavel_id"`
	ProfessorNome          string        `json:"professor_nome,omitempty"`
}

func (p *Projeto) DTO() ProjetoDTO {
	dto := ProjetoDTO{
		ID:                     p.ID,
		Titulo:                 p.Titulo,
		Descricao:              p.Descricao,
		Objetivos:              p.Objetivos,
		ImpactoEsperado:        p.ImpactoEsperado,
		Status:                 p.Status,
		DataInicio:             p.DataInicio,
		DataTerminoPrevista:    p.DataTerminoPrevista,
		DataConclusao:          p.DataConclusao,
		PropostaOrigemID:       p.PropostaOrigemID,
		ProfessorResponsavelID: p.ProfessorResponsavelID,
	}
	if p.ProfessorResponsavel != nil {
		dto.ProfessorNome = p.ProfessorResponsavel.NomeCompleto()
	}
	return dto
}

// ProjetoListDTO é a projeção usada em listagens (inclusive a pública).
type ProjetoListDTO struct {
	ID                     uint          `json:"id"`
	Titulo                 string        `json:"titulo"`
	Status                 StatusProjeto `json:"status"`
	DataInicio             time.Time     `json:"data_inicio"`
	ProfessorResponsavelID *uint         `json:"professor_responsavel_id"`
}

func (p *Projeto) ListDTO() ProjetoListDTO {
	return ProjetoListDTO{
		ID:                     p.ID,
		Titulo:                 p.Titulo,
		Status:                 p.Status,
		DataInicio:             p.DataInicio,
		ProfessorResponsavelID: p.ProfessorResponsavelID,
	}
}
