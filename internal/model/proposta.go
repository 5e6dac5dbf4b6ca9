package model

import "time"

// StatusProposta acompanha a máquina de estados da revisão:
// em_analise -> aprovada | rejeitada. Estados decididos são finais.
type StatusProposta string

const (
	PropostaEnviada   StatusProposta = "enviada"
	PropostaEmAnalise StatusProposta = "em_analise"
	PropostaAprovada  StatusProposta = "aprovada"
	PropostaRejeitada StatusProposta = "rejeitada"
)

func (s StatusProposta) Valid() bool {
	switch s {
	case PropostaEnviada, PropostaEmAnalise, PropostaAprovada, PropostaRejeitada:
		return true
	}
	return false
}

// Terminal informa se a proposta já foi decidida.
func (s StatusProposta) Terminal() bool {
	return s == PropostaAprovada || s == PropostaRejeitada
}

// PodeDecidir valida a transição para um estado terminal.
func (s StatusProposta) PodeDecidir(alvo StatusProposta) bool {
	if s.Terminal() {
		return false
	}
	return alvo == PropostaAprovada || alvo == PropostaRejeitada
}

type Proposta struct {
	Model
	Titulo           string         `gorm:"type:varchar(200);not null" json:"titulo"`
	Descricao        string         `gorm:"type:text;not null" json:"descricao"`
	ProblemaResolver string         `gorm:"type:text;not null" json:"problema_resolver"`
	PublicoAlvo      string         `gorm:"type:text;not null" json:"publico_alvo"`
	RelevanciaSocial string         `gorm:"type:text;not null" json:"relevancia_social"`
	Documento        string         `gorm:"type:varchar(255)" json:"documento"`
	Status           StatusProposta `gorm:"type:varchar(20);default:em_analise;not null" json:"status"`
	DataSubmissao    time.Time      `gorm:"autoCreateTime" json:"data_submissao"`
	UsuarioID        uint           `gorm:"not null;index" json:"usuario_id"`
	Usuario          Usuario        `gorm:"foreignKey:UsuarioID" json:"-"`
}

// NovoProjeto deriva o projeto da proposta aprovada. Os campos são
// copiados no momento da aprovação e não são mais sincronizados.
func (p *Proposta) NovoProjeto(dataInicio time.Time) *Projeto {
	return &Projeto{
		Titulo:           p.Titulo,
		Descricao:        p.Descricao,
		Objetivos:        p.ProblemaResolver,
		ImpactoEsperado:  p.RelevanciaSocial,
		Status:           ProjetoEmExecucao,
		DataInicio:       dataInicio,
		PropostaOrigemID: p.ID,
	}
}

// PropostaListDTO é a projeção usada na listagem.
type PropostaListDTO struct {
	ID            uint           `json:"id"`
	Titulo        string         `json:"titulo"`
	Status        StatusProposta `json:"status"`
	DataSubmissao time.Time      `json:"data_submissao"`
	UsuarioNome   string         `json:"usuario_nome"`
}

func (p *Proposta) ListDTO() PropostaListDTO {
	return PropostaListDTO{
		ID:            p.ID,
		Titulo:        p.Titulo,
		Status:        p.Status,
		DataSubmissao: p.DataSubmissao,
		UsuarioNome:   p.Usuario.NomeCompleto(),
	}
}
