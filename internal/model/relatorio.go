package model

import "time"

type Relatorio struct {
	Model
	ProjetoID     uint      `gorm:"not null;index" json:"projeto_id"`
	Projeto       Projeto   `gorm:"foreignKey:ProjetoID;constraint:OnDelete:CASCADE" json:"-"`
	Titulo        string    `gorm:"type:varchar(200);not null" json:"titulo"`
	Conteudo      string    `gorm:"type:text;not null" json:"conteudo"`
	DataRelatorio time.Time `json:"data_relatorio"`
	DataCriacao   time.Time `gorm:"autoCreateTime" json:"data_criacao"`
	Arquivo       string    `gorm:"type:varchar(255)" json:"arquivo"`
	Publico       bool      `gorm:"default:false;not null" json:"publico"`
}

// RelatorioPublicoDTO é a projeção pública: nunca expõe o arquivo nem
// metadados internos.
type RelatorioPublicoDTO struct {
	ID            uint      `json:"id"`
	Titulo        string    `json:"titulo"`
	Conteudo      string    `json:"conteudo"`
	DataRelatorio time.Time `json:"data_relatorio"`
	ProjetoID     uint      `json:"projeto_id"`
	ProjetoTitulo string    `json:"projeto_titulo"`
}

func (r *Relatorio) PublicoDTO() RelatorioPublicoDTO {
	return RelatorioPublicoDTO{
		ID:            r.ID,
		Titulo:        r.Titulo,
		Conteudo:      r.Conteudo,
		DataRelatorio: r.DataRelatorio,
		ProjetoID:     r.ProjetoID,
		ProjetoTitulo: r.Projeto.Titulo,
	}
}
