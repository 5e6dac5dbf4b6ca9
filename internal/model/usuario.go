package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Role é o papel do usuário. Tipo fechado: todo switch sobre Role deve
// cobrir exatamente estes valores.
type Role string

const (
	RoleComunidade  Role = "comunidade"
	RoleCoordenador Role = "coordenador"
	RoleProfessor   Role = "professor"
	RoleAluno       Role = "aluno"
	RoleAdmin       Role = "admin"
)

// ParseRole valida uma string vinda de fora do processo.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleComunidade, RoleCoordenador, RoleProfessor, RoleAluno, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

type Usuario struct {
	Model
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(254);not null" json:"email"`
	Nome         string    `gorm:"type:varchar(150)" json:"first_name"`
	Sobrenome    string    `gorm:"type:varchar(150)" json:"last_name"`
	Senha        string    `gorm:"type:varchar(255);not null" json:"-"`
	TipoUsuario  Role      `gorm:"type:varchar(20);default:comunidade;not null" json:"tipo_usuario"`
	Telefone     string    `gorm:"type:varchar(20)" json:"telefone"`
	Organizacao  string    `gorm:"type:varchar(100)" json:"organizacao"`
	DataRegistro time.Time `gorm:"autoCreateTime" json:"data_registro"`
}

// BeforeSave rejeita papéis fora do conjunto conhecido antes de
// persistir.
func (u *Usuario) BeforeSave(*gorm.DB) error {
	if _, ok := ParseRole(string(u.TipoUsuario)); !ok {
		return fmt.Errorf("tipo de usuário inválido: %q", u.TipoUsuario)
	}
	return nil
}

func (u *Usuario) NomeCompleto() string {
	if u.Nome == "" {
		return u.Sobrenome
	}
	if u.Sobrenome == "" {
		return u.Nome
	}
	return u.Nome + " " + u.Sobrenome
}

// UsuarioDTO é o perfil público devolvido pela API.
type UsuarioDTO struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Nome        string `json:"first_name"`
	Sobrenome   string `json:"last_name"`
	TipoUsuario Role   `json:"tipo_usuario"`
	Telefone    string `json:"telefone"`
	Organizacao string `json:"organizacao"`
}

func (u *Usuario) DTO() UsuarioDTO {
	return UsuarioDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Nome:        u.Nome,
		Sobrenome:   u.Sobrenome,
		TipoUsuario: u.TipoUsuario,
		Telefone:    u.Telefone,
		Organizacao: u.Organizacao,
	}
}
