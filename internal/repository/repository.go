package repository

import (
	"context"
	"errors"

	"cadpro-backend/internal/model"

	"gorm.io/gorm"
)

// ErrNotFound é devolvido por todas as implementações quando o registro
// não existe; os handlers não dependem de erros do gorm.
var ErrNotFound = errors.New("registro não encontrado")

// Repositórios por entidade. Handlers nunca tocam o gorm diretamente;
// recebem e devolvem registros simples.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
}

type PropostaRepository interface {
	Create(ctx context.Context, p *model.Proposta) error
	FindByID(ctx context.Context, id uint) (*model.Proposta, error)
	ListAll(ctx context.Context) ([]model.Proposta, error)
	ListByUsuario(ctx context.Context, usuarioID uint) ([]model.Proposta, error)
	Update(ctx context.Context, p *model.Proposta) error
	Delete(ctx context.Context, p *model.Proposta) error
	// Approve grava o novo status e o projeto derivado em uma única
	// transação: ou ambos persistem, ou nenhum.
	Approve(ctx context.Context, p *model.Proposta, projeto *model.Projeto) error
	HasProjeto(ctx context.Context, propostaID uint) (bool, error)
}

type ProjetoRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Projeto, error)
	List(ctx context.Context) ([]model.Projeto, error)
	Update(ctx context.Context, p *model.Projeto) error
	Delete(ctx context.Context, p *model.Projeto) error
	// ListEmExecucao alimenta a projeção pública: apenas status
	// em_execucao, data_inicio decrescente.
	ListEmExecucao(ctx context.Context) ([]model.Projeto, error)
}

type AtividadeRepository interface {
	Create(ctx context.Context, a *model.Atividade) error
	FindByID(ctx context.Context, id uint) (*model.Atividade, error)
	List(ctx context.Context) ([]model.Atividade, error)
	ListByProjeto(ctx context.Context, projetoID uint) ([]model.Atividade, error)
	Update(ctx context.Context, a *model.Atividade) error
	Delete(ctx context.Context, a *model.Atividade) error
}

type EntregaRepository interface {
	Create(ctx context.Context, e *model.Entrega) error
	FindByID(ctx context.Context, id uint) (*model.Entrega, error)
	List(ctx context.Context) ([]model.Entrega, error)
	ListByProjeto(ctx context.Context, projetoID uint) ([]model.Entrega, error)
	Update(ctx context.Context, e *model.Entrega) error
	Delete(ctx context.Context, e *model.Entrega) error
}

type RelatorioRepository interface {
	Create(ctx context.Context, r *model.Relatorio) error
	FindByID(ctx context.Context, id uint) (*model.Relatorio, error)
	List(ctx context.Context) ([]model.Relatorio, error)
	ListByProjeto(ctx context.Context, projetoID uint) ([]model.Relatorio, error)
	Update(ctx context.Context, r *model.Relatorio) error
	Delete(ctx context.Context, r *model.Relatorio) error
	// ListPublicos alimenta a projeção pública: apenas publico=true,
	// data_relatorio decrescente, com o projeto carregado.
	ListPublicos(ctx context.Context) ([]model.Relatorio, error)
}

var (
	Usuarios   UsuarioRepository
	Propostas  PropostaRepository
	Projetos   ProjetoRepository
	Atividades AtividadeRepository
	Entregas   EntregaRepository
	Relatorios RelatorioRepository
)

// Init liga os repositórios ao banco. Os testes substituem as variáveis
// de pacote por fakes.
func Init(db *gorm.DB) {
	Usuarios = &usuarioGorm{db: db}
	Propostas = &propostaGorm{db: db}
	Projetos = &projetoGorm{db: db}
	Atividades = &atividadeGorm{db: db}
	Entregas = &entregaGorm{db: db}
	Relatorios = &relatorioGorm{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
