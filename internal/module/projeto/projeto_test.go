package projeto

import (
	"context"
	"testing"
	"time"

	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *test.Fixture {
	t.Helper()
	(&ModuleProjeto{}).Init()
	return test.SetupRepos()
}

func novoProjeto(fixture *test.Fixture, titulo string, status model.StatusProjeto) *model.Projeto {
	p := &model.Projeto{
		Titulo:           titulo,
		Descricao:        "descrição",
		Objetivos:        "objetivos",
		ImpactoEsperado:  "impacto",
		Status:           status,
		DataInicio:       time.Now(),
		PropostaOrigemID: 1,
	}
	fixture.Projetos.Add(p)
	return p
}

func TestGet(t *testing.T) {
	fixture := setup(t)
	novoProjeto(fixture, "Horta comunitária", model.ProjetoEmExecucao)

	resp := test.Do(t, Get, test.Request{Params: map[string]string{"id": "1"}})
	test.NoError(t, resp)

	var dto model.ProjetoDTO
	test.DecodeData(t, resp, &dto)
	assert.Equal(t, "Horta comunitária", dto.Titulo)

	resp = test.Do(t, Get, test.Request{Params: map[string]string{"id": "99"}})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestUpdateStatus(t *testing.T) {
	fixture := setup(t)
	novoProjeto(fixture, "Horta", model.ProjetoEmExecucao)

	resp := test.Do(t, Update, test.Request{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"status": "concluido", "data_conclusao": "2025-06-30"},
	})
	test.NoError(t, resp)

	atual, err := repository.Projetos.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.ProjetoConcluido, atual.Status)
	require.NotNil(t, atual.DataConclusao)
	assert.Equal(t, "2025-06-30", atual.DataConclusao.Format("2006-01-02"))
}

func TestUpdateStatusInvalido(t *testing.T) {
	fixture := setup(t)
	novoProjeto(fixture, "Horta", model.ProjetoEmExecucao)

	resp := test.Do(t, Update, test.Request{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"status": "cancelado"},
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	assert.Contains(t, resp.Fields, "status")

	atual, err := repository.Projetos.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.ProjetoEmExecucao, atual.Status)
}

func TestUpdateProfessorResponsavel(t *testing.T) {
	fixture := setup(t)
	novoProjeto(fixture, "Horta", model.ProjetoEmExecucao)

	professor := &model.Usuario{Username: "prof", TipoUsuario: model.RoleProfessor}
	comunidade := &model.Usuario{Username: "maria", TipoUsuario: model.RoleComunidade}
	require.NoError(t, repository.Usuarios.Create(context.Background(), professor))
	require.NoError(t, repository.Usuarios.Create(context.Background(), comunidade))

	// só papel professor pode supervisionar
	resp := test.Do(t, Update, test.Request{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"professor_responsavel_id": comunidade.ID},
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	assert.Contains(t, resp.Fields, "professor_responsavel_id")

	resp = test.Do(t, Update, test.Request{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"professor_responsavel_id": professor.ID},
	})
	test.NoError(t, resp)

	atual, err := repository.Projetos.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, atual.ProfessorResponsavelID)
	assert.Equal(t, professor.ID, *atual.ProfessorResponsavelID)

	// zero desvincula
	resp = test.Do(t, Update, test.Request{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"professor_responsavel_id": 0},
	})
	test.NoError(t, resp)

	atual, err = repository.Projetos.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, atual.ProfessorResponsavelID)
}

func TestDeleteSoCoordenador(t *testing.T) {
	fixture := setup(t)
	novoProjeto(fixture, "Horta", model.ProjetoEmExecucao)

	comunidade := &model.Usuario{Username: "maria", TipoUsuario: model.RoleComunidade}
	coordenador := &model.Usuario{Username: "coord", TipoUsuario: model.RoleCoordenador}

	resp := test.Do(t, Delete, test.Request{
		Principal: comunidade,
		Params:    map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrForbidden, resp)
	assert.Equal(t, 1, fixture.Projetos.Count())

	resp = test.Do(t, Delete, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.NoError(t, resp)
	assert.Equal(t, 0, fixture.Projetos.Count())
}

func TestRelatoriosDoProjeto(t *testing.T) {
	fixture := setup(t)
	novoProjeto(fixture, "Horta", model.ProjetoEmExecucao)
	novoProjeto(fixture, "Outro", model.ProjetoEmExecucao)

	require.NoError(t, repository.Relatorios.Create(context.Background(), &model.Relatorio{
		ProjetoID: 1, Titulo: "Do projeto 1", Conteudo: "x", DataRelatorio: time.Now(),
	}))
	require.NoError(t, repository.Relatorios.Create(context.Background(), &model.Relatorio{
		ProjetoID: 2, Titulo: "Do projeto 2", Conteudo: "x", DataRelatorio: time.Now(),
	}))

	resp := test.Do(t, Relatorios, test.Request{Params: map[string]string{"id": "1"}})
	test.NoError(t, resp)

	var lista []model.Relatorio
	test.DecodeData(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Equal(t, "Do projeto 1", lista[0].Titulo)

	// projeto inexistente devolve 404, não lista vazia
	resp = test.Do(t, Relatorios, test.Request{Params: map[string]string{"id": "99"}})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestAtividadesDoProjeto(t *testing.T) {
	fixture := setup(t)
	novoProjeto(fixture, "Horta", model.ProjetoEmExecucao)

	require.NoError(t, repository.Atividades.Create(context.Background(), &model.Atividade{
		ProjetoID: 1, Descricao: "Mutirão de plantio", Status: model.AtividadePendente,
	}))

	resp := test.Do(t, Atividades, test.Request{Params: map[string]string{"id": "1"}})
	test.NoError(t, resp)

	var lista []model.Atividade
	test.DecodeData(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Equal(t, "Mutirão de plantio", lista[0].Descricao)
}
