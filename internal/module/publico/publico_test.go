package publico

import (
	"context"
	"encoding/json"
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
	(&ModulePublico{}).Init()
	return test.SetupRepos()
}

func TestListProjetosSoEmExecucao(t *testing.T) {
	fixture := setup(t)
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Em execução",
		Status:           model.ProjetoEmExecucao,
		DataInicio:       time.Now().Add(-24 * time.Hour),
		PropostaOrigemID: 1,
	})
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Concluído",
		Status:           model.ProjetoConcluido,
		DataInicio:       time.Now(),
		PropostaOrigemID: 2,
	})
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Suspenso",
		Status:           model.ProjetoSuspenso,
		DataInicio:       time.Now(),
		PropostaOrigemID: 3,
	})

	resp := test.Do(t, ListProjetos, test.Request{})
	test.NoError(t, resp)

	var lista []model.ProjetoListDTO
	test.DecodeData(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Equal(t, "Em execução", lista[0].Titulo)
	assert.Equal(t, model.ProjetoEmExecucao, lista[0].Status)
}

func TestListProjetosMaisRecentesPrimeiro(t *testing.T) {
	fixture := setup(t)
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Antigo",
		Status:           model.ProjetoEmExecucao,
		DataInicio:       time.Now().Add(-72 * time.Hour),
		PropostaOrigemID: 1,
	})
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Recente",
		Status:           model.ProjetoEmExecucao,
		DataInicio:       time.Now(),
		PropostaOrigemID: 2,
	})

	resp := test.Do(t, ListProjetos, test.Request{})
	test.NoError(t, resp)

	var lista []model.ProjetoListDTO
	test.DecodeData(t, resp, &lista)
	require.Len(t, lista, 2)
	assert.Equal(t, "Recente", lista[0].Titulo)
	assert.Equal(t, "Antigo", lista[1].Titulo)
}

func TestDetalhesProjetoForaDeExecucao(t *testing.T) {
	fixture := setup(t)
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Concluído",
		Status:           model.ProjetoConcluido,
		DataInicio:       time.Now(),
		PropostaOrigemID: 1,
	})

	// fora de execução não existe para o público
	resp := test.Do(t, DetalhesProjeto, test.Request{
		Params: map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestDetalhesProjetoEmExecucao(t *testing.T) {
	fixture := setup(t)
	professor := &model.Usuario{
		Username:    "prof",
		Nome:        "Ana",
		Sobrenome:   "Souza",
		TipoUsuario: model.RoleProfessor,
	}
	require.NoError(t, repository.Usuarios.Create(context.Background(), professor))
	fixture.Projetos.Add(&model.Projeto{
		Titulo:                 "Horta comunitária",
		Descricao:              "descrição",
		Objetivos:              "objetivos",
		ImpactoEsperado:        "impacto",
		Status:                 model.ProjetoEmExecucao,
		DataInicio:             time.Now(),
		PropostaOrigemID:       1,
		ProfessorResponsavelID: &professor.ID,
	})

	resp := test.Do(t, DetalhesProjeto, test.Request{
		Params: map[string]string{"id": "1"},
	})
	test.NoError(t, resp)

	var dto model.ProjetoDTO
	test.DecodeData(t, resp, &dto)
	assert.Equal(t, "Horta comunitária", dto.Titulo)
	assert.Equal(t, "Ana Souza", dto.ProfessorNome)
}

func TestListRelatoriosSoPublicos(t *testing.T) {
	fixture := setup(t)
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Horta comunitária",
		Status:           model.ProjetoEmExecucao,
		DataInicio:       time.Now(),
		PropostaOrigemID: 1,
	})
	require.NoError(t, repository.Relatorios.Create(context.Background(), &model.Relatorio{
		ProjetoID:     1,
		Titulo:        "Relatório público",
		Conteudo:      "andamento",
		DataRelatorio: time.Now(),
		Arquivo:       "/media/relatorios/interno.pdf",
		Publico:       true,
	}))
	require.NoError(t, repository.Relatorios.Create(context.Background(), &model.Relatorio{
		ProjetoID:     1,
		Titulo:        "Relatório interno",
		Conteudo:      "detalhes internos",
		DataRelatorio: time.Now(),
		Publico:       false,
	}))

	resp := test.Do(t, ListRelatorios, test.Request{})
	test.NoError(t, resp)

	var lista []model.RelatorioPublicoDTO
	test.DecodeData(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Equal(t, "Relatório público", lista[0].Titulo)
	assert.Equal(t, "Horta comunitária", lista[0].ProjetoTitulo)

	// a projeção pública nunca carrega o campo de arquivo
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "arquivo")
	assert.NotContains(t, string(raw), "interno.pdf")
}

func TestListRelatoriosOrdenados(t *testing.T) {
	fixture := setup(t)
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Horta",
		Status:           model.ProjetoEmExecucao,
		DataInicio:       time.Now(),
		PropostaOrigemID: 1,
	})
	require.NoError(t, repository.Relatorios.Create(context.Background(), &model.Relatorio{
		ProjetoID:     1,
		Titulo:        "Antigo",
		Conteudo:      "x",
		DataRelatorio: time.Now().Add(-48 * time.Hour),
		Publico:       true,
	}))
	require.NoError(t, repository.Relatorios.Create(context.Background(), &model.Relatorio{
		ProjetoID:     1,
		Titulo:        "Recente",
		Conteudo:      "x",
		DataRelatorio: time.Now(),
		Publico:       true,
	}))

	resp := test.Do(t, ListRelatorios, test.Request{})
	test.NoError(t, resp)

	var lista []model.RelatorioPublicoDTO
	test.DecodeData(t, resp, &lista)
	require.Len(t, lista, 2)
	assert.Equal(t, "Recente", lista[0].Titulo)
	assert.Equal(t, "Antigo", lista[1].Titulo)
}
