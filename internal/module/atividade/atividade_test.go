package atividade

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
	(&ModuleAtividade{}).Init()
	fixture := test.SetupRepos()
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           "Horta comunitária",
		Status:           model.ProjetoEmExecucao,
		DataInicio:       time.Now(),
		PropostaOrigemID: 1,
	})
	return fixture
}

func TestCreate(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, Create, CreateReq{
		ProjetoID: 1,
		Descricao: "Mutirão de plantio",
	})
	test.NoError(t, resp)

	var criada model.Atividade
	test.DecodeData(t, resp, &criada)
	assert.Equal(t, uint(1), criada.ProjetoID)
	// toda atividade nasce pendente
	assert.Equal(t, model.AtividadePendente, criada.Status)
}

func TestCreateProjetoInexistente(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, Create, CreateReq{
		ProjetoID: 99,
		Descricao: "Órfã",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	assert.Contains(t, resp.Fields, "projeto_id")
}

func TestUpdateStatus(t *testing.T) {
	setup(t)
	require.NoError(t, repository.Atividades.Create(context.Background(), &model.Atividade{
		ProjetoID: 1,
		Descricao: "Mutirão",
		Status:    model.AtividadePendente,
	}))

	resp := test.Do(t, Update, test.Request{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"status": "concluida"},
	})
	test.NoError(t, resp)

	atual, err := repository.Atividades.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.AtividadeConcluida, atual.Status)
}

func TestUpdateStatusInvalido(t *testing.T) {
	setup(t)
	require.NoError(t, repository.Atividades.Create(context.Background(), &model.Atividade{
		ProjetoID: 1,
		Descricao: "Mutirão",
		Status:    model.AtividadePendente,
	}))

	resp := test.Do(t, Update, test.Request{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"status": "cancelada"},
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	assert.Contains(t, resp.Fields, "status")

	atual, err := repository.Atividades.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.AtividadePendente, atual.Status)
}

func TestDelete(t *testing.T) {
	setup(t)
	require.NoError(t, repository.Atividades.Create(context.Background(), &model.Atividade{
		ProjetoID: 1,
		Descricao: "Descartável",
		Status:    model.AtividadePendente,
	}))

	resp := test.Do(t, Delete, test.Request{Params: map[string]string{"id": "1"}})
	test.NoError(t, resp)

	_, err := repository.Atividades.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
