package proposta

import (
	"context"
	"testing"
	"time"

	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/global/storage"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *test.Fixture {
	t.Helper()
	(&ModuleProposta{}).Init()
	return test.SetupRepos()
}

func novaComunidade(t *testing.T, username string) *model.Usuario {
	t.Helper()
	u := &model.Usuario{
		Username:    username,
		Email:       username + "@example.com",
		Nome:        "Usuário",
		Sobrenome:   username,
		TipoUsuario: model.RoleComunidade,
	}
	require.NoError(t, repository.Usuarios.Create(context.Background(), u))
	return u
}

func novoCoordenador(t *testing.T) *model.Usuario {
	t.Helper()
	u := &model.Usuario{
		Username:    "coordenador",
		Email:       "coordenador@example.com",
		TipoUsuario: model.RoleCoordenador,
	}
	require.NoError(t, repository.Usuarios.Create(context.Background(), u))
	return u
}

func novaProposta(t *testing.T, dono *model.Usuario, titulo string, status model.StatusProposta) *model.Proposta {
	t.Helper()
	p := &model.Proposta{
		Titulo:           titulo,
		Descricao:        "descrição",
		ProblemaResolver: "problema",
		PublicoAlvo:      "bairro",
		RelevanciaSocial: "relevância",
		Status:           status,
		DataSubmissao:    time.Now(),
		UsuarioID:        dono.ID,
	}
	require.NoError(t, repository.Propostas.Create(context.Background(), p))
	return p
}

func TestCreate(t *testing.T) {
	setup(t)
	dono := novaComunidade(t, "maria")

	resp := test.Do(t, Create, test.Request{
		Principal: dono,
		Body: CreateReq{
			Titulo:           "Horta comunitária",
			Descricao:        "Implantação de horta",
			ProblemaResolver: "Insegurança alimentar",
			PublicoAlvo:      "Famílias do bairro",
			RelevanciaSocial: "Alimentação saudável",
		},
	})
	test.NoError(t, resp)

	var criada model.Proposta
	test.DecodeData(t, resp, &criada)
	assert.Equal(t, model.PropostaEmAnalise, criada.Status)
	assert.Equal(t, dono.ID, criada.UsuarioID)
	assert.Equal(t, "Horta comunitária", criada.Titulo)
}

func TestCreateComDocumento(t *testing.T) {
	setup(t)
	storage.Set(storage.NewLocalStorage(t.TempDir(), "/media"))
	dono := novaComunidade(t, "maria")

	body, contentType := test.Multipart(t, map[string]string{
		"titulo":            "Horta comunitária",
		"descricao":         "Implantação de horta",
		"problema_resolver": "Insegurança alimentar",
		"publico_alvo":      "Famílias do bairro",
		"relevancia_social": "Alimentação saudável",
	}, "documento", "plano.pdf", []byte("plano de trabalho"))

	resp := test.Do(t, Create, test.Request{
		Principal: dono,
		Raw:       body,
		RawType:   contentType,
	})
	test.NoError(t, resp)

	var criada model.Proposta
	test.DecodeData(t, resp, &criada)
	assert.Contains(t, criada.Documento, "/media/documentos_propostas/")
}

func TestCreateCampoObrigatorioAusente(t *testing.T) {
	setup(t)
	dono := novaComunidade(t, "maria")

	resp := test.Do(t, Create, test.Request{
		Principal: dono,
		Body:      map[string]string{"titulo": "Só o título"},
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestListVisibilidadePorPapel(t *testing.T) {
	setup(t)
	maria := novaComunidade(t, "maria")
	joao := novaComunidade(t, "joao")
	coordenador := novoCoordenador(t)

	novaProposta(t, maria, "Proposta da Maria", model.PropostaEmAnalise)
	novaProposta(t, joao, "Proposta do João", model.PropostaEmAnalise)

	// coordenador enxerga todas
	resp := test.Do(t, List, test.Request{Principal: coordenador})
	test.NoError(t, resp)
	var todas []model.PropostaListDTO
	test.DecodeData(t, resp, &todas)
	assert.Len(t, todas, 2)

	// comunidade enxerga apenas as próprias
	resp = test.Do(t, List, test.Request{Principal: maria})
	test.NoError(t, resp)
	var minhas []model.PropostaListDTO
	test.DecodeData(t, resp, &minhas)
	require.Len(t, minhas, 1)
	assert.Equal(t, "Proposta da Maria", minhas[0].Titulo)
}

func TestListOrdenadaPorSubmissao(t *testing.T) {
	setup(t)
	maria := novaComunidade(t, "maria")
	coordenador := novoCoordenador(t)

	antiga := novaProposta(t, maria, "Antiga", model.PropostaEmAnalise)
	antiga.DataSubmissao = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repository.Propostas.Update(context.Background(), antiga))
	novaProposta(t, maria, "Recente", model.PropostaEmAnalise)

	resp := test.Do(t, List, test.Request{Principal: coordenador})
	test.NoError(t, resp)
	var lista []model.PropostaListDTO
	test.DecodeData(t, resp, &lista)
	require.Len(t, lista, 2)
	assert.Equal(t, "Recente", lista[0].Titulo)
	assert.Equal(t, "Antiga", lista[1].Titulo)
}

func TestGetPropostaAlheia(t *testing.T) {
	setup(t)
	maria := novaComunidade(t, "maria")
	joao := novaComunidade(t, "joao")
	coordenador := novoCoordenador(t)
	p := novaProposta(t, maria, "Proposta da Maria", model.PropostaEmAnalise)

	// outro usuário comunidade é barrado
	resp := test.Do(t, Get, test.Request{
		Principal: joao,
		Params:    map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrForbidden, resp)

	// o dono e o coordenador enxergam
	resp = test.Do(t, Get, test.Request{
		Principal: maria,
		Params:    map[string]string{"id": "1"},
	})
	test.NoError(t, resp)

	resp = test.Do(t, Get, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.NoError(t, resp)

	var dto model.Proposta
	test.DecodeData(t, resp, &dto)
	assert.Equal(t, p.Titulo, dto.Titulo)
}

func TestGetPropostaInexistente(t *testing.T) {
	setup(t)
	coordenador := novoCoordenador(t)

	resp := test.Do(t, Get, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "99"},
	})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestUpdateNaoAlteraStatusNemDono(t *testing.T) {
	setup(t)
	maria := novaComunidade(t, "maria")
	novaProposta(t, maria, "Original", model.PropostaEmAnalise)

	resp := test.Do(t, Update, test.Request{
		Principal: maria,
		Params:    map[string]string{"id": "1"},
		Body: map[string]any{
			"titulo":     "Atualizado",
			"status":     "aprovada",
			"usuario_id": 99,
		},
	})
	test.NoError(t, resp)

	atual, err := repository.Propostas.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Atualizado", atual.Titulo)
	assert.Equal(t, model.PropostaEmAnalise, atual.Status)
	assert.Equal(t, maria.ID, atual.UsuarioID)
}

func TestDeletePropostaAprovada(t *testing.T) {
	setup(t)
	maria := novaComunidade(t, "maria")
	novaProposta(t, maria, "Aprovada", model.PropostaAprovada)

	resp := test.Do(t, Delete, test.Request{
		Principal: maria,
		Params:    map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrEstadoInvalido, resp)

	// a proposta continua lá
	_, err := repository.Propostas.FindByID(context.Background(), 1)
	require.NoError(t, err)
}

func TestDeletePropostaComProjetoDerivado(t *testing.T) {
	fixture := setup(t)
	maria := novaComunidade(t, "maria")
	p := novaProposta(t, maria, "Inconsistente", model.PropostaEmAnalise)

	// projeto derivado existe apesar do status não refletir a decisão
	fixture.Projetos.Add(&model.Projeto{
		Titulo:           p.Titulo,
		Status:           model.ProjetoEmExecucao,
		DataInicio:       time.Now(),
		PropostaOrigemID: p.ID,
	})

	resp := test.Do(t, Delete, test.Request{
		Principal: maria,
		Params:    map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrEstadoInvalido, resp)

	_, err := repository.Propostas.FindByID(context.Background(), 1)
	require.NoError(t, err)
}

func TestDeletePropostaEmAnalise(t *testing.T) {
	setup(t)
	maria := novaComunidade(t, "maria")
	novaProposta(t, maria, "Em análise", model.PropostaEmAnalise)

	resp := test.Do(t, Delete, test.Request{
		Principal: maria,
		Params:    map[string]string{"id": "1"},
	})
	test.NoError(t, resp)

	_, err := repository.Propostas.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAprovarCriaProjeto(t *testing.T) {
	fixture := setup(t)
	maria := novaComunidade(t, "maria")
	coordenador := novoCoordenador(t)
	novaProposta(t, maria, "Horta comunitária", model.PropostaEmAnalise)

	resp := test.Do(t, Aprovar, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.NoError(t, resp)

	var data struct {
		ProjetoID uint `json:"projeto_id"`
	}
	test.DecodeData(t, resp, &data)
	require.NotZero(t, data.ProjetoID)

	// status e projeto mudaram juntos
	proposta, err := repository.Propostas.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.PropostaAprovada, proposta.Status)

	require.Equal(t, 1, fixture.Projetos.Count())
	projeto, err := repository.Projetos.FindByID(context.Background(), data.ProjetoID)
	require.NoError(t, err)
	assert.Equal(t, "Horta comunitária", projeto.Titulo)
	assert.Equal(t, proposta.ProblemaResolver, projeto.Objetivos)
	assert.Equal(t, proposta.RelevanciaSocial, projeto.ImpactoEsperado)
	assert.Equal(t, model.ProjetoEmExecucao, projeto.Status)
	assert.Equal(t, uint(1), projeto.PropostaOrigemID)
}

func TestAprovarPropostaJaDecidida(t *testing.T) {
	fixture := setup(t)
	maria := novaComunidade(t, "maria")
	coordenador := novoCoordenador(t)
	novaProposta(t, maria, "Rejeitada", model.PropostaRejeitada)

	resp := test.Do(t, Aprovar, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrEstadoInvalido, resp)
	assert.Equal(t, 0, fixture.Projetos.Count())
}

func TestAprovarDuasVezes(t *testing.T) {
	fixture := setup(t)
	maria := novaComunidade(t, "maria")
	coordenador := novoCoordenador(t)
	novaProposta(t, maria, "Horta", model.PropostaEmAnalise)

	resp := test.Do(t, Aprovar, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.NoError(t, resp)

	// segunda aprovação falha e não duplica o projeto
	resp = test.Do(t, Aprovar, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrEstadoInvalido, resp)
	assert.Equal(t, 1, fixture.Projetos.Count())
}

func TestRejeitar(t *testing.T) {
	fixture := setup(t)
	maria := novaComunidade(t, "maria")
	coordenador := novoCoordenador(t)
	novaProposta(t, maria, "Horta", model.PropostaEmAnalise)

	resp := test.Do(t, Rejeitar, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.NoError(t, resp)

	proposta, err := repository.Propostas.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.PropostaRejeitada, proposta.Status)

	// rejeição nunca materializa projeto
	assert.Equal(t, 0, fixture.Projetos.Count())
}

func TestRejeitarPropostaAprovada(t *testing.T) {
	setup(t)
	maria := novaComunidade(t, "maria")
	coordenador := novoCoordenador(t)
	novaProposta(t, maria, "Aprovada", model.PropostaAprovada)

	resp := test.Do(t, Rejeitar, test.Request{
		Principal: coordenador,
		Params:    map[string]string{"id": "1"},
	})
	test.ErrorEqual(t, response.ErrEstadoInvalido, resp)

	proposta, err := repository.Propostas.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.PropostaAprovada, proposta.Status)
}
