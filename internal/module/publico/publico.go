package publico

import (
	"errors"

	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

// ListProjetos expõe apenas projetos em execução, mais recentes primeiro.
func ListProjetos(c *gin.Context) {
	projetos, err := repository.Projetos.ListEmExecucao(c.Request.Context())
	if err != nil {
		log.Error("listagem pública de projetos falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make([]model.ProjetoListDTO, 0, len(projetos))
	for i := range projetos {
		result = append(result, projetos[i].ListDTO())
	}
	response.Success(c, result)
}

// DetalhesProjeto devolve os campos completos de um projeto em
// execução. Projeto fora de execução não existe para o público.
func DetalhesProjeto(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	projeto, err := repository.Projetos.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta pública de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if projeto.Status != model.ProjetoEmExecucao {
		response.Fail(c, response.ErrNotFound)
		return
	}

	response.Success(c, projeto.DTO())
}

// ListRelatorios expõe apenas relatórios públicos, sem o campo de
// arquivo nem metadados internos.
func ListRelatorios(c *gin.Context) {
	relatorios, err := repository.Relatorios.ListPublicos(c.Request.Context())
	if err != nil {
		log.Error("listagem pública de relatórios falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make([]model.RelatorioPublicoDTO, 0, len(relatorios))
	for i := range relatorios {
		result = append(result, relatorios[i].PublicoDTO())
	}
	response.Success(c, result)
}
