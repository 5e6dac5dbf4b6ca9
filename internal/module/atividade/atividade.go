package atividade

import (
	"errors"

	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

type CreateReq struct {
	ProjetoID uint   `json:"projeto_id" binding:"required"`
	Descricao string `json:"descricao" binding:"required"`
}

func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("criação de atividade com corpo inválido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if _, err := repository.Projetos.FindByID(c.Request.Context(), req.ProjetoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, response.ErrInvalidRequest.WithField("projeto_id", "projeto não encontrado"))
			return
		}
		log.Error("consulta de projeto falhou", "error", err, "projeto_id", req.ProjetoID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	atividade := model.Atividade{
		ProjetoID: req.ProjetoID,
		Descricao: req.Descricao,
		Status:    model.AtividadePendente,
	}
	if err := repository.Atividades.Create(c.Request.Context(), &atividade); err != nil {
		log.Error("criação de atividade falhou", "error", err, "projeto_id", req.ProjetoID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("atividade criada", "id", atividade.ID, "projeto_id", atividade.ProjetoID)
	response.Created(c, atividade)
}

func List(c *gin.Context) {
	atividades, err := repository.Atividades.List(c.Request.Context())
	if err != nil {
		log.Error("listagem de atividades falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, atividades)
}

func Get(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	atividade, err := repository.Atividades.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de atividade falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, atividade)
}

type UpdateReq struct {
	Descricao *string `json:"descricao"`
	Status    *string `json:"status"`
}

func Update(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("atualização de atividade com corpo inválido", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	atividade, err := repository.Atividades.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de atividade falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Descricao != nil {
		atividade.Descricao = *req.Descricao
	}
	if req.Status != nil {
		status := model.StatusAtividade(*req.Status)
		if !status.Valid() {
			response.Fail(c, response.ErrInvalidRequest.WithField("status", "status de atividade inválido"))
			return
		}
		atividade.Status = status
	}

	if err := repository.Atividades.Update(c.Request.Context(), atividade); err != nil {
		log.Error("atualização de atividade falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("atividade atualizada", "id", atividade.ID)
	response.Success(c, atividade)
}

func Delete(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	atividade, err := repository.Atividades.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de atividade falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := repository.Atividades.Delete(c.Request.Context(), atividade); err != nil {
		log.Error("remoção de atividade falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("atividade removida", "id", id)
	response.Success(c)
}
