package entrega

import (
	"errors"
	"net/http"
	"path/filepath"

	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/global/storage"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

// CreateReq é sempre multipart: a entrega existe em função do arquivo.
type CreateReq struct {
	ProjetoID uint   `form:"projeto_id" binding:"required"`
	Descricao string `form:"descricao" binding:"required"`
}

func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("criação de entrega com corpo inválido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithField("arquivo", "arquivo obrigatório"))
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

	url, err := storage.Get().Save(c.Request.Context(), fileHeader, "entregas")
	if err != nil {
		log.Error("upload de entrega falhou", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	entrega := model.Entrega{
		ProjetoID: req.ProjetoID,
		Descricao: req.Descricao,
		Arquivo:   url,
	}
	if err := repository.Entregas.Create(c.Request.Context(), &entrega); err != nil {
		log.Error("criação de entrega falhou", "error", err, "projeto_id", req.ProjetoID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("entrega registrada", "id", entrega.ID, "projeto_id", entrega.ProjetoID)
	response.Created(c, entrega)
}

func List(c *gin.Context) {
	entregas, err := repository.Entregas.List(c.Request.Context())
	if err != nil {
		log.Error("listagem de entregas falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, entregas)
}

func Get(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	entrega, err := repository.Entregas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de entrega falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, entrega)
}

type UpdateReq struct {
	Descricao *string `json:"descricao"`
}

func Update(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("atualização de entrega com corpo inválido", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	entrega, err := repository.Entregas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de entrega falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Descricao != nil {
		entrega.Descricao = *req.Descricao
	}

	if err := repository.Entregas.Update(c.Request.Context(), entrega); err != nil {
		log.Error("atualização de entrega falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("entrega atualizada", "id", entrega.ID)
	response.Success(c, entrega)
}

// Download envia o arquivo da entrega guardado em disco local; em
// armazenamento remoto redireciona para a URL persistida.
func Download(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	entrega, err := repository.Entregas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de entrega falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	local, ok := storage.Get().(*storage.LocalStorage)
	if !ok {
		c.Redirect(http.StatusFound, entrega.Arquivo)
		return
	}

	path, ok := local.Resolve(entrega.Arquivo)
	if !ok || !tools.FileExist(path) {
		log.Warn("arquivo de entrega ausente no disco", "id", id, "arquivo", entrega.Arquivo)
		response.Fail(c, response.ErrNotFound.WithTips("arquivo não encontrado"))
		return
	}

	tools.SendStoredFile(c, path, filepath.Base(path), "application/octet-stream")
}

func Delete(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	entrega, err := repository.Entregas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de entrega falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := repository.Entregas.Delete(c.Request.Context(), entrega); err != nil {
		log.Error("remoção de entrega falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("entrega removida", "id", id)
	response.Success(c)
}
