package relatorio

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/global/storage"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

// CreateReq aceita JSON ou multipart; no multipart o anexo vem no campo
// de arquivo "arquivo".
type CreateReq struct {
	ProjetoID     uint   `json:"projeto_id" form:"projeto_id" binding:"required"`
	Titulo        string `json:"titulo" form:"titulo" binding:"required"`
	Conteudo      string `json:"conteudo" form:"conteudo" binding:"required"`
	DataRelatorio string `json:"data_relatorio" form:"data_relatorio" binding:"required"` // formato 2006-01-02
	Publico       bool   `json:"publico" form:"publico"`
}

func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("criação de relatório com corpo inválido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	dataRelatorio, err := time.Parse("2006-01-02", req.DataRelatorio)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithField("data_relatorio", "data inválida"))
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

	arquivo := ""
	if fileHeader, err := c.FormFile("arquivo"); err == nil {
		url, err := storage.Get().Save(c.Request.Context(), fileHeader, "relatorios")
		if err != nil {
			log.Error("upload de anexo falhou", "error", err)
			response.Fail(c, response.ErrStorage.WithOrigin(err))
			return
		}
		arquivo = url
	}

	relatorio := model.Relatorio{
		ProjetoID:     req.ProjetoID,
		Titulo:        req.Titulo,
		Conteudo:      req.Conteudo,
		DataRelatorio: dataRelatorio,
		Arquivo:       arquivo,
		Publico:       req.Publico,
	}
	if err := repository.Relatorios.Create(c.Request.Context(), &relatorio); err != nil {
		log.Error("criação de relatório falhou", "error", err, "projeto_id", req.ProjetoID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("relatório criado", "id", relatorio.ID, "projeto_id", relatorio.ProjetoID)
	response.Created(c, relatorio)
}

func List(c *gin.Context) {
	relatorios, err := repository.Relatorios.List(c.Request.Context())
	if err != nil {
		log.Error("listagem de relatórios falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, relatorios)
}

func Get(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	relatorio, err := repository.Relatorios.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de relatório falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, relatorio)
}

type UpdateReq struct {
	Titulo        *string `json:"titulo"`
	Conteudo      *string `json:"conteudo"`
	DataRelatorio *string `json:"data_relatorio"`
	Publico       *bool   `json:"publico"`
}

func Update(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("atualização de relatório com corpo inválido", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	relatorio, err := repository.Relatorios.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de relatório falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Titulo != nil {
		relatorio.Titulo = *req.Titulo
	}
	if req.Conteudo != nil {
		relatorio.Conteudo = *req.Conteudo
	}
	if req.DataRelatorio != nil {
		d, err := time.Parse("2006-01-02", *req.DataRelatorio)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithField("data_relatorio", "data inválida"))
			return
		}
		relatorio.DataRelatorio = d
	}
	if req.Publico != nil {
		relatorio.Publico = *req.Publico
	}

	if err := repository.Relatorios.Update(c.Request.Context(), relatorio); err != nil {
		log.Error("atualização de relatório falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("relatório atualizado", "id", relatorio.ID)
	response.Success(c, relatorio)
}

// Download envia o anexo do relatório guardado em disco local; em
// armazenamento remoto redireciona para a URL persistida.
func Download(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	relatorio, err := repository.Relatorios.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de relatório falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if relatorio.Arquivo == "" {
		response.Fail(c, response.ErrNotFound.WithTips("relatório sem anexo"))
		return
	}

	local, ok := storage.Get().(*storage.LocalStorage)
	if !ok {
		c.Redirect(http.StatusFound, relatorio.Arquivo)
		return
	}

	path, ok := local.Resolve(relatorio.Arquivo)
	if !ok || !tools.FileExist(path) {
		log.Warn("anexo de relatório ausente no disco", "id", id, "arquivo", relatorio.Arquivo)
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

	relatorio, err := repository.Relatorios.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de relatório falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := repository.Relatorios.Delete(c.Request.Context(), relatorio); err != nil {
		log.Error("remoção de relatório falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("relatório removido", "id", id)
	response.Success(c)
}
