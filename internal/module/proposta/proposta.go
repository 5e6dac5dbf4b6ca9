package proposta

import (
	"errors"
	"time"

	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/global/storage"
	"cadpro-backend/internal/global/webhook"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

// CreateReq aceita JSON ou multipart; no multipart o documento vem no
// campo de arquivo "documento".
type CreateReq struct {
	Titulo           string `json:"titulo" form:"titulo" binding:"required"`
	Descricao        string `json:"descricao" form:"descricao" binding:"required"`
	ProblemaResolver string `json:"problema_resolver" form:"problema_resolver" binding:"required"`
	PublicoAlvo      string `json:"publico_alvo" form:"publico_alvo" binding:"required"`
	RelevanciaSocial string `json:"relevancia_social" form:"relevancia_social" binding:"required"`
}

// Create registra uma proposta em análise. O dono vem da sessão, nunca
// do corpo da requisição.
func Create(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var req CreateReq
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("criação de proposta com corpo inválido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	documento := ""
	if fileHeader, err := c.FormFile("documento"); err == nil {
		url, err := storage.Get().Save(c.Request.Context(), fileHeader, "documentos_propostas")
		if err != nil {
			log.Error("upload de documento falhou", "error", err)
			response.Fail(c, response.ErrStorage.WithOrigin(err))
			return
		}
		documento = url
	}

	proposta := model.Proposta{
		Titulo:           req.Titulo,
		Descricao:        req.Descricao,
		ProblemaResolver: req.ProblemaResolver,
		PublicoAlvo:      req.PublicoAlvo,
		RelevanciaSocial: req.RelevanciaSocial,
		Documento:        documento,
		Status:           model.PropostaEmAnalise,
		UsuarioID:        usuario.ID,
	}
	if err := repository.Propostas.Create(c.Request.Context(), &proposta); err != nil {
		log.Error("criação de proposta falhou", "error", err, "titulo", req.Titulo)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposta criada",
		"id", proposta.ID,
		"titulo", proposta.Titulo,
		"usuario", usuario.Username)

	response.Created(c, proposta)
}

// List devolve as propostas visíveis ao usuário: coordenador enxerga
// todas, comunidade apenas as próprias.
func List(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var (
		propostas []model.Proposta
		err       error
	)
	if usuario.TipoUsuario == model.RoleCoordenador {
		propostas, err = repository.Propostas.ListAll(c.Request.Context())
	} else {
		propostas, err = repository.Propostas.ListByUsuario(c.Request.Context(), usuario.ID)
	}
	if err != nil {
		log.Error("listagem de propostas falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make([]model.PropostaListDTO, 0, len(propostas))
	for i := range propostas {
		result = append(result, propostas[i].ListDTO())
	}
	response.Success(c, result)
}

// Get devolve uma proposta. Comunidade só enxerga as próprias: acesso a
// proposta alheia é negado, não mascarado como inexistente.
func Get(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	proposta, err := repository.Propostas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if usuario.TipoUsuario != model.RoleCoordenador && proposta.UsuarioID != usuario.ID {
		log.Warn("acesso negado a proposta alheia",
			"id", id,
			"usuario", usuario.Username)
		response.Fail(c, response.ErrForbidden)
		return
	}

	response.Success(c, proposta)
}

// UpdateReq permite atualização parcial dos campos editáveis. Status e
// dono nunca são graváveis pelo cliente.
type UpdateReq struct {
	Titulo           *string `json:"titulo"`
	Descricao        *string `json:"descricao"`
	ProblemaResolver *string `json:"problema_resolver"`
	PublicoAlvo      *string `json:"publico_alvo"`
	RelevanciaSocial *string `json:"relevancia_social"`
}

func Update(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("atualização de proposta com corpo inválido", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	proposta, err := repository.Propostas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if usuario.TipoUsuario != model.RoleCoordenador && proposta.UsuarioID != usuario.ID {
		response.Fail(c, response.ErrForbidden)
		return
	}

	if req.Titulo != nil {
		proposta.Titulo = *req.Titulo
	}
	if req.Descricao != nil {
		proposta.Descricao = *req.Descricao
	}
	if req.ProblemaResolver != nil {
		proposta.ProblemaResolver = *req.ProblemaResolver
	}
	if req.PublicoAlvo != nil {
		proposta.PublicoAlvo = *req.PublicoAlvo
	}
	if req.RelevanciaSocial != nil {
		proposta.RelevanciaSocial = *req.RelevanciaSocial
	}

	if err := repository.Propostas.Update(c.Request.Context(), proposta); err != nil {
		log.Error("atualização de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposta atualizada", "id", proposta.ID)
	response.Success(c, proposta)
}

// Delete remove uma proposta ainda não aprovada. Proposta aprovada tem
// projeto derivado e não pode ser removida.
func Delete(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	proposta, err := repository.Propostas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if usuario.TipoUsuario != model.RoleCoordenador && proposta.UsuarioID != usuario.ID {
		response.Fail(c, response.ErrForbidden)
		return
	}

	if proposta.Status == model.PropostaAprovada {
		log.Warn("tentativa de remover proposta aprovada", "id", id)
		response.Fail(c, response.ErrEstadoInvalido.WithTips("proposta aprovada não pode ser removida"))
		return
	}

	// projeto derivado bloqueia a remoção mesmo com status inconsistente
	hasProjeto, err := repository.Propostas.HasProjeto(c.Request.Context(), proposta.ID)
	if err != nil {
		log.Error("consulta de projeto derivado falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if hasProjeto {
		log.Warn("tentativa de remover proposta com projeto derivado", "id", id)
		response.Fail(c, response.ErrEstadoInvalido.WithTips("proposta possui projeto derivado"))
		return
	}

	if err := repository.Propostas.Delete(c.Request.Context(), proposta); err != nil {
		log.Error("remoção de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposta removida", "id", id)
	response.Success(c)
}

// Aprovar decide a proposta e materializa o projeto derivado na mesma
// transação. Proposta já decidida devolve conflito.
func Aprovar(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	proposta, err := repository.Propostas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !proposta.Status.PodeDecidir(model.PropostaAprovada) {
		log.Warn("aprovação de proposta já decidida",
			"id", id,
			"status", proposta.Status)
		response.Fail(c, response.ErrEstadoInvalido.WithTips("proposta já foi decidida"))
		return
	}

	projeto := proposta.NovoProjeto(time.Now())
	if err := repository.Propostas.Approve(c.Request.Context(), proposta, projeto); err != nil {
		log.Error("aprovação de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposta aprovada",
		"id", proposta.ID,
		"projeto_id", projeto.ID,
		"coordenador", usuario.Username)

	webhook.NotifyDecisao(webhook.DecisaoPayload{
		Evento:     "proposta_aprovada",
		PropostaID: proposta.ID,
		Titulo:     proposta.Titulo,
		ProjetoID:  projeto.ID,
		Decididor:  usuario.Username,
	})

	response.Success(c, gin.H{
		"message":    "proposta aprovada e projeto criado com sucesso",
		"projeto_id": projeto.ID,
	})
}

// Rejeitar decide a proposta sem criar projeto.
func Rejeitar(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	proposta, err := repository.Propostas.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !proposta.Status.PodeDecidir(model.PropostaRejeitada) {
		log.Warn("rejeição de proposta já decidida",
			"id", id,
			"status", proposta.Status)
		response.Fail(c, response.ErrEstadoInvalido.WithTips("proposta já foi decidida"))
		return
	}

	proposta.Status = model.PropostaRejeitada
	if err := repository.Propostas.Update(c.Request.Context(), proposta); err != nil {
		log.Error("rejeição de proposta falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposta rejeitada",
		"id", proposta.ID,
		"coordenador", usuario.Username)

	webhook.NotifyDecisao(webhook.DecisaoPayload{
		Evento:     "proposta_rejeitada",
		PropostaID: proposta.ID,
		Titulo:     proposta.Titulo,
		Decididor:  usuario.Username,
	})

	response.Success(c, gin.H{"message": "proposta rejeitada"})
}
