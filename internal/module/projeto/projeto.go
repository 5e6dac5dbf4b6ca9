package projeto

import (
	"errors"
	"time"

	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

// List devolve todos os projetos, mais recentes primeiro.
func List(c *gin.Context) {
	projetos, err := repository.Projetos.List(c.Request.Context())
	if err != nil {
		log.Error("listagem de projetos falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make([]model.ProjetoListDTO, 0, len(projetos))
	for i := range projetos {
		result = append(result, projetos[i].ListDTO())
	}
	response.Success(c, result)
}

func Get(c *gin.Context) {
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
		log.Error("consulta de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, projeto.DTO())
}

// UpdateReq permite atualização parcial. ProfessorResponsavelID com
// valor zero desvincula o professor.
type UpdateReq struct {
	Titulo                 *string `json:"titulo"`
	Descricao              *string `json:"descricao"`
	Objetivos              *string `json:"objetivos"`
	ImpactoEsperado        *string `json:"impacto_esperado"`
	Status                 *string `json:"status"`
	DataTerminoPrevista    *string `json:"data_termino_prevista"` // formato 2006-01-02
	DataConclusao          *string `json:"data_conclusao"`
	ProfessorResponsavelID *uint   `json:"professor_responsavel_id"`
}

func Update(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("atualização de projeto com corpo inválido", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	projeto, err := repository.Projetos.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("consulta de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Titulo != nil {
		projeto.Titulo = *req.Titulo
	}
	if req.Descricao != nil {
		projeto.Descricao = *req.Descricao
	}
	if req.Objetivos != nil {
		projeto.Objetivos = *req.Objetivos
	}
	if req.ImpactoEsperado != nil {
		projeto.ImpactoEsperado = *req.ImpactoEsperado
	}
	if req.Status != nil {
		status := model.StatusProjeto(*req.Status)
		if !status.Valid() {
			response.Fail(c, response.ErrInvalidRequest.WithField("status", "status de projeto inválido"))
			return
		}
		projeto.Status = status
	}
	if req.DataTerminoPrevista != nil {
		d, err := parseDate(*req.DataTerminoPrevista)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithField("data_termino_prevista", "data inválida"))
			return
		}
		projeto.DataTerminoPrevista = d
	}
	if req.DataConclusao != nil {
		d, err := parseDate(*req.DataConclusao)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithField("data_conclusao", "data inválida"))
			return
		}
		projeto.DataConclusao = d
	}
	if req.ProfessorResponsavelID != nil {
		if *req.ProfessorResponsavelID == 0 {
			projeto.ProfessorResponsavelID = nil
			projeto.ProfessorResponsavel = nil
		} else {
			// só usuário com papel professor pode supervisionar
			professor, err := repository.Usuarios.FindByID(c.Request.Context(), *req.ProfessorResponsavelID)
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.ErrInvalidRequest.WithField("professor_responsavel_id", "usuário não encontrado"))
				return
			}
			if err != nil {
				log.Error("consulta de professor falhou", "error", err)
				response.Fail(c, response.ErrDatabase.WithOrigin(err))
				return
			}
			if professor.TipoUsuario != model.RoleProfessor {
				response.Fail(c, response.ErrInvalidRequest.WithField("professor_responsavel_id", "usuário não tem papel de professor"))
				return
			}
			projeto.ProfessorResponsavelID = req.ProfessorResponsavelID
			projeto.ProfessorResponsavel = professor
		}
	}

	if err := repository.Projetos.Update(c.Request.Context(), projeto); err != nil {
		log.Error("atualização de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("projeto atualizado", "id", projeto.ID)
	response.Success(c, projeto.DTO())
}

// Delete remove o projeto e seus registros de progresso. Restrito ao
// coordenador.
func Delete(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	if usuario.TipoUsuario != model.RoleCoordenador {
		response.Fail(c, response.ErrForbidden)
		return
	}
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
		log.Error("consulta de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := repository.Projetos.Delete(c.Request.Context(), projeto); err != nil {
		log.Error("remoção de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("projeto removido", "id", id, "coordenador", usuario.Username)
	response.Success(c)
}

// Relatorios lista os relatórios do projeto.
func Relatorios(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	if _, err := repository.Projetos.FindByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("consulta de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	relatorios, err := repository.Relatorios.ListByProjeto(c.Request.Context(), id)
	if err != nil {
		log.Error("listagem de relatórios falhou", "error", err, "projeto_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, relatorios)
}

// Atividades lista as atividades do projeto.
func Atividades(c *gin.Context) {
	id, ok := tools.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id inválido"))
		return
	}

	if _, err := repository.Projetos.FindByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		log.Error("consulta de projeto falhou", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	atividades, err := repository.Atividades.ListByProjeto(c.Request.Context(), id)
	if err != nil {
		log.Error("listagem de atividades falhou", "error", err, "projeto_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, atividades)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
