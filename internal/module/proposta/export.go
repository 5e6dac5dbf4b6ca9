package proposta

import (
	"fmt"
	"time"

	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Propostas"

var exportHeader = []string{
	"ID", "Título", "Status", "Data de Submissão", "Proponente", "Organização",
}

// BuildExport monta a planilha de propostas para o coordenador.
func BuildExport(propostas []model.Proposta) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, p := range propostas {
		values := []any{
			p.ID,
			p.Titulo,
			string(p.Status),
			p.DataSubmissao.Format("2006-01-02"),
			p.Usuario.NomeCompleto(),
			p.Usuario.Organizacao,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Export devolve todas as propostas em xlsx. Somente coordenador.
func Export(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	if usuario.TipoUsuario != model.RoleCoordenador {
		response.Fail(c, response.ErrForbidden)
		return
	}

	propostas, err := repository.Propostas.ListAll(c.Request.Context())
	if err != nil {
		log.Error("listagem de propostas falhou", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f, err := BuildExport(propostas)
	if err != nil {
		log.Error("montagem da planilha falhou", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	filename := fmt.Sprintf("propostas-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		log.Error("envio da planilha falhou", "error", err)
	}
}
