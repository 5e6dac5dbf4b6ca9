package tools

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID lê o parâmetro de rota :id como uint. ok=false quando ausente
// ou não numérico.
func ParamID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
