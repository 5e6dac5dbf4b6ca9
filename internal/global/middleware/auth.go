package middleware

import (
	"strings"

	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/global/session"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Auth resolve o token Bearer na sessão, carrega o usuário e o expõe no
// contexto da requisição. Com papéis informados, exige que o usuário
// tenha um deles; sem papéis, basta estar autenticado.
func Auth(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, ok, err := session.Get().Resolve(c.Request.Context(), token)
		if err != nil {
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			c.Abort()
			return
		}
		if !ok {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		usuario, err := repository.Usuarios.FindByID(c.Request.Context(), userID)
		if err != nil {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if len(roles) > 0 && !roleAllowed(usuario.TipoUsuario, roles) {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		}

		c.Set(principalKey, usuario)
		c.Set("token", token)
		c.Next()
	}
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// GetPrincipal devolve o usuário autenticado da requisição corrente.
func GetPrincipal(c *gin.Context) (*model.Usuario, bool) {
	v, _ := c.Get(principalKey)
	usuario, ok := v.(*model.Usuario)
	return usuario, ok
}

// GetToken devolve o token Bearer usado na requisição corrente.
func GetToken(c *gin.Context) (string, bool) {
	v, _ := c.Get("token")
	token, ok := v.(string)
	return token, ok
}

// SetPrincipal injeta o usuário autenticado; usado pelos testes.
func SetPrincipal(c *gin.Context, u *model.Usuario) {
	c.Set(principalKey, u)
}
