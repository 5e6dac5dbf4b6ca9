package auth

import (
	"errors"

	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/global/session"
	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

// RegistroReq é o corpo do cadastro de comunidade externa. O papel não é
// aceito do cliente: todo registro nasce como comunidade.
type RegistroReq struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Nome            string `json:"first_name"`
	Sobrenome       string `json:"last_name"`
	Telefone        string `json:"telefone"`
	Organizacao     string `json:"organizacao"`
	Password        string `json:"password" binding:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" binding:"required,min=6"`
}

// Registro cria um usuário comunidade e já emite o token de sessão.
func Registro(c *gin.Context) {
	var req RegistroReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("registro com corpo inválido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Password != req.PasswordConfirm {
		log.Warn("registro com senhas divergentes", "username", req.Username)
		response.Fail(c, response.ErrInvalidRequest.WithField("password", "as senhas não coincidem"))
		return
	}

	// username é único
	if _, err := repository.Usuarios.FindByUsername(c.Request.Context(), req.Username); err == nil {
		log.Warn("username já cadastrado", "username", req.Username)
		response.Fail(c, response.ErrInvalidRequest.WithField("username", "nome de usuário já cadastrado"))
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Error("consulta de usuário falhou", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	usuario := model.Usuario{
		Username:    req.Username,
		Email:       req.Email,
		Nome:        req.Nome,
		Sobrenome:   req.Sobrenome,
		Telefone:    req.Telefone,
		Organizacao: req.Organizacao,
		Senha:       tools.PasswordEncrypt(req.Password),
		TipoUsuario: model.RoleComunidade,
	}
	if err := repository.Usuarios.Create(c.Request.Context(), &usuario); err != nil {
		log.Error("criação de usuário falhou", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	token, err := session.Get().GetOrCreate(c.Request.Context(), usuario.ID)
	if err != nil {
		log.Error("emissão de token falhou", "error", err, "username", req.Username)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("usuário registrado",
		"username", usuario.Username,
		"tipo_usuario", usuario.TipoUsuario)

	response.Created(c, gin.H{
		"user":  usuario.DTO(),
		"token": token,
	})
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login valida as credenciais e devolve o token vigente (ou um novo).
// Usuário inexistente e senha errada produzem a mesma resposta.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("login com corpo inválido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	usuario, err := repository.Usuarios.FindByUsername(c.Request.Context(), req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("login de usuário desconhecido", "username", req.Username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}
	if err != nil {
		log.Error("consulta de usuário falhou", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, usuario.Senha) {
		log.Warn("login com senha incorreta", "username", req.Username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	token, err := session.Get().GetOrCreate(c.Request.Context(), usuario.ID)
	if err != nil {
		log.Error("emissão de token falhou", "error", err, "username", req.Username)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("login efetuado",
		"username", usuario.Username,
		"tipo_usuario", usuario.TipoUsuario)

	response.Success(c, gin.H{
		"user":  usuario.DTO(),
		"token": token,
	})
}

// Logout invalida o token da requisição corrente.
func Logout(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	if err := session.Get().Delete(c.Request.Context(), token); err != nil {
		log.Error("invalidação de token falhou", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"message": "logout realizado com sucesso"})
}

// Perfil devolve os campos públicos do usuário autenticado.
func Perfil(c *gin.Context) {
	usuario, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}
	response.Success(c, usuario.DTO())
}
