package auth

import (
	"cadpro-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleAuth) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")

	authGroup.POST("/registro", Registro)
	authGroup.POST("/login", Login)
	authGroup.POST("/logout", middleware.Auth(), Logout)
	authGroup.GET("/perfil", middleware.Auth(), Perfil)
}
