package arquivo

import (
	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/global/storage"

	"github.com/gin-gonic/gin"
)

type PresignReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Presign emite uma URL de upload direto. Disponível apenas quando o
// armazenamento configurado é S3.
func Presign(c *gin.Context) {
	var req PresignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("pedido de pré-assinatura inválido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	s3Storage, ok := storage.Get().(*storage.S3Storage)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("armazenamento local não suporta upload direto"))
		return
	}

	presigned, err := s3Storage.GeneratePresignedUploadURL(c.Request.Context(), storage.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		ExpiresIn:   req.ExpiresIn,
	})
	if err != nil {
		log.Error("pré-assinatura falhou", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	response.Success(c, presigned)
}
