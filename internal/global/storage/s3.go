package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	appconfig "cadpro-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage envia arquivos para um bucket compatível com S3.
type S3Storage struct {
	cfg      appconfig.S3
	s3Client *s3.Client
}

func NewS3Storage() *S3Storage {
	return &S3Storage{cfg: appconfig.Get().Storage.S3}
}

func (st *S3Storage) initClient(ctx context.Context) error {
	if st.s3Client != nil {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(st.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			st.cfg.AccessKey, st.cfg.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return fmt.Errorf("configuração S3: %w", err)
	}

	st.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if st.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(st.cfg.Endpoint)
		}
		o.UsePathStyle = st.cfg.UsePathStyle
	})
	return nil
}

func (st *S3Storage) objectKey(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	unique := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	key := path.Join(strings.Trim(st.cfg.Prefix, "/"), dir, unique)
	return strings.TrimLeft(key, "/")
}

func (st *S3Storage) Save(ctx context.Context, fileHeader *multipart.FileHeader, dir string) (string, error) {
	if err := st.initClient(ctx); err != nil {
		return "", err
	}
	if st.cfg.Bucket == "" {
		return "", fmt.Errorf("bucket S3 não configurado")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := st.objectKey(dir, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = st.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.cfg.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload S3: %w", err)
	}

	return strings.TrimRight(st.cfg.BaseURL, "/") + "/" + key, nil
}

// PresignedUploadRequest descreve o pedido de upload direto pelo cliente.
type PresignedUploadRequest struct {
	Filename    string
	ContentType string
	ExpiresIn   int64
}

type PresignedUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	FileKey   string    `json:"file_key"`
	FileURL   string    `json:"file_url"`
	ExpiresAt time.Time `json:"expires_at"`
	Method    string    `json:"method"`
}

// GeneratePresignedUploadURL emite uma URL de PUT pré-assinada para o
// cliente subir o arquivo sem passar pelo backend.
func (st *S3Storage) GeneratePresignedUploadURL(ctx context.Context, req PresignedUploadRequest) (*PresignedUploadResponse, error) {
	if err := st.initClient(ctx); err != nil {
		return nil, err
	}
	if st.cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket S3 não configurado")
	}
	if req.Filename == "" {
		return nil, fmt.Errorf("nome de arquivo obrigatório")
	}
	if req.ExpiresIn <= 0 {
		req.ExpiresIn = 900 // 15 minutos
	}

	key := st.objectKey("uploads", req.Filename)
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presignClient := s3.NewPresignClient(st.s3Client)
	presigned, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(req.ExpiresIn) * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("pré-assinatura S3: %w", err)
	}

	return &PresignedUploadResponse{
		UploadURL: presigned.URL,
		FileKey:   key,
		FileURL:   strings.TrimRight(st.cfg.BaseURL, "/") + "/" + key,
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		Method:    presigned.Method,
	}, nil
}
