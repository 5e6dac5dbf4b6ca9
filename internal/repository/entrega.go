package repository

import (
	"context"

	"cadpro-backend/internal/model"

	"gorm.io/gorm"
)

type entregaGorm struct {
	db *gorm.DB
}

func (r *entregaGorm) Create(ctx context.Context, e *model.Entrega) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entregaGorm) FindByID(ctx context.Context, id uint) (*model.Entrega, error) {
	var e model.Entrega
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *entregaGorm) List(ctx context.Context) ([]model.Entrega, error) {
	var entregas []model.Entrega
	err := r.db.WithContext(ctx).Find(&entregas).Error
	return entregas, err
}

func (r *entregaGorm) ListByProjeto(ctx context.Context, projetoID uint) ([]model.Entrega, error) {
	var entregas []model.Entrega
	err := r.db.WithContext(ctx).
		Where("projeto_id = ?", projetoID).
		Order("data_envio DESC").
		Find(&entregas).Error
	return entregas, err
}

func (r *entregaGorm) Update(ctx context.Context, e *model.Entrega) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *entregaGorm) Delete(ctx context.Context, e *model.Entrega) error {
	return r.db.WithContext(ctx).Delete(e).Error
}
