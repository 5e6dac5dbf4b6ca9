package repository

import (
	"context"

	"cadpro-backend/internal/model"

	"gorm.io/gorm"
)

type atividadeGorm struct {
	db *gorm.DB
}

func (r *atividadeGorm) Create(ctx context.Context, a *model.Atividade) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *atividadeGorm) FindByID(ctx context.Context, id uint) (*model.Atividade, error) {
	var a model.Atividade
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *atividadeGorm) List(ctx context.Context) ([]model.Atividade, error) {
	var atividades []model.Atividade
	err := r.db.WithContext(ctx).Find(&atividades).Error
	return atividades, err
}

func (r *atividadeGorm) ListByProjeto(ctx context.Context, projetoID uint) ([]model.Atividade, error) {
	var atividades []model.Atividade
	err := r.db.WithContext(ctx).
		Where("projeto_id = ?", projetoID).
		Order("data_registro DESC").
		Find(&atividades).Error
	return atividades, err
}

func (r *atividadeGorm) Update(ctx context.Context, a *model.Atividade) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *atividadeGorm) Delete(ctx context.Context, a *model.Atividade) error {
	return r.db.WithContext(ctx).Delete(a).Error
}
