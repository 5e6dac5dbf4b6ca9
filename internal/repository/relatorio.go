package repository

import (
	"context"

	"cadpro-backend/internal/model"

	"gorm.io/gorm"
)

type relatorioGorm struct {
	db *gorm.DB
}

func (r *relatorioGorm) Create(ctx context.Context, rel *model.Relatorio) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *relatorioGorm) FindByID(ctx context.Context, id uint) (*model.Relatorio, error) {
	var rel model.Relatorio
	if err := r.db.WithContext(ctx).First(&rel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rel, nil
}

func (r *relatorioGorm) List(ctx context.Context) ([]model.Relatorio, error) {
	var relatorios []model.Relatorio
	err := r.db.WithContext(ctx).Find(&relatorios).Error
	return relatorios, err
}

func (r *relatorioGorm) ListByProjeto(ctx context.Context, projetoID uint) ([]model.Relatorio, error) {
	var relatorios []model.Relatorio
	err := r.db.WithContext(ctx).
		Where("projeto_id = ?", projetoID).
		Order("data_relatorio DESC").
		Find(&relatorios).Error
	return relatorios, err
}

func (r *relatorioGorm) Update(ctx context.Context, rel *model.Relatorio) error {
	return r.db.WithContext(ctx).Save(rel).Error
}

func (r *relatorioGorm) Delete(ctx context.Context, rel *model.Relatorio) error {
	return r.db.WithContext(ctx).Delete(rel).Error
}

func (r *relatorioGorm) ListPublicos(ctx context.Context) ([]model.Relatorio, error) {
	var relatorios []model.Relatorio
	err := r.db.WithContext(ctx).
		Preload("Projeto").
		Where("publico = ?", true).
		Order("data_relatorio DESC").
		Find(&relatorios).Error
	return relatorios, err
}
