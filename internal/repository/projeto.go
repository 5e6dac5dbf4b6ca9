package repository

import (
	"context"

	"cadpro-backend/internal/model"

	"gorm.io/gorm"
)

type projetoGorm struct {
	db *gorm.DB
}

func (r *projetoGorm) FindByID(ctx context.Context, id uint) (*model.Projeto, error) {
	var p model.Projeto
	err := r.db.WithContext(ctx).
		Preload("ProfessorResponsavel").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *projetoGorm) List(ctx context.Context) ([]model.Projeto, error) {
	var projetos []model.Projeto
	err := r.db.WithContext(ctx).
		Order("data_inicio DESC").
		Find(&projetos).Error
	return projetos, err
}

func (r *projetoGorm) Update(ctx context.Context, p *model.Projeto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *projetoGorm) Delete(ctx context.Context, p *model.Projeto) error {
	// atividades, entregas e relatórios caem junto com o projeto
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("projeto_id = ?", p.ID).Delete(&model.Atividade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("projeto_id = ?", p.ID).Delete(&model.Entrega{}).Error; err != nil {
			return err
		}
		if err := tx.Where("projeto_id = ?", p.ID).Delete(&model.Relatorio{}).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}

func (r *projetoGorm) ListEmExecucao(ctx context.Context) ([]model.Projeto, error) {
	var projetos []model.Projeto
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ProjetoEmExecucao).
		Order("data_inicio DESC").
		Find(&projetos).Error
	return projetos, err
}
