package repository

import (
	"context"

	"cadpro-backend/internal/model"

	"gorm.io/gorm"
)

type propostaGorm struct {
	db *gorm.DB
}

func (r *propostaGorm) Create(ctx context.Context, p *model.Proposta) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *propostaGorm) FindByID(ctx context.Context, id uint) (*model.Proposta, error) {
	var p model.Proposta
	err := r.db.WithContext(ctx).Preload("Usuario").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *propostaGorm) ListAll(ctx context.Context) ([]model.Proposta, error) {
	var propostas []model.Proposta
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Order("data_submissao DESC").
		Find(&propostas).Error
	return propostas, err
}

func (r *propostaGorm) ListByUsuario(ctx context.Context, usuarioID uint) ([]model.Proposta, error) {
	var propostas []model.Proposta
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("usuario_id = ?", usuarioID).
		Order("data_submissao DESC").
		Find(&propostas).Error
	return propostas, err
}

func (r *propostaGorm) Update(ctx context.Context, p *model.Proposta) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *propostaGorm) Delete(ctx context.Context, p *model.Proposta) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *propostaGorm) Approve(ctx context.Context, p *model.Proposta, projeto *model.Projeto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Proposta{}).
			Where("id = ?", p.ID).
			Update("status", model.PropostaAprovada).Error; err != nil {
			return err
		}
		if err := tx.Create(projeto).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *propostaGorm) HasProjeto(ctx context.Context, propostaID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Projeto{}).
		Where("proposta_origem_id = ?", propostaID).
		Count(&count).Error
	return count > 0, err
}
