package test

import (
	"context"
	"sort"
	"sync"

	"cadpro-backend/internal/model"
	"cadpro-backend/internal/repository"
)

// Fixture liga fakes em memória aos repositórios de pacote, devolvendo
// acesso direto aos dados para montagem e verificação nos testes.
type Fixture struct {
	Usuarios   *FakeUsuarios
	Propostas  *FakePropostas
	Projetos   *FakeProjetos
	Atividades *FakeAtividades
	Entregas   *FakeEntregas
	Relatorios *FakeRelatorios
}

func SetupRepos() *Fixture {
	usuarios := &FakeUsuarios{items: map[uint]*model.Usuario{}}
	projetos := &FakeProjetos{items: map[uint]*model.Projeto{}, usuarios: usuarios}
	propostas := &FakePropostas{items: map[uint]*model.Proposta{}, usuarios: usuarios, projetos: projetos}
	atividades := &FakeAtividades{items: map[uint]*model.Atividade{}}
	entregas := &FakeEntregas{items: map[uint]*model.Entrega{}}
	relatorios := &FakeRelatorios{items: map[uint]*model.Relatorio{}, projetos: projetos}

	repository.Usuarios = usuarios
	repository.Propostas = propostas
	repository.Projetos = projetos
	repository.Atividades = atividades
	repository.Entregas = entregas
	repository.Relatorios = relatorios

	return &Fixture{
		Usuarios:   usuarios,
		Propostas:  propostas,
		Projetos:   projetos,
		Atividades: atividades,
		Entregas:   entregas,
		Relatorios: relatorios,
	}
}

type FakeUsuarios struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*model.Usuario
}

func (f *FakeUsuarios) Create(_ context.Context, u *model.Usuario) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	u.ID = f.seq
	clone := *u
	f.items[u.ID] = &clone
	return nil
}

func (f *FakeUsuarios) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *FakeUsuarios) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.items {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Count devolve o total de usuários persistidos.
func (f *FakeUsuarios) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type FakePropostas struct {
	mu       sync.Mutex
	seq      uint
	items    map[uint]*model.Proposta
	usuarios *FakeUsuarios
	projetos *FakeProjetos
}

func (f *FakePropostas) withUsuario(p model.Proposta) model.Proposta {
	if u, ok := f.usuarios.items[p.UsuarioID]; ok {
		p.Usuario = *u
	}
	return p
}

func (f *FakePropostas) Create(_ context.Context, p *model.Proposta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	p.ID = f.seq
	clone := *p
	f.items[p.ID] = &clone
	return nil
}

func (f *FakePropostas) FindByID(_ context.Context, id uint) (*model.Proposta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := f.withUsuario(*p)
	return &clone, nil
}

func (f *FakePropostas) ListAll(_ context.Context) ([]model.Proposta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Proposta
	for _, p := range f.items {
		result = append(result, f.withUsuario(*p))
	}
	sortPropostas(result)
	return result, nil
}

func (f *FakePropostas) ListByUsuario(_ context.Context, usuarioID uint) ([]model.Proposta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Proposta
	for _, p := range f.items {
		if p.UsuarioID == usuarioID {
			result = append(result, f.withUsuario(*p))
		}
	}
	sortPropostas(result)
	return result, nil
}

func (f *FakePropostas) Update(_ context.Context, p *model.Proposta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *p
	f.items[p.ID] = &clone
	return nil
}

func (f *FakePropostas) Delete(_ context.Context, p *model.Proposta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, p.ID)
	return nil
}

func (f *FakePropostas) Approve(_ context.Context, p *model.Proposta, projeto *model.Projeto) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.items[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	// mesma transação: status e projeto mudam juntos
	stored.Status = model.PropostaAprovada
	f.projetos.Add(projeto)
	return nil
}

func (f *FakePropostas) HasProjeto(_ context.Context, propostaID uint) (bool, error) {
	f.projetos.mu.Lock()
	defer f.projetos.mu.Unlock()
	for _, pj := range f.projetos.items {
		if pj.PropostaOrigemID == propostaID {
			return true, nil
		}
	}
	return false, nil
}

func sortPropostas(propostas []model.Proposta) {
	sort.Slice(propostas, func(i, j int) bool {
		return propostas[i].DataSubmissao.After(propostas[j].DataSubmissao)
	})
}

type FakeProjetos struct {
	mu       sync.Mutex
	seq      uint
	items    map[uint]*model.Projeto
	usuarios *FakeUsuarios
}

func (f *FakeProjetos) insert(p *model.Projeto) {
	f.seq++
	p.ID = f.seq
	clone := *p
	f.items[p.ID] = &clone
}

// Add insere um projeto diretamente, para montagem de cenários.
func (f *FakeProjetos) Add(p *model.Projeto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insert(p)
}

// Count devolve o total de projetos persistidos.
func (f *FakeProjetos) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *FakeProjetos) withProfessor(p model.Projeto) model.Projeto {
	if p.ProfessorResponsavelID != nil {
		if u, ok := f.usuarios.items[*p.ProfessorResponsavelID]; ok {
			clone := *u
			p.ProfessorResponsavel = &clone
		}
	}
	return p
}

func (f *FakeProjetos) FindByID(_ context.Context, id uint) (*model.Projeto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := f.withProfessor(*p)
	return &clone, nil
}

func (f *FakeProjetos) List(_ context.Context) ([]model.Projeto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Projeto
	for _, p := range f.items {
		result = append(result, *p)
	}
	sortProjetos(result)
	return result, nil
}

func (f *FakeProjetos) Update(_ context.Context, p *model.Projeto) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *p
	clone.ProfessorResponsavel = nil
	f.items[p.ID] = &clone
	return nil
}

func (f *FakeProjetos) Delete(_ context.Context, p *model.Projeto) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, p.ID)
	return nil
}

func (f *FakeProjetos) ListEmExecucao(_ context.Context) ([]model.Projeto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Projeto
	for _, p := range f.items {
		if p.Status == model.ProjetoEmExecucao {
			result = append(result, *p)
		}
	}
	sortProjetos(result)
	return result, nil
}

func sortProjetos(projetos []model.Projeto) {
	sort.Slice(projetos, func(i, j int) bool {
		return projetos[i].DataInicio.After(projetos[j].DataInicio)
	})
}

type FakeAtividades struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*model.Atividade
}

func (f *FakeAtividades) Create(_ context.Context, a *model.Atividade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	a.ID = f.seq
	clone := *a
	f.items[a.ID] = &clone
	return nil
}

func (f *FakeAtividades) FindByID(_ context.Context, id uint) (*model.Atividade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *FakeAtividades) List(_ context.Context) ([]model.Atividade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Atividade
	for _, a := range f.items {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeAtividades) ListByProjeto(_ context.Context, projetoID uint) ([]model.Atividade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Atividade
	for _, a := range f.items {
		if a.ProjetoID == projetoID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeAtividades) Update(_ context.Context, a *model.Atividade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[a.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *a
	f.items[a.ID] = &clone
	return nil
}

func (f *FakeAtividades) Delete(_ context.Context, a *model.Atividade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, a.ID)
	return nil
}

type FakeEntregas struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*model.Entrega
}

func (f *FakeEntregas) Create(_ context.Context, e *model.Entrega) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	e.ID = f.seq
	clone := *e
	f.items[e.ID] = &clone
	return nil
}

func (f *FakeEntregas) FindByID(_ context.Context, id uint) (*model.Entrega, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *FakeEntregas) List(_ context.Context) ([]model.Entrega, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Entrega
	for _, e := range f.items {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeEntregas) ListByProjeto(_ context.Context, projetoID uint) ([]model.Entrega, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Entrega
	for _, e := range f.items {
		if e.ProjetoID == projetoID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeEntregas) Update(_ context.Context, e *model.Entrega) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[e.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *e
	f.items[e.ID] = &clone
	return nil
}

func (f *FakeEntregas) Delete(_ context.Context, e *model.Entrega) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, e.ID)
	return nil
}

type FakeRelatorios struct {
	mu       sync.Mutex
	seq      uint
	items    map[uint]*model.Relatorio
	projetos *FakeProjetos
}

func (f *FakeRelatorios) Create(_ context.Context, r *model.Relatorio) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	r.ID = f.seq
	clone := *r
	f.items[r.ID] = &clone
	return nil
}

func (f *FakeRelatorios) FindByID(_ context.Context, id uint) (*model.Relatorio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *FakeRelatorios) List(_ context.Context) ([]model.Relatorio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Relatorio
	for _, r := range f.items {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeRelatorios) ListByProjeto(_ context.Context, projetoID uint) ([]model.Relatorio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Relatorio
	for _, r := range f.items {
		if r.ProjetoID == projetoID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DataRelatorio.After(result[j].DataRelatorio)
	})
	return result, nil
}

func (f *FakeRelatorios) Update(_ context.Context, r *model.Relatorio) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[r.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *r
	f.items[r.ID] = &clone
	return nil
}

func (f *FakeRelatorios) Delete(_ context.Context, r *model.Relatorio) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, r.ID)
	return nil
}

func (f *FakeRelatorios) ListPublicos(_ context.Context) ([]model.Relatorio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Relatorio
	for _, r := range f.items {
		if !r.Publico {
			continue
		}
		clone := *r
		f.projetos.mu.Lock()
		if pj, ok := f.projetos.items[r.ProjetoID]; ok {
			clone.Projeto = *pj
		}
		f.projetos.mu.Unlock()
		result = append(result, clone)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DataRelatorio.After(result[j].DataRelatorio)
	})
	return result, nil
}
