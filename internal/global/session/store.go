package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"cadpro-backend/tools"
)

// Store guarda os tokens de sessão opacos. Login reaproveita o token
// vigente do usuário; logout o invalida.
type Store interface {
	// GetOrCreate devolve o token vigente do usuário, criando um se não houver.
	GetOrCreate(ctx context.Context, userID uint) (string, error)
	// Resolve traduz token -> usuário. O segundo retorno indica se o token existe.
	Resolve(ctx context.Context, token string) (uint, bool, error)
	// Delete invalida o token.
	Delete(ctx context.Context, token string) error
}

var instance Store

func Init(s Store) {
	instance = s
}

func Get() Store {
	return instance
}

// NewToken gera um token opaco de 40 caracteres hexadecimais.
func NewToken() string {
	buf := make([]byte, 20)
	_, err := rand.Read(buf)
	tools.PanicOnErr(err)
	return hex.EncodeToString(buf)
}

// MemoryStore é a implementação em memória usada nos testes.
type MemoryStore struct {
	mu      sync.Mutex
	byToken map[string]uint
	byUser  map[uint]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken: make(map[string]uint),
		byUser:  make(map[uint]string),
	}
}

func (m *MemoryStore) GetOrCreate(_ context.Context, userID uint) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token, ok := m.byUser[userID]; ok {
		return token, nil
	}
	token := NewToken()
	m.byToken[token] = userID
	m.byUser[userID] = token
	return token, nil
}

func (m *MemoryStore) Resolve(_ context.Context, token string) (uint, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.byToken[token]
	return userID, ok, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if userID, ok := m.byToken[token]; ok {
		delete(m.byUser, userID)
		delete(m.byToken, token)
	}
	return nil
}
