package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memoria é uma Persistencia volátil, usada nos testes no lugar do SQLite.
type Memoria struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NovaMemoria() *Memoria {
	return &Memoria{blobs: map[string][]byte{}}
}

func (m *Memoria) Carregar(chave string, destino any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dados, ok := m.blobs[chave]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(dados, destino); err != nil {
		return false, fmt.Errorf("snapshot %s corrompido: %w", chave, err)
	}
	return true, nil
}

func (m *Memoria) Salvar(chave string, valor any) error {
	dados, err := json.Marshal(valor)
	if err != nil {
		return fmt.Errorf("falha ao serializar snapshot %s: %w", chave, err)
	}
	m.mu.Lock()
	m.blobs[chave] = dados
	m.mu.Unlock()
	return nil
}
