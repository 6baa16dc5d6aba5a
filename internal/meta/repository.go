package meta

import (
	"errors"
	"sync"

	"github.com/controlarva/api-gestao/internal/store"
)

var ErrNaoEncontrada = errors.New("meta não encontrada")

// Repository mantém a coleção de metas em memória e espelha o snapshot
// completo na persistência a cada mutação. Não há operação de remoção:
// metas antigas permanecem como histórico.
type Repository struct {
	mu    sync.Mutex
	st    store.Persistencia
	metas []Meta
}

func NewRepository(st store.Persistencia) (*Repository, error) {
	r := &Repository{st: st, metas: []Meta{}}
	if _, err := st.Carregar(store.ChaveMetas, &r.metas); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) salvar() error {
	return r.st.Salvar(store.ChaveMetas, r.metas)
}

func (r *Repository) Listar() []Meta {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Meta, len(r.metas))
	copy(out, r.metas)
	return out
}

func (r *Repository) Criar(m *Meta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.metas = append(r.metas, *m)
	return r.salvar()
}

// Atualizar substitui os três campos editáveis de uma meta existente.
// CriadoEm não é alterado, de modo que a meta editada mantém a posição de
// criação original.
func (r *Repository) Atualizar(id string, m Meta) (*Meta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.metas {
		if r.metas[i].ID == id {
			r.metas[i].MetaLarvas = m.MetaLarvas
			r.metas[i].MetaReceita = m.MetaReceita
			r.metas[i].Prazo = m.Prazo
			copia := r.metas[i]
			if err := r.salvar(); err != nil {
				return nil, err
			}
			return &copia, nil
		}
	}
	return nil, ErrNaoEncontrada
}
