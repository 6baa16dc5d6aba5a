package configuracao

import (
	"sync"

	"github.com/controlarva/api-gestao/internal/store"
)

// Repository mantém o registro único de configurações, mutado in loco e
// regravado por inteiro a cada alteração.
type Repository struct {
	mu    sync.Mutex
	st    store.Persistencia
	atual Configuracao
}

func NewRepository(st store.Persistencia) (*Repository, error) {
	r := &Repository{st: st, atual: Padrao()}
	if _, err := st.Carregar(store.ChaveConfiguracoes, &r.atual); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) Obter() Configuracao {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.atual
}

func (r *Repository) Salvar(c Configuracao) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.atual = c
	return r.st.Salvar(store.ChaveConfiguracoes, r.atual)
}
