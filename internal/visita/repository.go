package visita

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/store"
)

var ErrNaoEncontrada = errors.New("visita não encontrada")

// Repository mantém a coleção de visitas em memória e espelha o snapshot
// completo na persistência a cada mutação.
type Repository struct {
	mu      sync.Mutex
	st      store.Persistencia
	visitas []Visita
}

func NewRepository(st store.Persistencia) (*Repository, error) {
	r := &Repository{st: st, visitas: []Visita{}}
	if _, err := st.Carregar(store.ChaveVisitas, &r.visitas); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) salvar() error {
	return r.st.Salvar(store.ChaveVisitas, r.visitas)
}

// Listar devolve as visitas dentro do período inclusivo [inicio, fim] cujo
// nome ou região contém o termo de busca. Período nulo não filtra.
func (r *Repository) Listar(inicio, fim *time.Time, busca string) []Visita {
	r.mu.Lock()
	defer r.mu.Unlock()

	termo := strings.ToLower(strings.TrimSpace(busca))
	out := make([]Visita, 0, len(r.visitas))
	for _, v := range r.visitas {
		if inicio != nil || fim != nil {
			d, err := datas.Parse(v.Data)
			if err != nil {
				continue
			}
			if inicio != nil && d.Before(datas.Truncar(*inicio)) {
				continue
			}
			if fim != nil && d.After(datas.Truncar(*fim)) {
				continue
			}
		}
		if termo != "" &&
			!strings.Contains(strings.ToLower(v.Nome), termo) &&
			!strings.Contains(strings.ToLower(v.Regiao), termo) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Criar insere a visita no topo da lista, como no diário de campo original.
func (r *Repository) Criar(v *Visita) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.visitas = append([]Visita{*v}, r.visitas...)
	return r.salvar()
}

func (r *Repository) Deletar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.visitas {
		if r.visitas[i].ID == id {
			r.visitas = append(r.visitas[:i], r.visitas[i+1:]...)
			return r.salvar()
		}
	}
	return ErrNaoEncontrada
}
