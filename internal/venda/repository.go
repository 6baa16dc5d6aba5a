package venda

import (
	"errors"
	"strings"
	"sync"

	"github.com/controlarva/api-gestao/internal/store"
)

var ErrNaoEncontrada = errors.New("venda não encontrada")

// Repository mantém a coleção de vendas em memória e espelha o snapshot
// completo na persistência a cada mutação.
type Repository struct {
	mu     sync.Mutex
	st     store.Persistencia
	vendas []Venda
}

func NewRepository(st store.Persistencia) (*Repository, error) {
	r := &Repository{st: st, vendas: []Venda{}}
	if _, err := st.Carregar(store.ChaveVendas, &r.vendas); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) salvar() error {
	return r.st.Salvar(store.ChaveVendas, r.vendas)
}

// Listar devolve uma cópia da coleção, opcionalmente filtrada por busca em
// nome do cliente ou forma de pagamento.
func (r *Repository) Listar(busca string) []Venda {
	r.mu.Lock()
	defer r.mu.Unlock()

	termo := strings.ToLower(strings.TrimSpace(busca))
	out := make([]Venda, 0, len(r.vendas))
	for _, v := range r.vendas {
		if termo != "" &&
			!strings.Contains(strings.ToLower(v.NomeCliente), termo) &&
			!strings.Contains(strings.ToLower(string(v.FormaPagamento)), termo) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Todas devolve uma cópia da coleção inteira, para os módulos derivados
// (pós-venda, metas, relatórios).
func (r *Repository) Todas() []Venda {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Venda, len(r.vendas))
	copy(out, r.vendas)
	return out
}

func (r *Repository) BuscarPorID(id string) (*Venda, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.vendas {
		if v.ID == id {
			copia := v
			return &copia, nil
		}
	}
	return nil, ErrNaoEncontrada
}

// Criar insere a venda e, quando substituidaID não é vazio, arquiva a venda
// substituída no mesmo snapshot (renovação de ciclo do pós-venda).
func (r *Repository) Criar(v *Venda, substituidaID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vendas = append(r.vendas, *v)
	if substituidaID != "" {
		for i := range r.vendas {
			if r.vendas[i].ID == substituidaID {
				r.vendas[i].RemovidoDoPosVenda = true
			}
		}
	}
	return r.salvar()
}

func (r *Repository) Atualizar(v *Venda) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vendas {
		if r.vendas[i].ID == v.ID {
			r.vendas[i] = *v
			return r.salvar()
		}
	}
	return ErrNaoEncontrada
}

func (r *Repository) Deletar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vendas {
		if r.vendas[i].ID == id {
			r.vendas = append(r.vendas[:i], r.vendas[i+1:]...)
			return r.salvar()
		}
	}
	return ErrNaoEncontrada
}

// Adiar registra a nova data limite do próximo contato.
func (r *Repository) Adiar(id, adiadoAte string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vendas {
		if r.vendas[i].ID == id {
			r.vendas[i].AdiadoAte = adiadoAte
			return r.salvar()
		}
	}
	return ErrNaoEncontrada
}

// Arquivar exclui a venda do pós-venda em definitivo. O registro da venda
// permanece no sistema.
func (r *Repository) Arquivar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vendas {
		if r.vendas[i].ID == id {
			r.vendas[i].RemovidoDoPosVenda = true
			return r.salvar()
		}
	}
	return ErrNaoEncontrada
}
