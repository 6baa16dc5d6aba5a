package cliente

import (
	"errors"
	"strings"
	"sync"

	"github.com/controlarva/api-gestao/internal/store"
)

var ErrNaoEncontrado = errors.New("cliente não encontrado")

// Repository mantém a coleção de clientes em memória e espelha o snapshot
// completo na persistência a cada mutação.
type Repository struct {
	mu       sync.Mutex
	st       store.Persistencia
	clientes []Cliente
}

func NewRepository(st store.Persistencia) (*Repository, error) {
	r := &Repository{st: st, clientes: []Cliente{}}
	if _, err := st.Carregar(store.ChaveClientes, &r.clientes); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) salvar() error {
	return r.st.Salvar(store.ChaveClientes, r.clientes)
}

// Listar devolve uma cópia da coleção, opcionalmente filtrada por busca
// livre em nome, documento, telefone e endereço.
func (r *Repository) Listar(busca string) []Cliente {
	r.mu.Lock()
	defer r.mu.Unlock()

	termo := strings.ToLower(strings.TrimSpace(busca))
	out := make([]Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		if termo != "" && !correspondeBusca(c, termo) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func correspondeBusca(c Cliente, termo string) bool {
	return strings.Contains(strings.ToLower(c.Nome), termo) ||
		strings.Contains(c.Documento, termo) ||
		strings.Contains(c.Telefone, termo) ||
		strings.Contains(strings.ToLower(c.Endereco), termo)
}

func (r *Repository) BuscarPorID(id string) (*Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clientes {
		if c.ID == id {
			copia := c
			return &copia, nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (r *Repository) Criar(c *Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clientes = append(r.clientes, *c)
	return r.salvar()
}

func (r *Repository) Atualizar(c *Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clientes {
		if r.clientes[i].ID == c.ID {
			r.clientes[i] = *c
			return r.salvar()
		}
	}
	return ErrNaoEncontrado
}

// Deletar remove o cliente sem cascata: vendas existentes mantêm o nome e o
// telefone desnormalizados na época da venda.
func (r *Repository) Deletar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clientes {
		if r.clientes[i].ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			return r.salvar()
		}
	}
	return ErrNaoEncontrado
}
