package venda

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/controlarva/api-gestao/internal/cliente"
	"github.com/controlarva/api-gestao/internal/datas"
)

type Handler struct {
	Repo     *Repository
	Clientes *cliente.Repository
}

func NewHandler(repo *Repository, clientes *cliente.Repository) *Handler {
	return &Handler{Repo: repo, Clientes: clientes}
}

type vendaDTO struct {
	ClienteID        string          `json:"clienteId"`
	QuantidadeLarvas int64           `json:"quantidadeLarvas"`
	PrecoMilheiro    decimal.Decimal `json:"precoMilheiro"`
	Data             string          `json:"data"`
	FormaPagamento   FormaPagamento  `json:"formaPagamento"`
	ViveirosPovoados int             `json:"viveirosPovoados"`
	Observacoes      string          `json:"observacoes"`
	// VendaSubstituidaID liga a criação à renovação de ciclo do pós-venda.
	VendaSubstituidaID string `json:"vendaSubstituidaId"`
}

func (dto *vendaDTO) validar() string {
	if dto.ClienteID == "" {
		return "Por favor, selecione um cliente."
	}
	if _, err := datas.Parse(dto.Data); err != nil {
		return "Data da venda inválida"
	}
	if !dto.FormaPagamento.Valida() {
		return "Forma de pagamento inválida"
	}
	if dto.QuantidadeLarvas < 0 || dto.PrecoMilheiro.IsNegative() {
		return "Quantidade e preço devem ser não negativos"
	}
	return ""
}

// POST /vendas
func (h *Handler) CriarVenda(w http.ResponseWriter, r *http.Request) {
	var body vendaDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := body.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	c, err := h.Clientes.BuscarPorID(body.ClienteID)
	if err != nil {
		http.Error(w, "Por favor, selecione um cliente.", http.StatusBadRequest)
		return
	}

	nova := Venda{
		ID:               uuid.NewString(),
		ClienteID:        c.ID,
		NomeCliente:      c.Nome,
		Telefone:         c.Telefone,
		QuantidadeLarvas: body.QuantidadeLarvas,
		PrecoMilheiro:    body.PrecoMilheiro,
		Data:             body.Data,
		FormaPagamento:   body.FormaPagamento,
		ViveirosPovoados: body.ViveirosPovoados,
		Observacoes:      body.Observacoes,
	}
	nova.CalcularTotal()

	if err := h.Repo.Criar(&nova, body.VendaSubstituidaID); err != nil {
		http.Error(w, "Erro ao salvar venda", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(nova)
}

// GET /vendas?busca=
func (h *Handler) ListarVendas(w http.ResponseWriter, r *http.Request) {
	vendas := h.Repo.Listar(r.URL.Query().Get("busca"))
	json.NewEncoder(w).Encode(vendas)
}

// GET /vendas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	v, err := h.Repo.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(v)
}

// PUT /vendas/{id}
func (h *Handler) AtualizarVenda(w http.ResponseWriter, r *http.Request) {
	existente, err := h.Repo.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	var body vendaDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if body.ClienteID == "" {
		body.ClienteID = existente.ClienteID
	}
	if msg := body.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// A desnormalização de nome/telefone só muda se o cliente mudar.
	if body.ClienteID != existente.ClienteID {
		c, err := h.Clientes.BuscarPorID(body.ClienteID)
		if err != nil {
			http.Error(w, "Por favor, selecione um cliente.", http.StatusBadRequest)
			return
		}
		existente.ClienteID = c.ID
		existente.NomeCliente = c.Nome
		existente.Telefone = c.Telefone
	}

	existente.QuantidadeLarvas = body.QuantidadeLarvas
	existente.PrecoMilheiro = body.PrecoMilheiro
	existente.Data = body.Data
	existente.FormaPagamento = body.FormaPagamento
	existente.ViveirosPovoados = body.ViveirosPovoados
	existente.Observacoes = body.Observacoes
	existente.CalcularTotal()

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar venda", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /vendas/{id}
func (h *Handler) DeletarVenda(w http.ResponseWriter, r *http.Request) {
	err := h.Repo.Deletar(mux.Vars(r)["id"])
	if errors.Is(err, ErrNaoEncontrada) {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao deletar venda", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
