package posvenda

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/controlarva/api-gestao/internal/configuracao"
	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/venda"
)

type Handler struct {
	Vendas        *venda.Repository
	Configuracoes *configuracao.Repository
}

func NewHandler(vendas *venda.Repository, configuracoes *configuracao.Repository) *Handler {
	return &Handler{Vendas: vendas, Configuracoes: configuracoes}
}

// GET /posvenda?busca=&status=
func (h *Handler) ListarAcompanhamentos(w http.ResponseWriter, r *http.Request) {
	filtro := Status(r.URL.Query().Get("status"))
	switch filtro {
	case "", StatusEmDia, StatusAdiado, StatusContatar:
	default:
		http.Error(w, "Status de filtro inválido", http.StatusBadRequest)
		return
	}

	intervalo := h.Configuracoes.Obter().IntervaloContatoDias
	itens := Processar(h.Vendas.Todas(), datas.Hoje(), intervalo, r.URL.Query().Get("busca"), filtro)
	json.NewEncoder(w).Encode(itens)
}

type adiarRequest struct {
	// Dias aceita número ou texto; texto não numérico vale 0.
	Dias json.RawMessage `json:"dias"`
}

func (req *adiarRequest) dias() int {
	var n int
	if err := json.Unmarshal(req.Dias, &n); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	var s string
	if err := json.Unmarshal(req.Dias, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			return v
		}
	}
	return 0
}

// POST /posvenda/{id}/adiar
func (h *Handler) AdiarContato(w http.ResponseWriter, r *http.Request) {
	var body adiarRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	novaData := datas.Formatar(datas.Hoje().AddDate(0, 0, body.dias()))
	err := h.Vendas.Adiar(mux.Vars(r)["id"], novaData)
	if errors.Is(err, venda.ErrNaoEncontrada) {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao adiar contato", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"adiadoAte": novaData})
}

// POST /posvenda/{id}/arquivar
func (h *Handler) ArquivarCard(w http.ResponseWriter, r *http.Request) {
	err := h.Vendas.Arquivar(mux.Vars(r)["id"])
	if errors.Is(err, venda.ErrNaoEncontrada) {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao arquivar card", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
