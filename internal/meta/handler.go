package meta

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/venda"
)

type Handler struct {
	Repo   *Repository
	Vendas *venda.Repository
}

func NewHandler(repo *Repository, vendas *venda.Repository) *Handler {
	return &Handler{Repo: repo, Vendas: vendas}
}

type metaDTO struct {
	MetaLarvas  int64           `json:"metaLarvas"`
	MetaReceita decimal.Decimal `json:"metaReceita"`
	Prazo       string          `json:"prazo"`
}

func (dto *metaDTO) validar() string {
	if dto.MetaLarvas < 0 || dto.MetaReceita.IsNegative() {
		return "Metas devem ser não negativas"
	}
	if _, err := datas.Parse(dto.Prazo); err != nil {
		return "Prazo inválido"
	}
	return ""
}

// POST /metas
func (h *Handler) CriarMeta(w http.ResponseWriter, r *http.Request) {
	var body metaDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := body.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	nova := Meta{
		ID:          uuid.NewString(),
		MetaLarvas:  body.MetaLarvas,
		MetaReceita: body.MetaReceita,
		Prazo:       body.Prazo,
		CriadoEm:    time.Now().UnixMilli(),
	}
	if err := h.Repo.Criar(&nova); err != nil {
		http.Error(w, "Erro ao salvar meta", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(nova)
}

// GET /metas
func (h *Handler) ListarMetas(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Repo.Listar())
}

// PUT /metas/{id}
func (h *Handler) AtualizarMeta(w http.ResponseWriter, r *http.Request) {
	var body metaDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := body.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	atualizada, err := h.Repo.Atualizar(mux.Vars(r)["id"], Meta{
		MetaLarvas:  body.MetaLarvas,
		MetaReceita: body.MetaReceita,
		Prazo:       body.Prazo,
	})
	if errors.Is(err, ErrNaoEncontrada) {
		http.Error(w, "Meta não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao atualizar meta", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(atualizada)
}

// GET /metas/progresso — progresso da meta ativa, derivado das vendas vivas.
func (h *Handler) ProgressoMetaAtiva(w http.ResponseWriter, r *http.Request) {
	ativa := MetaAtiva(h.Repo.Listar())
	if ativa == nil {
		http.Error(w, "Nenhuma meta ativa", http.StatusNotFound)
		return
	}
	progresso := CalcularProgresso(*ativa, h.Vendas.Todas(), datas.Hoje())
	json.NewEncoder(w).Encode(progresso)
}
