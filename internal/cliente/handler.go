package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/controlarva/api-gestao/internal/mascaras"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type clienteDTO struct {
	Nome             string `json:"nome"`
	Documento        string `json:"documento"`
	Endereco         string `json:"endereco"`
	Telefone         string `json:"telefone"`
	Email            string `json:"email"`
	QtdViveiros      int    `json:"qtdViveiros"`
	ViveirosComLarva int    `json:"viveirosComLarva"`
	Observacoes      string `json:"observacoes"`
}

// POST /clientes
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var body clienteDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if body.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}

	novo := Cliente{
		ID:               uuid.NewString(),
		Nome:             body.Nome,
		Documento:        mascaras.FormatarDocumento(body.Documento),
		Endereco:         body.Endereco,
		Telefone:         body.Telefone,
		Email:            body.Email,
		QtdViveiros:      body.QtdViveiros,
		ViveirosComLarva: body.ViveirosComLarva,
		Observacoes:      body.Observacoes,
		CriadoEm:         time.Now().UnixMilli(),
	}

	if err := h.Repo.Criar(&novo); err != nil {
		http.Error(w, "Erro ao salvar cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(novo)
}

// GET /clientes?busca=
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes := h.Repo.Listar(r.URL.Query().Get("busca"))
	json.NewEncoder(w).Encode(clientes)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /clientes/{id}
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	existente, err := h.Repo.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	var body clienteDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if body.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}

	// Edita in loco; CriadoEm é preservado.
	existente.Nome = body.Nome
	existente.Documento = mascaras.FormatarDocumento(body.Documento)
	existente.Endereco = body.Endereco
	existente.Telefone = body.Telefone
	existente.Email = body.Email
	existente.QtdViveiros = body.QtdViveiros
	existente.ViveirosComLarva = body.ViveirosComLarva
	existente.Observacoes = body.Observacoes

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /clientes/{id}
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	err := h.Repo.Deletar(mux.Vars(r)["id"])
	if errors.Is(err, ErrNaoEncontrado) {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao deletar cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
