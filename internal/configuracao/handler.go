package configuracao

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /configuracoes
func (h *Handler) Obter(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Repo.Obter())
}

// PUT /configuracoes
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var body Configuracao
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !body.Tema.Valido() {
		http.Error(w, "Tema inválido", http.StatusBadRequest)
		return
	}
	if body.IntervaloContatoDias < 0 {
		http.Error(w, "Intervalo de contato deve ser não negativo", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Salvar(body); err != nil {
		http.Error(w, "Erro ao salvar configurações", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(body)
}
