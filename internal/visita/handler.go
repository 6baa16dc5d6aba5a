package visita

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/controlarva/api-gestao/internal/datas"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type visitaDTO struct {
	Data              string `json:"data"`
	Nome              string `json:"nome"`
	Regiao            string `json:"regiao"`
	QtdViveiros       int    `json:"qtdViveiros"`
	ViveirosComLarva  int    `json:"viveirosComLarva"`
	Area              string `json:"area"`
	QuantidadePovoada string `json:"quantidadePovoada"`
	Densidade         string `json:"densidade"`
	Observacoes       string `json:"observacoes"`
}

// POST /visitas
func (h *Handler) CriarVisita(w http.ResponseWriter, r *http.Request) {
	var body visitaDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if body.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	if _, err := datas.Parse(body.Data); err != nil {
		http.Error(w, "Data da visita inválida", http.StatusBadRequest)
		return
	}

	nova := Visita{
		ID:                uuid.NewString(),
		Data:              body.Data,
		Nome:              body.Nome,
		Regiao:            body.Regiao,
		QtdViveiros:       body.QtdViveiros,
		ViveirosComLarva:  body.ViveirosComLarva,
		Area:              body.Area,
		QuantidadePovoada: body.QuantidadePovoada,
		Densidade:         body.Densidade,
		Observacoes:       body.Observacoes,
	}
	if err := h.Repo.Criar(&nova); err != nil {
		http.Error(w, "Erro ao salvar visita", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(nova)
}

// GET /visitas?inicio=&fim=&busca=
func (h *Handler) ListarVisitas(w http.ResponseWriter, r *http.Request) {
	var inicio, fim *time.Time
	if s := r.URL.Query().Get("inicio"); s != "" {
		d, err := datas.Parse(s)
		if err != nil {
			http.Error(w, "Data de início inválida", http.StatusBadRequest)
			return
		}
		inicio = &d
	}
	if s := r.URL.Query().Get("fim"); s != "" {
		d, err := datas.Parse(s)
		if err != nil {
			http.Error(w, "Data de fim inválida", http.StatusBadRequest)
			return
		}
		fim = &d
	}

	visitas := h.Repo.Listar(inicio, fim, r.URL.Query().Get("busca"))
	json.NewEncoder(w).Encode(visitas)
}

// DELETE /visitas/{id}
func (h *Handler) DeletarVisita(w http.ResponseWriter, r *http.Request) {
	err := h.Repo.Deletar(mux.Vars(r)["id"])
	if errors.Is(err, ErrNaoEncontrada) {
		http.Error(w, "Visita não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao deletar visita", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
