package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/controlarva/api-gestao/internal/store"
)

type Handler struct {
	Servico *Servico
	Store   store.Persistencia
	Log     *zap.Logger
}

func NewHandler(servico *Servico, st store.Persistencia, log *zap.Logger) *Handler {
	return &Handler{Servico: servico, Store: st, Log: log}
}

type loginRequest struct {
	Usuario string `json:"usuario"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
}

// POST /login
//
// Operador único: não há senha a conferir. A pausa reproduz a latência da
// tela de entrada original antes de liberar o painel.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Usuario == "" {
		req.Usuario = "Vendedor Master"
	}

	time.Sleep(800 * time.Millisecond)

	token, err := h.Servico.GerarToken(req.Usuario)
	if err != nil {
		h.Log.Error("falha ao assinar token de sessão", zap.Error(err))
		http.Error(w, "Erro ao iniciar sessão", http.StatusInternalServerError)
		return
	}
	if err := h.Store.Salvar(store.ChaveAuth, true); err != nil {
		h.Log.Error("falha ao registrar sessão", zap.Error(err))
		http.Error(w, "Erro ao iniciar sessão", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(loginResponse{Token: token, Usuario: req.Usuario})
}

// POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Salvar(store.ChaveAuth, false); err != nil {
		http.Error(w, "Erro ao encerrar sessão", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
