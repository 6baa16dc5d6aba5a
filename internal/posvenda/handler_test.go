package posvenda

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlarva/api-gestao/internal/configuracao"
	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/store"
	"github.com/controlarva/api-gestao/internal/venda"
)

func novoRouter(t *testing.T) (*mux.Router, *venda.Repository) {
	t.Helper()
	st := store.NovaMemoria()
	vendas, err := venda.NewRepository(st)
	require.NoError(t, err)
	configuracoes, err := configuracao.NewRepository(st)
	require.NoError(t, err)
	h := NewHandler(vendas, configuracoes)

	r := mux.NewRouter()
	r.HandleFunc("/posvenda", h.ListarAcompanhamentos).Methods("GET")
	r.HandleFunc("/posvenda/{id}/adiar", h.AdiarContato).Methods("POST")
	r.HandleFunc("/posvenda/{id}/arquivar", h.ArquivarCard).Methods("POST")
	return r, vendas
}

func TestListarAcompanhamentosStatusInvalido(t *testing.T) {
	r, _ := novoRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/posvenda?status=urgente", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListarAcompanhamentos(t *testing.T) {
	r, vendas := novoRouter(t)
	hoje := datas.Hoje()
	require.NoError(t, vendas.Criar(&venda.Venda{
		ID: "v1", NomeCliente: "Fazenda Potiguar", Telefone: "84999887766",
		Data: datas.Formatar(hoje.AddDate(0, 0, -3)),
	}, ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/posvenda", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var itens []Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &itens))
	require.Len(t, itens, 1)
	assert.Equal(t, 3, itens[0].DiasDesdeVenda)
	assert.Equal(t, StatusEmDia, itens[0].Status, "intervalo padrão de 85 dias")
	assert.Equal(t, "https://wa.me/84999887766", itens[0].LinkWhatsApp)
}

func TestAdiarContato(t *testing.T) {
	r, vendas := novoRouter(t)
	require.NoError(t, vendas.Criar(&venda.Venda{ID: "v1", Data: "2026-01-01"}, ""))

	casos := []struct {
		nome string
		body string
		dias int
	}{
		{"dias como número", `{"dias":10}`, 10},
		{"dias como texto", `{"dias":"7"}`, 7},
		{"negativo vale zero", `{"dias":-5}`, 0},
		{"texto não numérico vale zero", `{"dias":"depois"}`, 0},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("POST", "/posvenda/v1/adiar", strings.NewReader(c.body)))

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			esperado := datas.Formatar(datas.Hoje().AddDate(0, 0, c.dias))
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, esperado, resp["adiadoAte"])

			v, err := vendas.BuscarPorID("v1")
			require.NoError(t, err)
			assert.Equal(t, esperado, v.AdiadoAte)
		})
	}
}

func TestAdiarContatoVendaInexistente(t *testing.T) {
	r, _ := novoRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/posvenda/nada/adiar", strings.NewReader(`{"dias":5}`)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArquivarCardEDefinitivo(t *testing.T) {
	r, vendas := novoRouter(t)
	require.NoError(t, vendas.Criar(&venda.Venda{ID: "v1", NomeCliente: "Fazenda", Data: "2026-08-01"}, ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/posvenda/v1/arquivar", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/posvenda", nil))
	var itens []Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &itens))
	assert.Empty(t, itens, "venda arquivada não volta ao acompanhamento")
}
