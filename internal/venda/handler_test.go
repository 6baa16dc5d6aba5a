package venda

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlarva/api-gestao/internal/cliente"
	"github.com/controlarva/api-gestao/internal/store"
)

func novoRouter(t *testing.T) (*mux.Router, *Repository, *cliente.Repository) {
	t.Helper()
	st := store.NovaMemoria()
	clientes, err := cliente.NewRepository(st)
	require.NoError(t, err)
	vendas, err := NewRepository(st)
	require.NoError(t, err)
	h := NewHandler(vendas, clientes)

	r := mux.NewRouter()
	r.HandleFunc("/vendas", h.CriarVenda).Methods("POST")
	r.HandleFunc("/vendas", h.ListarVendas).Methods("GET")
	r.HandleFunc("/vendas/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/vendas/{id}", h.AtualizarVenda).Methods("PUT")
	r.HandleFunc("/vendas/{id}", h.DeletarVenda).Methods("DELETE")
	return r, vendas, clientes
}

func TestCriarVendaDesnormalizaClienteECalculaTotal(t *testing.T) {
	r, _, clientes := novoRouter(t)
	require.NoError(t, clientes.Criar(&cliente.Cliente{
		ID: "c1", Nome: "Fazenda Potiguar", Telefone: "84999887766",
	}))

	body := `{"clienteId":"c1","quantidadeLarvas":100,"precoMilheiro":"30.50","data":"2026-08-10","formaPagamento":"PIX"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/vendas", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var criada Venda
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &criada))
	assert.Equal(t, "Fazenda Potiguar", criada.NomeCliente)
	assert.Equal(t, "84999887766", criada.Telefone)
	assert.True(t, criada.ValorTotal.Equal(decimal.RequireFromString("3050")),
		"valorTotal = quantidade × preço, veio %s", criada.ValorTotal)
}

func TestCriarVendaClienteDesconhecido(t *testing.T) {
	r, _, _ := novoRouter(t)

	body := `{"clienteId":"fantasma","quantidadeLarvas":10,"precoMilheiro":"30","data":"2026-08-10","formaPagamento":"PIX"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/vendas", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Por favor, selecione um cliente.")
}

func TestCriarVendaFormaPagamentoInvalida(t *testing.T) {
	r, _, clientes := novoRouter(t)
	require.NoError(t, clientes.Criar(&cliente.Cliente{ID: "c1", Nome: "Fazenda"}))

	body := `{"clienteId":"c1","quantidadeLarvas":10,"precoMilheiro":"30","data":"2026-08-10","formaPagamento":"Cheque"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/vendas", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCriarVendaRenovacaoArquivaASubstituida(t *testing.T) {
	r, vendas, clientes := novoRouter(t)
	require.NoError(t, clientes.Criar(&cliente.Cliente{ID: "c1", Nome: "Fazenda Potiguar"}))
	require.NoError(t, vendas.Criar(&Venda{ID: "v1", ClienteID: "c1", Data: "2026-05-01"}, ""))

	body := `{"clienteId":"c1","quantidadeLarvas":50,"precoMilheiro":"28","data":"2026-08-29","formaPagamento":"Dinheiro","vendaSubstituidaId":"v1"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/vendas", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	antiga, err := vendas.BuscarPorID("v1")
	require.NoError(t, err)
	assert.True(t, antiga.RemovidoDoPosVenda, "a venda substituída sai do pós-venda")
	assert.Len(t, vendas.Todas(), 2, "o registro da venda antiga permanece")
}

func TestAtualizarVendaRecalculaTotal(t *testing.T) {
	r, vendas, clientes := novoRouter(t)
	require.NoError(t, clientes.Criar(&cliente.Cliente{ID: "c1", Nome: "Fazenda Potiguar"}))
	original := Venda{
		ID: "v1", ClienteID: "c1", NomeCliente: "Fazenda Potiguar",
		QuantidadeLarvas: 100, PrecoMilheiro: decimal.NewFromInt(30),
		ValorTotal: decimal.NewFromInt(3000), Data: "2026-08-10", FormaPagamento: PIX,
	}
	require.NoError(t, vendas.Criar(&original, ""))

	body := `{"quantidadeLarvas":200,"precoMilheiro":"25","data":"2026-08-10","formaPagamento":"PIX"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PUT", "/vendas/v1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var atualizada Venda
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &atualizada))
	assert.True(t, atualizada.ValorTotal.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "Fazenda Potiguar", atualizada.NomeCliente, "cliente não mudou, desnormalização intacta")
}

func TestListarVendasComBusca(t *testing.T) {
	r, vendas, _ := novoRouter(t)
	require.NoError(t, vendas.Criar(&Venda{ID: "1", NomeCliente: "Fazenda Potiguar", FormaPagamento: PIX}, ""))
	require.NoError(t, vendas.Criar(&Venda{ID: "2", NomeCliente: "Camarões do Vale", FormaPagamento: Boleto}, ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/vendas?busca=boleto", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var lista []Venda
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, "2", lista[0].ID)
}

func TestDeletarVenda(t *testing.T) {
	r, vendas, _ := novoRouter(t)
	require.NoError(t, vendas.Criar(&Venda{ID: "v1"}, ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/vendas/v1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/vendas/v1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
