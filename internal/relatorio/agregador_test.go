package relatorio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/venda"
)

func dia(s string) time.Time {
	d, err := datas.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFiltrarPorPeriodoLimitesInclusivos(t *testing.T) {
	vendas := []venda.Venda{
		{ID: "antes", Data: "2026-05-31"},
		{ID: "inicio", Data: "2026-06-01"},
		{ID: "meio", Data: "2026-07-15"},
		{ID: "fim", Data: "2026-08-29"},
		{ID: "depois", Data: "2026-08-30"},
		{ID: "invalida", Data: "não é data"},
	}

	out := FiltrarPorPeriodo(vendas, dia("2026-06-01"), dia("2026-08-29"))

	require.Len(t, out, 3)
	assert.Equal(t, "inicio", out[0].ID)
	assert.Equal(t, "meio", out[1].ID)
	assert.Equal(t, "fim", out[2].ID)
}

func TestCalcularResumo(t *testing.T) {
	vendas := []venda.Venda{
		{QuantidadeLarvas: 100, ValorTotal: decimal.NewFromInt(3000)},
		{QuantidadeLarvas: 300, ValorTotal: decimal.NewFromInt(9000)},
	}

	r := CalcularResumo(vendas)

	assert.EqualValues(t, 400, r.VolumeTotal)
	assert.True(t, r.ReceitaTotal.Equal(decimal.NewFromInt(12000)))
	assert.True(t, r.TicketMedio.Equal(decimal.NewFromInt(6000)))
	assert.True(t, r.PrecoMedioMilheiro.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 2, r.QtdVendas)
}

func TestCalcularResumoVazioNaoDividePorZero(t *testing.T) {
	r := CalcularResumo(nil)

	assert.Equal(t, 0, r.QtdVendas)
	assert.True(t, r.TicketMedio.IsZero())
	assert.True(t, r.PrecoMedioMilheiro.IsZero())
}

func TestSerieMensalCobreTodosOsMeses(t *testing.T) {
	// novembro a fevereiro: quatro meses-calendário, com virada de ano
	vendas := []venda.Venda{
		{Data: "2025-11-10", QuantidadeLarvas: 50, ValorTotal: decimal.NewFromInt(1500)},
		{Data: "2026-01-05", QuantidadeLarvas: 80, ValorTotal: decimal.NewFromInt(2400)},
		{Data: "2026-01-20", QuantidadeLarvas: 20, ValorTotal: decimal.NewFromInt(600)},
	}

	serie := SerieMensal(vendas, dia("2025-11-15"), dia("2026-02-10"))

	require.Len(t, serie, 4)
	assert.Equal(t, []string{"nov/25", "dez/25", "jan/26", "fev/26"},
		[]string{serie[0].Rotulo, serie[1].Rotulo, serie[2].Rotulo, serie[3].Rotulo})

	assert.EqualValues(t, 50, serie[0].Volume)
	assert.EqualValues(t, 0, serie[1].Volume, "mês sem venda aparece zerado")
	assert.EqualValues(t, 100, serie[2].Volume)
	assert.Equal(t, 2, serie[2].QtdVendas)
	assert.True(t, serie[2].Receita.Equal(decimal.NewFromInt(3000)))
	assert.EqualValues(t, 0, serie[3].Volume)
}

func TestSerieMensalPeriodoInvertido(t *testing.T) {
	serie := SerieMensal(nil, dia("2026-08-01"), dia("2026-07-01"))
	assert.Empty(t, serie)
}

func TestSerieMensalSemVendasFicaVazia(t *testing.T) {
	// três meses sem nenhuma venda: não sai uma linha reta de zeros, sai
	// série vazia, e o gráfico cai em "dados insuficientes"
	serie := SerieMensal([]venda.Venda{}, dia("2026-06-01"), dia("2026-08-29"))
	assert.Empty(t, serie)
}

func TestRankingClientesOrdenaPorVolume(t *testing.T) {
	vendas := []venda.Venda{
		{ClienteID: "a", NomeCliente: "Fazenda A", QuantidadeLarvas: 100, ValorTotal: decimal.NewFromInt(3000)},
		{ClienteID: "b", NomeCliente: "Fazenda B", QuantidadeLarvas: 500, ValorTotal: decimal.NewFromInt(15000)},
		{ClienteID: "a", NomeCliente: "Fazenda A", QuantidadeLarvas: 200, ValorTotal: decimal.NewFromInt(6000)},
		{ClienteID: "c", NomeCliente: "Fazenda C", QuantidadeLarvas: 300, ValorTotal: decimal.NewFromInt(9000)},
	}

	ranking := RankingClientes(vendas)

	require.Len(t, ranking, 3)
	assert.Equal(t, "b", ranking[0].ClienteID)
	assert.Equal(t, "a", ranking[1].ClienteID)
	assert.Equal(t, "c", ranking[2].ClienteID)
	assert.EqualValues(t, 300, ranking[1].Volume)
	assert.Equal(t, 2, ranking[1].Pedidos)
	assert.True(t, ranking[1].Valor.Equal(decimal.NewFromInt(9000)))
}

func TestRankingClientesEmpateMantemOrdemDePrimeiraCompra(t *testing.T) {
	vendas := []venda.Venda{
		{ClienteID: "x", NomeCliente: "X", QuantidadeLarvas: 100},
		{ClienteID: "y", NomeCliente: "Y", QuantidadeLarvas: 100},
	}

	ranking := RankingClientes(vendas)

	require.Len(t, ranking, 2)
	assert.Equal(t, "x", ranking[0].ClienteID)
	assert.Equal(t, "y", ranking[1].ClienteID)
}

func TestGerarPDFComDados(t *testing.T) {
	inicio, fim := dia("2026-06-01"), dia("2026-08-29")
	vendas := []venda.Venda{
		{ID: "1", ClienteID: "a", NomeCliente: "Fazenda Potiguar", Data: "2026-06-10",
			QuantidadeLarvas: 100, ValorTotal: decimal.NewFromInt(3000), FormaPagamento: "PIX"},
		{ID: "2", ClienteID: "b", NomeCliente: "Camarões do Vale", Data: "2026-07-20",
			QuantidadeLarvas: 250, ValorTotal: decimal.NewFromInt(7500), FormaPagamento: "Boleto"},
	}
	d := DadosRelatorio{
		Inicio:  inicio,
		Fim:     fim,
		Resumo:  CalcularResumo(vendas),
		Serie:   SerieMensal(vendas, inicio, fim),
		Ranking: RankingClientes(vendas),
		Vendas:  vendas,
	}

	conteudo, err := GerarPDF(d)

	require.NoError(t, err)
	require.NotEmpty(t, conteudo)
	assert.Equal(t, "%PDF", string(conteudo[:4]))
}

func TestGerarPDFSemVendas(t *testing.T) {
	// período de três meses sem venda alguma: série vazia, sem linha a traçar
	inicio, fim := dia("2026-06-01"), dia("2026-08-29")
	serie := SerieMensal(nil, inicio, fim)
	require.Empty(t, serie)

	d := DadosRelatorio{
		Inicio:  inicio,
		Fim:     fim,
		Resumo:  CalcularResumo(nil),
		Serie:   serie,
		Ranking: RankingClientes(nil),
	}

	conteudo, err := GerarPDF(d)

	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
}

func TestNomeArquivo(t *testing.T) {
	assert.Equal(t,
		"Relatorio_Executivo_Controlarva_2026-06-01_2026-08-29.pdf",
		NomeArquivo(dia("2026-06-01"), dia("2026-08-29")))
}
