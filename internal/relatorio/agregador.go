// Package relatorio agrega as vendas de um período em resumo executivo,
// série mensal e ranking de clientes, e renderiza o relatório em PDF.
package relatorio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/venda"
)

// Resumo são os totais do período filtrado.
type Resumo struct {
	ReceitaTotal       decimal.Decimal `json:"receitaTotal"`
	VolumeTotal        int64           `json:"volumeTotal"` // em milheiros
	TicketMedio        decimal.Decimal `json:"ticketMedio"`
	PrecoMedioMilheiro decimal.Decimal `json:"precoMedioMilheiro"`
	QtdVendas          int             `json:"qtdVendas"`
}

// PontoMensal agrega um mês-calendário do período. Meses sem venda aparecem
// com valores zerados.
type PontoMensal struct {
	Rotulo    string          `json:"rotulo"` // ex.: jan/25
	Ano       int             `json:"ano"`
	Mes       time.Month      `json:"mes"`
	Volume    int64           `json:"volume"`
	Receita   decimal.Decimal `json:"receita"`
	QtdVendas int             `json:"qtdVendas"`
}

// PosicaoRanking agrega as compras de um cliente no período.
type PosicaoRanking struct {
	ClienteID string          `json:"clienteId"`
	Nome      string          `json:"nome"`
	Volume    int64           `json:"volume"`
	Valor     decimal.Decimal `json:"valor"`
	Pedidos   int             `json:"pedidos"`
}

var mesesAbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

func rotuloMes(ano int, mes time.Month) string {
	return mesesAbrev[mes-1] + "/" + padAno(ano)
}

func padAno(ano int) string {
	a := ano % 100
	return string([]byte{byte('0' + a/10), byte('0' + a%10)})
}

// FiltrarPorPeriodo devolve as vendas datadas dentro do período inclusivo
// [inicio, fim], truncando os dois limites para o dia-calendário.
func FiltrarPorPeriodo(vendas []venda.Venda, inicio, fim time.Time) []venda.Venda {
	ini, end := datas.Truncar(inicio), datas.Truncar(fim)
	out := make([]venda.Venda, 0, len(vendas))
	for _, v := range vendas {
		d, err := datas.Parse(v.Data)
		if err != nil {
			continue
		}
		if d.Before(ini) || d.After(end) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// CalcularResumo computa os totais. Período sem vendas zera as médias em vez
// de dividir por zero.
func CalcularResumo(vendas []venda.Venda) Resumo {
	r := Resumo{ReceitaTotal: decimal.Zero, TicketMedio: decimal.Zero, PrecoMedioMilheiro: decimal.Zero}
	for _, v := range vendas {
		r.ReceitaTotal = r.ReceitaTotal.Add(v.ValorTotal)
		r.VolumeTotal += v.QuantidadeLarvas
	}
	r.QtdVendas = len(vendas)
	if r.QtdVendas > 0 {
		r.TicketMedio = r.ReceitaTotal.Div(decimal.NewFromInt(int64(r.QtdVendas))).Round(2)
	}
	if r.VolumeTotal > 0 {
		r.PrecoMedioMilheiro = r.ReceitaTotal.Div(decimal.NewFromInt(r.VolumeTotal)).Round(2)
	}
	return r
}

// SerieMensal produz um ponto por mês-calendário do intervalo [inicio, fim],
// em ordem cronológica, inclusive meses sem nenhuma venda. Período sem venda
// alguma devolve série vazia: não há evolução a traçar, só meses em branco.
func SerieMensal(vendas []venda.Venda, inicio, fim time.Time) []PontoMensal {
	ini, end := datas.Truncar(inicio), datas.Truncar(fim)
	if end.Before(ini) || len(vendas) == 0 {
		return []PontoMensal{}
	}

	serie := []PontoMensal{}
	indice := map[[2]int]int{}
	cursor := time.Date(ini.Year(), ini.Month(), 1, 0, 0, 0, 0, time.UTC)
	ultimo := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(ultimo) {
		indice[[2]int{cursor.Year(), int(cursor.Month())}] = len(serie)
		serie = append(serie, PontoMensal{
			Rotulo:  rotuloMes(cursor.Year(), cursor.Month()),
			Ano:     cursor.Year(),
			Mes:     cursor.Month(),
			Receita: decimal.Zero,
		})
		cursor = cursor.AddDate(0, 1, 0)
	}

	for _, v := range vendas {
		d, err := datas.Parse(v.Data)
		if err != nil {
			continue
		}
		i, ok := indice[[2]int{d.Year(), int(d.Month())}]
		if !ok {
			continue
		}
		serie[i].Volume += v.QuantidadeLarvas
		serie[i].Receita = serie[i].Receita.Add(v.ValorTotal)
		serie[i].QtdVendas++
	}
	return serie
}

// RankingClientes agrupa as vendas por cliente e ordena por volume
// decrescente (empates mantêm a ordem de primeira compra).
func RankingClientes(vendas []venda.Venda) []PosicaoRanking {
	indice := map[string]int{}
	ranking := []PosicaoRanking{}
	for _, v := range vendas {
		i, ok := indice[v.ClienteID]
		if !ok {
			i = len(ranking)
			indice[v.ClienteID] = i
			ranking = append(ranking, PosicaoRanking{ClienteID: v.ClienteID, Nome: v.NomeCliente, Valor: decimal.Zero})
		}
		ranking[i].Volume += v.QuantidadeLarvas
		ranking[i].Valor = ranking[i].Valor.Add(v.ValorTotal)
		ranking[i].Pedidos++
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Volume > ranking[j].Volume
	})
	return ranking
}
