package relatorio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/mascaras"
	"github.com/controlarva/api-gestao/internal/venda"
)

// DadosRelatorio reúne tudo que o documento precisa, já agregado.
type DadosRelatorio struct {
	Inicio  time.Time
	Fim     time.Time
	Resumo  Resumo
	Serie   []PontoMensal
	Ranking []PosicaoRanking
	Vendas  []venda.Venda // já filtradas pelo período
}

const (
	larguraPagina = 210.0
	margemX       = 20.0
	larguraGraf   = 170.0
	alturaGraf    = 50.0
)

// GerarPDF renderiza o relatório paginado com as cinco seções na ordem fixa:
// resumo executivo, top-10 de clientes, gráficos de evolução, detalhamento
// mensal e registro de transações. Qualquer falha devolve erro sem documento
// parcial.
func GerarPDF(d DadosRelatorio) (saida []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("falha na geração do PDF: %v", r)
		}
	}()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Relatório Consolidado Controlarva"), true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(148, 163, 184)
		rodape := fmt.Sprintf("Página %d de {nb} | Controlarva Inteligência em Aquicultura", pdf.PageNo())
		pdf.CellFormat(0, 10, tr(rodape), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Faixa do cabeçalho
	pdf.SetFillColor(14, 165, 233)
	pdf.Rect(0, 0, larguraPagina, 45, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.Text(15, 20, "CONTROLARVA")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(15, 30, tr("Relatório Consolidado de Gestão e Vendas"))
	pdf.SetFontSize(11)
	periodo := fmt.Sprintf("Período: %s até %s", datas.FormatarBR(d.Inicio), datas.FormatarBR(d.Fim))
	pdf.Text(larguraPagina-15-pdf.GetStringWidth(tr(periodo)), 25, tr(periodo))

	// 1. Resumo Executivo
	pdf.SetY(55)
	secao(pdf, tr, "1. Resumo Executivo")
	tabela(pdf, tr,
		[]float64{42.5, 42.5, 42.5, 42.5},
		[]string{"Volume (Milheiros)", "Ticket Médio / Milheiro", "Receita Total (R$)", "Qtd. Vendas"},
		[][]string{{
			mascaras.FormatarQuantidade(d.Resumo.VolumeTotal),
			"R$ " + mascaras.FormatarMoeda(d.Resumo.PrecoMedioMilheiro),
			"R$ " + mascaras.FormatarMoeda(d.Resumo.ReceitaTotal),
			fmt.Sprintf("%d", d.Resumo.QtdVendas),
		}},
		[]string{"C", "C", "C", "C"},
		[3]int{14, 165, 233})

	// 2. Ranking Top 10 Clientes
	pdf.Ln(8)
	secao(pdf, tr, "2. Ranking: Top 10 Clientes (Volume)")
	top10 := d.Ranking
	if len(top10) > 10 {
		top10 = top10[:10]
	}
	linhasRanking := make([][]string, 0, len(top10))
	for i, item := range top10 {
		linhasRanking = append(linhasRanking, []string{
			fmt.Sprintf("%dº", i+1),
			item.Nome,
			mascaras.FormatarQuantidade(item.Volume) + " milheiros",
			"R$ " + mascaras.FormatarMoeda(item.Valor),
			fmt.Sprintf("%d", item.Pedidos),
		})
	}
	tabela(pdf, tr,
		[]float64{15, 65, 40, 35, 15},
		[]string{"Pos.", "Cliente", "Volume (Milheiros)", "Valor Comprado", "Pedidos"},
		linhasRanking,
		[]string{"C", "L", "R", "R", "C"},
		[3]int{51, 65, 85})

	// 3. Gráficos de evolução
	pdf.AddPage()
	secao(pdf, tr, "3. Análise Visual de Desempenho")
	rotulos := make([]string, len(d.Serie))
	receitas := make([]float64, len(d.Serie))
	volumes := make([]float64, len(d.Serie))
	for i, p := range d.Serie {
		rotulos[i] = p.Rotulo
		receitas[i] = p.Receita.InexactFloat64()
		volumes[i] = float64(p.Volume)
	}
	graficoLinha(pdf, tr, "Evolução de Receita (R$)", rotulos, receitas, [3]int{14, 165, 233})
	graficoLinha(pdf, tr, "Evolução de Volume (Milheiros)", rotulos, volumes, [3]int{16, 185, 129})

	// 4. Detalhamento Mensal
	pdf.Ln(6)
	secao(pdf, tr, "4. Detalhamento Mensal")
	linhasMes := make([][]string, 0, len(d.Serie))
	for _, p := range d.Serie {
		linhasMes = append(linhasMes, []string{
			p.Rotulo,
			mascaras.FormatarQuantidade(p.Volume) + " milheiros",
			"R$ " + mascaras.FormatarMoeda(p.Receita),
			fmt.Sprintf("%d", p.QtdVendas),
		})
	}
	tabela(pdf, tr,
		[]float64{30, 55, 55, 30},
		[]string{"Mês/Ano", "Volume (Milheiros)", "Receita Total", "Vendas"},
		linhasMes,
		[]string{"L", "R", "R", "C"},
		[3]int{16, 185, 129})

	// 5. Registro Detalhado de Transações
	pdf.AddPage()
	secao(pdf, tr, "5. Registro Detalhado de Transações")
	linhasVendas := make([][]string, 0, len(d.Vendas))
	for _, v := range d.Vendas {
		dataVenda := v.Data
		if dt, err := datas.Parse(v.Data); err == nil {
			dataVenda = dt.Format("02/01/06")
		}
		linhasVendas = append(linhasVendas, []string{
			dataVenda,
			v.NomeCliente,
			mascaras.FormatarQuantidade(v.QuantidadeLarvas),
			"R$ " + mascaras.FormatarMoeda(v.ValorTotal),
			string(v.FormaPagamento),
		})
	}
	tabela(pdf, tr,
		[]float64{22, 68, 30, 30, 20},
		[]string{"Data", "Cliente", "Milheiros", "Valor Total", "Pagamento"},
		linhasVendas,
		[]string{"L", "L", "R", "R", "L"},
		[3]int{100, 116, 139})

	if pdf.Err() {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NomeArquivo devolve o nome do download, com o período embutido.
func NomeArquivo(inicio, fim time.Time) string {
	return fmt.Sprintf("Relatorio_Executivo_Controlarva_%s_%s.pdf",
		datas.Formatar(inicio), datas.Formatar(fim))
}

func secao(pdf *gofpdf.Fpdf, tr func(string) string, titulo string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(0, 10, tr(titulo), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func tabela(pdf *gofpdf.Fpdf, tr func(string) string, larguras []float64, cabecalho []string, linhas [][]string, alinhamentos []string, corCabecalho [3]int) {
	pdf.SetX(margemX)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(corCabecalho[0], corCabecalho[1], corCabecalho[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(226, 232, 240)
	for i, h := range cabecalho {
		pdf.CellFormat(larguras[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(51, 65, 85)
	pdf.SetFillColor(241, 245, 249)
	zebra := false
	for _, linha := range linhas {
		pdf.SetX(margemX)
		for i, celula := range linha {
			pdf.CellFormat(larguras[i], 7, tr(celula), "1", 0, alinhamentos[i], zebra, 0, "")
		}
		pdf.Ln(-1)
		zebra = !zebra
	}
}

// graficoLinha desenha uma série mensal como linha com área preenchida. Com
// menos de dois pontos não há linha a traçar: a seção informa a ausência de
// dados.
func graficoLinha(pdf *gofpdf.Fpdf, tr func(string) string, titulo string, rotulos []string, valores []float64, cor [3]int) {
	y := pdf.GetY() + 8
	if y+alturaGraf+25 > 277 {
		pdf.AddPage()
		y = 30
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(51, 65, 85)
	pdf.Text(margemX, y-3, tr(titulo))

	pdf.SetDrawColor(226, 232, 240)
	pdf.SetLineWidth(0.2)
	pdf.Line(margemX, y, margemX+larguraGraf, y)
	pdf.Line(margemX, y+alturaGraf, margemX+larguraGraf, y+alturaGraf)

	if len(valores) < 2 {
		pdf.SetFont("Helvetica", "", 8)
		msg := tr("Dados insuficientes para gerar gráfico de linha.")
		pdf.Text(margemX+larguraGraf/2-pdf.GetStringWidth(msg)/2, y+alturaGraf/2, msg)
		pdf.SetY(y + alturaGraf + 10)
		return
	}

	maximo := 0.0
	for _, v := range valores {
		if v > maximo {
			maximo = v
		}
	}
	maximo *= 1.2
	if maximo == 0 {
		maximo = 1
	}
	passoX := larguraGraf / float64(len(valores)-1)

	pontos := make([]gofpdf.PointType, 0, len(valores)+2)
	pontos = append(pontos, gofpdf.PointType{X: margemX, Y: y + alturaGraf})
	for i, v := range valores {
		pontos = append(pontos, gofpdf.PointType{
			X: margemX + float64(i)*passoX,
			Y: y + alturaGraf - (v/maximo)*alturaGraf,
		})
	}
	pontos = append(pontos, gofpdf.PointType{X: margemX + larguraGraf, Y: y + alturaGraf})

	pdf.SetFillColor(240, 249, 255)
	pdf.Polygon(pontos, "F")

	pdf.SetDrawColor(cor[0], cor[1], cor[2])
	pdf.SetLineWidth(0.5)
	for i := 1; i < len(pontos)-2; i++ {
		pdf.Line(pontos[i].X, pontos[i].Y, pontos[i+1].X, pontos[i+1].Y)
	}

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(148, 163, 184)
	for i, rotulo := range rotulos {
		if len(rotulos) > 6 && i%2 != 0 {
			continue
		}
		pdf.Text(margemX+float64(i)*passoX-2, y+alturaGraf+5, tr(rotulo))
	}

	pdf.SetY(y + alturaGraf + 12)
}
