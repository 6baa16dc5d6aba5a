package configuracao

// Tema do painel. Os valores persistidos seguem o snapshot original.
type Tema string

const (
	TemaClaro  Tema = "light"
	TemaEscuro Tema = "dark"
)

func (t Tema) Valido() bool {
	return t == TemaClaro || t == TemaEscuro
}

// Configuracao é o registro único de preferências do operador.
type Configuracao struct {
	Tema Tema `json:"tema"`
	// IntervaloContatoDias define quando um card de pós-venda expira.
	// Zero é permitido: toda venda expira já no dia zero.
	IntervaloContatoDias int    `json:"intervaloContatoDias"`
	NomeUsuario          string `json:"nomeUsuario"`
	Email                string `json:"email"`
}

// Padrao devolve a configuração inicial do painel.
func Padrao() Configuracao {
	return Configuracao{
		Tema:                 TemaClaro,
		IntervaloContatoDias: 85,
		NomeUsuario:          "Vendedor Master",
		Email:                "contato@controlarva.com",
	}
}
