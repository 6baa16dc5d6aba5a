package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config concentra as opções de processo da aplicação. A configuração de
// domínio (tema, intervalo de contato etc.) vive no registro Configuracao,
// dentro do próprio snapshot de dados.
type Config struct {
	Porta          string
	CaminhoBanco   string
	SegredoJWT     string
	OrigemFrontend string
}

// Load lê variáveis de ambiente (opcionalmente de um arquivo .env) e
// materializa uma Config.
func Load(arquivoEnv string) (*Config, error) {
	if arquivoEnv != "" {
		if err := godotenv.Load(arquivoEnv); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("falha ao carregar %s: %w", arquivoEnv, err)
			}
		}
	} else {
		// .env ausente é aceitável; a configuração pode vir direto do ambiente.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Porta:          getenvComPadrao("APP_PORT", "8080"),
		CaminhoBanco:   getenvComPadrao("DATA_PATH", "controlarva.db"),
		SegredoJWT:     getenvComPadrao("JWT_SECRET", "controlarva-dev"),
		OrigemFrontend: getenvComPadrao("FRONTEND_ORIGIN", "http://localhost:5173"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate garante que os campos obrigatórios estão preenchidos.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config é nil")
	}
	if c.Porta == "" {
		return errors.New("APP_PORT deve ser informada")
	}
	if c.CaminhoBanco == "" {
		return errors.New("DATA_PATH deve ser informado")
	}
	if c.SegredoJWT == "" {
		return errors.New("JWT_SECRET deve ser informado")
	}
	return nil
}

func getenvComPadrao(chave, padrao string) string {
	if valor := os.Getenv(chave); valor != "" {
		return valor
	}
	return padrao
}
