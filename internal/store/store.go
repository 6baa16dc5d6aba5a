// Package store implementa a persistência da aplicação: seis blobs JSON
// independentes, cada um o snapshot completo de uma coleção, regravados por
// inteiro a cada mutação. Os blobs ficam numa tabela única de um banco
// SQLite local — o equivalente do localStorage do painel.
package store

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Chaves dos snapshots persistidos.
const (
	ChaveClientes      = "controlarva_customers"
	ChaveVendas        = "controlarva_sales"
	ChaveVisitas       = "controlarva_visits"
	ChaveMetas         = "controlarva_goals"
	ChaveConfiguracoes = "controlarva_settings"
	ChaveAuth          = "controlarva_auth"
)

// Persistencia é o colaborador de persistência injetado nos repositórios.
// Memoria substitui o banco real nos testes.
type Persistencia interface {
	Carregar(chave string, destino any) (bool, error)
	Salvar(chave string, valor any) error
}

// Snapshot é o registro de um blob na tabela local.
type Snapshot struct {
	Chave string `gorm:"primaryKey"`
	Dados string `gorm:"not null"`
}

// Store guarda snapshots num banco SQLite local.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Abrir conecta no arquivo SQLite e garante a tabela de snapshots.
func Abrir(caminho string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(caminho), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir banco local %s: %w", caminho, err)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("falha no AutoMigrate de snapshots: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}, nil
}

// Carregar lê o blob da chave e decodifica em destino. Devolve false quando a
// chave ainda não existe; um blob corrompido propaga o erro de parse.
func (s *Store) Carregar(chave string, destino any) (bool, error) {
	var snap Snapshot
	err := s.db.First(&snap, "chave = ?", chave).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("falha ao ler snapshot %s: %w", chave, err)
	}
	if err := json.Unmarshal([]byte(snap.Dados), destino); err != nil {
		return false, fmt.Errorf("snapshot %s corrompido: %w", chave, err)
	}
	return true, nil
}

// Salvar serializa o valor e regrava o blob inteiro da chave.
func (s *Store) Salvar(chave string, valor any) error {
	dados, err := json.Marshal(valor)
	if err != nil {
		return fmt.Errorf("falha ao serializar snapshot %s: %w", chave, err)
	}
	err = s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&Snapshot{Chave: chave, Dados: string(dados)}).Error
	if err != nil {
		s.log.Error("falha ao gravar snapshot", zap.String("chave", chave), zap.Error(err))
		return fmt.Errorf("falha ao gravar snapshot %s: %w", chave, err)
	}
	return nil
}
