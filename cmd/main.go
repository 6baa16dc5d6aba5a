package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/controlarva/api-gestao/internal/auth"
	"github.com/controlarva/api-gestao/internal/cliente"
	"github.com/controlarva/api-gestao/internal/config"
	"github.com/controlarva/api-gestao/internal/configuracao"
	"github.com/controlarva/api-gestao/internal/meta"
	"github.com/controlarva/api-gestao/internal/posvenda"
	"github.com/controlarva/api-gestao/internal/relatorio"
	"github.com/controlarva/api-gestao/internal/store"
	"github.com/controlarva/api-gestao/internal/venda"
	"github.com/controlarva/api-gestao/internal/visita"
	"github.com/controlarva/api-gestao/pkg/logger"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("configuração inválida", zap.Error(err))
	}

	st, err := store.Abrir(cfg.CaminhoBanco, logger.Named(log, "store"))
	if err != nil {
		log.Fatal("erro ao abrir o banco local", zap.Error(err))
	}

	clienteRepo, err := cliente.NewRepository(st)
	if err != nil {
		log.Fatal("erro ao carregar clientes", zap.Error(err))
	}
	vendaRepo, err := venda.NewRepository(st)
	if err != nil {
		log.Fatal("erro ao carregar vendas", zap.Error(err))
	}
	visitaRepo, err := visita.NewRepository(st)
	if err != nil {
		log.Fatal("erro ao carregar visitas", zap.Error(err))
	}
	metaRepo, err := meta.NewRepository(st)
	if err != nil {
		log.Fatal("erro ao carregar metas", zap.Error(err))
	}
	configuracaoRepo, err := configuracao.NewRepository(st)
	if err != nil {
		log.Fatal("erro ao carregar configurações", zap.Error(err))
	}

	// Handlers
	authServico := auth.NewServico(cfg.SegredoJWT)
	authHandler := auth.NewHandler(authServico, st, logger.Named(log, "auth"))
	clienteHandler := cliente.NewHandler(clienteRepo)
	vendaHandler := venda.NewHandler(vendaRepo, clienteRepo)
	visitaHandler := visita.NewHandler(visitaRepo)
	metaHandler := meta.NewHandler(metaRepo, vendaRepo)
	configuracaoHandler := configuracao.NewHandler(configuracaoRepo)
	posvendaHandler := posvenda.NewHandler(vendaRepo, configuracaoRepo)
	relatorioHandler := relatorio.NewHandler(vendaRepo, logger.Named(log, "relatorio"))

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := r.PathPrefix("/").Subrouter()
	api.Use(authServico.MiddlewareAutenticacao)

	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")

	// Rotas de vendas
	api.HandleFunc("/vendas", vendaHandler.CriarVenda).Methods("POST")
	api.HandleFunc("/vendas", vendaHandler.ListarVendas).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.AtualizarVenda).Methods("PUT")
	api.HandleFunc("/vendas/{id}", vendaHandler.DeletarVenda).Methods("DELETE")

	// Rotas de visitas de campo
	api.HandleFunc("/visitas", visitaHandler.CriarVisita).Methods("POST")
	api.HandleFunc("/visitas", visitaHandler.ListarVisitas).Methods("GET")
	api.HandleFunc("/visitas/{id}", visitaHandler.DeletarVisita).Methods("DELETE")

	// Rotas de metas
	api.HandleFunc("/metas", metaHandler.CriarMeta).Methods("POST")
	api.HandleFunc("/metas", metaHandler.ListarMetas).Methods("GET")
	api.HandleFunc("/metas/progresso", metaHandler.ProgressoMetaAtiva).Methods("GET")
	api.HandleFunc("/metas/{id}", metaHandler.AtualizarMeta).Methods("PUT")

	// Rotas de pós-venda
	api.HandleFunc("/posvenda", posvendaHandler.ListarAcompanhamentos).Methods("GET")
	api.HandleFunc("/posvenda/{id}/adiar", posvendaHandler.AdiarContato).Methods("POST")
	api.HandleFunc("/posvenda/{id}/arquivar", posvendaHandler.ArquivarCard).Methods("POST")

	// Rotas de relatórios
	api.HandleFunc("/relatorios", relatorioHandler.ObterRelatorio).Methods("GET")
	api.HandleFunc("/relatorios/pdf", relatorioHandler.ExportarPDF).Methods("GET")

	// Rotas de configurações
	api.HandleFunc("/configuracoes", configuracaoHandler.Obter).Methods("GET")
	api.HandleFunc("/configuracoes", configuracaoHandler.Atualizar).Methods("PUT")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.OrigemFrontend},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	log.Info("servidor no ar", zap.String("porta", cfg.Porta))
	if err := http.ListenAndServe(":"+cfg.Porta, c.Handler(r)); err != nil {
		log.Fatal("servidor encerrado", zap.Error(err))
	}
}
