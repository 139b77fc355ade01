package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/adicional"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/assinatura"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/auth"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/clausula"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/custos"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/eventos"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/notificacao"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/planilha"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/plano"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/rejeicao"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/usuario"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := migrar(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Publicador de eventos (opcional: sem RABBITMQ_URI o serviço sobe sem broker)
	var publicador *eventos.Publisher
	if uri := os.Getenv("RABBITMQ_URI"); uri != "" {
		publicador, err = eventos.NewPublisher(uri, "contratos.eventos")
		if err != nil {
			log.Println("RabbitMQ indisponível, eventos desabilitados:", err)
			publicador = nil
		} else {
			defer publicador.Close()
		}
	}

	// Repositórios
	planoRepo := plano.NewRepository(database)
	adicionalRepo := adicional.NewRepository(database)
	contratoRepo := contrato.NewRepository(database)
	contratanteRepo := contratante.NewRepository(database)
	usuarioRepo := usuario.NewRepository(database)
	notificacaoRepo := notificacao.NewRepository(database)
	assinaturaRepo := assinatura.NewRepository(database)
	rejeicaoRepo := rejeicao.NewRepository(database)
	custosRepo := custos.NewRepository(database)

	precificador := &contrato.Precificador{Planos: planoRepo, Adicionais: adicionalRepo}

	// Handlers
	usuarioHandler := usuario.NewHandler(usuarioRepo)
	planoHandler := plano.NewHandler(planoRepo)
	adicionalHandler := adicional.NewHandler(adicionalRepo)
	contratoHandler := contrato.NewHandler(contratoRepo, planoRepo, adicionalRepo, publicador)
	planilhaHandler := planilha.NewHandler(contratoRepo)
	clausulaHandler := clausula.NewHandler(contratoRepo)
	notificacaoHandler := notificacao.NewHandler(notificacaoRepo)
	assinaturaHandler := assinatura.NewHandler(assinaturaRepo, contratoRepo, publicador)
	rejeicaoHandler := rejeicao.NewHandler(rejeicaoRepo, contratoRepo, contratanteRepo,
		assinaturaRepo, precificador, notificacaoRepo, publicador)
	custosHandler := custos.NewHandler(custosRepo)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/assinatura/{token}", assinaturaHandler.AcessarPorToken).Methods("GET")
	r.HandleFunc("/assinatura/callback", assinaturaHandler.Callback).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/simulacao", contratoHandler.Simulacao).Methods("GET")
	api.HandleFunc("/contratos/resumo-uf", contratoHandler.ResumoPorUF).Methods("GET")

	// Planilha (importação e exportação em CSV) antes das rotas com {id}
	api.HandleFunc("/contratos/importar", planilhaHandler.Importar).Methods("POST")
	api.HandleFunc("/contratos/exportar", planilhaHandler.Exportar).Methods("GET")

	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/recalcular", contratoHandler.Recalcular).Methods("POST")
	api.HandleFunc("/contratos/{id}/clausulas", clausulaHandler.Gerar).Methods("GET")
	api.HandleFunc("/contratos/{id}/token-assinatura", assinaturaHandler.GerarToken).Methods("POST")
	api.HandleFunc("/contratos/{id}/assinatura", assinaturaHandler.StatusPorContrato).Methods("GET")

	// Rejeições e revisões
	api.HandleFunc("/contratos/{id}/rejeicoes", rejeicaoHandler.Registrar).Methods("POST")
	api.HandleFunc("/contratos/{id}/rejeicoes", rejeicaoHandler.ListarPorContrato).Methods("GET")
	api.HandleFunc("/rejeicoes", rejeicaoHandler.Listar).Methods("GET")
	api.HandleFunc("/rejeicoes/{id}/analisar", rejeicaoHandler.Analisar).Methods("POST")

	// Planos e adicionais (leitura para todos os autenticados)
	api.HandleFunc("/planos", planoHandler.Listar).Methods("GET")
	api.HandleFunc("/planos/{id}", planoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/adicionais", adicionalHandler.Listar).Methods("GET")

	// Notificações
	api.HandleFunc("/notificacoes", notificacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/notificacoes/{id}/lida", notificacaoHandler.MarcarLida).Methods("POST")

	// Usuário autenticado
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuarios/{id}/senha", usuarioHandler.AlterarSenha).Methods("PUT")

	// Custos (leitura)
	api.HandleFunc("/custos", custosHandler.Listar).Methods("GET")
	api.HandleFunc("/custos/projecao", custosHandler.Projecao).Methods("GET")

	// Rotas administrativas
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")

	admin.HandleFunc("/planos", planoHandler.Criar).Methods("POST")
	admin.HandleFunc("/planos/{id}", planoHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/planos/{id}", planoHandler.Deletar).Methods("DELETE")

	admin.HandleFunc("/adicionais", adicionalHandler.Criar).Methods("POST")
	admin.HandleFunc("/adicionais/{id}", adicionalHandler.Atualizar).Methods("PUT")

	admin.HandleFunc("/custos", custosHandler.Criar).Methods("POST")
	admin.HandleFunc("/custos/{id}", custosHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/custos/{id}", custosHandler.Deletar).Methods("DELETE")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}

// migrar executa o AutoMigrate de todos os agregados.
func migrar(database *gorm.DB) error {
	migracoes := []func(*gorm.DB) error{
		usuario.Migrate,
		plano.Migrate,
		adicional.Migrate,
		contrato.Migrate,
		contratante.Migrate,
		notificacao.Migrate,
		assinatura.Migrate,
		rejeicao.Migrate,
		custos.Migrate,
	}
	for _, m := range migracoes {
		if err := m(database); err != nil {
			return err
		}
	}
	return nil
}
