package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	// Nossos pacotes de infraestrutura e utilitários
	"userhub/config"
	"userhub/internal/pkg/cache"
	"userhub/internal/pkg/database"
	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/metrics"
	"userhub/internal/pkg/validator"

	// Camadas dos recursos para Injeção de Dependências
	"userhub/internal/api/car"
	"userhub/internal/api/house"
	"userhub/internal/api/passport"
	"userhub/internal/api/router"
	"userhub/internal/api/user"
	"userhub/internal/repository/carrepo"
	"userhub/internal/repository/houserepo"
	"userhub/internal/repository/passportrepo"
	"userhub/internal/repository/userrepo"
	"userhub/internal/service/carservice"
	"userhub/internal/service/houseservice"
	"userhub/internal/service/passportservice"
	"userhub/internal/service/userservice"
)

// @title userhub API
// @version 1.0
// @description CRUD de usuários, carros, imóveis e passaportes.
// @host localhost:8080
// @BasePath /
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		// As variáveis podem vir do ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	pool := database.DefaultPoolConfig()
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.NewPostgresDB(startCtx, cfg.DatabaseURL, pool)
	cancelStart()
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem REDIS_ADDR ou sem resposta, segue sem cache.
	var cacheClient cache.Client = cache.NewNoopClient()
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.RedisAddr)
		if err != nil {
			appLog.Warn("Redis indisponível, seguindo sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			defer redisClient.Close()
			cacheClient = redisClient
			appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
	}

	// C. Métricas (registry próprio, exposto em /metrics)
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	validate := validator.New()
	aside := func(resource string) *cache.Aside {
		return cache.NewAside(cacheClient, cfg.CacheTTL(), resource, appLog, m)
	}

	userRepo := userrepo.NewUserRepository(db, aside("user"), cfg.DBTimeout(), appLog)
	carRepo := carrepo.NewCarRepository(db, aside("car"), cfg.DBTimeout(), appLog)
	houseRepo := houserepo.NewHouseRepository(db, aside("house"), cfg.DBTimeout(), appLog)
	passportRepo := passportrepo.NewPassportRepository(db, aside("passport"), cfg.DBTimeout(), appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	userSvc := userservice.NewService(userRepo, validate, appLog, m)
	carSvc := carservice.NewService(carRepo, validate, appLog, m)
	houseSvc := houseservice.NewService(houseRepo, validate, appLog, m)
	passportSvc := passportservice.NewService(passportRepo, validate, appLog, m)
	appLog.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		User:     user.NewHandler(userSvc, appLog),
		Car:      car.NewHandler(carSvc, appLog),
		House:    house.NewHandler(houseSvc, appLog),
		Passport: passport.NewHandler(passportSvc, appLog),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, m, reg, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTPReadTimeout(),
		WriteTimeout: cfg.HTTPWriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor userhub ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
