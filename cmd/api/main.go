package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/triafrota/tria-backend/docs"
	"github.com/triafrota/tria-backend/internal/handlers/dto"
	httphandlers "github.com/triafrota/tria-backend/internal/handlers/http"
	"github.com/triafrota/tria-backend/internal/handlers/middleware"
	"github.com/triafrota/tria-backend/internal/handlers/ws"
	"github.com/triafrota/tria-backend/internal/infrastructure/config"
	"github.com/triafrota/tria-backend/internal/infrastructure/i18n"
	"github.com/triafrota/tria-backend/internal/infrastructure/logging"
	"github.com/triafrota/tria-backend/internal/infrastructure/persistence/memory"
	"github.com/triafrota/tria-backend/internal/infrastructure/persistence/postgres"
	"github.com/triafrota/tria-backend/internal/infrastructure/sentiment"
	"github.com/triafrota/tria-backend/internal/services"
)

// @title Tria Frota API
// @version 1.0
// @description API de gestão de frota de motos: endereços, filiais, funcionários, motos, setores, alocações e análise de sentimento de reviews.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting tria backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Carregar o artefato do classificador de sentimento
	classifier, err := sentiment.Load(cfg.Model.Path)
	if err != nil {
		logger.Error("failed to load sentiment model", "path", cfg.Model.Path, "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	enderecoRepo := postgres.NewEnderecoRepository(db)
	filialRepo := postgres.NewFilialRepository(db)
	funcionarioRepo := postgres.NewFuncionarioRepository(db)
	motoRepo := postgres.NewMotoRepository(db)
	setorRepo := postgres.NewSetorRepository(db)
	motoSetorRepo := postgres.NewMotoSetorRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	credentialStore, err := memory.NewSeededCredentialStore()
	if err != nil {
		logger.Error("failed to seed credential store", "error", err)
		log.Fatal(err)
	}

	// Hub de eventos da frota via websocket
	hub := ws.NewHub(logger)
	go hub.Run()

	// Inicializar services
	enderecoService := services.NewEnderecoService(enderecoRepo, logger)
	filialService := services.NewFilialService(filialRepo, services.NewFilialValidation(filialRepo, enderecoRepo), logger)
	funcionarioService := services.NewFuncionarioService(funcionarioRepo, services.NewFuncionarioValidation(funcionarioRepo), logger)
	motoService := services.NewMotoService(motoRepo, services.NewMotoValidation(motoRepo, filialRepo), logger)
	setorService := services.NewSetorService(setorRepo, services.NewSetorValidation(setorRepo), logger)
	motoSetorService := services.NewMotoSetorService(motoSetorRepo, services.NewMotoSetorValidation(motoRepo, setorRepo), hub, logger)
	reviewService := services.NewReviewService(reviewRepo, classifier, logger)
	tokenService := services.NewTokenService(credentialStore, services.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Expiry:   cfg.JWT.TokenExpiry(),
	}, logger)

	// Inicializar handlers
	enderecoHandler := httphandlers.NewEnderecoHandler(enderecoService)
	filialHandler := httphandlers.NewFilialHandler(filialService)
	funcionarioHandler := httphandlers.NewFuncionarioHandler(funcionarioService)
	motoHandler := httphandlers.NewMotoHandler(motoService)
	setorHandler := httphandlers.NewSetorHandler(setorService)
	motoSetorHandler := httphandlers.NewMotoSetorHandler(motoSetorService)
	reviewHandler := httphandlers.NewReviewHandler(reviewService)
	authHandler := httphandlers.NewAuthHandler(tokenService)

	// Validadores customizados (cep, uf, combustivel)
	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("failed to register custom validators", "error", err)
		log.Fatal(err)
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	requireAuth := middleware.RequireAuth(middleware.AuthConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		endereco := api.Group("/endereco")
		{
			endereco.POST("", enderecoHandler.Create)
			endereco.GET("", enderecoHandler.List)
			endereco.GET("/:id", enderecoHandler.GetByID)
			endereco.PUT("/:id", enderecoHandler.Update)
			endereco.DELETE("/:id", enderecoHandler.Delete)
			endereco.GET("/cep/:cep", enderecoHandler.GetByCep)
		}

		filial := api.Group("/filial", requireAuth)
		{
			filial.POST("", filialHandler.Create)
			filial.GET("", filialHandler.List)
			filial.GET("/:id", filialHandler.GetByID)
			filial.PUT("/:id", filialHandler.Update)
			filial.DELETE("/:id", filialHandler.Delete)
			filial.GET("/nome/:nome", filialHandler.SearchByNome)
		}

		funcionario := api.Group("/funcionario")
		{
			funcionario.POST("", funcionarioHandler.Create)
			funcionario.GET("", funcionarioHandler.List)
			funcionario.GET("/:id", funcionarioHandler.GetByID)
			funcionario.PUT("/:id", funcionarioHandler.Update)
			funcionario.DELETE("/:id", funcionarioHandler.Delete)
			funcionario.GET("/nome/:nome", funcionarioHandler.SearchByNome)
			funcionario.GET("/cargo/:cargo", funcionarioHandler.SearchByCargo)
		}

		moto := api.Group("/moto")
		{
			moto.POST("", motoHandler.Create)
			moto.GET("", motoHandler.List)
			moto.GET("/:id", motoHandler.GetByID)
			moto.PUT("/:id", motoHandler.Update)
			moto.DELETE("/:id", motoHandler.Delete)
			moto.GET("/ano/:ano", motoHandler.ListFromAno)
			moto.GET("/placa/:placa", motoHandler.GetByPlaca)
			moto.GET("/modelo/:modelo", motoHandler.SearchByModelo)
		}

		setor := api.Group("/setor")
		{
			setor.POST("", setorHandler.Create)
			setor.GET("", setorHandler.List)
			setor.GET("/:id", setorHandler.GetByID)
			setor.PUT("/:id", setorHandler.Update)
			setor.DELETE("/:id", setorHandler.Delete)
		}

		motoSetor := api.Group("/motosetor", requireAuth)
		{
			motoSetor.POST("", motoSetorHandler.Create)
			motoSetor.GET("", motoSetorHandler.List)
			motoSetor.GET("/:id", motoSetorHandler.GetByID)
			motoSetor.PUT("/:id", motoSetorHandler.Update)
			motoSetor.DELETE("/:id", motoSetorHandler.Delete)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", reviewHandler.Create)
			reviews.GET("", reviewHandler.List)
			reviews.GET("/:id", reviewHandler.GetByID)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}

		api.GET("/ws", requireAuth, hub.ServeWs)
	}

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/registrar", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	hub.Stop()

	logger.Info("server exited")
}
