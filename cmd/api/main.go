package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	dbadapter "github.com/LuisM11/TaskMaster/internal/adapter/db"
	httpadapter "github.com/LuisM11/TaskMaster/internal/adapter/http"
	"github.com/LuisM11/TaskMaster/internal/adapter/http/handlers"
	httpmiddleware "github.com/LuisM11/TaskMaster/internal/adapter/http/middleware"
	"github.com/LuisM11/TaskMaster/internal/adapter/http/validation"
	appservice "github.com/LuisM11/TaskMaster/internal/app/service"
	"github.com/LuisM11/TaskMaster/internal/auth"
	"github.com/LuisM11/TaskMaster/internal/config"
	"github.com/LuisM11/TaskMaster/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger := newLogger(cfg)
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	validation.RegisterValidations()

	if cfg.JwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}
	tokens := auth.NewManager(cfg.JwtSecret, cfg.JwtTTL)

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db))
	listService := appservice.NewListService(dbadapter.NewListRepository(db))
	categoryService := appservice.NewCategoryService(dbadapter.NewCategoryRepository(db))
	authService := appservice.NewAuthService(dbadapter.NewUserRepository(db), tokens, cfg.BcryptCost)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, tokens, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(authService),
		Task:     handlers.NewTaskHandler(taskService),
		List:     handlers.NewListHandler(listService),
		Category: handlers.NewCategoryHandler(categoryService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.LogFile == "" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		writer,
		zap.InfoLevel,
	)
	return zap.New(core)
}
