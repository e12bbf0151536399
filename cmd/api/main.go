package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gramsetu-backend/internal/adapter/gemini"
	httpadp "gramsetu-backend/internal/adapter/http"
	appmw "gramsetu-backend/internal/adapter/middleware"
	"gramsetu-backend/internal/adapter/repository/gormdb"
	"gramsetu-backend/internal/config"
	"gramsetu-backend/internal/infrastructure/cache"
	"gramsetu-backend/internal/infrastructure/db"
	appUC "gramsetu-backend/internal/usecase/application"
	chatUC "gramsetu-backend/internal/usecase/chat"
	dashUC "gramsetu-backend/internal/usecase/dashboard"
	repayUC "gramsetu-backend/internal/usecase/repayment"
	scoreUC "gramsetu-backend/internal/usecase/score"
	userUC "gramsetu-backend/internal/usecase/user"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("open database", zap.Error(err), zap.String("driver", cfg.DBDriver))
	}

	appRepo := gormdb.NewApplicationRepository(conn)
	userRepo := gormdb.NewUserRepository(conn)
	repayRepo := gormdb.NewRepaymentRepository(conn)
	uow := gormdb.NewGormUoW(conn)

	gen := scoreUC.NewGenerator()
	apps := appUC.NewUsecase(appRepo, uow, gen)
	pays := repayUC.NewUsecase(repayRepo)
	users := userUC.NewUsecase(userRepo)
	stats := dashUC.NewUsecase(appRepo, cfg.DefaultRatePct)

	var assistant chatUC.Assistant
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("init gemini client", zap.Error(err))
		}
		assistant = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat runs in offline mode")
	}
	relay := chatUC.NewRelay(assistant, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatal("open redis", zap.Error(err), zap.String("addr", cfg.RedisAddr))
		}
		e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	h := httpadp.NewHandler()
	loans := httpadp.NewLoanHandler(apps, pays)
	auth := httpadp.NewAuthHandler(users)
	dash := httpadp.NewDashboardHandler(stats, gen)
	chat := httpadp.NewChatHandler(relay)

	// routes
	e.GET("/health", h.Health)

	e.POST("/register", auth.Register)
	e.POST("/login", auth.Login)

	e.POST("/loans", loans.CreateLoan)
	e.GET("/loans", loans.ListLoans)
	e.GET("/loans/:loan_id", loans.GetLoan)
	e.PATCH("/loans/:loan_id/status", loans.UpdateStatus)
	e.GET("/loans/:loan_id/schedule", loans.GetSchedule)
	e.POST("/loans/:loan_id/payments", loans.PayEMI)

	e.GET("/dashboard", dash.GetStats)
	e.GET("/credit-score/:user_id", dash.GetCreditScore)

	e.POST("/chat", chat.Ask)
	e.POST("/chat/reset", chat.Reset)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
