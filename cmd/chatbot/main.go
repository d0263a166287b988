package main

import (
	"fmt"
	"log"

	"github.com/brightlabs/sciencebot-go/internal/config"
	"github.com/brightlabs/sciencebot-go/internal/handler"
	"github.com/brightlabs/sciencebot-go/internal/middleware"
	"github.com/brightlabs/sciencebot-go/internal/resolver"
	"github.com/brightlabs/sciencebot-go/internal/service"
	"github.com/brightlabs/sciencebot-go/internal/store"
	"github.com/brightlabs/sciencebot-go/pkg/logger"
	"github.com/brightlabs/sciencebot-go/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig("configs/chatbot.yaml")
	if err != nil {
		log.Fatalf("loading config failed: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("initializing logger failed: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("chatbot service starting...")

	redisClient, err := redis.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis failed", zap.Error(err))
	}

	// Stores
	faqStore := store.NewRedisFAQStore(redisClient, zapLogger)
	transcriptStore := store.NewRedisTranscriptStore(redisClient, zapLogger)

	// Services
	res := resolver.New(zapLogger)
	chatService := service.NewChatService(faqStore, transcriptStore, res, cfg.Chat, zapLogger)
	faqService := service.NewFAQService(faqStore, zapLogger)
	sessionService := service.NewSessionService(zapLogger)

	// Handlers
	chatHandler := handler.NewChatHandler(chatService, sessionService, zapLogger)
	faqHandler := handler.NewFAQHandler(faqService, zapLogger)
	wsHandler := handler.NewWebSocketHandler(sessionService, chatService, zapLogger)

	r := gin.Default()
	r.Use(middleware.CORS())

	r.POST("/api/chat", chatHandler.Chat)
	r.GET("/api/chat/history/:sessionId", chatHandler.History)
	r.GET("/api/health", chatHandler.Health)

	r.GET("/api/faqs", faqHandler.List)
	r.GET("/api/faqs/:id", faqHandler.Get)
	r.POST("/api/faqs", faqHandler.Create)
	r.PUT("/api/faqs/:id", faqHandler.Update)
	r.DELETE("/api/faqs/:id", faqHandler.Delete)

	r.GET("/ws", wsHandler.HandleWebSocket)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("chatbot service started",
		zap.Int("port", cfg.Server.Port),
		zap.Int("openingHour", cfg.Chat.WorkingHours.Start),
		zap.Int("closingHour", cfg.Chat.WorkingHours.End))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
