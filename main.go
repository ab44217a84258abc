package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"localchat/internal/chat"
	"localchat/internal/config"
	"localchat/internal/db"
	"localchat/internal/handlers"
	"localchat/internal/middleware"
	"localchat/internal/observability"
	"localchat/internal/repositories"
	"localchat/internal/session"
	"localchat/internal/ws"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	if cfg.PlaintextPasswords {
		log.Println("WARNING: plaintext password storage enabled; demo mode only")
	}

	userRepo := repositories.NewUserRepo(database)
	messageRepo := repositories.NewMessageRepo(database)

	sessions := session.NewManager(cfg.JWTSecret, cfg.SessionTTL)
	authService := chat.NewAuthService(userRepo, cfg.PlaintextPasswords)
	conversationService := chat.NewConversationService(userRepo, messageRepo)

	hub := ws.NewHub()

	authHandler := handlers.NewAuthHandler(authService, sessions)
	contactsHandler := handlers.NewContactsHandler(conversationService)
	messagesHandler := handlers.NewMessagesHandler(messageRepo, hub)
	wsHandler := ws.NewHandler(hub, sessions)

	router := gin.Default()

	// middlewares
	router.Use(gin.Recovery())
	router.Use(observability.HTTPMetricsMiddleware())

	authMiddleware := middleware.AuthMiddleware(sessions)

	router.POST("/auth/signup", authHandler.Signup)
	router.POST("/auth/login", authHandler.Login)

	router.GET("/contacts", authMiddleware, contactsHandler.List)
	router.GET("/messages/:peer", authMiddleware, messagesHandler.List)
	router.POST("/messages/:peer", authMiddleware, messagesHandler.Post)
	router.PATCH("/messages/:peer/:id", authMiddleware, messagesHandler.Edit)
	router.DELETE("/messages/:peer", authMiddleware, messagesHandler.Delete)
	router.GET("/messages/:peer/:id/share", authMiddleware, messagesHandler.Share)

	router.GET("/ws/:peer", wsHandler.Handle)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
