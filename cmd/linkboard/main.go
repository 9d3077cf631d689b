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

	"linkboard/internal/account"
	"linkboard/internal/app"
	"linkboard/internal/authflow"
	"linkboard/internal/config"
	"linkboard/internal/creds"
	"linkboard/internal/gateway"
	"linkboard/internal/handlers"
	"linkboard/internal/links"
	"linkboard/internal/logger"
	"linkboard/internal/session"

	"github.com/go-chi/chi/v5"
)

func main() {
	c := config.NewConfig()
	if err := config.Init(c); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	store, err := creds.NewFile(c.TokenFile)
	if err != nil {
		sugar.Fatalf("Failed to open credential store: %v", err)
	}

	gw := gateway.NewClient(c, store, sugar)
	sync := links.NewSync(gw, sugar)
	guard := session.NewGuard(store, sync, sugar)
	auth := authflow.NewService(gw, store, sugar)

	dwell := time.Duration(c.SuccessDwell) * time.Second
	pwFlow := account.NewPasswordFlow(gw, sugar, dwell, nil)
	usrFlow := account.NewUsernameFlow(gw, sugar, dwell, nil)

	controller := handlers.NewController(c, guard, sync, auth, pwFlow, usrFlow, sugar)

	r := chi.NewRouter()
	app.InitMiddleware(r, c, controller)
	app.Routing(r, controller)

	server := app.CreateServer(c, r, sugar)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		sugar.Errorf("Shutdown error: %v", err)
	}
}
