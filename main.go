package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/auth"
	"backoffice/internal/bootstrap"
	intconfig "backoffice/internal/config"
	"backoffice/internal/credential"
	router "backoffice/internal/http"
	"backoffice/internal/repositories"
	"backoffice/internal/resource"
	"backoffice/internal/session"
	"backoffice/internal/token"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// credential persistence: DB when configured, process memory otherwise
	var store credential.Store = credential.NewMemory()
	if env.DBDSN != "" {
		db := intconfig.ConnectDB(env.DBDSN)
		defer intconfig.CloseDB()
		store = repositories.CredentialRepository{DB: db}
	}

	sessions := session.NewStore()
	validator := token.NewValidator()
	api := resource.NewAPI(env.APIBaseURL, env.APIPrefix, credential.Provider(store))

	authService := &auth.Service{
		API:               api,
		Credentials:       store,
		Sessions:          sessions,
		AdminUsername:     env.AdminUsername,
		AdminPasswordHash: env.AdminPasswordHash,
		Secret:            []byte(env.AuthSecret),
	}

	// reconcile any persisted credential before the first request is served
	controller := &bootstrap.Controller{
		Credentials: store,
		Sessions:    sessions,
		Validator:   validator,
	}
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	controller.Run(bootCtx)
	bootCancel()

	r := router.NewRouter(router.Deps{
		Env:       env,
		API:       api,
		Sessions:  sessions,
		Validator: validator,
		Auth:      authService,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("gateway listening on %s (core API %s)", env.AppAddr, env.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
