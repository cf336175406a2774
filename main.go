package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"

	"hifz-backend/internal/analytics"
	"hifz-backend/internal/attendance"
	"hifz-backend/internal/classes"
	"hifz-backend/internal/platform/auth"
	"hifz-backend/internal/platform/db"
	"hifz-backend/internal/platform/events"
	"hifz-backend/internal/registrations"
	"hifz-backend/internal/reports"
	"hifz-backend/internal/settings"
	"hifz-backend/internal/slots"
	"hifz-backend/internal/users"
)

func main() {
	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	if cfg.Mode != "dev" && cfg.Mode != "release" {
		fmt.Println("Usage: go run main.go [dev|release]")
		return
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	if err := db.EnsureSchema(context.Background(), conn); err != nil {
		panic(err)
	}

	secret := []byte(cfg.JWTSecret)
	hub := events.NewHub()

	settingsSvc := settings.NewService(conn, hub)
	slotsSvc := slots.NewService(conn, hub)
	regsSvc := registrations.NewService(conn, settingsSvc, hub)
	classesSvc := classes.NewService(conn, hub)
	usersSvc := users.NewService(conn, hub)
	attendanceSvc := attendance.NewService(conn, settingsSvc, hub)
	analyticsSvc := analytics.NewService(conn)
	reportsSvc := reports.NewService(conn)
	authSvc := auth.NewService(conn, secret)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		// CORS is only needed while the frontend runs on its own dev server.
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// /api/v1
	api := r.Group("/api/v1")

	// Public surface: the registration form and its data.
	auth.RegisterPublicRoutes(api, authSvc)
	slots.RegisterPublicRoutes(api, slotsSvc)
	registrations.RegisterPublicRoutes(api, regsSvc)
	events.RegisterRoutes(api, hub)

	// Any authenticated admin.
	authed := api.Group("")
	authed.Use(auth.RequireAuth(secret))
	auth.RegisterRoutes(authed, authSvc)

	// Either admin role; tokens minted for other subjects get nothing here.
	admins := authed.Group("")
	admins.Use(auth.RequireRole(auth.RoleSlotAdmin, auth.RoleSuperAdmin))
	attendance.RegisterRoutes(admins, attendanceSvc)

	// Super admin only.
	super := authed.Group("")
	super.Use(auth.RequireRole(auth.RoleSuperAdmin))
	slots.RegisterAdminRoutes(super, slotsSvc)
	registrations.RegisterAdminRoutes(super, regsSvc)
	classes.RegisterRoutes(super, classesSvc)
	users.RegisterRoutes(super, usersSvc)
	settings.RegisterRoutes(super, settingsSvc)
	analytics.RegisterRoutes(super, analyticsSvc)
	reports.RegisterRoutes(super, reportsSvc)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		var err error
		if cfg.Certificate.Cert != "" && cfg.Certificate.Key != "" {
			certFile := fmt.Sprintf("config/tls/%s/%s", mode, cfg.Certificate.Cert)
			keyFile := fmt.Sprintf("config/tls/%s/%s", mode, cfg.Certificate.Key)
			log.Printf("[INFO] listening on https://%s", cfg.ListenAddr)
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			log.Printf("[INFO] listening on http://%s", cfg.ListenAddr)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
