package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"smmstore/internal/auth"
	"smmstore/internal/database"
	"smmstore/internal/httpapi"
	"smmstore/internal/infrastructure/payment"
	"smmstore/internal/repo"
	"smmstore/internal/service"
	"smmstore/internal/worker"
)

func main() {
	ctx := context.Background()

	gateway := payment.NewGateway(gatewayConfig())

	var (
		transactions  repo.TransactionRepo
		consultations repo.ConsultationRepo
		health        func() map[string]string
	)
	if database.Configured() {
		db := database.NewPostgres()
		if err := repo.Migrate(ctx, db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		transactions = repo.NewTransactionRepo(db)
		consultations = repo.NewConsultationRepo(db)
		health = func() map[string]string { return database.Health(db) }

		rw := worker.NewReconciliationWorker(transactions, gateway, time.Minute, 5*time.Minute)
		go rw.Run(ctx)
	} else {
		log.Println("no record store configured, transactions will not be recorded")
	}

	var sessions auth.SessionStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		sessions = auth.NewRedisSessionStore(addr, 24*time.Hour)
	} else {
		sessions = auth.NewMemorySessionStore()
	}
	identity := auth.NewIdentity(sessions)

	checkoutSvc := service.NewCheckoutService(gateway, transactions, consultations)

	srv := httpapi.NewServer(checkoutSvc, identity)
	srv.Health = health

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("storefront listening on :%s", port)
	log.Fatal(srv.Run(":" + port))
}

func gatewayConfig() payment.Config {
	cfg := payment.DefaultConfig()
	if v := os.Getenv("PAYMENT_SUCCESS_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 || rate > 1 {
			log.Fatalf("invalid PAYMENT_SUCCESS_RATE %q", v)
		}
		cfg.SuccessRate = rate
	}
	if v := os.Getenv("PAYMENT_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			log.Fatalf("invalid PAYMENT_DELAY_MS %q", v)
		}
		cfg.Delay = time.Duration(ms) * time.Millisecond
	}
	return cfg
}
