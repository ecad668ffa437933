package main

import (
	"context"
	"log"
	"time"

	"sabor-oriental/config"
	httpapi "sabor-oriental/internal/api/http"
	"sabor-oriental/internal/service"
	"sabor-oriental/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("pedidos")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, 10*time.Minute)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	accounts := service.NewAccountService(repo)
	catalog := service.NewCatalogService(repo, cache)
	orders := service.NewOrderService(repo, cache, publisher)

	if err := accounts.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Printf("WARNING: %v", err)
	}

	handler := httpapi.NewHandler(accounts, catalog, orders)
	httpapi.StartServer(":"+config.ListenPort(), httpapi.NewRouter(handler))
}
