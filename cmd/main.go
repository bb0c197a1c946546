// cmd/main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/odnamta/agency-service/config"
	"github.com/odnamta/agency-service/internal/alerts"
	"github.com/odnamta/agency-service/pkg/kafka"
	"github.com/odnamta/agency-service/pkg/rabbitmq"
	"github.com/odnamta/agency-service/service"
	"github.com/odnamta/agency-service/store"
)

// main wires the agency service: Postgres store, Kafka producer for
// lifecycle events and the RabbitMQ-backed alert batcher, then waits
// for a shutdown signal.
func main() {
	cfg := config.Load()

	st, err := store.NewPostgresStore(cfg.GetDBURL())
	if err != nil {
		log.Fatalf("failed to create store: %v", err)
	}
	defer st.Close()

	producer := kafka.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
	defer producer.Close()

	mq, err := rabbitmq.NewClient(cfg.GetRabbitMQURL())
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer mq.Close()
	if err := mq.DeclareQueue(cfg.AlertQueue); err != nil {
		log.Fatalf("failed to declare alert queue: %v", err)
	}

	batcher := alerts.NewBatcher(mq, cfg.AlertQueue, 15*time.Minute)
	batcher.Start(time.Minute)
	defer batcher.Stop()

	svc := service.NewAgencyService(st, producer)

	// Log a startup summary so operators can see the service came up
	// against real data.
	ctx := context.Background()
	if lineStats, err := svc.ShippingLineStats(ctx); err != nil {
		log.Printf("could not compute startup stats: %v", err)
	} else {
		log.Printf("agency service up: %d active lines, %d preferred",
			lineStats.TotalLines, lineStats.PreferredCount)
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	log.Println("shutting down")
}
