package app

import (
	"context"
	stdLog "log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/wardrobe-service/pkg/circuit_breaker"
	"github.com/Astemirdum/wardrobe-service/pkg/kafka"
	"github.com/Astemirdum/wardrobe-service/pkg/logger"
	"github.com/Astemirdum/wardrobe-service/pkg/postgres"
	"github.com/Astemirdum/wardrobe-service/wardrobe/config"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/handler"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/metrics"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/repository"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/server"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/service"
	"github.com/Astemirdum/wardrobe-service/wardrobe/migrations"
	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log, closeLog, err := logger.NewLogger(cfg.Log, "wardrobe")
	if err != nil {
		stdLog.Fatal("logger ", err)
	}
	defer closeLog()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var (
		pub      service.Publisher
		producer sarama.SyncProducer
	)
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		pub = service.NewKafkaPublisher(producer, circuit_breaker.New(cfg.CircuitBreaker))
	} else {
		log.Info("kafka is not configured, loan events go straight to the journal")
		pub = service.NewJournalPublisher(repo)
	}

	svc := service.NewService(repo, pub, m, cfg.Auth, log)
	if err = svc.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("bootstrap admin", zap.Error(err))
	}

	var consumer sarama.ConsumerGroup
	if cfg.Kafka.Enabled() {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.LoanJournalGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		go kafka.Consume(ctx, consumer, handler.NewConsumer(svc, log), log, kafka.LoanTopic)
	}

	h := handler.New(svc, []byte(cfg.Auth.Secret), log)
	router := h.NewRouter()
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	srv := server.NewServer(cfg.Server, router)
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if consumer != nil {
		if err = consumer.Close(); err != nil {
			log.Error("consumer.Close", zap.Error(err))
		}
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	if err = db.Close(); err != nil {
		log.Error("db.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
