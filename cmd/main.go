package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/settlement-service/docs"
	"github.com/SergeyBogomolovv/settlement-service/internal/app"
	"github.com/SergeyBogomolovv/settlement-service/internal/config"
	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/handler"
	"github.com/SergeyBogomolovv/settlement-service/internal/notify"
	"github.com/SergeyBogomolovv/settlement-service/internal/postgres"
	"github.com/SergeyBogomolovv/settlement-service/internal/repo"
	"github.com/SergeyBogomolovv/settlement-service/internal/service"
	"github.com/SergeyBogomolovv/settlement-service/pkg/cache"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Settlement Service API
// @version         1.0
// @description     Доставка, эскроу, кошельки магазинов и заявки на вывод средств
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	txManager := trm.WithRetry(trm.NewManager(db), postgres.IsRetryable)

	orderRepo := repo.NewOrderRepo(db)
	walletRepo := repo.NewWalletRepo(db)
	withdrawalRepo := repo.NewWithdrawalRepo(db)
	documents := cache.NewLRUCache[string, entities.RelatedDocument](conf.Cache.Capacity, conf.Cache.TTL)

	notifier := notify.NewKafkaNotifier(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo)
	walletService := service.NewWalletService(logger, txManager, walletRepo, documents, nil)
	deliveryService := service.NewDeliveryService(logger, txManager, orderRepo, entities.DeliveryPolicy{
		ReturnWindow:     conf.Settlement.ReturnWindow,
		AutoConfirmGrace: conf.Settlement.AutoConfirmGrace,
	}, nil)
	settlementService := service.NewSettlementService(logger, txManager, orderRepo, walletService, nil)
	withdrawalService := service.NewWithdrawalService(
		logger, txManager, withdrawalRepo, walletService, notifier,
		service.WithdrawalTemplates{
			Created:  notify.WithdrawalCreated,
			Approved: notify.WithdrawalApproved,
			Rejected: notify.WithdrawalRejected,
			Failed:   notify.WithdrawalFailed,
		},
		service.WithdrawalPolicy{
			Fees:      entities.FeeSchedule{Rate: conf.Settlement.FeeRate, Fixed: conf.Settlement.FixedFee},
			MinAmount: conf.Settlement.MinWithdrawal,
		},
		nil,
	)

	processRetry := handler.ProcessRetry(conf.Kafka)
	ordersConsumer := handler.NewKafkaHandler(logger, conf.Kafka, conf.Kafka.OrdersTopic, handler.NewOrderProcessor(orderService, processRetry))
	settlementsConsumer := handler.NewKafkaHandler(logger, conf.Kafka, conf.Kafka.SettlementsTopic, handler.NewSettlementProcessor(logger, settlementService, processRetry))
	handler.RegisterMetrics()

	sweeper := service.NewAutoConfirmScheduler(logger, deliveryService, conf.Settlement.SweepInterval, conf.Settlement.SweepBatchSize)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewDeliveryHandler(logger, deliveryService),
		handler.NewWalletHandler(logger, walletService),
		handler.NewWithdrawalHandler(logger, withdrawalService),
	)
	app.SetConsumers(ordersConsumer, settlementsConsumer)
	app.SetStarters(documents, sweeper)
	app.SetClosers(notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
