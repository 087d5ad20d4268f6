package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/QuangTung97/promo-delivery/config"
	"github.com/QuangTung97/promo-delivery/pkg/cacheclient"
	"github.com/QuangTung97/promo-delivery/pkg/memtable"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/pkg/transport"
	"github.com/QuangTung97/promo-delivery/repository"
	"github.com/QuangTung97/promo-delivery/service/promotion"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
)

const serviceName = "promo-delivery"

type services struct {
	server *promotion.Server
	runner promotion.IRunner
	worker promotion.IWorker

	expirer *promotion.Expirer
	closeFn func()
}

func newServices(conf config.Config, logger *zap.Logger) services {
	db := conf.MySQL.MustConnect(logger)
	provider := repository.NewProvider(db)

	promotionRepo := repository.NewPromotion()
	deliveryRepo := repository.NewDelivery()
	pendingRepo := repository.NewPendingDelivery()
	triggerRepo := repository.NewTrigger()
	cohortRepo := repository.NewCohort()
	customerRepo := repository.NewCustomer()
	preferenceRepo := repository.NewPreference()

	prefCache := memtable.New(conf.PreferenceCache.SizeBytes, conf.PreferenceCache.Expiration)
	preference := promotion.NewPreferenceChecker(provider, preferenceRepo, prefCache)

	emailClient := transport.NewEmailClient(conf.Email)
	smsClient := transport.NewSMSClient(conf.SMS)

	closeFn := func() {
		_ = db.Close()
	}

	locker := promotion.NewNoopLocker()
	if conf.Memcache.Enabled() {
		hostname, _ := os.Hostname()
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.NumConns, hostname+"-"+uuid.NewString())
		locker = client
		closeFn = func() {
			_ = client.Close()
			_ = db.Close()
		}
	} else {
		logger.Warn("memcache is disabled, trigger runs are not serialized across instances")
	}

	options := []promotion.Option{
		promotion.WithRenderOptions(promotion.RenderOptions{
			BusinessName:  conf.Promotion.BusinessName,
			PortalBaseURL: conf.Promotion.PortalBaseURL,
		}),
		promotion.WithRunLeaseTTL(conf.Scheduler.RunLeaseTimeout),
		promotion.WithMaxDeliveryAttempts(conf.Scheduler.MaxDeliveryAttempts),
	}

	tracer := otel.Tracer(serviceName)

	var deliverer promotion.IDeliverer = promotion.NewDeliverer(
		provider, deliveryRepo, preference, emailClient, smsClient, options...,
	)
	deliverer = promotion.NewIDelivererWrapper(deliverer, tracer, "promotion.")

	queue := promotion.NewBatchQueue(provider, deliveryRepo, pendingRepo)
	evaluator := promotion.NewTriggerEvaluator(provider, cohortRepo, promotionRepo, triggerRepo, queue, options...)

	var runner promotion.IRunner = promotion.NewRunner(provider, triggerRepo, evaluator, locker, options...)
	runner = promotion.NewIRunnerWrapper(runner, tracer, "promotion.")

	worker := promotion.NewWorker(provider, pendingRepo, promotionRepo, customerRepo, deliverer, options...)
	expirer := promotion.NewExpirer(provider, promotionRepo, options...)

	server := promotion.NewServer(
		provider, promotionRepo, customerRepo,
		deliverer, runner, worker,
		conf.Scheduler.DrainBatchSize,
		options...,
	)

	return services{
		server:  server,
		runner:  runner,
		worker:  worker,
		expirer: expirer,
		closeFn: closeFn,
	}
}

func newScheduler(conf config.SchedulerConfig, svc services, logger *zap.Logger) *cron.Cron {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	))

	addJob := func(name string, spec string, fn func(ctx context.Context)) {
		if spec == "" {
			logger.Info("scheduled job disabled", zap.String("job", name))
			return
		}
		_, err := c.AddFunc(spec, func() {
			ctx := otellib.ToContext(context.Background(), logger.With(zap.String("job", name)))
			fn(ctx)
		})
		if err != nil {
			panic(err)
		}
		logger.Info("scheduled job", zap.String("job", name), zap.String("spec", spec))
	}

	addJob("trigger_run", conf.TriggerCron, func(ctx context.Context) {
		svc.runner.RunAll(ctx)
	})

	addJob("drain_pending", conf.DrainCron, func(ctx context.Context) {
		_, err := svc.worker.Drain(ctx, repository.HashRange{}, conf.DrainBatchSize)
		if err != nil {
			otellib.Extract(ctx).Error("drain pending deliveries", zap.Error(err))
		}
	})

	addJob("expire_promotions", conf.ExpireCron, func(ctx context.Context) {
		_, err := svc.expirer.ExpirePromotions(ctx)
		if err != nil {
			otellib.Extract(ctx).Error("expire promotions", zap.Error(err))
		}
	})

	return c
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() {
		_ = logger.Sync()
	}()

	tracerProvider, shutdown := otellib.InitOtel(serviceName, "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	svc := newServices(conf, logger)
	defer svc.closeFn()

	scheduler := newScheduler(conf.Scheduler, svc, logger)

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: svc.server.Handler(serviceName, logger),
	}

	startHTTPServerAndScheduler(conf, httpServer, scheduler)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPServerAndScheduler(conf config.Config, httpServer *http.Server, scheduler *cron.Cron) {
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	scheduler.Start()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	select {
	case <-scheduler.Stop().Done():
		fmt.Println("Shutdown scheduler successfully")
	case <-ctx.Done():
		fmt.Println("Scheduler jobs still running after timeout")
	}

	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
