package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/partmatch-tech/catalog-backend/internal/cfg"
	v1Http "github.com/partmatch-tech/catalog-backend/internal/delivery/v1/http"
	"github.com/partmatch-tech/catalog-backend/internal/infrastructure/export"
	"github.com/partmatch-tech/catalog-backend/internal/infrastructure/kafka"
	s3Repo "github.com/partmatch-tech/catalog-backend/internal/repository/minio"
	"github.com/partmatch-tech/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/partmatch-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/partmatch-tech/catalog-backend/internal/repository/redis"
	redisConv "github.com/partmatch-tech/catalog-backend/internal/repository/redis/converter"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/clients"
	"github.com/partmatch-tech/catalog-backend/pkg/closer"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
	"github.com/partmatch-tech/catalog-backend/pkg/postgres"
)

// App держит инициализированную инфраструктуру приложения и управляет её жизненным циклом.
// Ресурсы регистрируются в closer в порядке создания и закрываются в обратном.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	worker  *kafka.OutboxWorker
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

// NewApp подключает базу, кеш, хранилище и брокер, собирает юзкейсы и HTTP-роутер.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	c := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	entryConv := pgdbConv.NewCatalogEntryConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	matchConv := pgdbConv.NewCatalogMatchConverterImpl()
	versionConv := pgdbConv.NewDatasetVersionConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	matchRedisConv := redisConv.NewCatalogMatchConverterImpl()
	statRedisConv := redisConv.NewCatalogStatConverterImpl()

	catalogRepo := pgdb.NewCatalogRepo(db.Pool, entryConv)
	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	matchRepo := pgdb.NewMatchRepo(db.Pool, matchConv, versionConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	exportRepo := s3Repo.NewExportRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, matchRedisConv, statRedisConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)

	matchUC := usecase.NewCatalogMatchUC(matchRepo, cacheRepo, logger)
	recomputeUC := usecase.NewRecomputeUC(
		catalogRepo,
		productRepo,
		matchRepo,
		outboxRepo,
		cacheRepo,
		db.Pool,
		cfg.Engine,
		logger,
	)
	exportUC := usecase.NewExportUC(matchRepo, exportRepo, export.NewExporter(), logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(matchUC, recomputeUC, exportUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:     cfg,
		logger:  logger,
		worker:  worker,
		httpSrv: httpSrv,
		closer:  c,
	}, nil
}

// Run запускает outbox-воркер и HTTP-сервер и блокируется до сигнала или фатальной ошибки.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)
	a.closer.Add(func(ctx context.Context) error {
		workerCancel()
		a.worker.Stop()
		a.logger.Infof("Outbox worker stopped")
		return nil
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()
	a.closer.Add(func(ctx context.Context) error {
		return a.httpSrv.Stop(ctx)
	})

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "graceful shutdown failed")
		if appErr == nil {
			appErr = err
		}
		return appErr
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
