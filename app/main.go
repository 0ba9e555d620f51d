package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-clean-forum/internal/config"
	"github.com/Guyuepp/go-clean-forum/internal/metrics"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
	myRedisCache "github.com/Guyuepp/go-clean-forum/internal/repository/redis"
	"github.com/Guyuepp/go-clean-forum/internal/repository/sqlstore"
	"github.com/Guyuepp/go-clean-forum/internal/rest"
	"github.com/Guyuepp/go-clean-forum/internal/rest/middleware"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/comment"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/like"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/reply"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/thread"
	"github.com/Guyuepp/go-clean-forum/internal/workers"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.SetupLogger()

	// prepare database
	db, err := openDB(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.CacheHost, cfg.CachePort),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// Prepare Repository
	idGen := repository.NewUUIDGenerator()
	commentRepo := sqlstore.NewCommentRepository(db, idGen)
	replyRepo := sqlstore.NewReplyRepository(db, idGen)
	likeRepo := sqlstore.NewCommentLikeRepository(db, idGen)

	// Thread: DB layer, cache layer, coordination layer
	threadDBRepo := sqlstore.NewThreadRepository(db, idGen)
	threadCache := myRedisCache.NewThreadCache(client, cfg.CacheTTL)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize, cfg.BloomHashes)
	threadRepo := repository.NewThreadRepository(threadDBRepo, threadCache, bloomRepo)

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, threadRepo, commentRepo, replyRepo, likeRepo, bloomRepo, threadRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo)
	likeSvc := like.NewService(likeRepo, commentRepo, threadRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// the bloom index must be complete before any lookup trusts it
	if err := threadSvc.InitThreadIndex(ctx); err != nil {
		logrus.Fatal("failed to init thread index: ", err)
	}

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestLogger())
	route.Use(middleware.Metrics(collector))
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	route.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	route.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	rest.RegisterRoutes(route, rest.Handlers{
		Thread:  rest.NewThreadHandler(threadSvc),
		Comment: rest.NewCommentHandler(commentSvc),
		Reply:   rest.NewReplyHandler(replySvc),
		Like:    rest.NewLikeHandler(likeSvc),
	}, middleware.AuthMiddleware(cfg.AccessTokenKey))

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	indexWorker := workers.NewThreadIndexWorker(threadSvc, collector, cfg.IndexSyncInterval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		indexWorker.Start(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Error("server stopped with error: ", err)
		return
	}
	logrus.Info("Server exiting")
}
