package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zilswap-indexer/config"
	"zilswap-indexer/explorer"
	"zilswap-indexer/jobs"
	"zilswap-indexer/metrics"
	"zilswap-indexer/router"
	"zilswap-indexer/storage"
	"zilswap-indexer/zilliqa"
)

var (
	cfg config.Config
)

func main() {

	config.LoadConfig(&cfg, "")

	handler := log.NewTerminalHandlerWithLevel(os.Stderr, log.FromLegacyLevel(cfg.DebugLevel), true)
	log.SetDefault(log.NewLogger(handler))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	var dbClient *storage.DBClient
	var err error
	if cfg.Sqlite.Switch {
		dbClient, err = storage.NewSqliteClient(cfg.Sqlite)
	} else {
		dbClient, err = storage.NewMysqlClient(cfg.Mysql)
	}
	if err != nil {
		panic(err)
	}

	if err := dbClient.AutoMigrate(); err != nil {
		panic(err)
	}

	node := zilliqa.NewClient(cfg.Chain.Rpc)

	if cfg.Explorer.Switch {
		checkpoint, err := storage.NewLevelDB(cfg.LevelDB)
		if err != nil {
			panic(err)
		}

		exp := explorer.NewExplorer(ctx, wg, node, dbClient, checkpoint,
			cfg.Chain.SwapContract, cfg.Explorer.FromBlock,
			time.Duration(cfg.Explorer.Interval)*time.Second)
		wg.Add(1)
		go exp.Start()
	}

	if cfg.Cron.Switch {
		if _, err := jobs.StartLiquidityGauge(ctx, dbClient, cfg.Cron.LiquiditySpec); err != nil {
			panic(err)
		}
	}

	if cfg.HttpServer.Switch {
		metrics.MustRegister()

		grt := gin.Default()
		grt.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(200)
				return
			}
			c.Next()
		})

		grt.GET("/metrics", func(c *gin.Context) {
			promhttp.Handler().ServeHTTP(c.Writer, c.Request)
		})

		rt := router.NewRouter(dbClient)
		v1 := grt.Group("/v1")
		{
			v1.POST("/swaps", rt.Swaps)
			v1.POST("/liquidity_changes", rt.LiquidityChanges)
			v1.POST("/liquidity", rt.Liquidity)
			v1.POST("/liquidity_providers", rt.LiquidityProviders)
			v1.POST("/volume", rt.Volume)
			v1.POST("/volume_user", rt.VolumeForUser)
		}

		if err := grt.Run(cfg.HttpServer.Server); err != nil {
			panic(err)
		}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		println("\nReceived an interrupt, stopping services...")
		cancel()
	}()
	wg.Wait()
}
