package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/backoff"
	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/database/mongoclient"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/reconciler"
	mmiddleware "github.com/TreyKys/TogetHed-Hackathon-sub000/middleware"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/query"
	listing_repository "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/listing/repository"
	loan_repository "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/loan/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/reconciler/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// start server to pass cloud run health check
	startEchoServer()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	staleAfter := viper.GetDuration("reconciler.staleAfter")
	retryLimit := viper.GetInt("reconciler.retryLimit")
	interval := viper.GetDuration("reconciler.interval")
	backoffStartD := viper.GetDuration("reconciler.backoffStartDuration")
	backoffLimitD := viper.GetDuration("reconciler.backoffLimitDuration")

	ctx.WithFields(log.Fields{
		"reconciler.staleAfter": staleAfter,
		"reconciler.retryLimit": retryLimit,
		"reconciler.interval":   interval,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	chainService, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrl:         viper.GetString("chain.rpcUrl"),
		ChainId:        viper.GetInt64("chain.chainId"),
		GasLimit:       viper.GetUint64("chain.gasLimit"),
		ReceiptTimeout: viper.GetDuration("chain.receiptTimeout"),
	})
	if err != nil {
		ctx.WithField("err", err).Warn("chainService started with error")
	}
	escrowService := contract.NewEscrow(chainService, viper.GetString("contracts.escrow"))
	lendingPoolService := contract.NewLendingPool(chainService, viper.GetString("contracts.lendingPool"))

	listingRepo := listing_repository.NewListingRepo(q)
	loanRepo := loan_repository.NewLoanRepo(q)

	errCh := make(chan error, 10)

	listingSweeper := reconciler.NewListingSweeper(&reconciler.ListingSweeperCfg{
		ListingRepo: listingRepo,
		Escrow:      escrowService,
		StaleAfter:  staleAfter,
		RetryLimit:  retryLimit,
		Backoff:     backoff.NewExponential(backoffStartD, backoffLimitD),
		Interval:    interval,
		ErrorCh:     errCh,
	})
	listingSweeper.Start(ctx)

	loanSweeper := reconciler.NewLoanSweeper(&reconciler.LoanSweeperCfg{
		LoanRepo:    loanRepo,
		LendingPool: lendingPoolService,
		StaleAfter:  staleAfter,
		RetryLimit:  retryLimit,
		Backoff:     backoff.NewExponential(backoffStartD, backoffLimitD),
		Interval:    interval,
		ErrorCh:     errCh,
	})
	loanSweeper.Start(ctx)

	// wait for first error
	err = <-errCh
	ctx.WithField("err", err).Error("sweeper error")
	go func() {
		for range errCh {
		}
	}()
	cancel()
	listingSweeper.Wait()
	loanSweeper.Wait()
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
