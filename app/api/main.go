package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/database/mongoclient"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/database/redisclient"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/metrics"
	bValidator "github.com/TreyKys/TogetHed-Hackathon-sub000/base/validator"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	mmiddleware "github.com/TreyKys/TogetHed-Hackathon-sub000/middleware"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/provision"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/query"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/redis"
	account_delivery "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/account/delivery/http"
	account_repository "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/account/repository"
	account_usecase "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/account/usecase"
	asset_delivery "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/asset/delivery/http"
	asset_repository "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/asset/repository"
	asset_usecase "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/asset/usecase"
	fulfillment_repository "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/fulfillment/repository"
	hc_delivery "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/healthcheck/delivery/http"
	hc_repo "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/healthcheck/repository"
	hc_usecase "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/healthcheck/usecase"
	listing_delivery "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/listing/delivery/http"
	listing_repository "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/listing/repository"
	listing_usecase "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/listing/usecase"
	loan_delivery "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/loan/delivery/http"
	loan_repository "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/loan/repository"
	loan_usecase "github.com/TreyKys/TogetHed-Hackathon-sub000/stores/loan/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain gateway
	context.Info("init chain client")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:         viper.GetString("chain.rpcUrl"),
		ChainId:        viper.GetInt64("chain.chainId"),
		GasLimit:       viper.GetUint64("chain.gasLimit"),
		ReceiptTimeout: viper.GetDuration("chain.receiptTimeout"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	escrowAddress := domain.Address(viper.GetString("contracts.escrow")).ToLower()
	poolAddress := domain.Address(viper.GetString("contracts.lendingPool")).ToLower()
	assetTokenAddress := viper.GetString("contracts.assetToken")
	escrowService := contract.NewEscrow(chainService, escrowAddress.ToLowerStr())
	lendingPoolService := contract.NewLendingPool(chainService, poolAddress.ToLowerStr())
	assetTokenService := contract.NewAssetToken(chainService, assetTokenAddress)

	provisionClient := provision.NewClient(&provision.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("provision.endpoint"),
		Timeout:    viper.GetDuration("provision.timeout"),
		Apikey:     viper.GetString("provision.apikey"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q)
	listingRepo := listing_repository.NewListingRepo(q)
	loanRepo := loan_repository.NewLoanRepo(q)
	fulfillmentRepo := fulfillment_repository.NewFulfillmentRepo(q)
	assetRepo := asset_repository.NewAssetRepo(q)

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		Repo:      accountRepo,
		Provision: provisionClient,
		Redis:     redisCache,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:     listingRepo,
		FulfillmentRepo: fulfillmentRepo,
		Escrow:          escrowService,
		AssetToken:      assetTokenService,
		EscrowAddress:   escrowAddress,
		Query:           q,
	})
	loan := loan_usecase.New(&loan_usecase.LoanUseCaseCfg{
		LoanRepo:    loanRepo,
		LendingPool: lendingPoolService,
		AssetToken:  assetTokenService,
		PoolAddress: poolAddress,
		Admin:       domain.Address(viper.GetString("admin.address")),
	})
	asset := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		Repo:      assetRepo,
		Provision: provisionClient,
	})

	hc_delivery.New(e, hc)
	account_delivery.New(e, account)
	asset_delivery.New(e, account, asset)
	listing_delivery.New(e, account, listing)
	loan_delivery.New(e, account, loan)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
