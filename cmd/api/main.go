package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/adapter/http"
	idemp "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/adapter/middleware"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/adapter/repository/mysql"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/config"
	bundleDomain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
	loanDomain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
	userDomain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/infrastructure/cache"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/infrastructure/db"
	bundleUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/bundle"
	investmentUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/investment"
	loanUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/loan"
	userUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&userDomain.User{},
		&loanDomain.Loan{},
		&bundleDomain.Bundle{},
		&bundleDomain.Investment{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	users := mysql.NewUserRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	bundles := mysql.NewBundleRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	userH := httpadp.NewUserHandler(userUC.NewUsecase(users))
	loanH := httpadp.NewLoanHandler(loanUC.NewUsecase(loans))
	bundleH := httpadp.NewBundleHandler(bundleUC.NewUsecase(loans, bundles, uow, cfg.TxMaxRetries))
	investH := httpadp.NewInvestmentHandler(investmentUC.NewUsecase(bundles, users, uow, cfg.TxMaxRetries))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/users", userH.CreateUser)
	e.GET("/users/:user_id", userH.GetUser)

	e.POST("/loans", loanH.CreateLoan)
	e.GET("/loans/available", bundleH.ListEligibleLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.POST("/loans/:loan_id/approve", loanH.ApproveLoan)
	e.POST("/loans/:loan_id/reject", loanH.RejectLoan)

	e.POST("/bundles", bundleH.CreateBundle)
	e.GET("/bundles", investH.ListInvestableBundles)
	e.GET("/bundles/:bundle_id", bundleH.GetBundle)
	e.POST("/bundles/:bundle_id/invest", investH.Invest)
	e.POST("/bundles/:bundle_id/fund", investH.FundBundle)

	e.GET("/investors/:investor_id/positions", investH.ListInvestorPositions)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
