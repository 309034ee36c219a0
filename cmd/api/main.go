package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/pasinduJDJ/lonex-investments/internal/adapter/http"
	appmw "github.com/pasinduJDJ/lonex-investments/internal/adapter/middleware"
	"github.com/pasinduJDJ/lonex-investments/internal/adapter/repository/mysql"
	"github.com/pasinduJDJ/lonex-investments/internal/config"
	capitalDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/capital"
	clientDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/client"
	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
	"github.com/pasinduJDJ/lonex-investments/internal/infrastructure/cache"
	"github.com/pasinduJDJ/lonex-investments/internal/infrastructure/db"
	capitalUC "github.com/pasinduJDJ/lonex-investments/internal/usecase/capital"
	loanUC "github.com/pasinduJDJ/lonex-investments/internal/usecase/loan"
	memberUC "github.com/pasinduJDJ/lonex-investments/internal/usecase/member"
	paymentUC "github.com/pasinduJDJ/lonex-investments/internal/usecase/payment"
	reportUC "github.com/pasinduJDJ/lonex-investments/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&clientDomain.Client{},
		&loanDomain.Loan{},
		&paymentDomain.Payment{},
		&capitalDomain.Account{},
		&capitalDomain.Investment{},
		&capitalDomain.Expense{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	clients := mysql.NewClientRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	capital := mysql.NewCapitalRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// seed the singleton capital row on first boot
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := capital.Init(ctx, cfg.StartingCapital); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	members := memberUC.NewUsecase(clients, loans, payments, uow)
	loanSvc := loanUC.NewUsecase(loans, payments, capital, uow)
	paymentSvc := paymentUC.NewUsecase(loans, payments, capital, uow)
	capitalSvc := capitalUC.NewUsecase(capital, uow)
	reports := reportUC.NewUsecase(loans, payments, capital)

	h := httpadp.NewHandler()
	mh := httpadp.NewMemberHandler(members)
	lh := httpadp.NewLoanHandler(loanSvc)
	ph := httpadp.NewPaymentHandler(paymentSvc)
	ch := httpadp.NewCapitalHandler(capitalSvc)
	rh := httpadp.NewReportHandler(reports)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/members", mh.Register)
	e.GET("/members", mh.List)
	e.GET("/members/:nic", mh.GetByNIC)
	e.GET("/members/:nic/profile", mh.Profile)

	e.POST("/loans", lh.Create, idem)
	e.GET("/loans", lh.List)
	e.GET("/loans/number/:loan_number", lh.GetByNumber)
	e.GET("/loans/number/:loan_number/installments", lh.InstallmentStats)
	e.GET("/loans/number/:loan_number/payments", ph.ListForLoan)
	e.POST("/loans/number/:loan_number/close", lh.Close)
	e.DELETE("/loans/reg/:reg_number", lh.DeleteByRegNumber)

	e.POST("/payments", ph.Record, idem)

	e.GET("/capital", ch.Balance)
	e.POST("/capital/adjust", ch.Adjust, idem)
	e.POST("/capital/expenses", ch.RecordExpense, idem)
	e.GET("/capital/expenses", ch.ListExpenses)
	e.GET("/capital/investments", ch.ListInvestments)

	e.GET("/reports/profit", rh.Profit)
	e.GET("/reports/delinquency", rh.Delinquency)
	e.GET("/reports/summary", rh.Summary)
	e.GET("/reports/capital", rh.Capital)
	e.GET("/reports/range", rh.DateRange)
	e.GET("/reports/latest-payments", rh.LatestPayments)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
