package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fintrack/edutoken-backend/api/routes"
	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/handlers"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	mongorepo "github.com/fintrack/edutoken-backend/internal/repositories/mongodb"
	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/fintrack/edutoken-backend/internal/utils"
	"github.com/fintrack/edutoken-backend/pkg/mongodb"
	"github.com/fintrack/edutoken-backend/pkg/stellar"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments use environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("[WARN] error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	ledger := stellar.NewClient(stellar.Config{
		HorizonURL:         cfg.Stellar.HorizonURL,
		FriendbotURL:       cfg.Stellar.FriendbotURL,
		NetworkPassphrase:  cfg.Stellar.NetworkPassphrase,
		AssetCode:          cfg.Stellar.AssetCode,
		IssuerAddress:      cfg.Stellar.IssuerAddress,
		DistributorAddress: cfg.Stellar.DistributorAddress,
		DistributorSeed:    cfg.Stellar.DistributorSeed,
		TrustlineLimit:     cfg.Stellar.TrustlineLimit,
		SubmitTimeout:      cfg.Stellar.SubmitTimeout,
	})

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var txRepo repositories.TransactionRepository = mongorepo.NewTransactionRepository(db)
	var savingRepo repositories.DailySavingRepository = mongorepo.NewDailySavingRepository(db)
	var challengeRepo repositories.ChallengeRepository = mongorepo.NewChallengeRepository(db)
	var rewardRepo repositories.RewardRepository = mongorepo.NewRewardRepository(db)
	var quizRepo repositories.QuizRepository = mongorepo.NewQuizRepository(db)
	var attemptRepo repositories.QuizAttemptRepository = mongorepo.NewQuizAttemptRepository(db)
	var bookRepo repositories.BookRepository = mongorepo.NewBookRepository(db)
	var userBookRepo repositories.UserBookRepository = mongorepo.NewUserBookRepository(db)
	var postRepo repositories.CommunityPostRepository = mongorepo.NewCommunityPostRepository(db)
	var expenseRepo repositories.ExpenseRepository = mongorepo.NewExpenseRepository(db)

	// Services
	locker := utils.NewUserLocker()
	walletService := services.NewWalletService(userRepo, ledger)
	tokenService := services.NewTokenService(userRepo, txRepo, ledger, cfg)
	authService := services.NewAuthService(userRepo, walletService, cfg)
	challengeService := services.NewChallengeService(challengeRepo, rewardRepo, tokenService, cfg)
	savingService := services.NewDailySavingService(savingRepo, userRepo, tokenService, locker, cfg)
	quizService := services.NewQuizService(quizRepo, attemptRepo, userRepo, tokenService, locker, cfg)
	communityService := services.NewCommunityService(postRepo, expenseRepo, userRepo, tokenService, cfg)
	bookService := services.NewBookService(bookRepo, userBookRepo, tokenService)
	expenseService := services.NewExpenseService(expenseRepo, userRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		TokenHandler:       handlers.NewTokenHandler(tokenService, walletService),
		ChallengeHandler:   handlers.NewChallengeHandler(challengeService),
		DailySavingHandler: handlers.NewDailySavingHandler(savingService),
		QuizHandler:        handlers.NewQuizHandler(quizService),
		CommunityHandler:   handlers.NewCommunityHandler(communityService),
		BookHandler:        handlers.NewBookHandler(bookService),
		ExpenseHandler:     handlers.NewExpenseHandler(expenseService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
