package routes

import (
	"net/http"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/handlers"
	"github.com/fintrack/edutoken-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds every handler the router wires up.
type HandlerDependencies struct {
	AuthHandler        *handlers.AuthHandler
	TokenHandler       *handlers.TokenHandler
	ChallengeHandler   *handlers.ChallengeHandler
	DailySavingHandler *handlers.DailySavingHandler
	QuizHandler        *handlers.QuizHandler
	CommunityHandler   *handlers.CommunityHandler
	BookHandler        *handlers.BookHandler
	ExpenseHandler     *handlers.ExpenseHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/signup", deps.AuthHandler.Signup)
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		tokens := protected.Group("/tokens")
		{
			tokens.GET("/history", deps.TokenHandler.History)
			tokens.GET("/wallet", deps.TokenHandler.Wallet)
			tokens.POST("/setup", deps.TokenHandler.SetupWallet)
			tokens.POST("/reward", deps.TokenHandler.Reward)
			tokens.POST("/transfer", deps.TokenHandler.Transfer)
		}

		challenges := protected.Group("/challenges")
		{
			challenges.POST("/create", deps.ChallengeHandler.Create)
			challenges.GET("", deps.ChallengeHandler.List)
			challenges.GET("/rewards", deps.ChallengeHandler.Rewards)
			challenges.GET("/:id", deps.ChallengeHandler.Get)
			challenges.POST("/complete/:id", deps.ChallengeHandler.Complete)
		}

		savings := protected.Group("/savings")
		{
			savings.POST("/toggle", deps.DailySavingHandler.Toggle)
			savings.GET("/today", deps.DailySavingHandler.Today)
			savings.GET("/history", deps.DailySavingHandler.History)
			savings.GET("/quotes", deps.DailySavingHandler.Quotes)
			savings.GET("/quote/random", deps.DailySavingHandler.RandomQuote)
		}

		quizzes := protected.Group("/quizzes")
		{
			quizzes.GET("", deps.QuizHandler.All)
			quizzes.GET("/random", deps.QuizHandler.Random)
			quizzes.POST("/submit", deps.QuizHandler.Submit)
			quizzes.GET("/leaderboard", deps.QuizHandler.Leaderboard)
			quizzes.GET("/stats", deps.QuizHandler.Stats)
			quizzes.POST("/seed", deps.QuizHandler.Seed)
		}

		community := protected.Group("/community")
		{
			community.POST("", deps.CommunityHandler.CreatePost)
			community.GET("", deps.CommunityHandler.Posts)
			community.POST("/like/:id", deps.CommunityHandler.Like)
			community.POST("/comment/:id", deps.CommunityHandler.Comment)
		}

		books := protected.Group("/books")
		{
			books.GET("", deps.BookHandler.List)
			books.GET("/user", deps.BookHandler.Owned)
			books.GET("/:id", deps.BookHandler.Get)
			books.POST("/purchase/:id", deps.BookHandler.Purchase)
			books.POST("/seed", deps.BookHandler.Seed)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.POST("", deps.ExpenseHandler.Create)
			expenses.GET("", deps.ExpenseHandler.List)
			expenses.DELETE("/:id", deps.ExpenseHandler.Delete)
		}
	}

	return router
}
