package server

import (
	"github.com/gin-gonic/gin"

	account "auction-backend/internal/accountService"
	"auction-backend/internal/auth"
	catalog "auction-backend/internal/catalogService"
	lifecycle "auction-backend/internal/lifecycleService"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	handler "auction-backend/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	repo repository.AuctionDB,
	tokens *auth.TokenIssuer,
	accountService *account.Service,
	catalogService *catalog.Service,
	lifecycleService *lifecycle.Service,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	accountHandler := handler.NewAccountHandler(accountService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleService)

	router.POST("/admin/login", accountHandler.AdminLoginHandler)
	router.POST("/login", accountHandler.ClientLoginHandler)

	authed := router.Group("", TokenRequired(repo, tokens))
	{
		authed.GET("/profile", accountHandler.ProfileHandler)
		// Any authenticated caller gets the restricted storefront view here;
		// the unrestricted listing lives under /admin only
		authed.GET("/auctions", catalogHandler.BrowseAuctionsHandler)
		authed.GET("/auctions/:auction_id", catalogHandler.ClientAuctionHandler)
	}

	admin := router.Group("/admin", TokenRequired(repo, tokens), RoleRequired(model.RoleAdmin))
	{
		admin.POST("/users", accountHandler.CreateUserHandler)
		admin.GET("/users", accountHandler.ListUsersHandler)
		admin.GET("/users/:user_id", accountHandler.GetUserHandler)
		admin.PUT("/users/:user_id", accountHandler.UpdateUserHandler)
		admin.DELETE("/users/:user_id", accountHandler.DeleteUserHandler)

		admin.POST("/carriers", catalogHandler.CreateCarrierHandler)
		admin.GET("/carriers", catalogHandler.ListCarriersHandler)

		admin.POST("/auctions", catalogHandler.CreateAuctionHandler)
		admin.GET("/auctions", catalogHandler.ListAuctionsHandler)
		admin.GET("/auctions/:auction_id", catalogHandler.GetAuctionHandler)
		admin.PUT("/auctions/:auction_id", catalogHandler.UpdateAuctionHandler)
		admin.DELETE("/auctions/:auction_id", catalogHandler.DeleteAuctionHandler)
		admin.POST("/auctions/:auction_id/upload-lots", catalogHandler.UploadLotsHandler)

		admin.POST("/auctions/process-statuses", lifecycleHandler.ProcessStatusesHandler)
		admin.POST("/auctions/:auction_id/determine-winners", lifecycleHandler.DetermineWinnersHandler)
	}

	client := router.Group("/client", TokenRequired(repo, tokens), RoleRequired(model.RoleClient))
	{
		client.GET("/auctions", catalogHandler.BrowseAuctionsHandler)
		client.GET("/auctions/:auction_id", catalogHandler.ClientAuctionHandler)
		client.POST("/auctions/:auction_id/lots/:lot_id/bid", lifecycleHandler.SubmitBidHandler)
		client.GET("/my-bids", catalogHandler.MyBidsHandler)
		client.GET("/my-wins", catalogHandler.MyWinsHandler)
	}

	return router
}
