package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects the handlers the router registers.
type RouterParams struct {
	fx.In

	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	CropHandler    *CropHandler
	AuthMiddleware *AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *AuthHandler
	profileHandler *ProfileHandler
	cropHandler    *CropHandler
	authMiddleware *AuthMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		cropHandler:    params.CropHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the routes of the backend contract.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// The client is configured with an /api base URL, so every contract
	// route lives under that prefix.
	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.Signup)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(r.authMiddleware.Authenticate)
	{
		authProtected.GET("/profile", r.authHandler.Profile)
		authProtected.PUT("/profile", r.authHandler.UpdateProfile)
		authProtected.POST("/logout", r.authHandler.Logout)
	}

	profileGroup := api.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Profile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/avatar", r.profileHandler.UploadAvatar)
	}

	soilGroup := api.Group("/soil-tests")
	soilGroup.Use(r.authMiddleware.Authenticate)
	{
		soilGroup.POST("/upload", r.cropHandler.AnalyzeSoil)
	}

	diseaseGroup := api.Group("/plant-diseases")
	diseaseGroup.Use(r.authMiddleware.Authenticate)
	{
		diseaseGroup.POST("/detect", r.cropHandler.DetectDisease)
	}
}
