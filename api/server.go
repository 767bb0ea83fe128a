package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/campusaid-inc/campusaid-api/feed"
	"github.com/campusaid-inc/campusaid-api/logmodule"
	"github.com/campusaid-inc/campusaid-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.CampusAidStore

	// Live feeds
	feeds *feed.Manager

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	campusStore store.CampusAidStore,
	feeds *feed.Manager,
	background *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         campusStore,
		feeds:         feeds,
		background:    background,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Geo-Position"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// api routes other than `/auth` and registration apply the following
	// middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdate)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(s.recognizeAccountMiddleware())
	{
		requestRoute.POST("", s.askForHelp)
		requestRoute.GET("", s.myRequests)
		requestRoute.GET("/nearby", s.nearbyRequests)
		requestRoute.GET("/nearby/feed", s.nearbyRequestsFeed)
		requestRoute.GET("/:requestID", s.requestDetail)
		requestRoute.PATCH("/:requestID/accept", s.acceptRequest)
		requestRoute.PATCH("/:requestID/cancel", s.cancelRequest)
		requestRoute.PATCH("/:requestID/complete", s.completeRequest)
	}

	chatRoute := apiRoute.Group("/chats")
	chatRoute.Use(s.recognizeAccountMiddleware())
	{
		chatRoute.GET("", s.listChats)
		chatRoute.GET("/feed", s.chatsFeed)
		chatRoute.GET("/:roomID/messages", s.listMessages)
		chatRoute.GET("/:roomID/messages/feed", s.messagesFeed)
		chatRoute.POST("/:roomID/messages", s.sendMessage)
		chatRoute.PATCH("/:roomID/complete", s.completeChat)
	}

	statsRoute := apiRoute.Group("/stats")
	{
		statsRoute.GET("/me", s.myStats)
		statsRoute.GET("/me/feed", s.myStatsFeed)
		statsRoute.GET("/:accountNumber", s.accountStats)
		statsRoute.POST("/:accountNumber/rating", s.rateAccount)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/expire-requests", s.adminExpireRequests)
		secretRoute.POST("/purge-chats", s.adminPurgeChats)
		secretRoute.PATCH("/accounts/:accountNumber/verify", s.adminSetVerified)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
