package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/biggrade/biggrade-api/gig"
	"github.com/biggrade/biggrade-api/hub"
	"github.com/biggrade/biggrade-api/logmodule"
	"github.com/biggrade/biggrade-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

//go:generate mockgen -destination=../mocks/job_queue.go -package=mocks github.com/biggrade/biggrade-api/api JobQueue

// JobQueue enqueues background tasks
type JobQueue interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.BigGradeCore
	mongoStore store.MongoStore

	// JWT public key of the identity provider
	jwtPublicKey *rsa.PublicKey

	// job pool enqueuer
	background JobQueue

	// per gig event stream
	hub *hub.Hub

	rules gig.Rules
	now   func() time.Time
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PublicKey,
	background JobQueue) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:        store.NewBigGradeStore(ormDB, mongoStore),
		mongoStore:   mongoStore,
		jwtPublicKey: jwtKey,
		background:   background,
		hub:          hub.New(),
		rules: gig.DefaultRules().
			WithMinVouchMinutes(viper.GetInt("session.min_vouch_minutes")),
		now: time.Now,
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

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(s.authMiddleware())
	apiRoute.POST("/accounts", s.accountRegister)

	userRoute := apiRoute.Group("")
	userRoute.Use(s.recognizeUserMiddleware())

	accountRoute := userRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	helpRoute := userRoute.Group("/helps")
	{
		helpRoute.POST("", s.askForHelp)
		helpRoute.GET("", s.listHelps)
		helpRoute.GET("/mine", s.listMyHelps)
		helpRoute.GET("/:helpID", s.getHelp)
		helpRoute.PATCH("/:helpID", s.answerHelp)
		helpRoute.DELETE("/:helpID", s.cancelHelp)

		helpRoute.GET("/:helpID/session", s.sessionDetail)
		helpRoute.POST("/:helpID/session/link", s.shareMeetingLink)
		helpRoute.POST("/:helpID/session/link/confirm", s.confirmMeetingLink)
		helpRoute.POST("/:helpID/session/end", s.endSession)

		helpRoute.POST("/:helpID/payment/instructions", s.sendPaymentInstructions)
		helpRoute.POST("/:helpID/payment/paid", s.markStudentPaid)
		helpRoute.POST("/:helpID/payment/confirm", s.confirmPaymentReceived)

		helpRoute.GET("/:helpID/messages", s.listMessages)
		helpRoute.POST("/:helpID/messages", s.sendMessage)
		helpRoute.GET("/:helpID/events", s.sessionEvents)

		helpRoute.GET("/:helpID/vouch", s.vouchStatus)
		helpRoute.POST("/:helpID/vouch", s.submitVouch)
	}

	notificationRoute := userRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.PATCH("/:notificationID", s.readNotification)
	}

	userRoute.POST("/presence", s.heartbeat)

	directoryRoute := r.Group("/directory")
	directoryRoute.Use(logmodule.Ginrus("Directory"))
	directoryRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Api-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	directoryRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.directory")))
	{
		directoryRoute.GET("", s.listDirectory)
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

// enqueue sends a background task. A failure is logged and never fails the
// request that triggered it.
func (s *Server) enqueue(name string, args ...string) {
	if s.background == nil {
		return
	}

	signature := &tasks.Signature{Name: name}
	for _, a := range args {
		signature.Args = append(signature.Args, tasks.Arg{Type: "string", Value: a})
	}

	if _, err := s.background.SendTask(signature); err != nil {
		log.WithError(err).WithField("task", name).Error("fail to enqueue background task")
	}
}

func (s *Server) publish(gigID string, eventType string, data interface{}) {
	s.hub.Publish(gigID, hub.Event{Type: eventType, Data: data})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

func listLimit(c *gin.Context, max int) int {
	var params struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&params); err != nil || params.Limit <= 0 || params.Limit > max {
		return max
	}
	return params.Limit
}
