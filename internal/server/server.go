package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"artisan-service/internal/chat"
	"artisan-service/internal/config"
	"artisan-service/internal/handler"
	"artisan-service/internal/middleware"
	"artisan-service/internal/provider/groq"
	"artisan-service/internal/provider/razorpay"
	"artisan-service/internal/repository"
	"artisan-service/internal/router"
	"artisan-service/internal/service"
)

// Server owns every process-lifetime resource: the HTTP listener, the
// mongo client, the redis client and the logger. Everything is constructed
// here once and torn down in Shutdown.
type Server struct {
	httpSrv  *http.Server
	mongoCli *mongo.Client
	rdb      *redis.Client
	logger   *zap.Logger
}

func New(cfg config.Config) (*Server, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoCli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := mongoCli.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := mongoCli.Database(cfg.MongoDB)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr, Password: cfg.RedisPass,
	})

	// repos
	profileRepo := repository.NewProfileRepo(db)
	listingRepo := repository.NewListingRepo(db)
	if err := profileRepo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	// providers
	groqCli := groq.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey)
	rzpCli := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// services
	profileSvc := service.NewProfileService(profileRepo)
	listingSvc := service.NewListingService(listingRepo)
	paymentSvc := service.NewPaymentService(listingRepo, rzpCli, logger)
	chatSvc := service.NewChatService(profileRepo, chat.NewRedisStore(rdb), groqCli, logger)
	uploadSvc, err := service.NewUploadService(cfg.CloudinaryURL)
	if err != nil {
		return nil, err
	}

	// handlers & router
	auth := middleware.NewAuthMiddleware(cfg.JWTSecret)
	h := router.Handlers{
		Profile: handler.NewProfileHandler(profileSvc, logger),
		Listing: handler.NewListingHandler(listingSvc, profileSvc, logger),
		Chat:    handler.NewChatHandler(chatSvc, logger),
		Vision:  handler.NewVisionHandler(chatSvc, logger),
		Payment: handler.NewPaymentHandler(paymentSvc, logger),
		Upload:  handler.NewUploadHandler(uploadSvc, logger),
	}

	r := chi.NewRouter()
	router.SetupRoutes(r, h, auth)

	return &Server{
		httpSrv:  &http.Server{Addr: cfg.HTTPAddr, Handler: r},
		mongoCli: mongoCli,
		rdb:      rdb,
		logger:   logger,
	}, nil
}

func (s *Server) Logger() *zap.Logger { return s.logger }

func (s *Server) Addr() string { return s.httpSrv.Addr }

func (s *Server) ListenAndServe() error {
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains the listener then releases the database clients.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return err
	}
	if err := s.mongoCli.Disconnect(ctx); err != nil {
		return err
	}
	if err := s.rdb.Close(); err != nil {
		return err
	}
	_ = s.logger.Sync()
	return nil
}
