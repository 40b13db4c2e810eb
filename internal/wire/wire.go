package wire

import (
	"panganjawara/internal/api"
	"panganjawara/internal/api/config"
	"panganjawara/internal/api/handler"
	"panganjawara/internal/job"
	"panganjawara/internal/pkg/cron"
	"panganjawara/internal/pkg/es"
	"panganjawara/internal/pkg/external"
	"panganjawara/internal/pkg/kafka"
	"panganjawara/internal/pkg/mongo"
	"panganjawara/internal/repository"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer membungkus komponen tingkat atas yang dikelola
// siklus hidupnya oleh main.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronManager  *cron.Manager
	Producer     kafka.InteractionProducer
}

func BuildApplication(db *gorm.DB, mongoConn *mongo.Conn, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewPostActionRepo(db)
	imageRepo := repository.NewImageRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	eventRepo := repository.NewEventRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	userRepo := repository.NewUserRepo(db)
	priceRepo := repository.NewPriceRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	esRepo := es.NewContentRepo(es.Client)
	auditRepo := mongo.NewAuditRepo(mongoConn)

	producer, err := kafka.NewInteractionProducer(cfg)
	if err != nil {
		return nil, err
	}

	actionService := service.NewPostActionService(actionRepo, postRepo, service.NewCounterCache(), producer)
	postService := service.NewPostService(postRepo, imageRepo, actionService, esRepo, producer)
	mediaService := service.NewMediaService(imageRepo)
	articleService := service.NewArticleService(articleRepo, esRepo)
	eventService := service.NewEventService(eventRepo)
	videoService := service.NewVideoService(videoRepo)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(statsRepo)
	lookupService := service.NewLookupService(
		external.NewWeatherClient(cfg.Lookup),
		external.NewWilayahClient(cfg.Lookup),
	)
	priceService := service.NewPriceService(priceRepo, cfg.Price)
	searchService := service.NewSearchService(esRepo)

	handlers := &api.HandlersGroup{
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
		ArticleHandler:    handler.NewArticleHandler(articleService),
		EventHandler:      handler.NewEventHandler(eventService),
		VideoHandler:      handler.NewVideoHandler(videoService),
		UserHandler:       handler.NewUserHandler(userService),
		StatsHandler:      handler.NewStatsHandler(statsService, auditRepo),
		LookupHandler:     handler.NewLookupHandler(lookupService),
		PriceHandler:      handler.NewPriceHandler(priceService),
		SearchHandler:     handler.NewSearchHandler(searchService),
		WsHandler:         handler.NewWsHandler(),
	}

	router := api.SetupRouter(handlers, auditRepo)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewCounterSyncJob(postService, actionService, articleService),
		job.NewPriceScrapeJob(priceService),
		job.NewMediaCleanupJob(imageRepo),
		job.NewEventStatusJob(eventService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronManager:  cronMgr,
		Producer:     producer,
	}, nil
}
