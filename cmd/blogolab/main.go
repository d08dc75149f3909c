package main

import (
	"context"

	config "github.com/davicafu/blogolab/internal/config"
	postApp "github.com/davicafu/blogolab/internal/post/application"
	postDomain "github.com/davicafu/blogolab/internal/post/domain"
	postHttp "github.com/davicafu/blogolab/internal/post/infra/inbound/http"
	postRepo "github.com/davicafu/blogolab/internal/post/infra/outbound/memory"
	sharedEvents "github.com/davicafu/blogolab/internal/shared/events"
	infraEvents "github.com/davicafu/blogolab/internal/shared/infra/events"
	"github.com/davicafu/blogolab/internal/shared/infra/middleware"
	sharedBus "github.com/davicafu/blogolab/internal/shared/infra/platform/bus"
	infraRelayer "github.com/davicafu/blogolab/internal/shared/infra/relayer"
	userApp "github.com/davicafu/blogolab/internal/user/application"
	userDomain "github.com/davicafu/blogolab/internal/user/domain"
	userHttp "github.com/davicafu/blogolab/internal/user/infra/inbound/http"
	userRepo "github.com/davicafu/blogolab/internal/user/infra/outbound/memory"

	"github.com/davicafu/blogolab/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ---------------- Main ----------------
func main() {
	logger.Init()          // inicializa zap
	log := logger.Logger() // obtiene logger estructurado
	defer log.Sync()       // flush buffers al salir

	ctx := context.Background()
	cfg := config.LoadConfig()

	// --------------- Colecciones ---------------
	// Todo vive en memoria: las colecciones son las dueñas de los datos
	// y de la asignación de ids.
	postRepoMemory := postRepo.NewPostRepoMemory()
	userRepoMemory := userRepo.NewUserRepoMemory()

	// --------------- Servicios -----------------
	postService := postApp.NewPostService(postRepoMemory, log)
	userService := userApp.NewUserService(userRepoMemory, log)

	if cfg.SeedData {
		seedDemoData(ctx, postService, userService, log)
	}

	// ---------------- Events -------------------
	var postPublisher sharedBus.EventBus
	var userPublisher sharedBus.EventBus

	if cfg.UseKafka {
		log.Info("🚀 Usando Kafka como bus de eventos")

		postWriter := kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   postDomain.PostTopic,
		})
		userWriter := kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   userDomain.UserTopic,
		})
		defer postWriter.Close()
		defer userWriter.Close()

		postPublisher = infraEvents.NewKafkaPublisher(postWriter, log)
		userPublisher = infraEvents.NewKafkaPublisher(userWriter, log)
	} else {
		log.Info("⚡️Usando bus de eventos en memoria (canales de Go)")

		postBus := infraEvents.NewInMemoryEventBus(postDomain.PostTopic)
		userBus := infraEvents.NewInMemoryEventBus(userDomain.UserTopic)

		postPublisher = postBus
		userPublisher = userBus

		consumer := infraEvents.NewLogConsumer(log)
		consumer.Start(ctx, postBus.Subscribe(10))
		consumer.Start(ctx, userBus.Subscribe(10))
	}

	// ------------ Outbox Workers ------------
	eventRegistry := make(map[string]sharedEvents.EventMetadata)
	for k, v := range postDomain.NewEventRegistry() {
		eventRegistry[k] = v
	}
	for k, v := range userDomain.NewEventRegistry() {
		eventRegistry[k] = v
	}

	postWorker := infraRelayer.NewOutboxWorker(postRepoMemory, postPublisher, eventRegistry, cfg.OutboxPeriod, cfg.OutboxLimit, log)
	postWorker.Start(ctx)
	userWorker := infraRelayer.NewOutboxWorker(userRepoMemory, userPublisher, eventRegistry, cfg.OutboxPeriod, cfg.OutboxLimit, log)
	userWorker.Start(ctx)

	// ---------------- HTTP ----------------
	postHandler := postHttp.NewPostHandler(postService)
	userHandler := userHttp.NewUserHandler(userService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	postHttp.RegisterPostRoutes(router, postHandler)
	userHttp.RegisterUserRoutes(router, userHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// seedDemoData deja unos cuantos registros de ejemplo para poder
// probar los listados nada más arrancar.
func seedDemoData(ctx context.Context, posts *postApp.PostService, users *userApp.UserService, log *zap.Logger) {
	if _, err := users.CreateUser(ctx, "ana", "ana@example.com", "Ana"); err != nil {
		log.Warn("seed: no se pudo crear usuario", zap.Error(err))
	}
	if _, err := users.CreateUser(ctx, "bob", "bob@example.com", "Bob"); err != nil {
		log.Warn("seed: no se pudo crear usuario", zap.Error(err))
	}

	demoPosts := []struct {
		title, summary, content string
		categoryID, authorID    int64
		top                     bool
	}{
		{"Hola blogolab", "Primer artículo", "Bienvenidos al blog.", 1, 1, true},
		{"Puertos y adaptadores", "Hexagonal en la práctica", "Los puertos definen el dominio...", 2, 1, false},
		{"Paginación en memoria", "Filtrar, ordenar, paginar", "Siempre en ese orden.", 2, 2, false},
	}
	for _, p := range demoPosts {
		if _, err := posts.CreatePost(ctx, p.title, p.summary, p.content, p.categoryID, p.authorID, p.top); err != nil {
			log.Warn("seed: no se pudo crear post", zap.Error(err))
		}
	}
}
