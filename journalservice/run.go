// Package journalservice boots the journal backend HTTP server.
package journalservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/auralog/auralog/internal/api"
	"github.com/auralog/auralog/internal/auth"
	"github.com/auralog/auralog/internal/config"
	"github.com/auralog/auralog/internal/docstore"
	"github.com/auralog/auralog/internal/genai"
	"github.com/auralog/auralog/internal/logger"
	"github.com/auralog/auralog/internal/searchindex"
	"github.com/auralog/auralog/internal/services"
	"github.com/auralog/auralog/internal/store/postgres"
)

// Run starts the journal service HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("auralog")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// -------- Credential store (Postgres) --------
	db, err := postgres.Open(cfg.PostgresDSN)
	if err != nil {
		log.Error().Err(err).Msg("Credential store unavailable")
		return err
	}
	defer func() { _ = db.Close() }()
	users := postgres.NewWithDB(db)
	if err := users.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Msg("Credential schema bootstrap failed")
		return err
	}

	// -------- Document stores (Mongo) ------------
	mongoClient, err := docstore.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Error().Err(err).Msg("Document store unavailable")
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	mongoDB := mongoClient.Database(cfg.MongoDatabase)
	entries := docstore.NewMongoEntries(mongoDB)
	profiles := docstore.NewMongoProfiles(mongoDB)

	// -------- Vector index (Weaviate) ------------
	if err := searchindex.Bootstrap(ctx, cfg.WeaviateURL); err != nil {
		log.Error().Err(err).Msg("Vector index bootstrap failed")
		return err
	}
	idx, err := searchindex.NewWeaviateIndex(cfg.WeaviateURL)
	if err != nil {
		log.Error().Err(err).Msg("Vector index unavailable")
		return err
	}

	// -------- GenAI provider ---------------------
	ai := genai.NewOpenAIClient(genai.Options{
		BaseURL:         cfg.OpenAIBaseURL,
		APIKey:          cfg.OpenAIAPIKey,
		ChatModel:       cfg.ChatModel,
		EmbedModel:      cfg.EmbedModel,
		TranscribeModel: cfg.TranscribeModel,
	})

	// -------- Services & router ------------------
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authSvc := services.NewAuthService(users, tokens)
	profileSvc := services.NewProfileService(profiles, ai)
	journalSvc := services.NewJournalService(entries, profiles, idx, ai, ai, cfg.SearchTopK)

	healthDeps := map[string]api.Pinger{
		"postgres": users,
		"mongo":    mongoPinger{mongoClient},
	}
	if p, ok := idx.(searchindex.HealthPinger); ok {
		healthDeps["weaviate"] = p
	}

	router := api.NewRouter(api.RouterDeps{
		Auth:        api.NewAuthHandler(authSvc),
		Profile:     api.NewProfileHandler(profileSvc),
		Journal:     api.NewJournalHandler(journalSvc),
		Transcribe:  api.NewTranscribeHandler(ai),
		Health:      api.NewHealthHandler(healthDeps),
		RequireAuth: auth.Middleware(tokens, users),
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// mongoPinger adapts the Mongo client to the health Pinger interface.
type mongoPinger struct{ client *mongo.Client }

func (m mongoPinger) HealthPing(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}
