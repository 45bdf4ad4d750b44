package config

import (
	"toranovel-reader/internal/domain"
	"toranovel-reader/internal/repository"
	"toranovel-reader/internal/service"
	"toranovel-reader/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	SupabaseClient domain.SupabaseClient

	ChapterRepository   domain.ChapterRepository
	HighlightRepository domain.HighlightRepository
	SettingsRepository  domain.SettingsRepository
	VoiceJobRepository  domain.VoiceJobRepository

	RenderService    domain.RenderService
	HighlightService domain.HighlightService
	SettingsService  domain.SettingsService
	VoiceService     domain.VoiceService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize Supabase client; the health endpoint still serves if this
	// fails, every data route will report the missing backend.
	supabaseClient := repository.NewSupabaseClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		appLogger.Warn("Supabase client not initialized", "error", err)
	}

	// Initialize repositories
	chapterRepo := repository.NewChapterRepository(supabaseClient, config, appLogger)
	highlightRepo := repository.NewHighlightRepository(supabaseClient, appLogger)
	settingsRepo := repository.NewSettingsRepository(supabaseClient, appLogger)
	voiceRepo := repository.NewVoiceJobRepository(supabaseClient, appLogger)

	// Initialize services
	renderService := service.NewRenderService(chapterRepo, highlightRepo, settingsRepo, appLogger, config.GetDefaultPageSize())
	highlightService := service.NewHighlightService(highlightRepo, appLogger)
	settingsService := service.NewSettingsService(settingsRepo, appLogger)
	voiceService := service.NewVoiceService(voiceRepo, appLogger, config.GetVoicePollInterval())

	return &Container{
		Config:         config,
		Logger:         appLogger,
		SupabaseClient: supabaseClient,

		ChapterRepository:   chapterRepo,
		HighlightRepository: highlightRepo,
		SettingsRepository:  settingsRepo,
		VoiceJobRepository:  voiceRepo,

		RenderService:    renderService,
		HighlightService: highlightService,
		SettingsService:  settingsService,
		VoiceService:     voiceService,
	}
}
