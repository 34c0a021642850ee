package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Emu
		Database
		Media
		Import
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Emu struct {
		BaseURL string        // Base URL of the EMu HTTP gateway
		Timeout time.Duration // Per-request timeout
	}
	Database struct {
		Path string
	}
	Media struct {
		Dir     string // Root directory for generated derivative files
		BaseURL string // URL prefix the website serves derivatives from
	}
	Import struct {
		DataBatchSize  int    // Records per transactional batch
		CacheBatchSize int    // Keys per page while caching search results
		OfflineCutoff  string // Local wall-clock time EMu goes offline, "15:04" format
		Schedule       string // Cron format: "0 1 * * *" = daily at 01:00
		Timezone       string // IANA zone used to parse EMu record timestamps
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("emu_base_url", "http://localhost:8085")
	v.SetDefault("emu_timeout", "120s")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("media_dir", "./media")
	v.SetDefault("media_base_url", "/media")
	v.SetDefault("import_data_batch_size", DataBatchSize)
	v.SetDefault("import_cache_batch_size", CacheBatchSize)
	v.SetDefault("import_offline_cutoff", DefaultOfflineCutoff)
	v.SetDefault("import_schedule", "0 1 * * *") // Daily at 01:00
	v.SetDefault("import_timezone", DefaultTimezone)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Emu: Emu{
			BaseURL: v.GetString("EMU_BASE_URL"),
			Timeout: v.GetDuration("EMU_TIMEOUT"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Media: Media{
			Dir:     v.GetString("MEDIA_DIR"),
			BaseURL: v.GetString("MEDIA_BASE_URL"),
		},
		Import: Import{
			DataBatchSize:  v.GetInt("IMPORT_DATA_BATCH_SIZE"),
			CacheBatchSize: v.GetInt("IMPORT_CACHE_BATCH_SIZE"),
			OfflineCutoff:  v.GetString("IMPORT_OFFLINE_CUTOFF"),
			Schedule:       v.GetString("IMPORT_SCHEDULE"),
			Timezone:       v.GetString("IMPORT_TIMEZONE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
