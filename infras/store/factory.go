package store

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/helper"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/infras/sqlite"
	"hotel/shared/constant"
	"hotel/shared/metrics"

	"github.com/rs/zerolog/log"
)

// New builds the backend selected by STORAGE_DRIVER and instruments it.
// Connection failures at startup are fatal.
func New(config *config.Config, ot otel.Otel, m metrics.Metrics) Store {
	backend, err := Open(config, ot)
	if err != nil {
		log.Fatal().Err(err).Str("driver", config.Storage.Driver).Msg("Failed to open storage backend")
	}

	log.Info().Str("driver", backend.Driver()).Msg("Storage backend ready")

	return Instrument(backend, ot, m)
}

// Open builds the uninstrumented backend selected by STORAGE_DRIVER.
func Open(config *config.Config, ot otel.Otel) (Store, error) {
	storage := config.Storage

	switch storage.Driver {
	case constant.StorageDriverMemory, constant.Empty:
		return NewMemory(storage.QuotaBytes), nil
	case constant.StorageDriverFile:
		return NewFile(storage.File.Dir)
	case constant.StorageDriverSQLite:
		return NewSQLite(context.Background(), sqlite.New(config))
	case constant.StorageDriverRedis:
		return NewRedis(redis.New(config), storage.KeyPrefix), nil
	case constant.StorageDriverPostgres:
		if config.DB.Postgres.AutoMigrate {
			if err := helper.Up(config); err != nil {
				return nil, err
			}
		}

		return NewPostgres(postgres.New(config)), nil
	case constant.StorageDriverS3:
		return NewS3(s3.New(config, ot), config.External.S3.BucketName, storage.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", storage.Driver)
	}
}
