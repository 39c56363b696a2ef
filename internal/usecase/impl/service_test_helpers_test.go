package impl

import (
	"io"
	"log/slog"

	"casefile/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Geo: &config.GeoConfig{
			DefaultRadius: 1000,
			MaxRadius:     50000,
		},
	}
}
