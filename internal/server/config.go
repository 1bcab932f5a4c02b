package server

import (
	"fmt"

	"github.com/DjordjeVuckovic/code-comparator/pkg/config/env"
	"github.com/DjordjeVuckovic/code-comparator/pkg/utils"
)

const (
	defaultPort      = 8080
	defaultBodyLimit = "80M"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// BodyLimit caps a whole multipart request, e.g. "80M".
	BodyLimit string
}

// LoadConfig reads server settings from the environment. Callers load any
// .env file beforehand.
func LoadConfig() (*Config, error) {
	port, err := env.Int("PORT", defaultPort)
	if err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port: %d is outside 1-65535", port)
	}

	useHttp2, err := env.Bool("USE_HTTP2", false)
	if err != nil {
		return nil, err
	}

	origins := utils.SplitTrimmed(env.String("CORS_ORIGINS", ""), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        fmt.Sprint(port),
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
		BodyLimit:   env.String("BODY_LIMIT", defaultBodyLimit),
	}, nil
}
