package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr    string
	GinMode    string
	APIBaseURL string
	APIPrefix  string
	DBDSN      string
	EntryRoute string

	AdminUsername     string
	AdminPasswordHash string
	AuthSecret        string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:           strings.TrimSpace(os.Getenv("APP_ADDR")),
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		APIBaseURL:        strings.TrimSpace(os.Getenv("API_BASE_URL")),
		APIPrefix:         strings.TrimSpace(os.Getenv("API_PREFIX")),
		DBDSN:             strings.TrimSpace(os.Getenv("DB_DSN")),
		EntryRoute:        strings.TrimSpace(os.Getenv("ENTRY_ROUTE")),
		AdminUsername:     strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		AuthSecret:        strings.TrimSpace(os.Getenv("AUTH_SECRET")),
	}
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	if env.APIBaseURL == "" {
		env.APIBaseURL = "http://127.0.0.1:9000"
	}
	if env.APIPrefix == "" {
		env.APIPrefix = "api/v1"
	}
	if env.EntryRoute == "" {
		env.EntryRoute = "/admin"
	}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	}
	return env
}
