package config

import "time"

//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . Configuration

type Configuration struct {
	Server  Server  `debugmap:"visible"`
	Jikan   Jikan   `debugmap:"visible"`
	YouTube YouTube `debugmap:"visible"`
	Cache   Cache   `debugmap:"visible"`
	Site    Site    `debugmap:"visible"`
	Log     Log     `debugmap:"visible"`
	// NumWorkers bounds the page fan-out pool.
	NumWorkers int `debugmap:"visible" default:"4"`
}

type Server struct {
	HTTPPort        int           `debugmap:"visible" default:"8000"`
	ServerMode      string        `debugmap:"visible" default:"dev"`
	ShutdownTimeout time.Duration `debugmap:"visible" default:"10s"`
	TLSEnabled      bool          `debugmap:"visible" default:"false"`
	TLSCertFile     string        `debugmap:"visible"`
	TLSKeyFile      string        `debugmap:"visible"`
}

type Jikan struct {
	URL               string        `debugmap:"visible" default:"https://api.jikan.moe/v4"`
	UserAgent         string        `debugmap:"visible" default:"AnimeInfo-App/1.0"`
	MinInterval       time.Duration `debugmap:"visible" default:"334ms"`
	RequestsPerMinute int           `debugmap:"visible" default:"60"`
	MaxRetries        int           `debugmap:"visible" default:"1"`
	RetryBackoff      time.Duration `debugmap:"visible" default:"1s"`
	Timeout           time.Duration `debugmap:"visible" default:"30s"`
}

type YouTube struct {
	URL     string        `debugmap:"visible" default:"https://www.googleapis.com/youtube/v3"`
	APIKey  string        `debugmap:"sensitive"`
	Timeout time.Duration `debugmap:"visible" default:"15s"`
}

type Cache struct {
	Backend         string        `debugmap:"visible" default:"memory"`
	DSN             string        `debugmap:"sensitive"`
	RedisAddr       string        `debugmap:"visible" default:"localhost:6379"`
	RedisPassword   string        `debugmap:"sensitive"`
	RedisDB         int           `debugmap:"visible" default:"0"`
	CleanupInterval time.Duration `debugmap:"visible" default:"1m"`
}

type Site struct {
	Name string `debugmap:"visible" default:"AnimeInfo"`
	URL  string `debugmap:"visible" default:"https://animeinfo.zhakazx.com"`
}

type Log struct {
	Level  string `debugmap:"visible" default:"info"`
	Format string `debugmap:"visible" default:"console"`
}
