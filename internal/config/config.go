package config

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

type Config struct {
	Topic       string `hcl:"topic" env:"TOPIC" default:"hn_daily_summaries"`
	Tags        string `hcl:"tags" env:"TAGS" default:"news"`
	DigestTitle string `hcl:"digest_title" env:"DIGEST_TITLE" default:"Hacker News Top 10"`
	StoryLimit  int    `hcl:"story_limit" env:"STORY_LIMIT" default:"10"`

	// Mode selects between one notification per story and a single
	// combined digest. Channel selects the delivery transport.
	Mode    string `hcl:"mode" env:"MODE" default:"per_story"`
	Channel string `hcl:"channel" env:"CHANNEL" default:"ntfy"`

	RelayURL  string `hcl:"relay_url" env:"RELAY_URL" default:"https://ntfy.sh"`
	HNBaseURL string `hcl:"hn_base_url" env:"HN_BASE_URL" default:"https://hacker-news.firebaseio.com/v0"`

	ListenAddr string `hcl:"listen_addr" env:"LISTEN_ADDR" default:":8080"`
	CronSpec   string `hcl:"cron_spec" env:"CRON_SPEC"`

	// UserAgent is sent on article-page fetches; some servers reject
	// non-browser clients outright.
	UserAgent         string        `hcl:"user_agent" env:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"`
	HTTPTimeout       time.Duration `hcl:"http_timeout" env:"HTTP_TIMEOUT" default:"10s"`
	ScrapeTimeout     time.Duration `hcl:"scrape_timeout" env:"SCRAPE_TIMEOUT" default:"15s"`
	EnrichConcurrency int           `hcl:"enrich_concurrency" env:"ENRICH_CONCURRENCY" default:"4"`

	SummaryMode string        `hcl:"summary_mode" env:"SUMMARY_MODE" default:"heuristic"`
	AIBaseURL   string        `hcl:"ai_base_url" env:"AI_BASE_URL"`
	AIKey       string        `hcl:"ai_key" env:"AI_KEY"`
	AIPrompt    string        `hcl:"ai_prompt" env:"AI_PROMPT"`
	AIModel     string        `hcl:"ai_model" env:"AI_MODEL" default:"llama3"`
	AITimeout   time.Duration `hcl:"ai_timeout" env:"AI_TIMEOUT" default:"5m"`

	TelegramBotToken    string `hcl:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID      int64  `hcl:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	TelegramAdminChatID int64  `hcl:"telegram_admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID"`
}

var (
	cfg  Config
	once sync.Once
)

func Get() Config {
	once.Do(func() {
		cfg = load()
	})

	return cfg
}

func load() Config {
	var c Config

	loader := aconfig.LoaderFor(&c, aconfig.Config{
		EnvPrefix: "HNP",
		Files:     []string{"./config.hcl", "./config.local.hcl", "$HOME/.config/hn-push/config.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		slog.Error("failed to load config", "err", err)
	}

	return c
}
