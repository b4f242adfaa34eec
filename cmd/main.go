// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/0x0BSoD/hnPush/internal/api"
	"github.com/0x0BSoD/hnPush/internal/config"
	"github.com/0x0BSoD/hnPush/internal/hackernews"
	"github.com/0x0BSoD/hnPush/internal/notifier"
	"github.com/0x0BSoD/hnPush/internal/pipeline"
	"github.com/0x0BSoD/hnPush/internal/reporter"
	"github.com/0x0BSoD/hnPush/internal/scheduler"
	"github.com/0x0BSoD/hnPush/internal/summary"
)

func main() {
	cfg := config.Get()

	apiClient := &http.Client{Timeout: cfg.HTTPTimeout}
	scrapeClient := &http.Client{Timeout: cfg.ScrapeTimeout}

	hn := hackernews.New(apiClient, cfg.HNBaseURL)

	var extractor pipeline.Extractor
	switch cfg.SummaryMode {
	case "openai":
		if cfg.AIKey == "" {
			log.Printf("[ERROR] ai_key is required when summary_mode is \"openai\"")
			return
		}
		summarizer := summary.NewOpenAISummarizer(
			cfg.AIBaseURL,
			cfg.AIKey,
			cfg.AIPrompt,
			cfg.AIModel,
			cfg.AITimeout,
		)
		extractor = summary.NewAIExtractor(scrapeClient, cfg.UserAgent, summarizer)
		log.Printf("[INFO] using OpenAI-compatible summarizer (model: %s)", cfg.AIModel)
	case "ollama":
		if cfg.AIBaseURL == "" {
			log.Printf("[ERROR] ai_base_url is required when summary_mode is \"ollama\"")
			return
		}
		summarizer := summary.NewOllamaSummarizer(
			cfg.AIBaseURL,
			cfg.AIPrompt,
			cfg.AIModel,
			cfg.AITimeout,
		)
		extractor = summary.NewAIExtractor(scrapeClient, cfg.UserAgent, summarizer)
		log.Printf("[INFO] using Ollama summarizer (model: %s)", cfg.AIModel)
	default:
		extractor = summary.NewHeuristic(scrapeClient, cfg.UserAgent)
		log.Printf("[INFO] using meta-tag summary heuristic")
	}

	var botAPI *tgbotapi.BotAPI
	if cfg.TelegramBotToken != "" {
		var err error
		botAPI, err = tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			log.Printf("[ERROR] failed to create botAPI: %v", err)
			return
		}
	}

	var sender notifier.Sender
	switch cfg.Channel {
	case "telegram":
		if botAPI == nil || cfg.TelegramChatID == 0 {
			log.Printf("[ERROR] telegram_bot_token and telegram_chat_id are required when channel is \"telegram\"")
			return
		}
		sender = notifier.NewTelegramSender(botAPI, cfg.TelegramChatID)
		log.Printf("[INFO] delivering to telegram chat %d", cfg.TelegramChatID)
	default:
		sender = notifier.NewNtfySender(apiClient, cfg.RelayURL, cfg.Topic)
		log.Printf("[INFO] delivering to %s/%s", cfg.RelayURL, cfg.Topic)
	}

	pipe := pipeline.New(
		hn,
		extractor,
		notifier.New(sender, cfg.Tags, cfg.DigestTitle),
		reporter.New(botAPI, cfg.TelegramAdminChatID),
		pipeline.Mode(cfg.Mode),
		cfg.StoryLimit,
		cfg.EnrichConcurrency,
	)

	if cfg.CronSpec != "" {
		sched, err := scheduler.New(cfg.CronSpec, pipe)
		if err != nil {
			log.Printf("[ERROR] invalid cron_spec %q: %v", cfg.CronSpec, err)
			return
		}
		sched.Start()
		defer sched.Stop()
		log.Printf("[INFO] internal scheduler enabled (%s)", cfg.CronSpec)
	}

	router := gin.Default()
	api.NewServer(pipe).RegisterRoutes(router)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[ERROR] failed to run http server: %v", err)
				cancel()
				return
			}

			log.Printf("[INFO] http server stopped")
		}
	}()

	log.Printf("[INFO] listening on %s", cfg.ListenAddr)
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] failed to shut down http server: %v", err)
	}
}
