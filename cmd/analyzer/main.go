package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/config"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/clients/kafka_client"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/entities"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/language"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/logging"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/pipeline"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/store"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := kafka_client.GetKafkaConfig()

	var consumer *kafka_client.Consumer
	for {
		c, err := kafka_client.NewConsumer(cfg)
		if err == nil {
			consumer = c
			break
		}
		slog.Warn("[Analyzer] Kafka consumer init failed, retrying...",
			slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
	defer consumer.Close()

	producer, err := kafka_client.NewProducer(cfg)
	if err != nil {
		slog.Error("[Analyzer] Failed to create Kafka producer",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer producer.Close()

	p := pipeline.New(buildPipelineConfig(ctx))

	slog.Info("[Analyzer] Ready, waiting for analysis requests",
		slog.String("topic", cfg.Topic))

	for {
		msg, err := consumer.NextMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Info("[Analyzer] Shutting down")
				return
			}
			slog.Error("[Analyzer] Giving up on message stream",
				slog.String("error", err.Error()))
			return
		}

		var req models.AnalysisRequest
		if err := json.Unmarshal(msg.Value, &req); err != nil {
			slog.Warn("[Analyzer] Skipping malformed request",
				slog.String("error", err.Error()))
			consumer.Commit(msg)
			continue
		}
		if len(req.Items) == 0 {
			consumer.Commit(msg)
			continue
		}

		opts := pipeline.Options{
			TargetLanguage: req.TargetLanguage,
			Domain:         req.Domain,
			ExtractTopics:  req.ExtractTopics,
			Persist:        persistEnabled(),
			BatchSize:      envInt("ANALYZER_BATCH_SIZE", 25),
			Concurrency:    envInt("ANALYZER_CONCURRENCY", 4),
		}

		outcome := models.AnalysisBatchResult{BatchID: req.BatchID}
		for _, res := range p.ProcessBatch(ctx, req.Items, opts) {
			if res.Err != nil {
				outcome.Failed++
				slog.Warn("[Analyzer] Item failed",
					slog.String("batch_id", req.BatchID),
					slog.Int("index", res.Index),
					slog.String("error", res.Err.Error()))
				continue
			}
			outcome.Succeeded++
			outcome.Results = append(outcome.Results, res.Value)
		}

		if err := producer.Publish(kafka_client.KAFKA_TOPIC_ANALYSIS_RESULTS, req.BatchID, outcome); err != nil {
			slog.Error("[Analyzer] Failed to publish results, leaving offset uncommitted",
				slog.String("batch_id", req.BatchID),
				slog.String("error", err.Error()))
			continue
		}

		consumer.Commit(msg)
		slog.Info("[Analyzer] Batch complete",
			slog.String("batch_id", req.BatchID),
			slog.Int("succeeded", outcome.Succeeded),
			slog.Int("failed", outcome.Failed))
	}
}

// buildPipelineConfig wires the optional external capabilities. Each
// one degrades to a warning when its configuration is missing or its
// backend is unreachable.
func buildPipelineConfig(ctx context.Context) pipeline.Config {
	var cfg pipeline.Config

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.Language = language.NewIdentifier(language.NewOpenAITranslator(apiKey))
	}

	if modelPath := os.Getenv("NER_MODEL_PATH"); modelPath != "" {
		ext, err := entities.NewHugotExtractor(modelPath)
		if err != nil {
			slog.Warn("[Analyzer] NER model unavailable, using patterns only",
				slog.String("error", err.Error()))
		} else {
			cfg.Entities = entities.NewExtractor(ext)
		}
	}

	if persistEnabled() {
		client, err := store.NewDynamoDBClient(ctx)
		if err != nil {
			slog.Warn("[Analyzer] DynamoDB unavailable, results will not be persisted",
				slog.String("error", err.Error()))
		} else {
			ddb := store.NewDynamoDBStore(client)
			cfg.Sources = ddb
			cfg.Results = ddb
		}

		cache, err := store.NewValkeyProcessedCache()
		if err != nil {
			slog.Warn("[Analyzer] Valkey unavailable, duplicate suppression disabled",
				slog.String("error", err.Error()))
		} else {
			cfg.Cache = cache
		}
	}

	return cfg
}

func persistEnabled() bool {
	return os.Getenv("ANALYZER_PERSIST") == "true"
}

func envInt(key string, defaultValue int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}
