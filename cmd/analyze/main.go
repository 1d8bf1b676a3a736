package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/config"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/language"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/logging"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/pipeline"
)

func main() {
	text := flag.String("text", "", "text to analyze (reads stdin when empty)")
	targetLang := flag.String("lang", "", "translate to this language before analysis (en, es, de, fr, nl, it, pt)")
	domain := flag.String("domain", "", "force a lexicon domain instead of inferring it")
	withTopics := flag.Bool("topics", false, "include topic extraction")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	input := *text
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("[Analyze] Failed to read stdin",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		input = strings.TrimSpace(string(data))
	}

	var cfg pipeline.Config
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.Language = language.NewIdentifier(language.NewOpenAITranslator(apiKey))
	}
	p := pipeline.New(cfg)

	result, err := p.ProcessOne(context.Background(), models.AnalysisItem{Text: input}, pipeline.Options{
		TargetLanguage: *targetLang,
		Domain:         *domain,
		ExtractTopics:  *withTopics,
	})
	if err != nil {
		slog.Error("[Analyze] Analysis failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("[Analyze] Failed to encode result",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	os.Stdout.Write(append(out, '\n'))
}
