package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ricardonunez-io/adpulse/internal/analyzer"
	"github.com/ricardonunez-io/adpulse/internal/detector"
	"github.com/ricardonunez-io/adpulse/internal/ingestor"
	"github.com/ricardonunez-io/adpulse/internal/metrics"
	"github.com/ricardonunez-io/adpulse/internal/schema"
	slackpkg "github.com/ricardonunez-io/adpulse/internal/slack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}
	log.Info().Msg("Starting adpulse")

	currentPath := os.Getenv("CURRENT_CSV")
	previousPath := os.Getenv("PREVIOUS_CSV")
	if len(os.Args) == 3 {
		currentPath, previousPath = os.Args[1], os.Args[2]
	}
	if currentPath == "" || previousPath == "" {
		log.Fatal().Msg("CURRENT_CSV and PREVIOUS_CSV are required (or pass both files as arguments)")
	}

	detectorConfig := detector.DefaultConfig()
	detectorConfig.CPAThreshold = thresholdFromEnv("CPA_THRESHOLD")
	detectorConfig.CTRThreshold = thresholdFromEnv("CTR_THRESHOLD")
	detectorConfig.KeyColumns = envList("KEY_COLUMNS")
	detectorConfig.CampaignFilter = os.Getenv("CAMPAIGN_FILTER")
	detectorConfig.SuppressMovers = envBool("SUPPRESS_MOVERS", false)

	groupBy := os.Getenv("GROUP_BY")
	if !detector.ValidGroupingLevels.Includes(groupBy) {
		if groupBy != "" {
			log.Warn().Str("value", groupBy).Msg("Invalid GROUP_BY, defaulting to AD_GROUP")
		}
		groupBy = string(detector.AD_GROUP)
	}
	detectorConfig.GroupBy, _ = detector.ValidGroupingLevels.Parse(groupBy)

	targetCPA := envFloat("TARGET_CPA", 0)
	targetCTR := envFloat("TARGET_CTR", 0)
	customContext := os.Getenv("CUSTOM_CONTEXT")

	analyzerConfig := analyzer.DefaultConfig(os.Getenv("ANTHROPIC_API_KEY"))
	if model := os.Getenv("ANTHROPIC_MODEL"); model != "" {
		analyzerConfig.Model = model
	}
	analyzerConfig.Timeout = envDuration("SUMMARY_TIMEOUT", analyzerConfig.Timeout)
	analyzerConfig.MaxRetries = envInt("SUMMARY_MAX_RETRIES", analyzerConfig.MaxRetries)

	slackConfig := slackpkg.Config{
		BotToken:  os.Getenv("SLACK_BOT_TOKEN"),
		ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
	}
	metricsConfig := metrics.Config{
		APIKey: os.Getenv("DD_API_KEY"),
		Site:   os.Getenv("DD_SITE"),
		Tags:   envList("DD_TAGS"),
	}

	log.Info().
		Str("groupBy", string(detectorConfig.GroupBy)).
		Strs("keyColumns", detectorConfig.KeyColumns).
		Float64("cpaThreshold", detectorConfig.CPAThreshold).
		Float64("ctrThreshold", detectorConfig.CTRThreshold).
		Str("campaignFilter", detectorConfig.CampaignFilter).
		Bool("suppressMovers", detectorConfig.SuppressMovers).
		Bool("slack", slackConfig.Enabled()).
		Bool("datadog", metricsConfig.Enabled()).
		Msg("Configuration loaded")

	ingestorConfig := ingestor.DefaultConfig()
	ingestorConfig.MaxRows = envInt("MAX_ROWS", 0)

	current, err := ingestor.LoadFile(currentPath, ingestorConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load current period")
	}
	previous, err := ingestor.LoadFile(previousPath, ingestorConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load previous period")
	}

	result, err := detector.Compare(current, previous, detectorConfig)
	if err != nil {
		var mce *schema.MissingColumnError
		if errors.As(err, &mce) {
			log.Fatal().Str("dataset", mce.Dataset).Strs("columns", mce.Columns).Msg("Required columns are missing")
		}
		log.Fatal().Err(err).Msg("Comparison failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	var summaries <-chan analyzer.Outcome
	switch {
	case len(result.Alerts) == 0:
		log.Info().Msg("No statistically significant or unexpected changes detected, skipping summary")
	case analyzerConfig.APIKey == "":
		log.Warn().Msg("ANTHROPIC_API_KEY not set, skipping summary")
	default:
		prompt := analyzer.BuildPrompt(analyzer.PromptInput{
			TargetCPA:    targetCPA,
			TargetCTR:    targetCTR,
			CPAThreshold: detectorConfig.CPAThreshold,
			CTRThreshold: detectorConfig.CTRThreshold,
			Context:      customContext,
			Result:       result,
		})
		summaries = analyzer.SummarizeAsync(ctx, prompt, analyzerConfig)
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	if err := out.Encode(map[string]any{"comparison": result}); err != nil {
		log.Err(err).Msg("Failed to write comparison")
	}

	report := slackpkg.Report{Result: result, GeneratedAt: time.Now()}
	if summaries != nil {
		outcome := <-summaries
		if outcome.Err != nil {
			log.Err(outcome.Err).Msg("Summary failed, comparison results are unaffected")
			report.SummaryError = outcome.Err.Error()
		} else {
			report.Suggestions = outcome.Suggestions
			if err := out.Encode(map[string]any{"suggestions": outcome.Suggestions}); err != nil {
				log.Err(err).Msg("Failed to write suggestions")
			}
		}
	}

	deliver(ctx, report, slackConfig, metricsConfig)

	log.Info().Msg("adpulse finished")
}

func thresholdFromEnv(key string) float64 {
	v := float64(envInt(key, detector.DefaultThreshold))
	if v < detector.MinThreshold || v > detector.MaxThreshold {
		log.Warn().Str("key", key).Float64("value", v).Msg("Threshold outside the usual 5-100 range")
	}
	return v
}

func deliver(ctx context.Context, report slackpkg.Report, slackCfg slackpkg.Config, metricsCfg metrics.Config) {
	if slackCfg.Enabled() {
		if err := slackpkg.SendReport(report, slackCfg); err != nil {
			log.Err(err).Msg("Slack delivery failed")
		}
	}

	if metricsCfg.Enabled() {
		if err := metrics.Submit(ctx, report.Result.Stats, metricsCfg); err != nil {
			log.Err(err).Msg("Datadog submission failed")
		}
	}
}
