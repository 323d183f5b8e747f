package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"github.com/ricardonunez-io/adpulse/internal/detector"
	"github.com/rs/zerolog/log"
)

const metricPrefix = "adpulse.comparison."

type Config struct {
	APIKey string
	// Site selects the Datadog region, e.g. datadoghq.eu; empty keeps the default.
	Site string
	Tags []string
}

func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// Submit sends one gauge per run counter to Datadog.
func Submit(ctx context.Context, stats detector.Stats, cfg Config) error {
	ctx = context.WithValue(ctx, datadog.ContextAPIKeys, map[string]datadog.APIKey{
		"apiKeyAuth": {Key: cfg.APIKey},
	})
	if cfg.Site != "" {
		ctx = context.WithValue(ctx, datadog.ContextServerVariables, map[string]string{
			"site": cfg.Site,
		})
	}

	client := datadog.NewAPIClient(datadog.NewConfiguration())
	api := datadogV2.NewMetricsApi(client)

	body := datadogV2.MetricPayload{Series: buildSeries(stats, cfg.Tags, time.Now())}
	_, _, err := api.SubmitMetrics(ctx, body, *datadogV2.NewSubmitMetricsOptionalParameters())
	if err != nil {
		return fmt.Errorf("failed to submit metrics: %w", err)
	}

	log.Info().Int("series", len(body.Series)).Msg("Submitted comparison metrics to Datadog")
	return nil
}

func buildSeries(stats detector.Stats, tags []string, now time.Time) []datadogV2.MetricSeries {
	values := []struct {
		name  string
		value int
	}{
		{"rows.current", stats.CurrentRows},
		{"rows.previous", stats.PreviousRows},
		{"rows.paired", stats.Paired},
		{"rows.suppressed", stats.Suppressed},
		{"rows.skipped", stats.Skipped},
		{"alerts", stats.Alerts},
		{"movers", stats.Movers},
	}

	series := make([]datadogV2.MetricSeries, len(values))
	for i, v := range values {
		series[i] = datadogV2.MetricSeries{
			Metric: metricPrefix + v.name,
			Type:   datadogV2.METRICINTAKETYPE_GAUGE.Ptr(),
			Points: []datadogV2.MetricPoint{
				{
					Timestamp: datadog.PtrInt64(now.Unix()),
					Value:     datadog.PtrFloat64(float64(v.value)),
				},
			},
			Tags: tags,
		}
	}
	return series
}
