package detector

import (
	"github.com/ricardonunez-io/adpulse/internal/ingestor"
	"github.com/ricardonunez-io/adpulse/internal/schema"
	"github.com/rs/zerolog/log"
)

type Stats struct {
	CurrentRows  int `json:"currentRows"`
	PreviousRows int `json:"previousRows"`
	Paired       int `json:"paired"`
	Suppressed   int `json:"suppressed"`
	Alerts       int `json:"alerts"`
	Movers       int `json:"movers"`
	Skipped      int `json:"skipped"`
}

type Result struct {
	KeyColumns []string       `json:"keyColumns"`
	Alerts     []AlertRecord  `json:"alerts"`
	Movers     []MoverRecord  `json:"movers"`
	Keywords   KeywordInsight `json:"keywords"`
	Skipped    []SkippedRow   `json:"skipped"`
	Stats      Stats          `json:"stats"`
}

// Compare runs the full comparison of current against previous. Missing
// required columns fail the run before any row is evaluated; rows with
// unusable metric values are left out and listed once each in Result.Skipped,
// however many pairs or stages they took part in.
func Compare(current, previous ingestor.Table, cfg Config) (Result, error) {
	keys := cfg.keyColumns()

	required := append([]string{}, keys...)
	required = append(required, MetricColumns...)
	if cfg.CampaignFilter != "" && !contains(required, ColumnCampaign) {
		required = append(required, ColumnCampaign)
	}
	for _, t := range []ingestor.Table{current, previous} {
		if err := schema.Require(schema.Discover(t), required, MetricColumns); err != nil {
			return Result{}, err
		}
	}

	if cfg.CampaignFilter != "" {
		inCampaign := func(r ingestor.Row) bool { return r.Get(ColumnCampaign) == cfg.CampaignFilter }
		current = current.Filter(inCampaign)
		previous = previous.Filter(inCampaign)
		log.Info().
			Str("campaign", cfg.CampaignFilter).
			Int("currentRows", len(current.Rows)).
			Int("previousRows", len(previous.Rows)).
			Msg("Applied campaign filter")
	}

	pairs, err := Align(current, previous, keys)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		KeyColumns: keys,
		Alerts:     []AlertRecord{},
		Skipped:    []SkippedRow{},
		Stats: Stats{
			CurrentRows:  len(current.Rows),
			PreviousRows: len(previous.Rows),
			Paired:       len(pairs),
		},
	}

	seen := make(map[skipKey]bool)
	skipRow := func(s SkippedRow) {
		k := skipKey{dataset: s.Dataset, line: s.Line}
		if seen[k] {
			return
		}
		seen[k] = true
		result.Skipped = append(result.Skipped, s)
	}

	rules := cfg.rules()
	var movers []MoverRecord
	for _, p := range pairs {
		cur, skip := parseMetrics(current.Name, p.Key, p.Current)
		if skip != nil {
			skipRow(*skip)
			continue
		}
		prev, skip := parseMetrics(previous.Name, p.Key, p.Previous)
		if skip != nil {
			skipRow(*skip)
			continue
		}

		d := Deltas(cur, prev)
		c := Classify(d, rules)
		if c.Suppressed {
			result.Stats.Suppressed++
			log.Debug().
				Str("key", p.Key).
				Float64("cpaChange", d.CPAChange).
				Float64("ctrChange", d.CTRChange).
				Float64("spendChange", d.SpendChange).
				Msg("Change explained by spend, not alerting")
		}

		if c.Alert {
			result.Alerts = append(result.Alerts, AlertRecord{
				Key:         p.Key,
				Campaign:    cur.Campaign,
				CPAChange:   round2(d.CPAChange),
				CTRChange:   round2(d.CTRChange),
				SpendChange: round2(d.SpendChange),
			})
		}
		if c.Mover {
			movers = append(movers, MoverRecord{
				Key:       p.Key,
				CPAChange: round2(d.CPAChange),
				CTRChange: round2(d.CTRChange),
			})
		}
	}

	topMovers := cfg.TopMovers
	if topMovers <= 0 {
		topMovers = DefaultTopMovers
	}
	result.Movers = RankMovers(movers, topMovers)

	keywords, skipped := ExtractKeywords(current)
	result.Keywords = keywords
	for _, s := range skipped {
		skipRow(s)
	}

	result.Stats.Alerts = len(result.Alerts)
	result.Stats.Movers = len(movers)
	result.Stats.Skipped = len(result.Skipped)

	for _, s := range result.Skipped {
		log.Debug().
			Str("dataset", s.Dataset).
			Int("line", s.Line).
			Str("column", s.Column).
			Str("reason", s.Reason).
			Msg("Skipped row")
	}

	log.Info().
		Strs("keyColumns", keys).
		Int("paired", result.Stats.Paired).
		Int("suppressed", result.Stats.Suppressed).
		Int("alerts", result.Stats.Alerts).
		Int("movers", result.Stats.Movers).
		Int("skipped", result.Stats.Skipped).
		Msg("Comparison completed")

	return result, nil
}

type skipKey struct {
	dataset string
	line    int
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
