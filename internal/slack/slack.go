package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/ricardonunez-io/adpulse/internal/analyzer"
	"github.com/ricardonunez-io/adpulse/internal/detector"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

const maxListedRows = 10

type Config struct {
	BotToken  string
	ChannelID string
	// APIURL overrides the Slack Web API base URL; it must end with a slash.
	APIURL string
}

func (c Config) Enabled() bool {
	return c.BotToken != "" && c.ChannelID != ""
}

// Report is everything one comparison run delivers. Suggestions is nil when
// the summary stage was skipped or failed; SummaryError then says why.
type Report struct {
	Result       detector.Result
	Suggestions  *analyzer.Suggestions
	SummaryError string
	GeneratedAt  time.Time
}

func SendReport(report Report, config Config) error {
	var opts []slack.Option
	if config.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(config.APIURL))
	}
	api := slack.New(config.BotToken, opts...)

	_, msgTimestamp, err := api.PostMessage(
		config.ChannelID,
		slack.MsgOptionBlocks(buildBlocks(report)...),
		slack.MsgOptionText(headline(report.Result), false),
	)
	if err != nil {
		log.Err(err).Str("channel", config.ChannelID).Msg("Failed to post Slack message")
		return err
	}

	log.Info().
		Str("channel", config.ChannelID).
		Str("timestamp", msgTimestamp).
		Msg("Report posted to Slack")
	return nil
}

func buildBlocks(report Report) []slack.Block {
	r := report.Result
	stats := r.Stats

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(
			"plain_text",
			fmt.Sprintf("%s %s", alertEmoji(stats.Alerts), headline(r)),
			false, false,
		)),
		slack.NewDividerBlock(),
		section(fmt.Sprintf("*Grouped by:* %s\n*Paired rows:* %d\n*Spend-explained:* %d\n*Skipped rows:* %d",
			strings.Join(r.KeyColumns, " / "), stats.Paired, stats.Suppressed, stats.Skipped)),
	}

	if len(r.Alerts) == 0 {
		blocks = append(blocks, section("No statistically significant or unexpected changes detected."))
	} else {
		lines := make([]string, 0, len(r.Alerts))
		for i, a := range r.Alerts {
			if i == maxListedRows {
				lines = append(lines, fmt.Sprintf("_…and %d more_", len(r.Alerts)-maxListedRows))
				break
			}
			label := fmt.Sprintf("*%s*", a.Key)
			if a.Campaign != "" {
				label = fmt.Sprintf("*%s* (%s)", a.Key, a.Campaign)
			}
			lines = append(lines, fmt.Sprintf("• %s: CPA %+.2f%%, CTR %+.2f%%, spend %+.2f%%",
				label, a.CPAChange, a.CTRChange, a.SpendChange))
		}
		blocks = append(blocks, section(fmt.Sprintf("*Alerts:*\n%s", strings.Join(lines, "\n"))))
	}

	if len(r.Movers) > 0 {
		lines := make([]string, len(r.Movers))
		for i, m := range r.Movers {
			lines[i] = fmt.Sprintf("%d. *%s*: CPA %+.2f%%, CTR %+.2f%%", i+1, m.Key, m.CPAChange, m.CTRChange)
		}
		blocks = append(blocks, section(fmt.Sprintf("*Top Movers:*\n%s", strings.Join(lines, "\n"))))
	}

	if !r.Keywords.Empty() {
		blocks = append(blocks, section(fmt.Sprintf("*Keywords:*\n```%s```", r.Keywords.Text())))
	}

	switch {
	case report.Suggestions != nil:
		blocks = append(blocks, section(fmt.Sprintf("*Summary:*\n%s", report.Suggestions.Summary)))
		if len(report.Suggestions.Recommendations) > 0 {
			points := make([]string, len(report.Suggestions.Recommendations))
			for i, p := range report.Suggestions.Recommendations {
				points[i] = fmt.Sprintf("• %s", p)
			}
			blocks = append(blocks, section(fmt.Sprintf("*Recommendations:*\n%s", strings.Join(points, "\n"))))
		}
	case report.SummaryError != "":
		blocks = append(blocks, section(fmt.Sprintf("_Summary unavailable: %s_", report.SummaryError)))
	}

	if !report.GeneratedAt.IsZero() {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("Generated at: %s", report.GeneratedAt.Format(time.RFC1123)),
				false, false),
		))
	}

	return blocks
}

func section(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil)
}

func headline(r detector.Result) string {
	switch r.Stats.Alerts {
	case 0:
		return "Campaign Comparison — no alerts"
	case 1:
		return "Campaign Comparison — 1 alert"
	default:
		return fmt.Sprintf("Campaign Comparison — %d alerts", r.Stats.Alerts)
	}
}

func alertEmoji(alerts int) string {
	switch {
	case alerts >= 10:
		return "🔴"
	case alerts >= 3:
		return "🟠"
	case alerts > 0:
		return "🟡"
	default:
		return "🟢"
	}
}
