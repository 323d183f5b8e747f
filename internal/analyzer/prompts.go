package analyzer

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ricardonunez-io/adpulse/internal/detector"
)

const systemPrompt = `You are a digital ad performance analyst reviewing two periods of Google Ads data.

You receive:
- The advertiser's target CPA and CTR
- The alert thresholds used to flag changes
- A table of flagged performance changes per ad group or campaign, with CPA, CTR and spend change in percent
- Optionally the largest CPA movers, a keyword performance summary and notes from the advertiser

Changes that simply track a change in spend have already been removed from the table.

Your job is to:
1. Summarize what may have caused these performance changes
2. List the most likely causes, most plausible first
3. Suggest practical optimization ideas tied to specific ad groups, campaigns or keywords

Guidelines:
- Avoid commenting on expected changes caused by spend fluctuations
- Compare performance against the targets when they are set
- Be specific and concise`

type PromptInput struct {
	TargetCPA    float64
	TargetCTR    float64
	CPAThreshold float64
	CTRThreshold float64
	Context      string
	Result       detector.Result
}

// BuildPrompt renders the user message for one comparison run.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user's target CPA is $%.2f and CTR is %.2f%%.\n", in.TargetCPA, in.TargetCTR)
	fmt.Fprintf(&b, "Changes were flagged at %.0f%% CPA change or %.0f%% CTR change.\n\n", in.CPAThreshold, in.CTRThreshold)

	b.WriteString("These are flagged performance changes:\n\n")
	writeAlerts(&b, in.Result)

	if len(in.Result.Movers) > 0 {
		b.WriteString("\nLargest CPA movers:\n\n")
		writeMovers(&b, in.Result.Movers)
	}

	if kw := in.Result.Keywords.Text(); kw != "" {
		fmt.Fprintf(&b, "\nKeyword performance summary:\n%s\n", kw)
		for _, th := range in.Result.Keywords.Themes {
			fmt.Fprintf(&b, "Theme %q: %d keywords, %.0f conversions\n", th.Template, th.Count, th.Conversions)
		}
	}

	if in.Result.Stats.Skipped > 0 {
		fmt.Fprintf(&b, "\n%d input rows were left out because of missing or non-numeric values.\n", in.Result.Stats.Skipped)
	}

	if ctx := strings.TrimSpace(in.Context); ctx != "" {
		fmt.Fprintf(&b, "\nAdditional context: %s\n", ctx)
	}

	return b.String()
}

func writeAlerts(b *strings.Builder, r detector.Result) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tCampaign\tCPA Change (%%)\tCTR Change (%%)\tSpend Change (%%)\n", strings.Join(r.KeyColumns, " / "))
	for _, a := range r.Alerts {
		campaign := a.Campaign
		if campaign == "" {
			campaign = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\n", a.Key, campaign, a.CPAChange, a.CTRChange, a.SpendChange)
	}
	w.Flush()
}

func writeMovers(b *strings.Builder, movers []detector.MoverRecord) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Key\tCPA Change (%)\tCTR Change (%)")
	for _, m := range movers {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", m.Key, m.CPAChange, m.CTRChange)
	}
	w.Flush()
}
