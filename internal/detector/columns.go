package detector

const (
	ColumnAdGroup     = "Ad Group"
	ColumnCampaign    = "Campaign"
	ColumnCPA         = "CPA"
	ColumnCTR         = "CTR"
	ColumnCost        = "Cost"
	ColumnConversions = "Conversions"
	ColumnImpressions = "Impressions"
	ColumnKeyword     = "Keyword"
)

// MetricColumns must be present in both datasets besides the grouping key.
var MetricColumns = []string{
	ColumnCPA,
	ColumnCTR,
	ColumnCost,
	ColumnConversions,
	ColumnImpressions,
}
