package detector

import "strings"

type GroupingLevel string
type groupingOptions []GroupingLevel

func (option GroupingLevel) Match(input string) bool {
	return strings.ToUpper(strings.TrimSpace(input)) == string(option)
}

func (options groupingOptions) Includes(input string) bool {
	for _, o := range options {
		if o.Match(input) {
			return true
		}
	}
	return false
}

// Parse returns the level matching input.
func (options groupingOptions) Parse(input string) (GroupingLevel, bool) {
	for _, o := range options {
		if o.Match(input) {
			return o, true
		}
	}
	return "", false
}

const (
	AD_GROUP GroupingLevel = "AD_GROUP"
	CAMPAIGN GroupingLevel = "CAMPAIGN"
)

var ValidGroupingLevels groupingOptions = groupingOptions{
	AD_GROUP, // rows are aligned on the Ad Group column
	CAMPAIGN, // rows are aligned on the Campaign column
}

func (option GroupingLevel) KeyColumns() []string {
	if option == CAMPAIGN {
		return []string{ColumnCampaign}
	}
	return []string{ColumnAdGroup}
}
