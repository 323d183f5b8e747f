package detector

const (
	DefaultThreshold = 15
	DefaultTopMovers = 5
	// MinThreshold and MaxThreshold bound the conventional threshold range.
	// Values outside it are accepted.
	MinThreshold = 5
	MaxThreshold = 100
)

type Config struct {
	GroupBy GroupingLevel
	// KeyColumns overrides GroupBy with an explicit, possibly composite, join key.
	KeyColumns     []string
	CPAThreshold   float64
	CTRThreshold   float64
	CampaignFilter string
	// SuppressMovers drops spend-explained rows from the movers as well as the alerts.
	SuppressMovers bool
	TopMovers      int
}

func DefaultConfig() Config {
	return Config{
		GroupBy:      AD_GROUP,
		CPAThreshold: DefaultThreshold,
		CTRThreshold: DefaultThreshold,
		TopMovers:    DefaultTopMovers,
	}
}

func (c Config) keyColumns() []string {
	if len(c.KeyColumns) > 0 {
		return c.KeyColumns
	}
	return c.GroupBy.KeyColumns()
}

func (c Config) rules() Rules {
	return Rules{
		CPAThreshold:   c.CPAThreshold,
		CTRThreshold:   c.CTRThreshold,
		SuppressMovers: c.SuppressMovers,
	}
}
