package ingestor

type Config struct {
	// Delimiter separates fields; zero means ','.
	Delimiter rune
	// MaxRows caps the rows read per file; zero means unlimited.
	MaxRows int
}

func DefaultConfig() Config {
	return Config{
		Delimiter: ',',
	}
}
