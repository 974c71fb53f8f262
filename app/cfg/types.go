package cfg

type Cfg struct {
	// Aggregation configuration
	StaleDays    int
	PerFeedLimit int
	TotalLimit   int
	FetchTimeout int
	WorkerCount  int

	// Input / output locations
	FeedsFile string
	OutputDir string

	// Server configuration
	Serve    bool
	Port     string
	Schedule string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
