package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// CatalogConfig contains settings for catalog queries and reports.
type CatalogConfig struct {
	// FrequentContributorThreshold is the contribution count a writer must
	// exceed to be reported as a frequent contributor.
	FrequentContributorThreshold int  `mapstructure:"frequent_contributor_threshold" validate:"gte=0"`
	SampleReport                 bool `mapstructure:"sample_report"`
}
