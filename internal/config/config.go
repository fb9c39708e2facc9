package config

import "time"

// Config is the root application configuration.
type Config struct {
	Tracker TrackerConfig `yaml:"tracker"`
	Run     RunConfig     `yaml:"run"`
	Log     LogConfig     `yaml:"log"`
}

// TrackerConfig holds the remote issue tracker connection settings.
// Token is the only required value; the remaining fields default to the
// repository this backlog belongs to.
type TrackerConfig struct {
	APIBaseURL string `yaml:"api_base_url" env:"TRACKER_API_BASE_URL" env-default:"https://api.github.com"`
	Owner      string `yaml:"owner"        env:"TRACKER_OWNER"        env-default:"nikola-golijanin"`
	Repo       string `yaml:"repo"         env:"TRACKER_REPO"        env-default:"evently"`
	Token      string `yaml:"token"        env:"TRACKER_TOKEN"       env-required:"true"`
}

// RunConfig holds settings for a single seeding run.
type RunConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"RUN_TIMEOUT" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
