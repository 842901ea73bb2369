package store

import (
	"errors"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Defaults applied when neither a .huddle file nor HUDDLE_* env set a key.
const (
	DefaultPath       = "~/.huddle.db"
	DefaultMeetingURL = "https://meet.jit.si/"
	DefaultLogLevel   = "warn"
)

// Config locates the store and carries the session-wide settings.
type Config interface {
	BasePath() string
	Backend() string
	MeetingURL() string
	LogLevel() string
}

// LoadConfig reads .huddle.yaml from $HUDDLE_CONFIG_PATH or the working
// directory, then HUDDLE_* environment variables. A missing config file is
// fine; a malformed one is not.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("meeting_url", DefaultMeetingURL)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetConfigName(".huddle") // .yaml is implicit
	v.SetEnvPrefix("HUDDLE")
	v.AutomaticEnv()

	if override := os.Getenv("HUDDLE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(strings.TrimSpace(v.GetString("path")))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:    path,
		Kind:    v.GetString("backend"),
		Meeting: v.GetString("meeting_url"),
		Level:   v.GetString("log_level"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Kind    string `json:"backend"`
	Meeting string `json:"meetingUrl"`
	Level   string `json:"logLevel"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.Kind
}

func (f *fileConfig) MeetingURL() string {
	return f.Meeting
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}
