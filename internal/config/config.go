package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"go.uber.org/zap/zapcore"
	"net/url"
	"os"
	"time"
)

type JsonUrl struct {
	*url.URL
}

func (j *JsonUrl) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	configUrl, err := url.Parse(s)
	j.URL = configUrl
	return err
}

func (j *JsonUrl) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.URL.String())
}

type JsonDuration struct {
	time.Duration
}

func (j *JsonDuration) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	var duration time.Duration
	duration, err = time.ParseDuration(s)
	if err != nil {
		return err
	}
	j.Duration = duration
	return err
}

type Configuration struct {
	Logging struct {
		MaxSize         int
		MaxBackups      int
		MaxAge          int
		Level           zapcore.Level
		ConsoleLogLevel zapcore.Level
		File            string
		HttpAccessFile  string
		DbLogFile       string
		LogAlerts       bool
	}
	ListeningPort    string
	ListeningAddress string
	ServerURL        *JsonUrl
	Database         struct {
		Host            string
		Port            uint
		Username        string
		Password        string
		DatabaseName    string
		MaxIdleConns    int
		MaxOpenConns    int
		ConnMaxLifetime *JsonDuration
	}
	Notes struct {
		DocumentMaxLength int
		AllowAnonymous    bool
		AllowFreeURL      bool
		ForbiddenNoteIDs  []string
		// Malformed note tokens historically surfaced as 500. Flipping this
		// reports them as 400 instead, changing client-visible status codes.
		DecodeErrorsAsBadRequest bool
	}
	Session struct {
		SigningKey string
		CookieName string
		Lifetime   *JsonDuration
	}
	GitHub struct {
		ClientID     string
		ClientSecret string
	}
	GitLab struct {
		BaseURL *JsonUrl
		Version string
	}
}

var config *Configuration

func InitConfig() *Configuration {
	configFile := flag.String("config", "config.json", "Path to config file (json)")
	flag.Parse()
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "\nUsage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		_, _ = fmt.Fprint(os.Stderr, "\n")
	}

	file, _ := os.Open(*configFile)
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		flag.Usage()
		panic("Error parsing config file: " + err.Error())
	}

	//defaults
	if config.Logging.MaxSize <= 0 {
		config.Logging.MaxSize = 500
	}
	if config.Logging.MaxBackups <= 0 {
		config.Logging.MaxBackups = 3
	}
	if config.Logging.MaxAge <= 0 {
		config.Logging.MaxAge = 28
	}
	if config.Database.ConnMaxLifetime == nil {
		config.Database.ConnMaxLifetime = &JsonDuration{Duration: time.Hour}
	}
	if config.Notes.DocumentMaxLength <= 0 {
		config.Notes.DocumentMaxLength = 100000
	}
	if config.Session.CookieName == "" {
		config.Session.CookieName = "notehub_session"
	}
	if config.Session.Lifetime == nil {
		config.Session.Lifetime = &JsonDuration{Duration: 12 * time.Hour}
	}
	if config.GitLab.Version == "" {
		config.GitLab.Version = "v4"
	}

	return config
}

func Config() *Configuration {
	return config
}

func Port() string {
	return config.ListeningPort
}

func Address() string {
	return config.ListeningAddress
}

// ServerBase returns the public base URL used when building redirects.
func (c *Configuration) ServerBase() string {
	if c.ServerURL == nil || c.ServerURL.URL == nil {
		return ""
	}
	s := c.ServerURL.String()
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
