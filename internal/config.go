package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL,required=true"`
	SocketURL   string        `env:"SOCKET_URL,required=true"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=10s"`

	Email    string `env:"ACCOUNT_EMAIL,required=true"`
	Password string `env:"ACCOUNT_PASSWORD,required=true"`

	EventBufferSize  int           `env:"EVENT_BUFFER_SIZE,default=64"`
	NoticeBufferSize int           `env:"NOTICE_BUFFER_SIZE,default=16"`
	PollInterval     time.Duration `env:"NOTIFICATION_POLL_INTERVAL,default=30s"`
	PushToken        string        `env:"PUSH_TOKEN"`

	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`

	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	SnapshotInterval  time.Duration `env:"SNAPSHOT_INTERVAL,default=5m"`
	SearchLimit       int           `env:"SEARCH_LIMIT,default=20"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=1m"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// SplitWords turns the comma-separated CENSORED_WORDS value into a
// clean word list. An empty value disables masking entirely.
func SplitWords(str string) []string {
	var words []string
	for _, w := range strings.Split(str, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
