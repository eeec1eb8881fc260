// Package speech pronounces vocabulary words through a text-to-speech service.
package speech

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/examprep/internal/config"
)

//go:generate mockgen -source=speech.go -destination=../mocks/speech/mock_speech.go -package=mock_speech

// Speaker pronounces text.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

const (
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxRetryAttempts = 2
)

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// TTSClient downloads MP3 pronunciations, caches them on disk and plays them
// with an external player command.
type TTSClient struct {
	httpClient       *resty.Client
	baseURL          string
	language         string
	cacheDirectory   string
	player           []string
	maxRetryAttempts uint
	retryDelay       time.Duration
	runPlayer        func(ctx context.Context, name string, args ...string) error
}

func NewTTSClient(cfg config.SpeechConfig) *TTSClient {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	if cfg.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	return &TTSClient{
		httpClient:       client,
		baseURL:          cfg.BaseURL,
		language:         cfg.Language,
		cacheDirectory:   cfg.CacheDirectory,
		player:           cfg.Player,
		maxRetryAttempts: maxRetryAttempts,
		retryDelay:       200 * time.Millisecond,
		runPlayer: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (client *TTSClient) Close() error {
	return client.httpClient.Close()
}

// Speak plays the pronunciation of text, downloading it first when it is not cached.
func (client *TTSClient) Speak(ctx context.Context, text string) error {
	path, err := client.Fetch(ctx, text)
	if err != nil {
		return err
	}
	if len(client.player) == 0 {
		return errors.New("no audio player is configured")
	}
	args := append(append([]string(nil), client.player[1:]...), path)
	if err := client.runPlayer(ctx, client.player[0], args...); err != nil {
		return fmt.Errorf("%s > %w", client.player[0], err)
	}
	return nil
}

// Fetch returns the path of the cached MP3 for text.
func (client *TTSClient) Fetch(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("nothing to pronounce")
	}
	path := filepath.Join(client.cacheDirectory, cacheFileName(client.language, text))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	var audio []byte
	if err := retry.Do(
		func() error {
			body, err := client.download(ctx, text)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			audio = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}

	if err := os.MkdirAll(client.cacheDirectory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", client.cacheDirectory, err)
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// statusError is a non-2xx response from the speech service.
type statusError struct {
	statusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("response error %d", e.statusCode)
}

func isRetryableError(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.statusCode >= http.StatusInternalServerError || se.statusCode == http.StatusTooManyRequests
	}
	return err != nil
}

func (client *TTSClient) download(ctx context.Context, text string) ([]byte, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":      "UTF-8",
			"q":       text,
			"tl":      client.language,
			"client":  "tw-ob",
			"textlen": fmt.Sprintf("%d", len(text)),
		}).
		Get(client.baseURL)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &statusError{statusCode: response.StatusCode()}
	}
	body := response.Bytes()
	if len(body) == 0 {
		return nil, errors.New("empty audio response")
	}
	return body, nil
}

// cacheFileName is "<language>_<slug>_<hash>.mp3". The hash covers the raw
// text, so texts sharing a slug such as "don't" and "don t" get their own file.
func cacheFileName(language, text string) string {
	sum := sha256.Sum256([]byte(text))
	hash := fmt.Sprintf("%x", sum[:4])
	name := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(text), "_"), "_")
	if name == "" {
		return fmt.Sprintf("%s_%s.mp3", language, hash)
	}
	return fmt.Sprintf("%s_%s_%s.mp3", language, name, hash)
}

// SpeakAsync pronounces text on its own goroutine. Failures are only logged.
// The returned channel is closed when speaking has finished.
func SpeakAsync(ctx context.Context, speaker Speaker, text string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := speaker.Speak(ctx, text); err != nil {
			slog.Default().Warn("failed to pronounce", "text", text, "error", err)
		}
	}()
	return done
}

// NopSpeaker is used when speech is disabled.
type NopSpeaker struct{}

func (NopSpeaker) Speak(ctx context.Context, text string) error {
	return errors.New("speech is disabled; set speech.enabled in the configuration")
}

// NewSpeaker returns a TTSClient when speech is enabled, otherwise a NopSpeaker.
func NewSpeaker(cfg config.SpeechConfig) Speaker {
	if !cfg.Enabled {
		return NopSpeaker{}
	}
	return NewTTSClient(cfg)
}
