package words

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/robalobadob/wordle-term/assets"
)

const (
	// SourceEmbedded selects the list compiled into the binary.
	SourceEmbedded = "embedded"

	// DefaultSource is the TWL06 tournament list.
	DefaultSource = "https://www.wordgamedictionary.com/twl06/download/twl06.txt"

	maxDownload = 8 << 20
)

// ErrDictionaryUnavailable means no playable dictionary could be produced:
// the source could not be read, or it held no 5-letter words.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// Load reads source and builds a Dictionary from it.
//
// source is one of:
//   - "" or "embedded": the built-in list;
//   - an http:// or https:// URL, fetched with client (http.DefaultClient if nil);
//   - anything else: a local file path.
//
// Every failure wraps ErrDictionaryUnavailable.
func Load(ctx context.Context, source string, client *http.Client) (*Dictionary, error) {
	var (
		d   *Dictionary
		err error
	)
	switch {
	case source == "" || source == SourceEmbedded:
		d, err = loadEmbedded()
	case IsURL(source):
		d, err = loadURL(ctx, source, client)
	default:
		d, err = loadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDictionaryUnavailable, Describe(source), err)
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("%w: %s: no five-letter words", ErrDictionaryUnavailable, Describe(source))
	}
	return d, nil
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Describe names a source for messages and logs.
func Describe(source string) string {
	if source == "" {
		return SourceEmbedded
	}
	return source
}

func loadEmbedded() (*Dictionary, error) {
	return FromLines(assets.WordList()), nil
}

func loadFile(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(b)), nil
}

func loadURL(ctx context.Context, url string, client *http.Client) (*Dictionary, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxDownload))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return Parse(string(b)), nil
}
