// internal/messages/messages.go
//
// User-visible text for the console.
//
// Responsibilities:
//   - Load the embedded catalog for a language, falling back to English for missing keys.
//   - Optionally overlay a catalog file from disk (GAME_MESSAGES_FILE).
//   - Supply Text/Format lookups to the console renderer.
//
// Catalog format:
//   KEY="value" lines parsed with godotenv; values are fmt templates.
//
// Load order:
//   1. Embedded English catalog (always).
//   2. Embedded catalog for the requested language, if not English.
//   3. Override file, if a path is given.
//
// Replacement templates must keep the verbs of the text they replace
// (PLAYED needs its %s), otherwise Load fails.

package messages

import (
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/robalobadob/blockqueue/assets"
)

// DefaultLang is the language every other catalog falls back to.
const DefaultLang = "en"

// Catalog keys.
const (
	BannerRule      = "BANNER_RULE"
	BannerTitle     = "BANNER_TITLE"
	QueueLabel      = "QUEUE_LABEL"
	StackLabel      = "STACK_LABEL"
	Empty           = "EMPTY"
	MenuHeader      = "MENU_HEADER"
	MenuPlay        = "MENU_PLAY"
	MenuReserve     = "MENU_RESERVE"
	MenuUse         = "MENU_USE"
	MenuSwap        = "MENU_SWAP"
	MenuBatch       = "MENU_BATCH"
	MenuQuit        = "MENU_QUIT"
	Prompt          = "PROMPT"
	Played          = "PLAYED"
	Reserved        = "RESERVED"
	Used            = "USED"
	Swapped         = "SWAPPED"
	BatchSwapped    = "BATCH_SWAPPED"
	Goodbye         = "GOODBYE"
	Summary         = "SUMMARY"
	ErrPlayEmpty    = "ERR_PLAY_EMPTY"
	ErrReserveEmpty = "ERR_RESERVE_EMPTY"
	ErrStackFull    = "ERR_STACK_FULL"
	ErrStackEmpty   = "ERR_STACK_EMPTY"
	ErrSwapEmpty    = "ERR_SWAP_EMPTY"
	ErrBatch        = "ERR_BATCH"
	ErrInvalidInput = "ERR_INVALID_INPUT"
	ErrUnrecognized = "ERR_UNRECOGNIZED"
)

// Catalog is a resolved set of messages for one language.
type Catalog struct {
	lang  string
	texts map[string]string
}

// Load builds the catalog for lang, overlaying overridePath when non-empty.
func Load(lang, overridePath string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLang
	}
	if !Supported(lang) {
		return nil, errors.Errorf("messages: unsupported language %q", lang)
	}

	texts, err := readEmbedded(DefaultLang)
	if err != nil {
		return nil, err
	}
	if lang != DefaultLang {
		local, err := readEmbedded(lang)
		if err != nil {
			return nil, err
		}
		if err := merge(texts, local); err != nil {
			return nil, errors.Wrapf(err, "messages: %s catalog", lang)
		}
	}
	if overridePath != "" {
		extra, err := godotenv.Read(overridePath)
		if err != nil {
			return nil, errors.Wrapf(err, "messages: read %s", overridePath)
		}
		if err := merge(texts, extra); err != nil {
			return nil, errors.Wrapf(err, "messages: %s", overridePath)
		}
	}
	return &Catalog{lang: lang, texts: texts}, nil
}

// readEmbedded parses one embedded catalog.
func readEmbedded(lang string) (map[string]string, error) {
	f, err := assets.Catalog(lang)
	if err != nil {
		return nil, errors.Wrapf(err, "messages: open %s catalog", lang)
	}
	defer f.Close()
	m, err := godotenv.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "messages: parse %s catalog", lang)
	}
	return m, nil
}

// merge copies every non-empty value of src into dst. A value replacing an
// existing template must use the same formatting verbs in the same order.
func merge(dst, src map[string]string) error {
	for k, v := range src {
		if v == "" {
			continue
		}
		if old, ok := dst[k]; ok && !slices.Equal(verbs(old), verbs(v)) {
			return errors.Errorf("%s: want verbs %v, got %v", k, verbs(old), verbs(v))
		}
	}
	for k, v := range src {
		if v != "" {
			dst[k] = v
		}
	}
	return nil
}

// verbs lists the fmt verbs in s, ignoring "%%".
func verbs(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		j := i + 1
		for j < len(s) && strings.IndexByte("+-# 0123456789.", s[j]) >= 0 {
			j++
		}
		if j >= len(s) {
			break
		}
		if s[j] != '%' {
			out = append(out, "%"+string(s[j]))
		}
		i = j
	}
	return out
}

// Lang reports the language the catalog was loaded for.
func (c *Catalog) Lang() string { return c.lang }

// Text returns the message for key, or the key itself if unknown.
func (c *Catalog) Text(key string) string {
	if v, ok := c.texts[key]; ok {
		return v
	}
	return key
}

// Format applies args to the template stored under key.
func (c *Catalog) Format(key string, args ...any) string {
	return fmt.Sprintf(c.Text(key), args...)
}

// Languages lists the embedded catalogs.
func Languages() []string {
	names, _ := fs.Glob(assets.FS, "messages_*.env")
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.TrimSuffix(strings.TrimPrefix(n, "messages_"), ".env"))
	}
	sort.Strings(out)
	return out
}

// Supported reports whether an embedded catalog exists for lang.
func Supported(lang string) bool {
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// Exists reports whether path names a readable regular file.
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
