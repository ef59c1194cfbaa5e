package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"swipedeck/internal/domain"
	"swipedeck/internal/eventbus"
)

// Configuration errors. The deck refuses to run when any of these is returned.
var (
	ErrNotFound    = errors.New("deck file not found")
	ErrNoPages     = errors.New("deck has no pages")
	ErrNoInterval  = errors.New("auto-advance enabled without a positive interval")
	ErrBadDuration = errors.New("transition duration must not be negative")
)

// DefaultFileName is the deck file looked up in the user config directory
const DefaultFileName = "deck.toml"

// Config represents a deck file
type Config struct {
	Version     int               `toml:"version"`
	Title       string            `toml:"title,omitempty"`
	AutoAdvance AutoAdvance       `toml:"auto_advance"`
	Transition  TransitionSetting `toml:"transition"`
	Pages       []PageConfig      `toml:"pages"`
}

// AutoAdvance configures the repeating forward timer
type AutoAdvance struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
}

// TransitionSetting configures page transitions and swipe detection
type TransitionSetting struct {
	Duration       Duration `toml:"duration"`
	SwipeThreshold int      `toml:"swipe_threshold,omitempty"`
}

// PageConfig is one page entry of the deck
type PageConfig struct {
	ID    string `toml:"id,omitempty"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Duration is a time.Duration written as a Go duration string ("5s", "250ms")
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	d.Duration = v
	return nil
}

// Validate reports configuration errors
func (c *Config) Validate() error {
	if len(c.Pages) == 0 {
		return ErrNoPages
	}
	if c.AutoAdvance.Enabled && c.AutoAdvance.Interval.Duration <= 0 {
		return ErrNoInterval
	}
	if c.Transition.Duration.Duration < 0 {
		return ErrBadDuration
	}
	return nil
}

// DomainPages converts the page entries, filling missing IDs from the position
func (c *Config) DomainPages() []domain.Page {
	pages := make([]domain.Page, 0, len(c.Pages))
	for i, p := range c.Pages {
		id := p.ID
		if id == "" {
			id = "page-" + strconv.Itoa(i+1)
		}
		pages = append(pages, domain.Page{ID: id, Title: p.Title, Body: p.Body})
	}
	return pages
}

// ConfigService handles deck file management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "swipedeck", DefaultFileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the default deck path
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the deck from the default path
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the deck to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads and validates a deck from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrap(ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read deck file")
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse deck file %s", path)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Pages: len(cfg.Pages)})
	}

	return &cfg, nil
}

// SaveToPath saves the deck to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create deck directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal deck")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write deck file")
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// DefaultConfig returns the sample deck written by `swipedeck init`
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "swipedeck",
		AutoAdvance: AutoAdvance{
			Enabled:  true,
			Interval: Duration{5 * time.Second},
		},
		Transition: TransitionSetting{
			Duration:       Duration{150 * time.Millisecond},
			SwipeThreshold: 4,
		},
		Pages: []PageConfig{
			{ID: "welcome", Title: "Welcome", Body: "Click the right half of the screen to go forward.\nClick the left half to go back."},
			{ID: "swipe", Title: "Swipe", Body: "Drag left or right to swipe between pages.\nArrow keys work too."},
			{ID: "auto", Title: "Auto-advance", Body: "Pages advance on their own every few seconds.\nAny manual navigation stops the timer. Press a to start it again."},
		},
	}
}
