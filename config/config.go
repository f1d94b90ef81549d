package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/BurntSushi/toml"
)

type LoaderType = string

var (
	RSS  = LoaderType("rss")
	File = LoaderType("file")
)

const baseCfgPath = "newslist/config.toml"

const (
	DefaultContainerID   = "home-news-list"
	DefaultFeedAttr      = "data-blog-rss-feed"
	DefaultSnippetLength = 120
	DefaultEntriesLimit  = 4
)

type Config struct {
	Title         string     `toml:"title"`
	BlogRSSFeed   string     `toml:"blog_rss_feed"` // Latest news block is rendered only when set
	ContainerID   string     `toml:"container_id"`
	FeedAttr      string     `toml:"feed_attr"`
	Loader        LoaderType `toml:"loader"`
	SnippetLength int        `toml:"snippet_length"` // Maximum snippet length in runes
	EntriesLimit  int        `toml:"entries_limit"`  // Entries kept per feed, 0 keeps all
	UserAgent     string     `toml:"user_agent"`
	Listen        string     `toml:"listen"`
}

// Validate checks that the fields required to render a page are usable
func (c Config) Validate() error {
	if c.ContainerID == "" {
		return fmt.Errorf("container_id must not be empty")
	}
	if c.FeedAttr == "" {
		return fmt.Errorf("feed_attr must not be empty")
	}
	if c.SnippetLength <= 0 {
		return fmt.Errorf("snippet_length must be positive, got %d", c.SnippetLength)
	}
	if c.EntriesLimit < 0 {
		return fmt.Errorf("entries_limit must not be negative, got %d", c.EntriesLimit)
	}
	switch c.Loader {
	case RSS, File:
	default:
		return fmt.Errorf("unknown loader type: %s", c.Loader)
	}
	return nil
}

func Read(path string) (Config, error) {
	conf := Default()
	dat, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	_, err = toml.Decode(string(dat), &conf)
	if err != nil {
		return conf, fmt.Errorf("failed to decode config at %s with %w", path, err)
	}
	return conf, nil
}

func Write(cfgPath string, cfg Config) error {
	blob, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config with %w", err)
	}
	basePath := path.Dir(cfgPath)
	err = os.MkdirAll(basePath, os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create base config directory at '%s' with %w", basePath, err)
	}
	err = os.WriteFile(cfgPath, blob, 0644)
	if err != nil {
		return fmt.Errorf("failed to write into config file at '%s' with %w", cfgPath, err)
	}
	slog.Info("config written", "at", cfgPath)
	return nil
}

func Default() Config {
	return Config{
		Title:         "Home",
		ContainerID:   DefaultContainerID,
		FeedAttr:      DefaultFeedAttr,
		Loader:        RSS,
		SnippetLength: DefaultSnippetLength,
		EntriesLimit:  DefaultEntriesLimit,
		UserAgent:     "newslist/1.0",
		Listen:        ":8080",
	}
}

func DefaultPath() string {
	var xdgHome = os.Getenv("XDG_CONFIG_HOME")
	if xdgHome != "" {
		return path.Join(xdgHome, baseCfgPath)
	}

	var home = os.Getenv("HOME")
	if home != "" {
		return path.Join(home, ".config", baseCfgPath)
	}

	panic("unclear where to search for the config file")
}
