package fetcher

import (
	"fmt"

	"github.com/scipunch/newslist/config"
	"github.com/scipunch/newslist/fetcher/types"
)

// GetLoader creates the feed loader configured for the given type
func GetLoader(conf config.Config) (types.Loader, error) {
	switch conf.Loader {
	case config.RSS:
		return NewRSSLoader(conf.UserAgent, conf.SnippetLength, conf.EntriesLimit), nil
	case config.File:
		return NewFileLoader(conf.SnippetLength, conf.EntriesLimit), nil
	default:
		return nil, fmt.Errorf("unknown loader type: %s", conf.Loader)
	}
}
