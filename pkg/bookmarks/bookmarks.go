// Package bookmarks holds the start page's link groups and renders them.
package bookmarks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/entrhq/startpage/pkg/logging"
)

// Link is a single bookmark.
type Link struct {
	Name string
	URL  string
}

// Set is a titled group of links.
type Set struct {
	Title string
	Links []Link
}

// Default is the bookmark list shown on the start page. The layout reads
// best with up to four sets.
var Default = []Set{
	{
		Title: "News",
		Links: []Link{
			{Name: "BBC News", URL: "https://bbc.com/news"},
			{Name: "CNN", URL: "https://cnn.com"},
			{Name: "Reuters", URL: "https://reuters.com"},
		},
	},
	{
		Title: "Tools",
		Links: []Link{
			{Name: "Gmail", URL: "https://gmail.com"},
			{Name: "Google Drive", URL: "https://drive.google.com"},
			{Name: "Dropbox", URL: "https://dropbox.com"},
		},
	},
}

// Styles controls how Render draws sets.
type Styles struct {
	Set   lipgloss.Style
	Title lipgloss.Style
	Link  lipgloss.Style
}

// Validate reports why sets cannot be rendered.
func Validate(sets []Set) error {
	if len(sets) == 0 {
		return errors.New("bookmark list is empty")
	}
	for i, set := range sets {
		if set.Title == "" {
			return fmt.Errorf("bookmark set %d has no title", i)
		}
		if set.Links == nil {
			return fmt.Errorf("bookmark set %q has no link list", set.Title)
		}
		for _, link := range set.Links {
			if link.URL == "" {
				return fmt.Errorf("bookmark %q in %q has no URL", link.Name, set.Title)
			}
		}
	}
	return nil
}

// Blocks renders one block per set: the title followed by its links in
// order, each link an OSC 8 hyperlink so terminals open it in the browser.
// Malformed input is logged and yields no blocks.
func Blocks(sets []Set, styles Styles, logger *logging.Logger) []string {
	if err := Validate(sets); err != nil {
		logger.Warnf("not rendering bookmarks: %v", err)
		return nil
	}

	blocks := make([]string, 0, len(sets))
	for _, set := range sets {
		lines := make([]string, 0, len(set.Links)+1)
		lines = append(lines, styles.Title.Render(set.Title))
		for _, link := range set.Links {
			lines = append(lines, termenv.Hyperlink(link.URL, styles.Link.Render(link.Name)))
		}
		blocks = append(blocks, styles.Set.Render(strings.Join(lines, "\n")))
	}
	return blocks
}

// Render lays the set blocks out side by side.
func Render(sets []Set, styles Styles, logger *logging.Logger) string {
	blocks := Blocks(sets, styles, logger)
	if len(blocks) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
