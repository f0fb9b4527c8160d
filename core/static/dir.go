package static

import (
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dmitrymomot/nohost/core/handler"
	"github.com/dmitrymomot/nohost/core/logger"
	"github.com/dmitrymomot/nohost/core/pages"
	"github.com/dmitrymomot/nohost/core/response"
	"github.com/dmitrymomot/nohost/core/storage"
)

// DateFormat is the layout of the "Last modified" column.
const DateFormat = "02-Jan-2006 15:04"

// Dir serves an index of the directory at ctx.Path(). Entries are sorted by
// name and link back into the server with "?<path>" queries.
func Dir[C handler.Context](store storage.Storage, opts ...Option) handler.HandlerFunc[C] {
	cfg := newConfig(opts)

	return func(ctx C) handler.Response {
		dir := storage.Clean(ctx.Path())

		entries, err := store.List(ctx, dir)
		if err != nil {
			cfg.logger.WarnContext(ctx, "unable to list directory",
				logger.Component("static"),
				logger.Path(dir),
				logger.Error(err),
			)
			return notFound(dir)
		}

		idx := pages.DirIndex{
			Path:   dir,
			Parent: "?" + path.Dir(dir),
			Rows:   make([]pages.DirRow, 0, len(entries)),
		}
		for _, e := range entries {
			if cfg.isHidden(e) {
				continue
			}
			idx.Rows = append(idx.Rows, dirRow(dir, e))
		}

		return response.Templ(pages.DirListing(idx))
	}
}

func (c *config) isHidden(e storage.Entry) bool {
	key := storage.Key(e.Path)
	for _, pattern := range c.hidden {
		if ok, _ := doublestar.Match(pattern, e.Name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, key); ok {
			return true
		}
	}
	return false
}

func dirRow(dir string, e storage.Entry) pages.DirRow {
	row := pages.DirRow{
		Href:     "?" + path.Join(dir, e.Name),
		Name:     e.Name,
		Modified: formatDate(e),
		Size:     formatSize(e.Size),
	}

	switch {
	case e.IsDir:
		row.Icon, row.Alt = "icons/folder.png", "[DIR]"
	case isListedImage(e.Name):
		row.Icon, row.Alt = "icons/image2.png", "[IMG]"
	default:
		row.Icon, row.Alt = "icons/text.png", "[TXT]"
	}
	return row
}

func isListedImage(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".gif", ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

func formatDate(e storage.Entry) string {
	if e.ModTime.IsZero() {
		return "-"
	}
	return e.ModTime.Format(DateFormat)
}

// formatSize renders n as "-", bytes, "NK" or "NM" using 1024 steps.
func formatSize(n int64) string {
	if n <= 0 {
		return "-"
	}

	units := []string{"", "K", "M"}
	i, div := 0, int64(1)
	for i < len(units)-1 && n >= div*1024 {
		i++
		div *= 1024
	}
	return fmt.Sprintf("%d%s", int64(math.Round(float64(n)/float64(div))), units[i])
}
