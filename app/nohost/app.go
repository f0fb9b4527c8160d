package nohost

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/nohost/core/handler"
	"github.com/dmitrymomot/nohost/core/inline"
	"github.com/dmitrymomot/nohost/core/logger"
	"github.com/dmitrymomot/nohost/core/pages"
	"github.com/dmitrymomot/nohost/core/response"
	"github.com/dmitrymomot/nohost/core/static"
	"github.com/dmitrymomot/nohost/core/storage"
	"github.com/dmitrymomot/nohost/middleware"
	"github.com/dmitrymomot/nohost/pkg/datauri"
)

// App serves a storage backend over HTTP. The requested path is the whole
// query string: GET /?/docs/index.html.
type App struct {
	store        storage.Storage
	logger       *slog.Logger
	concurrency  int
	hidden       []string
	middlewares  []handler.Middleware[*Context]
	errorHandler handler.ErrorHandler[*Context]

	notFound handler.HandlerFunc[*Context]
	dir      handler.HandlerFunc[*Context]
	html     handler.HandlerFunc[*Context]
	image    handler.HandlerFunc[*Context]
	markdown handler.HandlerFunc[*Context]
	file     handler.HandlerFunc[*Context]
}

// Option configures App.
type Option func(*App) error

// New creates an App over store. Without options it logs nowhere, prefetches
// resources sequentially and wraps handlers with RequestID and Logging.
func New(store storage.Storage, opts ...Option) (*App, error) {
	if store == nil {
		return nil, ErrNilStorage
	}

	app := &App{
		store:       store,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: 1,
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.middlewares == nil {
		app.middlewares = []handler.Middleware[*Context]{
			middleware.RequestID[*Context](),
			middleware.Logging[*Context](app.logger),
		}
	}
	if app.errorHandler == nil {
		app.errorHandler = app.defaultErrorHandler
	}

	rw := inline.New(store,
		inline.WithLogger(app.logger),
		inline.WithConcurrency(app.concurrency),
	)
	staticOpts := []static.Option{
		static.WithLogger(app.logger),
		static.WithHidden(app.hidden...),
	}

	app.notFound = app.wrap(static.NotFound[*Context]())
	app.dir = app.wrap(static.Dir[*Context](store, staticOpts...))
	app.html = app.wrap(static.HTML[*Context](store, rw, staticOpts...))
	app.image = app.wrap(static.Image[*Context](rw))
	app.markdown = app.wrap(static.Markdown[*Context](store, rw, staticOpts...))
	app.file = app.wrap(static.File[*Context](store, staticOpts...))

	return app, nil
}

// NewFromConfig creates an App using the inlining and listing settings of cfg.
func NewFromConfig(store storage.Storage, cfg Config, opts ...Option) (*App, error) {
	base := []Option{
		WithConcurrency(cfg.Concurrency),
		WithHidden(cfg.Hidden...),
	}
	return New(store, append(base, opts...)...)
}

// WithLogger sets the logger shared by the app, its middlewares and the
// inlining engine.
func WithLogger(l *slog.Logger) Option {
	return func(app *App) error {
		if l == nil {
			return ErrNilLogger
		}
		app.logger = l
		return nil
	}
}

// WithConcurrency bounds parallel resource reads within one document.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(app *App) error {
		if n > 0 {
			app.concurrency = n
		}
		return nil
	}
}

// WithHidden hides directory listing entries that match any doublestar pattern.
func WithHidden(patterns ...string) Option {
	return func(app *App) error {
		app.hidden = append(app.hidden, patterns...)
		return nil
	}
}

// WithMiddleware replaces the default middleware chain. The first middleware
// is the outermost.
func WithMiddleware(mws ...handler.Middleware[*Context]) Option {
	return func(app *App) error {
		app.middlewares = append([]handler.Middleware[*Context]{}, mws...)
		return nil
	}
}

// WithErrorHandler sets the handler for errors returned while rendering.
func WithErrorHandler(h handler.ErrorHandler[*Context]) Option {
	return func(app *App) error {
		if h == nil {
			return errors.New("error handler cannot be nil")
		}
		app.errorHandler = h
		return nil
	}
}

func (app *App) wrap(h handler.HandlerFunc[*Context]) handler.HandlerFunc[*Context] {
	return handler.Chain(h, app.middlewares...)
}

// ServeHTTP implements http.Handler.
func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := &responseWriter{ResponseWriter: w}
	ctx := newContext(ww, r, "/")

	defer func() {
		if rec := recover(); rec != nil {
			err := toError(rec)
			app.logger.ErrorContext(ctx, "panic recovered",
				logger.Component("app"),
				logger.Path(ctx.Path()),
				logger.Error(err),
			)
			if !ww.Written() {
				app.errorHandler(ctx, err)
			}
		}
	}()

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		ww.Header().Set("Allow", "GET, HEAD")
		app.errorHandler(ctx, response.ErrMethodNotAllowed)
		return
	}

	p, err := requestPath(r)
	if err != nil {
		app.errorHandler(ctx, response.ErrBadRequest.WithError(err))
		return
	}
	ctx.path = p

	h := app.route(ctx)
	resp := h(ctx)
	if resp == nil {
		app.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, ctx.Request()); err != nil {
		if !ww.Written() {
			app.errorHandler(ctx, err)
			return
		}
		app.logger.WarnContext(ctx, "response failed after headers were sent",
			logger.Component("app"),
			logger.Path(ctx.Path()),
			logger.Error(err),
		)
	}
}

// requestPath decodes the raw query into a cleaned storage path.
func requestPath(r *http.Request) (string, error) {
	raw := r.URL.RawQuery
	if raw == "" {
		return "/", nil
	}
	p, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return storage.Clean(p), nil
}

// route picks the handler for the entry at ctx.Path().
func (app *App) route(ctx *Context) handler.HandlerFunc[*Context] {
	entry, err := app.store.Stat(ctx, ctx.Path())
	if err != nil {
		if isMissing(err) {
			return app.notFound
		}
		app.logger.WarnContext(ctx, "storage stat failed",
			logger.Component("app"),
			logger.Path(ctx.Path()),
			logger.Error(err),
		)
		return app.wrap(func(*Context) handler.Response {
			return response.Error(response.ErrServiceUnavailable.WithError(err))
		})
	}

	if entry.IsDir {
		return app.dir
	}

	switch ext := strings.ToLower(storage.Ext(entry.Path)); {
	case ext == ".html" || ext == ".htm":
		return app.html
	case datauri.IsImageExt(ext):
		return app.image
	case ext == ".md" || ext == ".markdown":
		return app.markdown
	default:
		return app.file
	}
}

func isMissing(err error) bool {
	return errors.Is(err, storage.ErrFileNotFound) ||
		errors.Is(err, storage.ErrDirectoryNotFound) ||
		errors.Is(err, storage.ErrNotDirectory) ||
		errors.Is(err, storage.ErrInvalidPath)
}

// defaultErrorHandler renders the 404 page for not-found errors and plain
// status text for everything else.
func (app *App) defaultErrorHandler(ctx *Context, err error) {
	status := response.StatusOf(err)
	if status >= http.StatusInternalServerError {
		app.logger.ErrorContext(ctx, "request failed",
			logger.Component("app"),
			logger.Path(ctx.Path()),
			logger.StatusCode(status),
			logger.Error(err),
		)
	}
	if status == http.StatusNotFound {
		response.Render(ctx, response.TemplWithStatus(pages.NotFound(ctx.Path()), status))
		return
	}
	response.ErrorHandler(ctx, err)
}
