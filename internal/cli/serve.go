package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/awc-hub/awchub/internal/assets"
	"github.com/awc-hub/awchub/internal/cache"
	"github.com/awc-hub/awchub/internal/content"
	"github.com/awc-hub/awchub/internal/parser"
	"github.com/awc-hub/awchub/internal/site"
	"github.com/awc-hub/awchub/internal/watcher"
)

var (
	serveListen string
	serveWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Serve the tournament, player, level and news pages.

Collections are cached in memory unless cache = false in the config. With
--watch, edits under the content directory invalidate the cached kind and,
unless live_reload = false, open pages reload themselves.

Examples:
  awchub serve
  awchub serve --listen :8080 --watch
  awchub serve --content ./content --static ./static`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		log := getLogger()
		addr := c.Listen
		if serveListen != "" {
			addr = serveListen
		}

		renderer := parser.NewRenderer()
		repo := newRepository(renderer)

		var source site.Source = cache.LoaderFunc[content.Kind, content.Result[content.Entity]](repo.Load)
		var collections *cache.Cache[content.Kind, content.Result[content.Entity]]
		if c.CacheEnabled() {
			collections = cache.New(repo.Load)
			source = collections
		}

		var hub *site.Hub
		if serveWatch && c.LiveReloadEnabled() {
			hub = site.NewHub(log)
		}

		srv, err := site.New(source, site.Options{
			SiteTitle: c.SiteTitle,
			Assets:    assets.NewResolver(c.StaticDir),
			Renderer:  renderer,
			Hub:       hub,
			Logger:    log,
		})
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch {
			w, err := watcher.New(watcher.Config{
				ContentDir: c.ContentDir,
				Logger:     log,
				OnChange: func(kind content.Kind) {
					if collections != nil {
						collections.Invalidate(kind)
					}
					if hub != nil {
						hub.Reload(kind)
					}
				},
			})
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			go func() {
				if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("content watcher stopped", "error", err)
				}
			}()
		}

		if !isJSONOutput() {
			fmt.Fprintf(os.Stderr, "Serving %s on http://%s\n", c.ContentDir, addr)
		}
		if err := srv.ListenAndServe(ctx, addr); err != nil {
			return handleError(ErrInternal, err, "Is another process using "+addr+"?")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "Address to listen on (overrides listen)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Reload content when files change")
	rootCmd.AddCommand(serveCmd)
}
