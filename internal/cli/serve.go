package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gatekit/gatekit/internal/access"
	"github.com/gatekit/gatekit/internal/blog"
	"github.com/gatekit/gatekit/internal/di"
	"github.com/gatekit/gatekit/internal/directory"
	"github.com/gatekit/gatekit/internal/server"
	"github.com/gatekit/gatekit/internal/users"
	"github.com/gatekit/gatekit/internal/weather"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func cmdServe() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run gatekit services",
	}
	c.AddCommand(cmdServeUsers(), cmdServeBlog(), cmdServeWeather(), cmdServeAll())
	return c
}

func serverOptions(cfg *Config) server.Options {
	return server.Options{
		EnableCORS:     cfg.EnableCORS,
		RequestTimeout: 10 * time.Second,
	}
}

func checkerFor(cfg *Config, service string) access.Checker {
	return di.ProvideChecker(cfg.Checker, cfg.DirectoryURL, cfg.LookupTimeout, access.OpenFGAConfig{
		APIURL:  cfg.FGAAPIURL,
		StoreID: cfg.FGAStoreID,
		ModelID: cfg.FGAModelID,
		Object:  "service:" + service,
	})
}

func usersRouter(cfg *Config) http.Handler {
	store := directory.NewSeededStore()
	return server.BuildUsersRouter(server.Deps{
		Directory: store,
		Users:     users.NewService(store),
	}, serverOptions(cfg))
}

func blogRouter(cfg *Config) http.Handler {
	repo := blog.NewMemoryRepository()
	return server.BuildBlogRouter(server.Deps{
		Articles: repo,
		Blog:     blog.NewService(repo),
		Checker:  checkerFor(cfg, "blog"),
	}, serverOptions(cfg))
}

func weatherRouter(cfg *Config) http.Handler {
	return server.BuildWeatherRouter(server.Deps{
		Weather: weather.NewService(),
		Checker: checkerFor(cfg, "weather"),
	}, serverOptions(cfg))
}

func cmdServeUsers() *cobra.Command {
	return serviceCommand("users", "Run the users/permissions directory service",
		func(cfg *Config) (string, http.Handler) { return cfg.UsersAddr, usersRouter(cfg) })
}

func cmdServeBlog() *cobra.Command {
	return serviceCommand("blog", "Run the blog service",
		func(cfg *Config) (string, http.Handler) { return cfg.BlogAddr, blogRouter(cfg) })
}

func cmdServeWeather() *cobra.Command {
	return serviceCommand("weather", "Run the weather service",
		func(cfg *Config) (string, http.Handler) { return cfg.WeatherAddr, weatherRouter(cfg) })
}

func serviceCommand(name, short string, build func(cfg *Config) (string, http.Handler)) *cobra.Command {
	var addr string
	c := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			cfgAddr, h := build(cfg)
			if addr == "" {
				addr = cfgAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, name, addr, h)
		},
	}
	c.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return c
}

func cmdServeAll() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run all three services in one process",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return runServer(ctx, "users", cfg.UsersAddr, usersRouter(cfg)) })
			g.Go(func() error { return runServer(ctx, "blog", cfg.BlogAddr, blogRouter(cfg)) })
			g.Go(func() error { return runServer(ctx, "weather", cfg.WeatherAddr, weatherRouter(cfg)) })
			return g.Wait()
		},
	}
}

func runServer(ctx context.Context, name, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}

	errc := make(chan error, 1)
	go func() {
		slog.Info("listening", "service", name, "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
		<-errc
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
