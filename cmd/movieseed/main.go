package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movieapi/movie"
	"movieapi/omdb"
	"movieapi/pkg/config"
	"movieapi/pkg/logger"
	"movieapi/postgres"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

type options struct {
	csvPath string
	zipURL  string
	limit   int
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "movieseed",
		Short: "movieseed - seed the movie catalogue from MovieLens titles",
		Long: `movieseed reads the titles of a MovieLens movies.csv and adds each one through
the same OMDb lookup used by POST /movies. Titles OMDb does not know are skipped.

The dataset is downloaded unless --csv points at a local movies.csv.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "Path to movies.csv (skip download)")
	cmd.Flags().StringVar(&opts.zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Limit number of titles to import (0 = all)")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		return fmt.Errorf("open postgres connection: %w", err)
	}

	csvPath := opts.csvPath
	if csvPath == "" {
		path, cleanup, err := downloadAndExtract(ctx, opts.zipURL)
		if err != nil {
			return fmt.Errorf("download dataset: %w", err)
		}
		defer cleanup()
		csvPath = path
	}

	titles, err := readTitles(csvPath, opts.limit)
	if err != nil {
		return fmt.Errorf("read titles: %w", err)
	}

	svc := movie.NewUsecase(
		postgres.NewMovieRepository(db),
		omdb.NewClient(cfg.OMDb.APIURL, cfg.OMDb.APIKey),
	)
	res, err := seed(ctx, svc, titles, log)
	log.Infow("import completed",
		zap.Int("added", res.Added),
		zap.Int("not_found", res.NotFound),
		zap.Int("failed", res.Failed),
	)
	return err
}
