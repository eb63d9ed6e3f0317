package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/amsterdam-svi/internal/config"
	"github.com/sells-group/amsterdam-svi/internal/fetcher"
	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "svi",
	Short: "Amsterdam street-view imagery and building footprints",
	Long:  "Fetches panorama imagery and BAG building footprints from the Amsterdam open-data APIs and pairs each panorama with the buildings around it.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newClient builds the API client from the loaded configuration.
func newClient(c *config.Config) amsterdam.Client {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: c.HTTP.UserAgent,
		Timeout:   time.Duration(c.HTTP.TimeoutSecs) * time.Second,
	})
	return amsterdam.NewClient(f,
		amsterdam.WithPanoramaBaseURL(c.Panorama.BaseURL),
		amsterdam.WithBAGBaseURL(c.BAG.BaseURL),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
