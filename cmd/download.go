package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/amsterdam-svi/internal/export"
)

var downloadCmd = &cobra.Command{
	Use:   "download <image-url>",
	Short: "Download and decode an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		img := newClient(cfg).DownloadImage(cmd.Context(), args[0])
		if img == nil {
			return eris.Errorf("download: no image from %s", args[0])
		}
		if err := export.WriteJPEG(out, img, cfg.Output.JPEGQuality); err != nil {
			return err
		}
		b := img.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dx%d\n", out, b.Dx(), b.Dy())
		return nil
	},
}

func init() {
	downloadCmd.Flags().String("out", "image.jpg", "output JPEG path")
	rootCmd.AddCommand(downloadCmd)
}
