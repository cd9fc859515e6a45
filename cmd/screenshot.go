package cmd

import (
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmcf/droidctl/internal/platform"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the device screen",
	Long:  "Capture a screenshot of the device screen for vision model fallback. With --annotate, clickable elements are boxed and labeled with their tap coordinates.",
	RunE:  runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	screenshotCmd.Flags().String("format", "png", "Image format: png, jpg")
	screenshotCmd.Flags().Int("quality", 80, "JPEG quality 1-100")
	screenshotCmd.Flags().Float64("scale", 0.5, "Scale factor 0.1-1.0 (for token efficiency)")
	screenshotCmd.Flags().Bool("annotate", false, "Draw bounding boxes and tap coordinates on interactive elements")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.Screens == nil {
		return fmt.Errorf("screenshot not supported by this backend")
	}

	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")
	annotate, _ := cmd.Flags().GetBool("annotate")
	if scale < 0.1 || scale > 1.0 {
		return fmt.Errorf("scale must be between 0.1 and 1.0")
	}

	img, err := provider.Screens.Capture(platform.ScreenshotOptions{Scale: scale})
	if err != nil {
		return err
	}

	if annotate && provider.Tree != nil {
		root, err := provider.Tree.Root()
		if err == nil && root != nil {
			img = AnnotateScreenshot(img, collectInteractive(root), scale)
		}
	}

	var out *os.File
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	encode := func(w io.Writer, img image.Image) error {
		switch format {
		case "png":
			return png.Encode(w, img)
		case "jpg", "jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
		default:
			return fmt.Errorf("unsupported format: %s (use png or jpg)", format)
		}
	}

	if out != nil {
		return encode(out, img)
	}

	// Default: write to stdout as base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, os.Stdout)
	if err := encode(encoder, img); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
