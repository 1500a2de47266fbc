package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/wbrown/kquant"
	"github.com/wbrown/kquant/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the quantized image (format from extension)")
	k := flag.Int("k", 5,
		"Number of colors (clusters)")
	iterations := flag.Int("iterations", kquant.DefaultMaxIterations,
		"Number of assignment/update rounds")
	seed := flag.Int64("seed", 0,
		"Random seed for the initial centroids (0 picks one from the clock)")
	earlyStop := flag.Bool("earlystop", false,
		"Stop as soon as a round reassigns no pixel")
	workers := flag.Int("workers", 1,
		"Goroutines for the assignment step, 0 for one per CPU")
	seedPalette := flag.String("palette", "",
		"Start from a fixed palette instead of random pixels "+
			"(Embedded: ansi16, primaries8, or a JSON file)")
	paletteOut := flag.String("palette-out", "",
		"Path to write the final palette as JSON")
	compareFile := flag.String("compare", "",
		"Path to write an original/quantized comparison sheet")
	compareWidth := flag.Int("compare-width", imageutil.DefaultSheetWidth,
		"Width of the comparison sheet")
	compareHeight := flag.Int("compare-height", imageutil.DefaultSheetHeight,
		"Height of the comparison sheet")
	preview := flag.Bool("preview", false,
		"Print the quantized image to the terminal using 24-bit color")
	previewWidth := flag.Int("preview-width", 80,
		"Width of the terminal preview in characters")
	logLevel := flag.String("loglevel", "warn",
		"Log level: debug, info, warn or error")
	logJSON := flag.Bool("logjson", false,
		"Write logs as JSON")
	flag.Parse()

	// Validate required flags
	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		return
	}
	if *outputFile == "" && *compareFile == "" && *paletteOut == "" && !*preview {
		fmt.Println("Nothing to do: set -output, -compare, -palette-out or -preview")
		flag.PrintDefaults()
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Printf("Invalid log level %q\n", *logLevel)
		os.Exit(1)
	}
	logger := kquant.NewTextLogger(level)
	if *logJSON {
		logger = kquant.NewJSONLogger(level)
	}

	beginLoad := time.Now()
	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s: %dx%d, %d distinct colors in %v\n",
		*inputFile, img.Width(), img.Height(), imageutil.CountColors(img),
		time.Since(beginLoad))

	opts := []kquant.Option{
		kquant.WithMaxIterations(*iterations),
		kquant.WithEarlyStop(*earlyStop),
		kquant.WithWorkers(*workers),
		kquant.WithLogger(logger),
	}
	if *seed != 0 {
		opts = append(opts, kquant.WithSeed(*seed))
	}
	if *seedPalette != "" {
		palette, err := kquant.LoadPalette(*seedPalette)
		if err != nil {
			fmt.Printf("Error loading palette: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, kquant.WithInitializer(kquant.PaletteSeeder{Palette: palette}))
	}

	beginQuantize := time.Now()
	quantized, res, err := kquant.QuantizeImage(img, *k, opts...)
	if err != nil {
		fmt.Printf("Error quantizing image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Quantization time: %v (%d iterations, converged: %v)\n",
		time.Since(beginQuantize), res.Iterations, res.Converged)
	fmt.Printf("Palette: %s\n", formatPalette(res.Palette))
	fmt.Printf("MSE: %.2f, PSNR: %.2f dB\n",
		imageutil.CalculateMSE(img, quantized), imageutil.CalculatePSNR(img, quantized))

	if *outputFile != "" {
		if err := imageutil.SaveImage(quantized.RGBA, *outputFile); err != nil {
			fmt.Printf("Error writing image: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", *outputFile)
	}

	if *paletteOut != "" {
		if err := kquant.SavePalette(*paletteOut, res.Palette); err != nil {
			fmt.Printf("Error writing palette: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Palette written to %s\n", *paletteOut)
	}

	if *compareFile != "" {
		sheet, err := imageutil.SideBySide(img, quantized, imageutil.CompareOptions{
			Width:  *compareWidth,
			Height: *compareHeight,
			Labels: [2]string{"original", fmt.Sprintf("k = %d", *k)},
		})
		if err != nil {
			fmt.Printf("Error rendering comparison: %v\n", err)
			os.Exit(1)
		}
		if err := imageutil.SaveImage(sheet.RGBA, *compareFile); err != nil {
			fmt.Printf("Error writing comparison: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Comparison written to %s\n", *compareFile)
	}

	if *preview {
		// Nearest-neighbor keeps the preview within the palette. Terminal
		// cells are about twice as tall as wide, which the half blocks
		// already account for.
		small := quantized
		if *previewWidth > 0 && *previewWidth < quantized.Width() {
			small = imageutil.ResizeToWidth(quantized, *previewWidth, imageutil.InterpolationNearest)
		}
		fmt.Print(kquant.RenderANSI(kquant.FromRGBAImage(small)))
	}
}

// formatPalette lists the distinct colors of a palette as hex strings.
func formatPalette(palette []kquant.RGB) string {
	distinct := kquant.Distinct(palette)
	hex := make([]string, len(distinct))
	for i, c := range distinct {
		hex[i] = c.String()
	}
	return strings.Join(hex, " ")
}
