package main

import (
	"fmt"
	"log"
	"os"

	"github.com/setanarut/rasterbuilder"
	"github.com/setanarut/rasterbuilder/utils"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input.json> <output image>\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := os.Args[1]
	outputFile := os.Args[2]

	layers, err := rasterbuilder.Load(inputFile)
	if err != nil {
		log.Fatalf("loading layers: %v", err)
	}

	img, err := rasterbuilder.Build(layers)
	if err != nil {
		log.Fatalf("building image: %v", err)
	}

	if err := rasterbuilder.WriteImage(img, outputFile); err != nil {
		log.Fatalf("writing image: %v", err)
	}
	fmt.Printf("Image saved as %s\n", outputFile)

	// Informational only; an empty palette never fails the run.
	palette := utils.ExtractPalette(img, 5, utils.PaletteMethodDominantColor)
	if len(palette) != 0 {
		utils.SortPaletteByBrightness(palette)
		fmt.Printf("Dominant colors (%s): %s\n", layers.Profile, utils.DescribePalette(palette))
	}
}
