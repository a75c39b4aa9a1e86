package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/ogier/pflag"
	"github.com/pkg/errors"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/encoding/sketch"
	"github.com/juruen/sketchpad/export"
	"github.com/juruen/sketchpad/pad"
)

func main() {
	inputName := flag.StringP("input", "i", "", "stroke file to convert")
	outputName := flag.StringP("output", "o", "", "output filename")
	extract := flag.StringP("extract", "e", "", "extract, p - png (default), d - pdf")
	scale := flag.Float64P("scale", "s", 1, "pdf points per canvas pixel")
	flag.Parse()
	var err error

	switch *extract {
	case "d":
		err = convertPdf(*inputName, *outputName, *scale)
	case "":
		fallthrough
	case "p":
		err = convertPng(*inputName, *outputName)
	default:
		err = errors.Errorf("unknown extract mode %q", *extract)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func outputFor(inputName, outputName, ext string) string {
	if outputName != "" {
		return outputName
	}
	return strings.TrimSuffix(inputName, filepath.Ext(inputName)) + ext
}

func readSketch(inputName string) (*sketch.Sketch, error) {
	if inputName == "" {
		return nil, errors.New("missing input file")
	}
	return sketch.ReadFile(inputName)
}

// convertPng replays the strokes onto a black canvas of the recorded size
func convertPng(inputName, outputName string) error {
	s, err := readSketch(inputName)
	if err != nil {
		return err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", s.Width, s.Height)
	}

	raster := canvas.NewRaster(s.Width, s.Height)
	pad.New(raster, nil).Replay(s.Strokes)

	outputFile, err := os.Create(outputFor(inputName, outputName, ".png"))
	if err != nil {
		return errors.Wrap(err, "can't create outputfile")
	}
	defer outputFile.Close()
	return raster.WritePNG(outputFile)
}

func convertPdf(inputName, outputName string, scale float64) error {
	s, err := readSketch(inputName)
	if err != nil {
		return err
	}

	outputFile, err := os.Create(outputFor(inputName, outputName, ".pdf"))
	if err != nil {
		return errors.Wrap(err, "can't create outputfile")
	}
	defer outputFile.Close()

	gen := export.CreatePdfGenerator(s, export.PdfGeneratorOptions{Scale: scale})
	return gen.Generate(outputFile)
}
