package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/config"
	"github.com/juruen/sketchpad/encoding/sketch"
	"github.com/juruen/sketchpad/log"
	"github.com/juruen/sketchpad/pad"
	"github.com/juruen/sketchpad/process"
	"github.com/juruen/sketchpad/render"
)

// sketchJob replays a stroke file onto a fresh drawing board and encodes it
func sketchJob(path string, lineWidth float64) (process.Job, error) {
	s, err := sketch.ReadFile(path)
	if err != nil {
		return process.Job{}, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return process.Job{}, errors.Errorf("%s: invalid canvas size %dx%d", path, s.Width, s.Height)
	}

	raster := canvas.NewRaster(s.Width, s.Height)
	pad.New(raster, nil, pad.WithLineWidth(lineWidth)).Replay(s.Strokes)

	image, err := raster.DataURL()
	if err != nil {
		return process.Job{}, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return process.Job{Name: name, Image: image}, nil
}

// runBatch submits every stroke file, writes <name>_matrix.png into outDir and
// prints one label line per file.
func runBatch(ctx context.Context, cfg config.Config, p process.Processor, files []string, outDir string) error {
	if len(files) == 0 {
		return errors.New("missing sketch files")
	}

	var jobs []process.Job
	failed := 0
	for _, f := range files {
		job, err := sketchJob(f, cfg.LineWidth)
		if err != nil {
			fmt.Printf("%s\t%s\n", f, render.Error(err))
			failed++
			continue
		}
		jobs = append(jobs, job)
	}

	results := process.Batch(ctx, p, jobs, cfg.BatchSize)
	for _, res := range results {
		label, err := writeResult(res, cfg.OutputSize, outDir)
		if err != nil {
			failed++
			label = render.Error(err)
		}
		fmt.Printf("%s\t%s\n", res.Name, label)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d sketches failed", failed, len(files))
	}
	return nil
}

func writeResult(res process.Result, size int, outDir string) (string, error) {
	if res.Err != nil {
		return "", res.Err
	}

	output := canvas.NewRaster(size, size)
	render.Matrix(output, res.Response.Matrix)

	dst := filepath.Join(outDir, res.Name+"_matrix.png")
	f, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrapf(err, "can't create %s", dst)
	}
	defer f.Close()
	if err := output.WritePNG(f); err != nil {
		return "", err
	}
	log.Trace.Printf("batch: wrote %s", dst)

	if res.Response.Prediction == "" {
		return dst, nil
	}
	return render.Prediction(res.Response.Prediction, res.Response.Confidence), nil
}
