// Command logrender renders a daily log JSON file to PNG or SVG without
// running the HTTP service. Useful for batch export and for eyeballing
// layout changes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AYG3/Truck-Driver-Logbook/internal/adapters/raster"
	"github.com/AYG3/Truck-Driver-Logbook/internal/adapters/svgcanvas"
	"github.com/AYG3/Truck-Driver-Logbook/internal/api/dto"
	"github.com/AYG3/Truck-Driver-Logbook/internal/render"
)

func main() {
	in := flag.String("in", "", "log day JSON file (date + segments)")
	out := flag.String("out", "log.png", "output file; extension picks png or svg")
	width := flag.Float64("width", 0, "viewport width in pixels (0 = logical canvas width)")
	density := flag.Float64("density", 1, "device pixel density multiplier")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out, *width, *density); err != nil {
		log.Fatal(err)
	}
}

func run(in, out string, width, density float64) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("logrender: %w", err)
	}

	var req dto.LogDayRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("logrender: parse %s: %w", in, err)
	}

	day, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("logrender: %w", err)
	}

	renderer := render.NewRenderer()
	if width <= 0 {
		width = renderer.Geometry.Width
	}

	if strings.HasSuffix(strings.ToLower(out), ".svg") {
		cv := svgcanvas.New(renderer.Geometry.Width, renderer.Geometry.Height(), width)
		renderer.Render(cv, day, width)
		if err := os.WriteFile(out, []byte(cv.String()), 0o644); err != nil {
			return fmt.Errorf("logrender: %w", err)
		}
	} else {
		surface, err := raster.NewSurface(renderer.Geometry, width, density)
		if err != nil {
			return fmt.Errorf("logrender: %w", err)
		}
		renderer.Render(surface, day, width)

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("logrender: %w", err)
		}
		defer f.Close()

		if err := surface.EncodePNG(f); err != nil {
			return fmt.Errorf("logrender: %w", err)
		}
	}

	log.Printf("rendered %s -> %s (%s)", in, out, day.AccessibilityLabel())
	return nil
}
