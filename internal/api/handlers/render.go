package handlers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/AYG3/Truck-Driver-Logbook/internal/adapters/raster"
	"github.com/AYG3/Truck-Driver-Logbook/internal/adapters/svgcanvas"
	"github.com/AYG3/Truck-Driver-Logbook/internal/api/dto"
	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
	"github.com/AYG3/Truck-Driver-Logbook/internal/platform/obs"
	"github.com/AYG3/Truck-Driver-Logbook/internal/ports"
	"github.com/AYG3/Truck-Driver-Logbook/internal/render"
)

const (
	formatPNG = "png"
	formatSVG = "svg"
)

type RenderHandler struct {
	Renderer *render.Renderer
	Cache    ports.RenderCache // optional; nil disables caching
}

// Render draws a daily log grid for the posted LogDay and returns the
// encoded image. The pipeline is idempotent, so responses are served
// from the render cache when one is configured; cache failures degrade
// to a fresh render rather than an error.
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RenderRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	day, err := req.ToDomain()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	width := req.Width
	if width == 0 {
		width = h.Renderer.Geometry.Width
	}
	if width < 0 {
		writeError(w, r, http.StatusBadRequest, "width must be positive")
		return
	}

	density := req.Density
	if density == 0 {
		density = 1
	}
	if density < 0 {
		writeError(w, r, http.StatusBadRequest, "density must be positive")
		return
	}

	format := req.Format
	if format == "" {
		format = formatPNG
	}
	if format != formatPNG && format != formatSVG {
		writeError(w, r, http.StatusBadRequest, "format must be png or svg")
		return
	}

	ctx := r.Context()
	key := renderKey(req, width, density, format)

	if h.Cache != nil {
		payload, ok, err := h.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("render cache get failed: %v", err)
		}
		if ok {
			serveImage(w, format, day.AccessibilityLabel(), payload)
			return
		}
	}

	payload, err := h.renderImage(ctx, day, width, density, format)
	if err != nil {
		log.Printf("render failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(ctx, key, payload); err != nil {
			log.Printf("render cache put failed: %v", err)
		}
	}

	serveImage(w, format, day.AccessibilityLabel(), payload)
}

func (h *RenderHandler) renderImage(
	ctx context.Context,
	day domain.LogDay,
	width, density float64,
	format string,
) (_ []byte, err error) {
	defer obs.Time(ctx, "logs.render")(&err)

	switch format {
	case formatSVG:
		cv := svgcanvas.New(h.Renderer.Geometry.Width, h.Renderer.Geometry.Height(), width)
		h.Renderer.Render(cv, day, width)
		return []byte(cv.String()), nil
	default:
		surface, err := raster.NewSurface(h.Renderer.Geometry, width, density)
		if err != nil {
			return nil, fmt.Errorf("render image: %w", err)
		}

		h.Renderer.Render(surface, day, width)

		var buf bytes.Buffer
		if err := surface.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("render image: %w", err)
		}
		return buf.Bytes(), nil
	}
}

func serveImage(w http.ResponseWriter, format, label string, payload []byte) {
	contentType := "image/png"
	if format == formatSVG {
		contentType = "image/svg+xml"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Log-Label", label)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		log.Printf("write image failed: err=%v", err)
	}
}

// renderKey hashes the full render input. Identical inputs render to
// identical bytes, so the hash is a sound cache key.
func renderKey(req dto.RenderRequest, width, density float64, format string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%.4f|%.4f|%s", req.Date, width, density, format)
	for _, s := range req.Segments {
		fmt.Fprintf(h, "|%s|%s|%s|%s|%s|%s",
			s.Start.UTC().Format(time.RFC3339Nano),
			s.End.UTC().Format(time.RFC3339Nano),
			s.Status, s.City, s.State, s.Remark,
		)
	}
	return hex.EncodeToString(h.Sum(nil))
}
