package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AYG3/Truck-Driver-Logbook/internal/render"
)

func TestRouterRoutes(t *testing.T) {
	router := NewRouter(render.NewRenderer(), nil)
	srv := httptest.NewServer(router)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET /health: status %d, want 200", res.StatusCode)
	}

	res, err = http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("GET /nope: status %d, want 404", res.StatusCode)
	}

	// Render and summary exist and enforce POST.
	for _, path := range []string{"/logs/render", "/logs/summary"} {
		res, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusMethodNotAllowed {
			t.Fatalf("GET %s: status %d, want 405", path, res.StatusCode)
		}
	}
}
