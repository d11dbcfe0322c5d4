package mock

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// helloPayload is what the root route returns.
var helloPayload = map[string]any{
	"message": "Hello World",
	"status":  "ok",
	"data": map[string]any{
		"id":    1,
		"name":  "Sample Item",
		"value": 42,
	},
}

func registerBuiltinRoutes(router *Router) {
	router.AddRoute(NewRoute("GET", "/", handleRoot))
	router.AddRoute(NewRoute("GET", "/get", handleEcho))
	router.AddRoute(NewRoute("POST", "/post", handleEcho))
	router.AddRoute(NewRoute("GET", "/headers", handleHeaders))
	router.AddRoute(NewRoute("GET", "/status/{{code}}", handleStatus))
	router.AddRoute(NewRoute("GET", "/delay/{{duration}}", handleDelay))
	router.AddRoute(NewRoute("GET", "/uuid", handleUUID))
	router.AddRoute(NewRoute("GET", "/json", handleJSON))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", uuid.NewString())
	w.WriteHeader(status)

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		data = []byte(`{"error": "failed to encode response"}`)
	}
	w.Write(data)
}

func handleRoot(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, helloPayload)
}

func handleEcho(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	args := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			args[key] = values[0]
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"method":  r.Method,
		"url":     r.URL.String(),
		"args":    args,
		"headers": flattenHeaders(r.Header),
	})
}

func handleHeaders(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"headers": flattenHeaders(r.Header),
	})
}

func handleStatus(w http.ResponseWriter, r *http.Request, params map[string]string) {
	code, err := strconv.Atoi(params["code"])
	if err != nil || code < 100 || code > 599 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid status code"})
		return
	}
	writeJSON(w, code, map[string]any{"status": code})
}

func handleDelay(w http.ResponseWriter, r *http.Request, params map[string]string) {
	d, err := time.ParseDuration(params["duration"])
	if err != nil {
		// Bare numbers are treated as seconds, like httpbin
		if secs, convErr := strconv.Atoi(params["duration"]); convErr == nil {
			d = time.Duration(secs) * time.Second
		} else {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid delay"})
			return
		}
	}
	if d > 10*time.Second {
		d = 10 * time.Second
	}

	time.Sleep(d)
	writeJSON(w, http.StatusOK, map[string]any{"delay": d.String()})
}

func handleUUID(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, map[string]any{"uuid": uuid.NewString()})
}

func handleJSON(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"slideshow": map[string]any{
			"title":  "Sample Slide Show",
			"author": "Yours Truly",
			"slides": []any{
				map[string]any{"title": "Wake up to WonderWidgets!", "type": "all"},
				map[string]any{"title": "Overview", "type": "all", "items": []any{"Why WonderWidgets are great", "Who buys WonderWidgets"}},
			},
		},
	})
}

func flattenHeaders(h http.Header) map[string]string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]string, len(names))
	for _, name := range names {
		out[name] = h.Get(name)
	}
	return out
}
