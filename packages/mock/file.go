package mock

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// FileRoute is one static route entry in a YAML routes file:
//
//	- method: GET
//	  path: /users/{{id}}
//	  status: 200
//	  headers:
//	    X-Source: file
//	  body: '{"id": "{{id}}"}'
type FileRoute struct {
	Method  string            `yaml:"method"`
	Path    string            `yaml:"path"`
	Status  int               `yaml:"status,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty"`
}

// LoadRoutesFile parses a YAML routes file into routes. Path parameters
// captured from the pattern are substituted into the body as {{name}}.
func LoadRoutesFile(path string) ([]*Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read routes file %s: %w", path, err)
	}

	var entries []FileRoute
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse routes file %s: %w", path, err)
	}

	routes := make([]*Route, 0, len(entries))
	for i, entry := range entries {
		if entry.Path == "" {
			return nil, fmt.Errorf("routes file %s: entry %d has no path", path, i+1)
		}
		if entry.Method == "" {
			entry.Method = "GET"
		}
		if entry.Status == 0 {
			entry.Status = 200
		}
		routes = append(routes, newFileRoute(entry))
	}

	return routes, nil
}

func newFileRoute(entry FileRoute) *Route {
	return NewRoute(entry.Method, entry.Path, func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		if entry.Headers["Content-Type"] == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		for key, value := range entry.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(entry.Status)
		w.Write([]byte(resolveBodyParams(entry.Body, params)))
	})
}

func resolveBodyParams(body string, params map[string]string) string {
	result := body
	for key, value := range params {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}

// watchRoutesFile reloads the routes file whenever it is written, until ctx
// is cancelled.
func (s *Server) watchRoutesFile(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("failed to create file watcher: %v", err)
		return
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(s.routesFile)); err != nil {
		log.Printf("failed to watch %s: %v", s.routesFile, err)
		return
	}

	target := filepath.Clean(s.routesFile)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := s.reloadRoutes(); err != nil {
					log.Printf("failed to reload routes: %v", err)
				} else {
					log.Printf("Routes reloaded from %s", s.routesFile)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}
