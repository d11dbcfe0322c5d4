package mock

import (
	"net/http"
	"regexp"
	"strings"
)

// HandlerFunc serves a matched route. params carries path parameters captured
// from {{name}} segments in the pattern.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, params map[string]string)

// Route maps a method and path pattern to a handler.
type Route struct {
	Method      string
	PathPattern string
	PathRegex   *regexp.Regexp
	Handler     HandlerFunc
}

// NewRoute compiles a pattern like /status/{{code}} into a Route.
func NewRoute(method, pattern string, handler HandlerFunc) *Route {
	return &Route{
		Method:      strings.ToUpper(method),
		PathPattern: pattern,
		PathRegex:   createPathRegex(pattern),
		Handler:     handler,
	}
}

// Router matches incoming requests to routes
type Router struct {
	routes []*Route
}

// NewRouter creates a new router
func NewRouter() *Router {
	return &Router{
		routes: make([]*Route, 0),
	}
}

// AddRoute adds a route to the router
func (r *Router) AddRoute(route *Route) {
	r.routes = append(r.routes, route)
}

// Routes returns all registered routes in registration order.
func (r *Router) Routes() []*Route {
	return r.routes
}

// Match finds a route matching the given method and path
func (r *Router) Match(method, path string) (*Route, map[string]string) {
	path = normalizePath(path)

	for _, route := range r.routes {
		if !strings.EqualFold(route.Method, method) {
			continue
		}

		if params := matchPath(route, path); params != nil {
			return route, params
		}
	}

	return nil, nil
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	// Remove trailing slash (except for root)
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

func matchPath(route *Route, path string) map[string]string {
	if route.PathRegex != nil {
		matches := route.PathRegex.FindStringSubmatch(path)
		if matches != nil {
			params := make(map[string]string)
			names := route.PathRegex.SubexpNames()
			for i, name := range names {
				if i > 0 && name != "" && i < len(matches) {
					params[name] = matches[i]
				}
			}
			return params
		}
	}

	if route.PathPattern == path {
		return make(map[string]string)
	}

	return nil
}

func createPathRegex(pattern string) *regexp.Regexp {
	// Convert {{param}} to named capture groups
	regexPattern := regexp.MustCompile(`\{\{([^}]+)\}\}`).ReplaceAllString(pattern, `(?P<$1>[^/]+)`)

	regex, err := regexp.Compile("^" + regexPattern + "$")
	if err != nil {
		// Fallback to literal match
		return regexp.MustCompile("^" + regexp.QuoteMeta(pattern) + "$")
	}
	return regex
}
