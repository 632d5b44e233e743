// Package httpapi exposes a namegen.Generator as a JSON API on a chi router.
//
// Routes:
//
//	POST   /api/names         generate a name (201), ?reset=false keeps the current seed
//	GET    /api/names         history, newest first, optional ?limit=N
//	GET    /api/names/{id}    one history entry with its full trace
//	DELETE /api/names         clear the history (204)
//	GET    /api/random?max=N  one raw draw from the mixer, optional a, c, m, w
//	POST   /api/seed/reset    reseed from the clock (204)
//	GET    /api/rules         active rule names in pipeline order
//	GET    /healthz, /readyz  liveness and readiness
//	GET    /metrics           Prometheus exposition, when WithMetrics is set
//
// Errors are written as {"error": "..."}: parameter and rule errors map to
// 400, unknown history ids to 404. Every response carries X-Request-ID.
package httpapi
