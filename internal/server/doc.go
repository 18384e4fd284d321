// Package server hosts the joke HTTP API on echo.
//
// Routes
//
//   - GET /api/joke: {"joke": "<string>"}, a uniformly random joke
//   - GET /healthz:  {"status": "ok"}
//
// Middleware
//
// Every response carries Access-Control-Allow-Origin: * so a browser
// frontend on another origin can call the API. CORS preflight requests are
// answered with 204. Panics are recovered and each request is logged to slog.
//
// Lifecycle
//
// NewServer wires routes and timeouts. Start serves in a goroutine and
// reports a failed bind on the returned channel; Stop shuts down gracefully.
package server
