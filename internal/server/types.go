package server

// JokeResponse is the payload for GET /api/joke.
type JokeResponse struct {
	Joke string `json:"joke"`
}

// HealthResponse is the payload for GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
