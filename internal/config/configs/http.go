package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the server binds to. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" validate:"required"`
}
