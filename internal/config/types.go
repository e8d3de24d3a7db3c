package config

// Config holds all configuration for the application.
type Config struct {
	Port        string
	FrontendDir string
	CORS        CORSConfig
}

// CORSConfig lists the origins the browser app may call us from.
type CORSConfig struct {
	AllowedOrigins []string
}
