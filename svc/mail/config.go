package mail

// Config holds mail dispatcher settings loaded from the environment.
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"LinkVault"`
	Workers   int    `env:"MAIL_WORKERS" envDefault:"2"`
	QueueSize int    `env:"MAIL_QUEUE_SIZE" envDefault:"128"`

	// BaseURL is the API origin for verification links,
	// ClientURL the SPA origin for reset links.
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	ClientURL string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
}
