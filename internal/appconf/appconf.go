package appconf

// Environment identifies the operating environment of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value (or ENV variable) to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch env {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds the configuration settings for the API server: the network
// port to listen on, the operating environment, the accepted API keys, and
// where the ingestion pipeline left the catalog database.
type Config struct {
	Port          int
	Env           Environment
	ApiKeys       []string
	RateLimit     int
	CatalogDBPath string
}
