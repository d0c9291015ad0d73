// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"domainlens/internal/core/ports"
)

type Config struct {
	// Core
	Core Core `yaml:"core"`

	// Import configura la ingesta masiva
	Import Import `yaml:"import"`

	// Providers: mapa dinámico de configuraciones por proveedor
	// Key = provider name (ej: "wayback", "dnsbl", "spamcheck")
	Providers map[string]ports.ProviderConfig `yaml:"providers"`

	// Output
	Output Output `yaml:"output"`

	// UI
	UI UI `yaml:"ui"`
}

type Core struct {
	// Domain dominio individual a analizar
	Domain string `yaml:"domain"`

	// Niche nicho objetivo para la sub-puntuación de relevancia
	Niche string `yaml:"niche"`

	// Workers concurrencia máxima para análisis en lote
	Workers int `yaml:"workers"`

	// TimeoutS timeout global en segundos (0 = sin timeout)
	TimeoutS int `yaml:"timeout"`

	PrintVersion bool `yaml:"-"`
}

type Import struct {
	// File archivo a importar (CSV SpamZilla o texto libre, autodetectado)
	File string `yaml:"file"`

	// OwnedFile lista de dominios ya en propiedad
	OwnedFile string `yaml:"owned_file"`

	// ScrapeURL página pública de listados de dominios expirados a
	// scrapear como cuarta fuente del import
	ScrapeURL string `yaml:"scrape_url"`

	// ScrapeLimit tope de dominios a extraer de la página
	ScrapeLimit int `yaml:"scrape_limit"`

	// CheckAvailability habilita el chequeo WHOIS/DNS por item importado
	CheckAvailability bool `yaml:"check_availability"`

	// InterCallDelayMs retardo mínimo entre llamadas de enriquecimiento
	// por item (backpressure contra rate limits de terceros)
	InterCallDelayMs int `yaml:"inter_call_delay_ms"`
}

type Output struct {
	Dir           string `yaml:"dir"`
	TableDisabled bool   `yaml:"no_table"`
	XLSX          bool   `yaml:"xlsx"`
	Pretty        bool   `yaml:"pretty"`
}

type UI struct {
	// Quiet desactiva el presenter visual (solo logs)
	Quiet bool `yaml:"quiet"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Core: Core{
			Workers:  4,
			TimeoutS: 60,
		},
		Import: Import{
			InterCallDelayMs: 250,
			ScrapeLimit:      50,
		},
		Providers: map[string]ports.ProviderConfig{
			"wayback": {
				Enabled:   true,
				Timeout:   20 * time.Second,
				Retries:   2,
				RateLimit: 1.0, // CDX API es lento y sensible a ráfagas
				Priority:  10,
			},
			"dnsbl": {
				Enabled:   true,
				Timeout:   10 * time.Second,
				Retries:   1,
				RateLimit: 0,
				Priority:  8,
			},
			"spamcheck": {
				Enabled:   true,
				Timeout:   5 * time.Second,
				Retries:   0,
				RateLimit: 0,
				Priority:  6,
			},
			"availability": {
				Enabled:   false, // opt-in: genera tráfico WHOIS por item
				Timeout:   15 * time.Second,
				Retries:   1,
				RateLimit: 0.5,
				Priority:  4,
			},
		},
		Output: Output{
			Dir: "domainlens_out",
		},
	}
}

// Load inicializa la configuración: defaults -> archivo YAML -> ENV -> flags
// (los flags tienen la última palabra).
func Load() (Config, error) {
	return LoadFromArgs(pflag.CommandLine, os.Args[1:])
}

// LoadFromArgs es Load con flag set y argumentos explícitos (testable).
func LoadFromArgs(fs *pflag.FlagSet, args []string) (Config, error) {
	cfg := DefaultConfig()

	// Archivo YAML opcional (vía ENV; el flag -config se resuelve antes
	// de parsear el resto porque afecta a los defaults)
	configPath := getenv("DOMAINLENS_CONFIG", "")
	for i, a := range args {
		if (a == "--config" || a == "-config") && i+1 < len(args) {
			configPath = args[i+1]
		}
		if strings.HasPrefix(a, "--config=") {
			configPath = strings.TrimPrefix(a, "--config=")
		}
	}
	if configPath != "" {
		if err := loadFromFile(&cfg, configPath); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", configPath, err)
		}
	}

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, fs, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// loadFromFile fusiona un archivo YAML sobre la configuración actual.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("DOMAINLENS_DOMAIN", ""); v != "" {
		cfg.Core.Domain = v
	}
	if v := getenv("DOMAINLENS_NICHE", ""); v != "" {
		cfg.Core.Niche = v
	}
	if v := getenv("DOMAINLENS_WORKERS", ""); v != "" {
		cfg.Core.Workers = parseInt(v, cfg.Core.Workers)
	}
	if v := getenv("DOMAINLENS_TIMEOUT", ""); v != "" {
		cfg.Core.TimeoutS = parseInt(v, cfg.Core.TimeoutS)
	}
	if v := getenv("DOMAINLENS_OUTPUT_DIR", ""); v != "" {
		cfg.Output.Dir = v
	}
	if v := getenv("DOMAINLENS_IMPORT_DELAY_MS", ""); v != "" {
		cfg.Import.InterCallDelayMs = parseInt(v, cfg.Import.InterCallDelayMs)
	}
	if v := getenv("DOMAINLENS_SCRAPE_URL", ""); v != "" {
		cfg.Import.ScrapeURL = v
	}
	if v := getenv("DOMAINLENS_SCRAPE_LIMIT", ""); v != "" {
		cfg.Import.ScrapeLimit = parseInt(v, cfg.Import.ScrapeLimit)
	}

	// Providers desde ENV
	// Formato: DOMAINLENS_PROVIDERS_WAYBACK_ENABLED=true
	//          DOMAINLENS_PROVIDERS_WAYBACK_TIMEOUT=30
	for name := range cfg.Providers {
		prefix := fmt.Sprintf("DOMAINLENS_PROVIDERS_%s_", strings.ToUpper(name))
		pc := cfg.Providers[name]

		if v := getenv(prefix+"ENABLED", ""); v != "" {
			pc.Enabled = parseBool(v)
		}
		if v := getenv(prefix+"TIMEOUT", ""); v != "" {
			pc.Timeout = time.Duration(parseInt(v, int(pc.Timeout.Seconds()))) * time.Second
		}
		if v := getenv(prefix+"RETRIES", ""); v != "" {
			pc.Retries = parseInt(v, pc.Retries)
		}
		if v := getenv(prefix+"RATELIMIT", ""); v != "" {
			pc.RateLimit = parseFloat(v, pc.RateLimit)
		}
		if v := getenv(prefix+"PRIORITY", ""); v != "" {
			pc.Priority = parseInt(v, pc.Priority)
		}

		cfg.Providers[name] = pc
	}
}

// loadFromFlags parsea flags de CLI.
func loadFromFlags(cfg *Config, fs *pflag.FlagSet, args []string) error {
	var configPath string
	fs.StringVar(&configPath, "config", "", "Ruta a archivo de configuración YAML")

	fs.StringVarP(&cfg.Core.Domain, "domain", "d", cfg.Core.Domain, "Dominio a analizar (e.g., techzone.com)")
	fs.StringVarP(&cfg.Core.Niche, "niche", "n", cfg.Core.Niche, "Nicho objetivo para relevancia (e.g., finance)")
	fs.IntVarP(&cfg.Core.Workers, "workers", "w", cfg.Core.Workers, "Concurrencia máxima para análisis en lote")
	fs.IntVar(&cfg.Core.TimeoutS, "timeout", cfg.Core.TimeoutS, "Timeout global en segundos (0 = sin timeout)")
	fs.BoolVarP(&cfg.Core.PrintVersion, "version", "V", false, "Imprimir versión y salir")

	fs.StringVarP(&cfg.Import.File, "import", "i", cfg.Import.File, "Archivo a importar (CSV SpamZilla o texto, autodetectado)")
	fs.StringVar(&cfg.Import.OwnedFile, "owned", cfg.Import.OwnedFile, "Lista de dominios en propiedad")
	fs.BoolVar(&cfg.Import.CheckAvailability, "check-availability", cfg.Import.CheckAvailability, "Chequear disponibilidad WHOIS/DNS de los items importados")
	fs.IntVar(&cfg.Import.InterCallDelayMs, "import.delay-ms", cfg.Import.InterCallDelayMs, "Retardo mínimo entre llamadas de enriquecimiento por item")
	fs.StringVar(&cfg.Import.ScrapeURL, "scrape", cfg.Import.ScrapeURL, "URL de listado público de dominios expirados a scrapear")
	fs.IntVar(&cfg.Import.ScrapeLimit, "scrape.limit", cfg.Import.ScrapeLimit, "Tope de dominios a extraer del listado")

	fs.StringVarP(&cfg.Output.Dir, "out", "o", cfg.Output.Dir, "Directorio de salida")
	fs.BoolVar(&cfg.Output.TableDisabled, "out.no-table", cfg.Output.TableDisabled, "Desactivar salida en tabla")
	fs.BoolVar(&cfg.Output.XLSX, "out.xlsx", cfg.Output.XLSX, "Exportar colección a XLSX")
	fs.BoolVar(&cfg.Output.Pretty, "out.pretty", cfg.Output.Pretty, "JSON con indentación en stdout")

	fs.BoolVarP(&cfg.UI.Quiet, "quiet", "q", cfg.UI.Quiet, "Desactivar presenter visual")

	// Provider toggles (enabled via flags, el resto via ENV o YAML)
	for name := range cfg.Providers {
		pc := cfg.Providers[name]
		fs.BoolVar(&pc.Enabled, "providers."+name, pc.Enabled,
			fmt.Sprintf("Habilitar proveedor %s", name))
		cfg.Providers[name] = pc
	}

	return fs.Parse(args)
}

func normalize(c *Config) {
	c.Core.Domain = strings.TrimSpace(strings.ToLower(strings.TrimSuffix(c.Core.Domain, ".")))
	c.Core.Niche = strings.TrimSpace(strings.ToLower(c.Core.Niche))
	if c.Core.Workers < 1 {
		c.Core.Workers = 1
	}
	if c.Core.TimeoutS < 0 {
		c.Core.TimeoutS = 0
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "domainlens_out"
	}
	if c.Import.InterCallDelayMs < 0 {
		c.Import.InterCallDelayMs = 0
	}
	if c.Import.ScrapeLimit < 1 {
		c.Import.ScrapeLimit = 50
	}
}

// Timeout devuelve el timeout global como time.Duration (0 = sin timeout).
func (c Config) Timeout() time.Duration {
	if c.Core.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.Core.TimeoutS) * time.Second
}

// InterCallDelay devuelve el retardo mínimo entre llamadas como Duration.
func (c Config) InterCallDelay() time.Duration {
	if c.Import.InterCallDelayMs <= 0 {
		return 0
	}
	return time.Duration(c.Import.InterCallDelayMs) * time.Millisecond
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}
