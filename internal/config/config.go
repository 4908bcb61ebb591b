package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultRFMSBaseURL = "https://api.rfms.online/v2"
	DefaultStoreNumber = "49"
	DefaultSalesperson = "ZORAN VEKIC"
	DefaultState       = "QLD"
	DefaultCountry     = "Australia"
)

// Config holds all configuration for the purchase order extraction service
type Config struct {
	// Application configuration
	Version   string
	LogLevel  string
	LogFormat string // "text" or "json"

	// RFMS API configuration
	RFMSBaseURL  string
	RFMSStoreID  string
	RFMSUsername string
	RFMSAPIKey   string

	// Order defaults applied when extraction yields nothing
	StoreNumber             string
	Salesperson             string
	DefaultState            string
	DefaultCountry          string
	FallbackEmail           string
	FallbackSupervisorPhone string

	// Placeholder product line used on every generated order
	ProductID         string
	ProductColorID    string
	ProductPriceLevel string
	ProductLineGroup  string

	// Phone numbers that must never surface as customer contacts
	// (office lines, the company ABN and similar document-level numbers)
	ExcludedNumbers []string

	// Email domains that belong to builders or to us, never to customers
	CompanyEmailDomains []string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version:   "1.0.0",
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,

		RFMSBaseURL: DefaultRFMSBaseURL,

		StoreNumber:             DefaultStoreNumber,
		Salesperson:             DefaultSalesperson,
		DefaultState:            DefaultState,
		DefaultCountry:          DefaultCountry,
		FallbackEmail:           "accounts@atozflooringsolutions.com.au",
		FallbackSupervisorPhone: "0447012125",

		ProductID:         "213322",
		ProductColorID:    "2133",
		ProductPriceLevel: "10",
		ProductLineGroup:  "4",

		ExcludedNumbers: []string{
			"0731100077",  // Ambrose office line
			"74658650821", // ABN
			"35131176",    // job number format false positive
			"999869951",
		},

		CompanyEmailDomains: []string{
			"ambroseconstruct.com.au",
			"atozflooringsolutions.com.au",
		},
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PO_EXTRACT")
	viper.AutomaticEnv()

	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("logformat", cfg.LogFormat)
	viper.SetDefault("rfms.baseurl", cfg.RFMSBaseURL)
	viper.SetDefault("rfms.storeid", cfg.RFMSStoreID)
	viper.SetDefault("rfms.username", cfg.RFMSUsername)
	viper.SetDefault("rfms.apikey", cfg.RFMSAPIKey)
	viper.SetDefault("storenumber", cfg.StoreNumber)
	viper.SetDefault("salesperson", cfg.Salesperson)
	viper.SetDefault("state", cfg.DefaultState)
	viper.SetDefault("fallbackemail", cfg.FallbackEmail)
	viper.SetDefault("fallbackphone", cfg.FallbackSupervisorPhone)
	viper.SetDefault("excludednumbers", cfg.ExcludedNumbers)
	viper.SetDefault("companydomains", cfg.CompanyEmailDomains)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.String("logformat", cfg.LogFormat, "Log format (text, json)")
	pflag.String("rfms-baseurl", cfg.RFMSBaseURL, "RFMS API base URL")
	pflag.String("rfms-storeid", cfg.RFMSStoreID, "RFMS store identifier used for API authentication")
	pflag.String("rfms-username", cfg.RFMSUsername, "RFMS API username")
	pflag.String("rfms-apikey", cfg.RFMSAPIKey, "RFMS API key")
	pflag.String("storenumber", cfg.StoreNumber, "Store number stamped on generated orders")
	pflag.String("salesperson", cfg.Salesperson, "Default salesperson for generated orders")
	pflag.String("state", cfg.DefaultState, "Default address state when none is extracted")
	pflag.String("fallbackemail", cfg.FallbackEmail, "Email used when no customer email is extracted")
	pflag.String("fallbackphone", cfg.FallbackSupervisorPhone, "Phone used when no supervisor phone is extracted")
	pflag.StringSlice("excludednumbers", cfg.ExcludedNumbers, "Phone-like numbers never treated as customer contacts")
	pflag.StringSlice("companydomains", cfg.CompanyEmailDomains, "Email domains never treated as customer emails")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("logformat", pflag.Lookup("logformat"))
	_ = viper.BindPFlag("rfms.baseurl", pflag.Lookup("rfms-baseurl"))
	_ = viper.BindPFlag("rfms.storeid", pflag.Lookup("rfms-storeid"))
	_ = viper.BindPFlag("rfms.username", pflag.Lookup("rfms-username"))
	_ = viper.BindPFlag("rfms.apikey", pflag.Lookup("rfms-apikey"))
	_ = viper.BindPFlag("storenumber", pflag.Lookup("storenumber"))
	_ = viper.BindPFlag("salesperson", pflag.Lookup("salesperson"))
	_ = viper.BindPFlag("state", pflag.Lookup("state"))
	_ = viper.BindPFlag("fallbackemail", pflag.Lookup("fallbackemail"))
	_ = viper.BindPFlag("fallbackphone", pflag.Lookup("fallbackphone"))
	_ = viper.BindPFlag("excludednumbers", pflag.Lookup("excludednumbers"))
	_ = viper.BindPFlag("companydomains", pflag.Lookup("companydomains"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPO Extract - structured data extraction from builder purchase order PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_LOGLEVEL         Log level\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_LOGFORMAT        Log format\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_RFMS_BASEURL     RFMS API base URL\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_RFMS_STOREID     RFMS store identifier\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_RFMS_USERNAME    RFMS API username\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_RFMS_APIKEY      RFMS API key\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_STORENUMBER      Store number for generated orders\n")
		fmt.Fprintf(os.Stderr, "  PO_EXTRACT_SALESPERSON      Default salesperson\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.LogFormat = viper.GetString("logformat")
	cfg.RFMSBaseURL = viper.GetString("rfms.baseurl")
	cfg.RFMSStoreID = viper.GetString("rfms.storeid")
	cfg.RFMSUsername = viper.GetString("rfms.username")
	cfg.RFMSAPIKey = viper.GetString("rfms.apikey")
	cfg.StoreNumber = viper.GetString("storenumber")
	cfg.Salesperson = viper.GetString("salesperson")
	cfg.DefaultState = viper.GetString("state")
	cfg.FallbackEmail = viper.GetString("fallbackemail")
	cfg.FallbackSupervisorPhone = viper.GetString("fallbackphone")
	cfg.ExcludedNumbers = viper.GetStringSlice("excludednumbers")
	cfg.CompanyEmailDomains = viper.GetStringSlice("companydomains")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.RFMSBaseURL == "" {
		return errors.New("RFMS base URL cannot be empty")
	}

	if c.StoreNumber == "" {
		return errors.New("store number cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", c.LogFormat)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsCompanyEmail reports whether addr belongs to one of the configured
// company domains rather than to a customer.
func (c *Config) IsCompanyEmail(addr string) bool {
	addr = strings.ToLower(strings.TrimSpace(addr))
	for _, domain := range c.CompanyEmailDomains {
		if strings.HasSuffix(addr, "@"+strings.ToLower(domain)) {
			return true
		}
	}
	return false
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{LogLevel: %s, LogFormat: %s, RFMSBaseURL: %s, StoreNumber: %s, Salesperson: %s}",
		c.LogLevel, c.LogFormat, c.RFMSBaseURL, c.StoreNumber, c.Salesperson)
}
