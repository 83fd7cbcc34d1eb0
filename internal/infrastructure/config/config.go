package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Storage        StorageConfig        `mapstructure:"storage"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	Parser         ParserConfig         `mapstructure:"parser"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Extractor      ExtractorConfig      `mapstructure:"extractor"`
	Maintenance    MaintenanceConfig    `mapstructure:"maintenance"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port" validate:"min=1,max=65535"`
	Mode              string        `mapstructure:"mode" validate:"omitempty,oneof=debug release test"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CorsOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=sqlite postgres"`
	File            string        `mapstructure:"file"`
	Host            string        `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username" validate:"required_if=Driver postgres"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database" validate:"required_if=Driver postgres"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns" validate:"min=1"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns" validate:"min=1"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts" validate:"min=0"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// StorageConfig lists candidate directories for the embedded database file
type StorageConfig struct {
	Candidates []string `mapstructure:"candidates"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// ParserConfig contains statement parsing settings
type ParserConfig struct {
	IssuerPrefix        string   `mapstructure:"issuerPrefix" validate:"required,alpha"`
	SkipPrefixes        []string `mapstructure:"skipPrefixes"`
	DefaultExcludeTerms []string `mapstructure:"defaultExcludeTerms"`
}

// ReconciliationConfig contains the enumerated expense categories
type ReconciliationConfig struct {
	Categories []string `mapstructure:"categories" validate:"required,min=1,dive,required"`
}

// ExtractorConfig contains text extraction settings
type ExtractorConfig struct {
	PdfToTextPath  string        `mapstructure:"pdftotextPath" validate:"required"`
	MaxUploadBytes int64         `mapstructure:"maxUploadBytes" validate:"min=1"`
	Timeout        time.Duration `mapstructure:"timeout"` // seconds
}

// MaintenanceConfig contains admin maintenance settings
type MaintenanceConfig struct {
	DateNormalization DateNormalizationConfig `mapstructure:"dateNormalization"`
}

// DateNormalizationConfig controls the one-shot stored date rewrite
type DateNormalizationConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	FromLayout string `mapstructure:"fromLayout" validate:"required_if=Enabled true"`
	ToLayout   string `mapstructure:"toLayout" validate:"required_if=Enabled true"`
}
