package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
	"github.com/spf13/viper"
)

// Source drivers.
const (
	DriverSheets = "sheets"
	DriverSQLite = "sqlite"
)

// SQLiteConfig locates a SQLite snapshot.
type SQLiteConfig struct {
	Path  string
	Table string
}

// SetDefaults registers default values for every known key. The worksheet
// has no viper default so GOOGLE_SHEETS_WORKSHEET can still apply; the
// sheets package falls back to its own default.
func SetDefaults() {
	viper.SetDefault("server.addr", ":5000")
	viper.SetDefault("source.driver", DriverSheets)
	viper.SetDefault("sheets.timeout", "30s")
	viper.SetDefault("sheets.token_file", "$HOME/.config/stt/sheets_token.json")
	viper.SetDefault("sqlite.path", "$HOME/.local/share/stt/snapshot.db")
	viper.SetDefault("sqlite.table", "stt")
	viper.SetDefault("columns.origin", model.DefaultOriginColumn)
	viper.SetDefault("columns.destination", model.DefaultDestinationColumn)
	viper.SetDefault("columns.month", model.DefaultMonthColumn)
	viper.SetDefault("columns.count", model.DefaultCountColumn)
}

// ServerAddr returns the listen address. A bare PORT environment variable,
// as set by most hosting platforms, wins over the configured address.
func ServerAddr() string {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return "0.0.0.0:" + port
	}
	if addr := viper.GetString("server.addr"); addr != "" {
		return addr
	}
	return ":5000"
}

// SourceDriver returns the configured source driver.
func SourceDriver() (string, error) {
	driver := strings.ToLower(strings.TrimSpace(viper.GetString("source.driver")))
	switch driver {
	case "", DriverSheets:
		return DriverSheets, nil
	case DriverSQLite:
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("%w: unknown source driver %q", common.ErrInvalidConfig, driver)
	}
}

// LoadSQLiteConfig returns the snapshot location.
func LoadSQLiteConfig() SQLiteConfig {
	cfg := SQLiteConfig{
		Path:  ExpandPath(viper.GetString("sqlite.path")),
		Table: viper.GetString("sqlite.table"),
	}
	if cfg.Table == "" {
		cfg.Table = "stt"
	}
	return cfg
}

// LoadColumns returns the worksheet header names, falling back to the
// defaults for any key left unset.
func LoadColumns() (model.Columns, error) {
	cols := model.DefaultColumns()
	if v := viper.GetString("columns.origin"); v != "" {
		cols.Origin = v
	}
	if v := viper.GetString("columns.destination"); v != "" {
		cols.Destination = v
	}
	if v := viper.GetString("columns.month"); v != "" {
		cols.Month = v
	}
	if v := viper.GetString("columns.count"); v != "" {
		cols.Count = v
	}
	if err := cols.Validate(); err != nil {
		return model.Columns{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return cols, nil
}
