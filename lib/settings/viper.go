package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const (
	Title                     = "title"
	IP                        = "ip"
	Port                      = "port"
	DBType                    = "dbType"
	DBSettingsFilename        = "dbSettings.filename"
	DBSettingsHost            = "dbSettings.host"
	DBSettingsPort            = "dbSettings.port"
	DBSettingsDatabase        = "dbSettings.database"
	DBSettingsUser            = "dbSettings.user"
	DBSettingsPassword        = "dbSettings.password"
	CanvasDefaultWidth        = "canvasDefaults.width"
	CanvasDefaultHeight       = "canvasDefaults.height"
	CanvasDefaultEditInterval = "canvasDefaults.editInterval"
	CanvasLimitMaxWidth       = "canvasLimits.maxWidth"
	CanvasLimitMaxHeight      = "canvasLimits.maxHeight"
	CanvasLimitMaxTitle       = "canvasLimits.maxTitle"
	EnableMetrics             = "enableMetrics"
	LogLevel                  = "logLevel"
)

// ReadConfig loads settings.json from the working directory (or the
// given JSON string, used by tests), layered under pixelboard_*
// environment variables, and applies defaults for everything unset.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pixelboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
			// no settings file is fine, defaults apply
		}
	}

	viper.SetDefault(Title, "Pixelboard")
	viper.SetDefault(IP, "0.0.0.0")
	viper.SetDefault(Port, "9001")

	viper.SetDefault(DBType, SQLITE)
	viper.SetDefault(DBSettingsFilename, "var/pixelboard.db")
	viper.SetDefault(DBSettingsHost, nil)
	viper.SetDefault(DBSettingsPort, nil)
	viper.SetDefault(DBSettingsDatabase, nil)
	viper.SetDefault(DBSettingsUser, nil)
	viper.SetDefault(DBSettingsPassword, nil)

	viper.SetDefault(CanvasDefaultWidth, 25)
	viper.SetDefault(CanvasDefaultHeight, 25)
	viper.SetDefault(CanvasDefaultEditInterval, 5)
	viper.SetDefault(CanvasLimitMaxWidth, 1000)
	viper.SetDefault(CanvasLimitMaxHeight, 1000)
	viper.SetDefault(CanvasLimitMaxTitle, 100)

	viper.SetDefault(EnableMetrics, false)
	viper.SetDefault(LogLevel, "info")

	dbType, err := ParseDBType(viper.GetString(DBType))
	if err != nil {
		return nil, err
	}

	retrievedSettings := Settings{
		Title:  viper.GetString(Title),
		IP:     viper.GetString(IP),
		Port:   viper.GetString(Port),
		DBType: dbType,
		DBSettings: DBSettings{
			Filename: viper.GetString(DBSettingsFilename),
			Host:     viper.GetString(DBSettingsHost),
			Port:     viper.GetString(DBSettingsPort),
			Database: viper.GetString(DBSettingsDatabase),
			User:     viper.GetString(DBSettingsUser),
			Password: viper.GetString(DBSettingsPassword),
		},
		CanvasDefaults: CanvasDefaults{
			Width:        viper.GetInt(CanvasDefaultWidth),
			Height:       viper.GetInt(CanvasDefaultHeight),
			EditInterval: viper.GetInt64(CanvasDefaultEditInterval),
		},
		CanvasLimits: CanvasLimits{
			MaxWidth:  viper.GetInt(CanvasLimitMaxWidth),
			MaxHeight: viper.GetInt(CanvasLimitMaxHeight),
			MaxTitle:  viper.GetInt(CanvasLimitMaxTitle),
		},
		EnableMetrics: viper.GetBool(EnableMetrics),
		LogLevel:      viper.GetString(LogLevel),
	}

	Displayed = retrievedSettings
	return &retrievedSettings, nil
}
