package settings

type DBSettings struct {
	Filename string
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

type CanvasDefaults struct {
	Width        int
	Height       int
	EditInterval int64
}

type CanvasLimits struct {
	MaxWidth  int
	MaxHeight int
	MaxTitle  int
}

type Settings struct {
	Title          string         `json:"title"`
	IP             string         `json:"ip"`
	Port           string         `json:"port"`
	DBType         IDBType        `json:"dbType"`
	DBSettings     DBSettings     `json:"dbSettings"`
	CanvasDefaults CanvasDefaults `json:"canvasDefaults"`
	CanvasLimits   CanvasLimits   `json:"canvasLimits"`
	EnableMetrics  bool           `json:"enableMetrics"`
	LogLevel       string         `json:"logLevel"`
}

var Displayed Settings
