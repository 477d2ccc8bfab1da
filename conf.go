package plando

import (
	"fmt"
	"log"
	"os"
	"path"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel     string
	LogPath      string
	DateFormat   string
	UpcomingDays int
}

const (
	DefaultLogLevel     = "WARN"
	DefaultUpcomingDays = 7
)

var (
	userHome, _    = os.UserHomeDir()
	DefaultLogPath = path.Join(userHome, ".plando", "plando.log")
)

// LoadConfig merges, in order of precedence: environment variables, the
// plando.conf file under the user config dir (created with defaults on first
// run), and compiled defaults.
func LoadConfig() Config {
	confFromEnv := rawConfig{
		LogLevel:     os.Getenv("PLANDO_LOG_LEVEL"),
		LogPath:      os.Getenv("PLANDO_LOG_PATH"),
		DateFormat:   os.Getenv("PLANDO_DATE_FORMAT"),
		UpcomingDays: os.Getenv("PLANDO_UPCOMING_DAYS"),
	}

	if os.Getenv("PLANDO_DEV_MODE") != "" {
		fmt.Println("Dev mode is on!")
		confFromEnv.LogLevel = "DEBUG"
		confFromEnv.LogPath = path.Join(os.TempDir(), "plando-dev.log")
	}

	// load file
	cfgDir, _ := os.UserConfigDir()
	cfgDir = path.Join(cfgDir, "plando")
	confFile := path.Join(cfgDir, "plando.conf")
	if _, err := os.Stat(confFile); err != nil {
		log.Println("creating default conf file")
		if err := os.MkdirAll(cfgDir, 0o744); err != nil {
			panic(err)
		}
		f, err := os.Create(confFile)
		if err != nil {
			panic(err)
		}
		defaults := "PLANDO_LOG_LEVEL=" + DefaultLogLevel + "\n" +
			"PLANDO_LOG_PATH=" + DefaultLogPath + "\n" +
			"PLANDO_DATE_FORMAT=" + DefaultDateLayout + "\n" +
			"PLANDO_UPCOMING_DAYS=" + strconv.Itoa(DefaultUpcomingDays) + "\n"
		if _, err := f.WriteString(defaults); err != nil {
			panic(err)
		}
		_ = f.Close()
	}
	if err := godotenv.Load(confFile); err != nil {
		panic(err)
	}
	confFromFile := rawConfig{
		LogLevel:     os.Getenv("PLANDO_LOG_LEVEL"),
		LogPath:      os.Getenv("PLANDO_LOG_PATH"),
		DateFormat:   os.Getenv("PLANDO_DATE_FORMAT"),
		UpcomingDays: os.Getenv("PLANDO_UPCOMING_DAYS"),
	}

	merged := rawConfig{
		LogLevel:     coalesce(confFromEnv.LogLevel, confFromFile.LogLevel, DefaultLogLevel),
		LogPath:      coalesce(confFromEnv.LogPath, confFromFile.LogPath, DefaultLogPath),
		DateFormat:   coalesce(confFromEnv.DateFormat, confFromFile.DateFormat, DefaultDateLayout),
		UpcomingDays: coalesce(confFromEnv.UpcomingDays, confFromFile.UpcomingDays),
	}

	days, err := strconv.Atoi(merged.UpcomingDays)
	if err != nil || days < 0 {
		days = DefaultUpcomingDays
	}

	return Config{
		LogLevel:     merged.LogLevel,
		LogPath:      merged.LogPath,
		DateFormat:   merged.DateFormat,
		UpcomingDays: days,
	}
}

// rawConfig holds unparsed string values before merging.
type rawConfig struct {
	LogLevel     string
	LogPath      string
	DateFormat   string
	UpcomingDays string
}

func coalesce(args ...string) string {
	for _, s := range args {
		if s != "" {
			return s
		}
	}
	return ""
}
