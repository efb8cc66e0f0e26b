package update

import (
	"os"
	"strings"
	"time"
)

type RuntimeConfig struct {
	DBPath            string
	WeekStart         time.Weekday
	DefaultTaskTitles []string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:            ".daygrid.db",
		WeekStart:         time.Sunday,
		DefaultTaskTitles: []string{"Exercise", "Read", "Plan tomorrow"},
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("DAYGRID_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvWeekday("DAYGRID_WEEK_START"); ok {
		cfg.WeekStart = v
	}
	if v := strings.TrimSpace(os.Getenv("DAYGRID_DEFAULT_TASKS")); v != "" {
		titles := make([]string, 0, 4)
		for _, title := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(title); trimmed != "" {
				titles = append(titles, trimmed)
			}
		}
		if len(titles) > 0 {
			cfg.DefaultTaskTitles = titles
		}
	}
	return cfg
}

func getEnvWeekday(name string) (time.Weekday, bool) {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch raw {
	case "sunday", "sun":
		return time.Sunday, true
	case "monday", "mon":
		return time.Monday, true
	default:
		return time.Sunday, false
	}
}
