package config

import "os"

func IsDebug() bool {
	return os.Getenv("ECOSHOP_DEBUG") == "1"
}
