package routes

import (
	"fmt"
)

const (
	siteConfigPath = "/site-config.%s"
	healthPath     = "/healthz"
)

func GetSiteConfigPath(ext string) string {
	return fmt.Sprintf(siteConfigPath, ext)
}

func GetHealthPath() string {
	return healthPath
}
