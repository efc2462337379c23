package templates

import (
	"fmt"

	"github.com/joho/godotenv"
)

// RenderEnvSample renders the environment-variable sample from the deploy,
// build, manifest, and monitoring settings. godotenv emits keys in sorted
// order, so the output is deterministic.
func RenderEnvSample(deploy DeploySettings, build BuildSettings, manifests ManifestSettings, monitor MonitorSettings) (string, error) {
	env := map[string]string{
		"APP_ENV":            deploy.Environment,
		"APP_DOMAIN":         deploy.Domain,
		"APP_PORT":           build.Port,
		"CONTAINER_IMAGE":    manifests.Image,
		"KUBE_NAMESPACE":     manifests.Namespace,
		"PROMETHEUS_VERSION": monitor.Version,
		"SCRAPE_INTERVAL":    monitor.ScrapeInterval,
	}

	out, err := godotenv.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("render env sample: %w", err)
	}
	return out + "\n", nil
}
