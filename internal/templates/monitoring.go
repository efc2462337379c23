package templates

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type prometheusYAML struct {
	Global struct {
		ScrapeInterval string            `yaml:"scrape_interval"`
		ExternalLabels map[string]string `yaml:"external_labels,omitempty"`
	} `yaml:"global"`
	ScrapeConfigs []scrapeConfigYAML `yaml:"scrape_configs"`
}

type scrapeConfigYAML struct {
	JobName       string `yaml:"job_name"`
	MetricsPath   string `yaml:"metrics_path,omitempty"`
	StaticConfigs []struct {
		Targets []string `yaml:"targets"`
	} `yaml:"static_configs"`
}

// RenderMonitoring renders the monitoring scrape configuration. The pinned
// release tag appears in the header comment and in the external labels so a
// version change is visible in both places.
func RenderMonitoring(s MonitorSettings) (string, error) {
	doc := prometheusYAML{}
	doc.Global.ScrapeInterval = s.ScrapeInterval
	doc.Global.ExternalLabels = map[string]string{
		"monitor":            s.JobName,
		"prometheus_version": s.Version,
	}

	scrape := scrapeConfigYAML{
		JobName:     s.JobName,
		MetricsPath: s.MetricsPath,
	}
	scrape.StaticConfigs = append(scrape.StaticConfigs, struct {
		Targets []string `yaml:"targets"`
	}{Targets: []string{"localhost:" + s.MetricsPort}})
	doc.ScrapeConfigs = []scrapeConfigYAML{scrape}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render monitoring: %w", err)
	}

	header := fmt.Sprintf("# Prometheus %s scrape configuration for %s\n", s.Version, s.JobName)
	return header + string(data), nil
}
