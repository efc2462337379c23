// Package templates defines the typed settings records for each generated file
// and the formatters that render them to text. Every formatter derives its
// output from the full settings record in one pass, so rendering is
// deterministic and independent of edit order.
package templates

// Step identifiers used as store keys. One per configuration domain.
const (
	StepRepository = "repository"
	StepPipeline   = "pipeline"
	StepBuild      = "build"
	StepManifests  = "manifests"
	StepDeploy     = "deploy"
	StepMonitoring = "monitoring"
)

// RepoSettings describes the source repository and registry coordinates.
type RepoSettings struct {
	Owner    string
	Project  string
	URL      string
	Branch   string
	Registry string
}

// DefaultRepo returns the built-in repository settings.
func DefaultRepo() RepoSettings {
	return RepoSettings{
		Owner:    "acme",
		Project:  "sample-app",
		URL:      "https://gitlab.com/acme/sample-app.git",
		Branch:   "main",
		Registry: "registry.gitlab.com/acme/sample-app",
	}
}

// PipelineSettings feeds the CI pipeline script.
type PipelineSettings struct {
	Image       string
	ImageTag    string
	Environment string
	RunTests    bool
}

// DefaultPipeline returns the built-in pipeline settings.
func DefaultPipeline() PipelineSettings {
	return PipelineSettings{
		Image:       "golang:1.24",
		ImageTag:    "latest",
		Environment: "production",
		RunTests:    true,
	}
}

// BuildSettings feeds the container build script.
type BuildSettings struct {
	BaseImage    string
	RuntimeImage string
	Binary       string
	Workdir      string
	Port         string
}

// DefaultBuild returns the built-in build settings.
func DefaultBuild() BuildSettings {
	return BuildSettings{
		BaseImage:    "golang:1.24-alpine",
		RuntimeImage: "alpine:3.20",
		Binary:       "sample-app",
		Workdir:      "/app",
		Port:         "8080",
	}
}

// ManifestSettings feeds the cluster deployment manifests.
type ManifestSettings struct {
	AppName       string
	Namespace     string
	Replicas      string
	Image         string
	ContainerPort string
	ServicePort   string
	Host          string
}

// DefaultManifests returns the built-in manifest settings.
func DefaultManifests() ManifestSettings {
	return ManifestSettings{
		AppName:       "sample-app",
		Namespace:     "default",
		Replicas:      "3",
		Image:         "registry.gitlab.com/acme/sample-app:latest",
		ContainerPort: "8080",
		ServicePort:   "80",
		Host:          "sample-app.example.com",
	}
}

// DeploySettings feeds the environment sample and the documentation.
type DeploySettings struct {
	Environment string
	Domain      string
	DocTitle    string
	Description string
}

// DefaultDeploy returns the built-in deployment settings. DocTitle defaults to
// empty so the documentation title derives from the repository project name.
func DefaultDeploy() DeploySettings {
	return DeploySettings{
		Environment: "production",
		Domain:      "sample-app.example.com",
		Description: "Service deployment assembled with pipewright.",
	}
}

// MonitorSettings feeds the monitoring configuration.
type MonitorSettings struct {
	Version        string
	ScrapeInterval string
	JobName        string
	MetricsPort    string
	MetricsPath    string
}

// DefaultMonitor returns the built-in monitoring settings.
func DefaultMonitor() MonitorSettings {
	return MonitorSettings{
		Version:        "v2.34.0",
		ScrapeInterval: "15s",
		JobName:        "sample-app",
		MetricsPort:    "9090",
		MetricsPath:    "/metrics",
	}
}

func pick(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return fallback
}

// RepoFromSettings builds repository settings from a stored settings map,
// falling back to defaults for absent keys. No value is validated.
func RepoFromSettings(m map[string]string) RepoSettings {
	d := DefaultRepo()
	return RepoSettings{
		Owner:    pick(m, "owner", d.Owner),
		Project:  pick(m, "project", d.Project),
		URL:      pick(m, "url", d.URL),
		Branch:   pick(m, "branch", d.Branch),
		Registry: pick(m, "registry", d.Registry),
	}
}

// Map converts the settings to the flat map shape the store holds.
func (s RepoSettings) Map() map[string]string {
	return map[string]string{
		"owner":    s.Owner,
		"project":  s.Project,
		"url":      s.URL,
		"branch":   s.Branch,
		"registry": s.Registry,
	}
}

// PipelineFromSettings builds pipeline settings from a stored settings map.
func PipelineFromSettings(m map[string]string) PipelineSettings {
	d := DefaultPipeline()
	return PipelineSettings{
		Image:       pick(m, "image", d.Image),
		ImageTag:    pick(m, "image_tag", d.ImageTag),
		Environment: pick(m, "environment", d.Environment),
		RunTests:    pick(m, "run_tests", "true") != "false",
	}
}

// Map converts the settings to the flat map shape the store holds.
func (s PipelineSettings) Map() map[string]string {
	runTests := "true"
	if !s.RunTests {
		runTests = "false"
	}
	return map[string]string{
		"image":       s.Image,
		"image_tag":   s.ImageTag,
		"environment": s.Environment,
		"run_tests":   runTests,
	}
}

// BuildFromSettings builds container build settings from a stored settings map.
func BuildFromSettings(m map[string]string) BuildSettings {
	d := DefaultBuild()
	return BuildSettings{
		BaseImage:    pick(m, "base_image", d.BaseImage),
		RuntimeImage: pick(m, "runtime_image", d.RuntimeImage),
		Binary:       pick(m, "binary", d.Binary),
		Workdir:      pick(m, "workdir", d.Workdir),
		Port:         pick(m, "port", d.Port),
	}
}

// Map converts the settings to the flat map shape the store holds.
func (s BuildSettings) Map() map[string]string {
	return map[string]string{
		"base_image":    s.BaseImage,
		"runtime_image": s.RuntimeImage,
		"binary":        s.Binary,
		"workdir":       s.Workdir,
		"port":          s.Port,
	}
}

// ManifestsFromSettings builds manifest settings from a stored settings map.
func ManifestsFromSettings(m map[string]string) ManifestSettings {
	d := DefaultManifests()
	return ManifestSettings{
		AppName:       pick(m, "app_name", d.AppName),
		Namespace:     pick(m, "namespace", d.Namespace),
		Replicas:      pick(m, "replicas", d.Replicas),
		Image:         pick(m, "image", d.Image),
		ContainerPort: pick(m, "container_port", d.ContainerPort),
		ServicePort:   pick(m, "service_port", d.ServicePort),
		Host:          pick(m, "host", d.Host),
	}
}

// Map converts the settings to the flat map shape the store holds.
func (s ManifestSettings) Map() map[string]string {
	return map[string]string{
		"app_name":       s.AppName,
		"namespace":      s.Namespace,
		"replicas":       s.Replicas,
		"image":          s.Image,
		"container_port": s.ContainerPort,
		"service_port":   s.ServicePort,
		"host":           s.Host,
	}
}

// DeployFromSettings builds deployment settings from a stored settings map.
func DeployFromSettings(m map[string]string) DeploySettings {
	d := DefaultDeploy()
	return DeploySettings{
		Environment: pick(m, "environment", d.Environment),
		Domain:      pick(m, "domain", d.Domain),
		DocTitle:    pick(m, "doc_title", d.DocTitle),
		Description: pick(m, "description", d.Description),
	}
}

// Map converts the settings to the flat map shape the store holds.
func (s DeploySettings) Map() map[string]string {
	return map[string]string{
		"environment": s.Environment,
		"domain":      s.Domain,
		"doc_title":   s.DocTitle,
		"description": s.Description,
	}
}

// MonitorFromSettings builds monitoring settings from a stored settings map.
func MonitorFromSettings(m map[string]string) MonitorSettings {
	d := DefaultMonitor()
	return MonitorSettings{
		Version:        pick(m, "version", d.Version),
		ScrapeInterval: pick(m, "scrape_interval", d.ScrapeInterval),
		JobName:        pick(m, "job_name", d.JobName),
		MetricsPort:    pick(m, "metrics_port", d.MetricsPort),
		MetricsPath:    pick(m, "metrics_path", d.MetricsPath),
	}
}

// Map converts the settings to the flat map shape the store holds.
func (s MonitorSettings) Map() map[string]string {
	return map[string]string{
		"version":         s.Version,
		"scrape_interval": s.ScrapeInterval,
		"job_name":        s.JobName,
		"metrics_port":    s.MetricsPort,
		"metrics_path":    s.MetricsPath,
	}
}
