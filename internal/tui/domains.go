package tui

import (
	"github.com/pipewright/pipewright/internal/store"
	"github.com/pipewright/pipewright/internal/templates"
)

// renderFunc derives a buffer's text from the full current settings of its
// step. Cross-step values are read live from the shared store.
type renderFunc func(settings map[string]string) (string, error)

// fieldSpec describes one form field of an editor step.
type fieldSpec struct {
	key         string
	label       string
	placeholder string
}

// bufferSpec describes one derived text buffer of an editor step.
type bufferSpec struct {
	name     string
	filename string
	render   renderFunc
}

// domainSpec describes one configuration domain: its store identifier, form
// fields, and derived buffers.
type domainSpec struct {
	id       string
	title    string
	blurb    string
	fields   []fieldSpec
	buffers  []bufferSpec
	defaults map[string]string
}

// editorDomains returns the six editor step specs in wizard order. Render
// closures capture the store so buffers that depend on another domain (the
// pipeline script needs repository coordinates) pick up applied values.
func editorDomains(st *store.Store) []domainSpec {
	return []domainSpec{
		{
			id:    templates.StepRepository,
			title: "Repository",
			blurb: "Source repository and container registry coordinates.",
			fields: []fieldSpec{
				{key: "owner", label: "Owner", placeholder: "acme"},
				{key: "project", label: "Project", placeholder: "sample-app"},
				{key: "url", label: "Clone URL", placeholder: "https://gitlab.com/acme/sample-app.git"},
				{key: "branch", label: "Default branch", placeholder: "main"},
				{key: "registry", label: "Registry", placeholder: "registry.gitlab.com/acme/sample-app"},
			},
			defaults: templates.DefaultRepo().Map(),
		},
		{
			id:    templates.StepPipeline,
			title: "CI Pipeline",
			blurb: "Stages and jobs of the CI pipeline script.",
			fields: []fieldSpec{
				{key: "image", label: "Base image", placeholder: "golang:1.24"},
				{key: "image_tag", label: "Image tag", placeholder: "latest"},
				{key: "environment", label: "Environment", placeholder: "production"},
				{key: "run_tests", label: "Run tests", placeholder: "true"},
			},
			buffers: []bufferSpec{
				{
					name:     "pipeline",
					filename: ".gitlab-ci.yml",
					render: func(m map[string]string) (string, error) {
						repo := templates.RepoFromSettings(st.GetConfig(templates.StepRepository).Settings)
						return templates.RenderPipeline(templates.PipelineFromSettings(m), repo)
					},
				},
			},
			defaults: templates.DefaultPipeline().Map(),
		},
		{
			id:    templates.StepBuild,
			title: "Container Build",
			blurb: "Multi-stage container build script.",
			fields: []fieldSpec{
				{key: "base_image", label: "Build image", placeholder: "golang:1.24-alpine"},
				{key: "runtime_image", label: "Runtime image", placeholder: "alpine:3.20"},
				{key: "binary", label: "Binary name", placeholder: "sample-app"},
				{key: "workdir", label: "Workdir", placeholder: "/app"},
				{key: "port", label: "Port", placeholder: "8080"},
			},
			buffers: []bufferSpec{
				{
					name:     "dockerfile",
					filename: "Dockerfile",
					render: func(m map[string]string) (string, error) {
						return templates.RenderDockerfile(templates.BuildFromSettings(m))
					},
				},
			},
			defaults: templates.DefaultBuild().Map(),
		},
		{
			id:    templates.StepManifests,
			title: "Cluster Manifests",
			blurb: "Deployment, service, and ingress manifests.",
			fields: []fieldSpec{
				{key: "app_name", label: "App name", placeholder: "sample-app"},
				{key: "namespace", label: "Namespace", placeholder: "default"},
				{key: "replicas", label: "Replicas", placeholder: "3"},
				{key: "image", label: "Image", placeholder: "registry.gitlab.com/acme/sample-app:latest"},
				{key: "container_port", label: "Container port", placeholder: "8080"},
				{key: "service_port", label: "Service port", placeholder: "80"},
				{key: "host", label: "Host", placeholder: "sample-app.example.com"},
			},
			buffers: []bufferSpec{
				{
					name:     "deployment",
					filename: "k8s/deployment.yaml",
					render: func(m map[string]string) (string, error) {
						return templates.RenderDeployment(templates.ManifestsFromSettings(m))
					},
				},
				{
					name:     "service",
					filename: "k8s/service.yaml",
					render: func(m map[string]string) (string, error) {
						return templates.RenderService(templates.ManifestsFromSettings(m))
					},
				},
				{
					name:     "ingress",
					filename: "k8s/ingress.yaml",
					render: func(m map[string]string) (string, error) {
						return templates.RenderIngress(templates.ManifestsFromSettings(m))
					},
				},
			},
			defaults: templates.DefaultManifests().Map(),
		},
		{
			id:    templates.StepDeploy,
			title: "Deploy & Docs",
			blurb: "Target environment, env sample, and project documentation.",
			fields: []fieldSpec{
				{key: "environment", label: "Environment", placeholder: "production"},
				{key: "domain", label: "Domain", placeholder: "sample-app.example.com"},
				{key: "doc_title", label: "Doc title", placeholder: "Sample-App (derived from project when blank)"},
				{key: "description", label: "Description", placeholder: "Service deployment assembled with pipewright."},
			},
			buffers: []bufferSpec{
				{
					name:     "env",
					filename: ".env.example",
					render: func(m map[string]string) (string, error) {
						return templates.RenderEnvSample(
							templates.DeployFromSettings(m),
							templates.BuildFromSettings(st.GetConfig(templates.StepBuild).Settings),
							templates.ManifestsFromSettings(st.GetConfig(templates.StepManifests).Settings),
							templates.MonitorFromSettings(st.GetConfig(templates.StepMonitoring).Settings),
						)
					},
				},
				{
					name:     "readme",
					filename: "README.md",
					render: func(m map[string]string) (string, error) {
						deploy := templates.DeployFromSettings(m)
						return templates.RenderReadme(templates.ReadmeData{
							Title:       deploy.DocTitle,
							Description: deploy.Description,
							Repo:        templates.RepoFromSettings(st.GetConfig(templates.StepRepository).Settings),
							Deploy:      deploy,
							Manifests:   templates.ManifestsFromSettings(st.GetConfig(templates.StepManifests).Settings),
						})
					},
				},
			},
			defaults: templates.DefaultDeploy().Map(),
		},
		{
			id:    templates.StepMonitoring,
			title: "Monitoring",
			blurb: "Scrape configuration for the monitoring stack.",
			fields: []fieldSpec{
				{key: "version", label: "Version", placeholder: "v2.34.0"},
				{key: "scrape_interval", label: "Scrape interval", placeholder: "15s"},
				{key: "job_name", label: "Job name", placeholder: "sample-app"},
				{key: "metrics_port", label: "Metrics port", placeholder: "9090"},
				{key: "metrics_path", label: "Metrics path", placeholder: "/metrics"},
			},
			buffers: []bufferSpec{
				{
					name:     "prometheus",
					filename: "prometheus.yml",
					render: func(m map[string]string) (string, error) {
						return templates.RenderMonitoring(templates.MonitorFromSettings(m))
					},
				},
			},
			defaults: templates.DefaultMonitor().Map(),
		},
	}
}
