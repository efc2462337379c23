package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReadmeData contains the data for the documentation template.
type ReadmeData struct {
	Title       string
	Description string
	Repo        RepoSettings
	Deploy      DeploySettings
	Manifests   ManifestSettings
}

const readmeTemplateStr = `# {{.Title}}

{{.Description}}

## Repository

- Source: {{.Repo.URL}}
- Default branch: ` + "`{{.Repo.Branch}}`" + `
- Container registry: ` + "`{{.Repo.Registry}}`" + `

## Deployment

The service deploys to the ` + "`{{.Manifests.Namespace}}`" + ` namespace in the
{{.Deploy.Environment}} environment and is reachable at https://{{.Deploy.Domain}}.

` + "```bash" + `
# Apply the generated manifests
kubectl apply -f k8s/

# Watch the rollout
kubectl -n {{.Manifests.Namespace}} rollout status deployment/{{.Manifests.AppName}}
` + "```" + `

## Generated files

| File | Purpose |
|------|---------|
| ` + "`.gitlab-ci.yml`" + ` | CI pipeline: build, test, deploy |
| ` + "`Dockerfile`" + ` | Container build script |
| ` + "`k8s/deployment.yaml`" + ` | Cluster deployment |
| ` + "`k8s/service.yaml`" + ` | Cluster service |
| ` + "`k8s/ingress.yaml`" + ` | Ingress for {{.Deploy.Domain}} |
| ` + "`prometheus.yml`" + ` | Monitoring scrape configuration |
| ` + "`.env.example`" + ` | Environment-variable sample |

## Configuration

Copy ` + "`.env.example`" + ` to ` + "`.env`" + ` and adjust the values for your
environment before deploying.
`

// RenderReadme renders the Markdown documentation from the full settings.
func RenderReadme(data ReadmeData) (string, error) {
	if data.Title == "" {
		data.Title = cases.Title(language.English).String(data.Repo.Project)
	}

	tmpl, err := template.New("readme").Parse(readmeTemplateStr)
	if err != nil {
		return "", fmt.Errorf("render readme: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render readme: %w", err)
	}
	return buf.String(), nil
}
