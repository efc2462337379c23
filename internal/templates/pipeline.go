package templates

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pipeline YAML shape. Job order in the marshaled document follows the struct
// field order, which matches the stage order.

type pipelineYAML struct {
	Image  string   `yaml:"image"`
	Stages []string `yaml:"stages"`
	Build  jobYAML  `yaml:"build"`
	Test   *jobYAML `yaml:"test,omitempty"`
	Deploy jobYAML  `yaml:"deploy"`
}

type jobYAML struct {
	Stage       string          `yaml:"stage"`
	Image       string          `yaml:"image,omitempty"`
	Script      []string        `yaml:"script"`
	Environment *environmentRef `yaml:"environment,omitempty"`
	Only        []string        `yaml:"only,omitempty"`
}

type environmentRef struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
}

// RenderPipeline renders the CI pipeline script from the full pipeline and
// repository settings.
func RenderPipeline(p PipelineSettings, r RepoSettings) (string, error) {
	image := r.Registry + ":" + p.ImageTag

	doc := pipelineYAML{
		Image:  p.Image,
		Stages: []string{"build", "deploy"},
		Build: jobYAML{
			Stage: "build",
			Image: "docker:24",
			Script: []string{
				fmt.Sprintf("docker build -t %s .", image),
				fmt.Sprintf("docker push %s", image),
			},
			Only: []string{r.Branch},
		},
		Deploy: jobYAML{
			Stage: "deploy",
			Image: "bitnami/kubectl:latest",
			Script: []string{
				fmt.Sprintf("kubectl set image deployment/%s %s=%s", r.Project, r.Project, image),
				fmt.Sprintf("kubectl rollout status deployment/%s", r.Project),
			},
			Environment: &environmentRef{Name: p.Environment},
			Only:        []string{r.Branch},
		},
	}

	if p.RunTests {
		doc.Stages = []string{"build", "test", "deploy"}
		doc.Test = &jobYAML{
			Stage:  "test",
			Script: []string{"go vet ./...", "go test ./..."},
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render pipeline: %w", err)
	}
	return string(data), nil
}
