package templates

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// numberish marshals as an integer when the value parses as one, otherwise as
// the literal string. Fields like replica counts and ports are free-form text
// in the wizard, so non-numeric input passes through unchanged.
type numberish string

func (n numberish) MarshalYAML() (interface{}, error) {
	if v, err := strconv.Atoi(string(n)); err == nil {
		return v, nil
	}
	return string(n), nil
}

type metadataYAML struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace,omitempty"`
	Labels    map[string]string `yaml:"labels,omitempty"`
}

type deploymentYAML struct {
	APIVersion string       `yaml:"apiVersion"`
	Kind       string       `yaml:"kind"`
	Metadata   metadataYAML `yaml:"metadata"`
	Spec       struct {
		Replicas numberish `yaml:"replicas"`
		Selector struct {
			MatchLabels map[string]string `yaml:"matchLabels"`
		} `yaml:"selector"`
		Template struct {
			Metadata struct {
				Labels map[string]string `yaml:"labels"`
			} `yaml:"metadata"`
			Spec struct {
				Containers []containerYAML `yaml:"containers"`
			} `yaml:"spec"`
		} `yaml:"template"`
	} `yaml:"spec"`
}

type containerYAML struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Ports []struct {
		ContainerPort numberish `yaml:"containerPort"`
	} `yaml:"ports"`
}

type serviceYAML struct {
	APIVersion string       `yaml:"apiVersion"`
	Kind       string       `yaml:"kind"`
	Metadata   metadataYAML `yaml:"metadata"`
	Spec       struct {
		Selector map[string]string `yaml:"selector"`
		Ports    []servicePortYAML `yaml:"ports"`
	} `yaml:"spec"`
}

type servicePortYAML struct {
	Port       numberish `yaml:"port"`
	TargetPort numberish `yaml:"targetPort"`
}

type ingressYAML struct {
	APIVersion string       `yaml:"apiVersion"`
	Kind       string       `yaml:"kind"`
	Metadata   metadataYAML `yaml:"metadata"`
	Spec       struct {
		Rules []ingressRuleYAML `yaml:"rules"`
	} `yaml:"spec"`
}

type ingressRuleYAML struct {
	Host string `yaml:"host"`
	HTTP struct {
		Paths []ingressPathYAML `yaml:"paths"`
	} `yaml:"http"`
}

type ingressPathYAML struct {
	Path     string `yaml:"path"`
	PathType string `yaml:"pathType"`
	Backend  struct {
		Service struct {
			Name string `yaml:"name"`
			Port struct {
				Number numberish `yaml:"number"`
			} `yaml:"port"`
		} `yaml:"service"`
	} `yaml:"backend"`
}

func appLabels(s ManifestSettings) map[string]string {
	return map[string]string{"app": s.AppName}
}

// RenderDeployment renders the cluster deployment manifest.
func RenderDeployment(s ManifestSettings) (string, error) {
	doc := deploymentYAML{
		APIVersion: "apps/v1",
		Kind:       "Deployment",
		Metadata: metadataYAML{
			Name:      s.AppName,
			Namespace: s.Namespace,
			Labels:    appLabels(s),
		},
	}
	doc.Spec.Replicas = numberish(s.Replicas)
	doc.Spec.Selector.MatchLabels = appLabels(s)
	doc.Spec.Template.Metadata.Labels = appLabels(s)

	container := containerYAML{
		Name:  s.AppName,
		Image: s.Image,
	}
	container.Ports = append(container.Ports, struct {
		ContainerPort numberish `yaml:"containerPort"`
	}{ContainerPort: numberish(s.ContainerPort)})
	doc.Spec.Template.Spec.Containers = []containerYAML{container}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render deployment: %w", err)
	}
	return string(data), nil
}

// RenderService renders the cluster service manifest.
func RenderService(s ManifestSettings) (string, error) {
	doc := serviceYAML{
		APIVersion: "v1",
		Kind:       "Service",
		Metadata: metadataYAML{
			Name:      s.AppName,
			Namespace: s.Namespace,
		},
	}
	doc.Spec.Selector = appLabels(s)
	doc.Spec.Ports = []servicePortYAML{
		{Port: numberish(s.ServicePort), TargetPort: numberish(s.ContainerPort)},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render service: %w", err)
	}
	return string(data), nil
}

// RenderIngress renders the cluster ingress manifest.
func RenderIngress(s ManifestSettings) (string, error) {
	doc := ingressYAML{
		APIVersion: "networking.k8s.io/v1",
		Kind:       "Ingress",
		Metadata: metadataYAML{
			Name:      s.AppName,
			Namespace: s.Namespace,
		},
	}

	var path ingressPathYAML
	path.Path = "/"
	path.PathType = "Prefix"
	path.Backend.Service.Name = s.AppName
	path.Backend.Service.Port.Number = numberish(s.ServicePort)

	var rule ingressRuleYAML
	rule.Host = s.Host
	rule.HTTP.Paths = []ingressPathYAML{path}
	doc.Spec.Rules = []ingressRuleYAML{rule}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render ingress: %w", err)
	}
	return string(data), nil
}
