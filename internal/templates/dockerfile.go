package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

const dockerfileTemplateStr = `FROM {{.BaseImage}} AS build

WORKDIR {{.Workdir}}

COPY go.mod go.sum ./
RUN go mod download

COPY . .
RUN CGO_ENABLED=0 go build -ldflags="-s -w" -o /out/{{.Binary}} .

FROM {{.RuntimeImage}}

COPY --from=build /out/{{.Binary}} /usr/local/bin/{{.Binary}}

EXPOSE {{.Port}}

ENTRYPOINT ["/usr/local/bin/{{.Binary}}"]
`

// RenderDockerfile renders the container build script from the full build
// settings.
func RenderDockerfile(s BuildSettings) (string, error) {
	tmpl, err := template.New("dockerfile").Parse(dockerfileTemplateStr)
	if err != nil {
		return "", fmt.Errorf("render dockerfile: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("render dockerfile: %w", err)
	}
	return buf.String(), nil
}
