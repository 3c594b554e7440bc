package web

import (
	"context"
	"fmt"

	"github.com/jwaiton/nexus/geometries"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/messenger"
	"github.com/jwaiton/nexus/run"
)

const maxVertices = 100000

type vertexResponse struct {
	Geometry string           `json:"geometry"`
	Region   string           `json:"region"`
	Seed     int64            `json:"seed"`
	Vertices []geometry.Point `json:"vertices"`
	Volumes  []string         `json:"volumes"`
}

func (h *handler) getGeometriesHandler(ctx context.Context) ([]string, error) {
	return geometries.Names(), nil
}

func (h *handler) getCommandsHandler(ctx context.Context) ([]messenger.Description, error) {
	m, err := run.NewManagerFor(extractGeometryName(ctx))
	if err != nil {
		return nil, err
	}
	return m.UI().Describe(), nil
}

func (h *handler) getDefaultHandler(ctx context.Context) (*run.Construction, error) {
	return h.server.Default()
}

// build applies the commands in order, then constructs the geometry.
func (h *handler) build(ctx context.Context, commands []string, seed int64) (*run.Manager, error) {
	name := extractGeometryName(ctx)
	m, err := run.NewManagerFor(name)
	if err != nil {
		return nil, err
	}
	for i, command := range commands {
		if err := m.Apply(command); err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
	}
	if err := m.Seed(seed); err != nil {
		return nil, err
	}
	if err := m.Initialize(); err != nil {
		return nil, err
	}
	return m, nil
}

func (h *handler) constructHandler(ctx context.Context, commands *[]string) (*run.Construction, error) {
	m, err := h.build(ctx, *commands, h.server.conf.Seed)
	if err != nil {
		return nil, err
	}
	return m.Export(extractGeometryName(ctx)), nil
}

func (h *handler) verticesHandler(ctx context.Context, commands *[]string) (*vertexResponse, error) {
	region := extractQuery(ctx).Get("region")
	if region == "" {
		return nil, fmt.Errorf("%w: region is required", errMalformed)
	}
	n, err := extractIntQuery(ctx, "n", 1)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > maxVertices {
		return nil, fmt.Errorf("%w: n must be between 1 and %d", errMalformed, maxVertices)
	}
	seed, err := extractIntQuery(ctx, "seed", h.server.conf.Seed)
	if err != nil {
		return nil, err
	}

	m, err := h.build(ctx, *commands, seed)
	if err != nil {
		return nil, err
	}
	vertices, err := m.GenerateVertices(region, int(n))
	if err != nil {
		return nil, err
	}
	volumes, err := m.VolumesAt(vertices)
	if err != nil {
		return nil, err
	}
	return &vertexResponse{
		Geometry: extractGeometryName(ctx),
		Region:   region,
		Seed:     seed,
		Vertices: vertices,
		Volumes:  volumes,
	}, nil
}
