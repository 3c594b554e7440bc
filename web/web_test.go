package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/geometries"
	"github.com/jwaiton/nexus/messenger"
	"github.com/jwaiton/nexus/solid"
	"github.com/jwaiton/nexus/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	method string
	path   string
	body   interface{}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	conf := config.Default()
	conf.Geometry = ""
	conf.Seed = 5
	return NewServer(&conf)
}

func serve(t *testing.T, s *Server, req request) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	switch b := req.body.(type) {
	case nil:
	case string:
		body.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&body).Encode(b))
	}
	httpReq := httptest.NewRequest(req.method, req.path, &body)
	recorder := httptest.NewRecorder()
	s.Router().ServeHTTP(recorder, httpReq)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), into), recorder.Body.String())
}

func TestGeometriesRoute(t *testing.T) {
	s := newTestServer(t)
	r := serve(t, s, request{method: "GET", path: "/geometries"})
	require.Equal(t, http.StatusOK, r.Code)
	assert.Equal(t, "application/json", r.Header().Get("Content-Type"))
	names := []string{}
	decode(t, r, &names)
	assert.Equal(t, geometries.Names(), names)
}

func TestCommandsRoute(t *testing.T) {
	s := newTestServer(t)

	r := serve(t, s, request{method: "GET", path: "/geometries/NEXT_DEMO/commands"})
	require.Equal(t, http.StatusOK, r.Code)
	descriptions := []messenger.Description{}
	decode(t, r, &descriptions)
	paths := map[string]messenger.Description{}
	for _, d := range descriptions {
		paths[d.Path] = d
	}
	require.Contains(t, paths, "/Geometry/NextDemo/pressure")
	assert.Equal(t, "Pressure", paths["/Geometry/NextDemo/pressure"].UnitCategory)
	assert.Equal(t, []string{"sensl", "next100"}, paths["/Geometry/NextDemo/sipm_type"].Candidates)
	assert.Contains(t, paths, "/Geometry/NextDemo/sipm_board_verbosity")

	r = serve(t, s, request{method: "GET", path: "/geometries/NEXT_WHITE/commands"})
	assert.Equal(t, http.StatusNotFound, r.Code)
}

func TestConstructRoute(t *testing.T) {
	s := newTestServer(t)

	t.Run("Coated", func(t *testing.T) {
		r := serve(t, s, request{method: "POST", path: "/geometries/NEXT_DEMO", body: []string{
			"/Geometry/NextDemo/membrane_thickness 0.1 mm",
			"/Geometry/NextDemo/coating_thickness 2 um",
		}})
		require.Equal(t, http.StatusOK, r.Code, r.Body.String())
		var c struct {
			Geometry string `json:"geometry"`
			World    struct {
				Name      string `json:"name"`
				Daughters []struct {
					Name string `json:"name"`
				} `json:"daughters"`
			} `json:"world"`
			Skins []struct {
				Volume string `json:"volume"`
			} `json:"skinSurfaces"`
			Borders []struct {
				Name  string `json:"name"`
				First string `json:"first"`
			} `json:"borderSurfaces"`
		}
		decode(t, r, &c)
		assert.Equal(t, "NEXT_DEMO", c.Geometry)
		assert.Equal(t, "LAB", c.World.Name)
		require.Len(t, c.World.Daughters, 1)
		assert.Equal(t, "GAS", c.World.Daughters[0].Name)
		require.Len(t, c.Skins, 1)
		assert.Equal(t, geometries.MaskName, c.Skins[0].Volume)
		require.Len(t, c.Borders, 2)
		assert.Equal(t, geometries.CoatingToGasSurface, c.Borders[0].Name)
		assert.Equal(t, geometries.CoatingName, c.Borders[0].First)
	})

	testCases := []struct {
		name   string
		path   string
		body   interface{}
		status int
	}{
		{"UnknownGeometry", "/geometries/NEXT_WHITE", nil, http.StatusNotFound},
		{"MalformedBody", "/geometries/NEXT_DEMO", "{", http.StatusBadRequest},
		{"UnknownCommand", "/geometries/NEXT_DEMO", []string{"/Geometry/NextWhite/pressure 1 bar"}, http.StatusBadRequest},
		{"OutOfRange", "/geometries/NEXT_DEMO", []string{"/Geometry/NextDemo/pressure -1 bar"}, http.StatusBadRequest},
		{"MalformedValue", "/geometries/NEXT_DEMO", []string{"/Geometry/NextDemo/pressure abc bar"}, http.StatusBadRequest},
		{"MissingUnit", "/geometries/NEXT100_OPT", []string{"/Geometry/Next100/pressure 10"}, http.StatusBadRequest},
		{"InvalidBoard", "/geometries/NEXT_DEMO", []string{"/Geometry/NextDemo/membrane_thickness 3 mm"}, http.StatusUnprocessableEntity},
		{"UnknownGas", "/geometries/NEXT100_OPT", []string{"/Geometry/Next100/gas argon"}, http.StatusUnprocessableEntity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := serve(t, s, request{method: "POST", path: tc.path, body: tc.body})
			assert.Equal(t, tc.status, r.Code, r.Body.String())
			var e errorResponse
			decode(t, r, &e)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestVerticesRoute(t *testing.T) {
	s := newTestServer(t)

	sample := func(t *testing.T, path string) vertexResponse {
		t.Helper()
		r := serve(t, s, request{method: "POST", path: path})
		require.Equal(t, http.StatusOK, r.Code, r.Body.String())
		var v vertexResponse
		decode(t, r, &v)
		return v
	}

	first := sample(t, "/geometries/NEXT_DEMO/vertices?region=KAPTON&n=5&seed=3")
	assert.Equal(t, "KAPTON", first.Region)
	assert.Equal(t, int64(3), first.Seed)
	require.Len(t, first.Vertices, 5)
	require.Len(t, first.Volumes, 5)
	for _, name := range first.Volumes {
		assert.Equal(t, geometries.KaptonName, name)
	}
	assert.Equal(t, first, sample(t, "/geometries/NEXT_DEMO/vertices?region=KAPTON&n=5&seed=3"))

	other := sample(t, "/geometries/NEXT_DEMO/vertices?region=KAPTON")
	assert.Equal(t, int64(5), other.Seed)
	assert.Len(t, other.Vertices, 1)

	for name, path := range map[string]string{
		"MissingRegion": "/geometries/NEXT_DEMO/vertices",
		"UnknownRegion": "/geometries/NEXT_DEMO/vertices?region=VESSEL",
		"NoVertices":    "/geometries/NEXT_DEMO/vertices?region=KAPTON&n=0",
		"BadSeed":       "/geometries/NEXT_DEMO/vertices?region=KAPTON&seed=x",
	} {
		t.Run(name, func(t *testing.T) {
			r := serve(t, s, request{method: "POST", path: path})
			assert.Equal(t, http.StatusBadRequest, r.Code, r.Body.String())
		})
	}
}

// boardThickness returns 0 when the tree has no board.
func boardThickness(node *volume.Node) float64 {
	if node.Name == geometries.BoardName {
		if box, ok := node.Solid.(*solid.Box); ok {
			return 2 * box.HalfZ
		}
		return 0
	}
	for _, d := range node.Daughters {
		if thickness := boardThickness(d); thickness > 0 {
			return thickness
		}
	}
	return 0
}

func TestDefaultRebuiltOnMacroChange(t *testing.T) {
	macro := filepath.Join(t.TempDir(), "demo.mac")
	require.NoError(t, os.WriteFile(macro, []byte("/Geometry/NextDemo/mask_thickness 1.5 mm\n"), 0o600))

	conf := config.Default()
	conf.Geometry = "NEXT_DEMO"
	conf.Macros = []string{macro}
	s := NewServer(&conf)

	r := serve(t, s, request{method: "GET", path: "/default"})
	assert.Equal(t, http.StatusServiceUnavailable, r.Code)

	require.NoError(t, s.Reload())
	require.NoError(t, s.Watch())
	assert.Error(t, s.Watch())

	c, err := s.Default()
	require.NoError(t, err)
	assert.InDelta(t, 0.3+1.5, boardThickness(c.World), 1e-9)

	r = serve(t, s, request{method: "GET", path: "/default"})
	require.Equal(t, http.StatusOK, r.Code)

	require.NoError(t, os.WriteFile(macro, []byte("/Geometry/NextDemo/mask_thickness 2.5 mm\n"), 0o600))
	assert.Eventually(t, func() bool {
		c, err := s.Default()
		return err == nil && boardThickness(c.World) > 0.3+2.5-1e-9
	}, 5*time.Second, 20*time.Millisecond)
	require.NoError(t, s.Close())
	c, err = s.Default()
	require.NoError(t, err)
	assert.InDelta(t, 0.3+2.5, boardThickness(c.World), 1e-9)

	require.NoError(t, os.WriteFile(macro, []byte("/Geometry/NextDemo/pressure -1 bar\n"), 0o600))
	assert.Error(t, s.Reload())
	c, err = s.Default()
	require.NoError(t, err, "last good build is kept")
	assert.InDelta(t, 0.3+2.5, boardThickness(c.World), 1e-9)
}

func TestNewRouter(t *testing.T) {
	conf := config.Default()
	conf.Geometry = "NEXT_WHITE"
	_, err := NewRouter(&conf)
	assert.Error(t, err)

	conf.Geometry = "NEXT_DEMO"
	router, err := NewRouter(&conf)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/default", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
