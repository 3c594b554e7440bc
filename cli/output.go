package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/jwaiton/nexus/geometry"
)

type vertexList struct {
	Region   string           `json:"region"`
	Seed     int64            `json:"seed"`
	Vertices []geometry.Point `json:"vertices"`
	Volumes  []string         `json:"volumes"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeCSV prints one vertex per row, in mm, with the volume it lies in.
func writeCSV(w io.Writer, vertices []geometry.Point, volumes []string) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"x", "y", "z", "volume"}); err != nil {
		return err
	}
	for i, v := range vertices {
		if err := out.Write([]string{formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z), volumes[i]}); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
