package hyprland

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bnema/hyprwarp/internal/domain/entity"
)

var errInvalidJSON = errors.New("invalid json reply")

// parseMonitors converts a j/monitors reply into outputs in layout coordinates.
// Disabled monitors are skipped. Width and height are reported in device pixels,
// so they are divided by the scale and swapped for 90/270 degree transforms.
func parseMonitors(data []byte) ([]entity.Output, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", errInvalidJSON, snippet(data))
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected array", errInvalidJSON)
	}

	var outputs []entity.Output
	var parseErr error
	root.ForEach(func(_, m gjson.Result) bool {
		if m.Get("disabled").Bool() {
			return true
		}
		name := m.Get("name").String()
		if name == "" {
			parseErr = fmt.Errorf("%w: monitor without name", errInvalidJSON)
			return false
		}

		width, height := logicalSize(
			m.Get("width").Float(),
			m.Get("height").Float(),
			m.Get("scale").Float(),
			m.Get("transform").Int(),
		)
		outputs = append(outputs, entity.Output{
			Name:   name,
			X:      int(m.Get("x").Int()),
			Y:      int(m.Get("y").Int()),
			Width:  width,
			Height: height,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return outputs, nil
}

func logicalSize(width, height, scale float64, transform int64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(width / scale))
	h := int(math.Round(height / scale))
	// Odd transforms (90, 270 and their flipped variants) rotate the output.
	if transform%2 == 1 {
		w, h = h, w
	}
	return w, h
}

// parseCursor reads a j/cursorpos reply.
func parseCursor(data []byte) (entity.Point, error) {
	if !gjson.ValidBytes(data) {
		return entity.Point{}, fmt.Errorf("%w: %s", errInvalidJSON, snippet(data))
	}
	x := gjson.GetBytes(data, "x")
	y := gjson.GetBytes(data, "y")
	if !x.Exists() || !y.Exists() {
		return entity.Point{}, fmt.Errorf("%w: missing x or y", errInvalidJSON)
	}
	return entity.Point{X: int(x.Int()), Y: int(y.Int())}, nil
}

// parseVersion extracts the release tag from a j/version reply.
func parseVersion(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: %s", errInvalidJSON, snippet(data))
	}
	tag := gjson.GetBytes(data, "tag").String()
	if tag == "" {
		tag = gjson.GetBytes(data, "commit").String()
	}
	if tag == "" {
		return "", fmt.Errorf("%w: no version tag", errInvalidJSON)
	}
	return tag, nil
}

// checkDispatch turns a non-"ok" dispatcher reply into an error.
func checkDispatch(reply []byte) error {
	text := strings.TrimSpace(string(reply))
	if text == "ok" {
		return nil
	}
	return fmt.Errorf("dispatch rejected: %s", snippet(reply))
}

func snippet(data []byte) string {
	const limit = 80
	s := strings.TrimSpace(string(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
