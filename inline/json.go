package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/invopop/jsonschema"
	"github.com/tapedeck/tapedeck/videoplayer"
)

// Snapshot is one line of inline output.
type Snapshot struct {
	Source   string                  `json:"source" jsonschema:"description=Media source being played"`
	Screen   string                  `json:"screen" jsonschema:"enum=placeholder,enum=thumbnail,enum=end-thumbnail,enum=video"`
	Controls string                  `json:"controls" jsonschema:"enum=none,enum=full,enum=minimal"`
	Time     string                  `json:"time" jsonschema:"description=Formatted current time"`
	Total    string                  `json:"total" jsonschema:"description=Formatted duration"`
	State    videoplayer.PlayerState `json:"state"`
}

func newSnapshot(source string, v videoplayer.View, s videoplayer.PlayerState) Snapshot {
	return Snapshot{
		Source:   source,
		Screen:   v.Screen.String(),
		Controls: v.Controls.String(),
		Time:     v.Time,
		Total:    videoplayer.FormatTime(s.Duration),
		State:    s,
	}
}

// displayed reduces a snapshot to what a viewer would notice changing.
func (s *Snapshot) displayed() Snapshot {
	d := *s
	d.State.CurrentTime = 0
	d.State.Progress = math.Round(s.State.Progress*100) / 100
	return d
}

func writeSnapshot(out io.Writer, s Snapshot, asJson bool) error {
	if asJson {
		return json.NewEncoder(out).Encode(s)
	}

	_, err := fmt.Fprintf(out, "%-13s %s/%s %3.0f%%%s\n", s.Screen, s.Time, s.Total, s.State.Progress*100, flags(&s.State))
	return err
}

func flags(s *videoplayer.PlayerState) string {
	var out string
	add := func(set bool, name string) {
		if set {
			out += " " + name
		}
	}
	add(s.IsPlaying, "playing")
	add(s.IsMuted, "muted")
	add(s.IsSeeking, "seeking")
	add(s.HasEnded, "ended")
	return out
}

// Schema returns the JSON schema of a Snapshot.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return r.Reflect(&Snapshot{})
}
