package settings

import "strings"

// SessionRecord is the session-wide preference group.
type SessionRecord struct {
	CrosstalkR  string `json:"crosstalk_r,omitempty" jsonschema:"description=Red channel crosstalk level of the display in the range 0 to 1."`
	CrosstalkG  string `json:"crosstalk_g,omitempty" jsonschema:"description=Green channel crosstalk level of the display in the range 0 to 1."`
	CrosstalkB  string `json:"crosstalk_b,omitempty" jsonschema:"description=Blue channel crosstalk level of the display in the range 0 to 1."`
	Mode2D      string `json:"2d-stereo-mode,omitempty" jsonschema:"description=Output mode used for mono input encoded as the mode name optionally followed by the swap marker."`
	Mode3D      string `json:"3d-stereo-mode,omitempty" jsonschema:"description=Output mode used for stereo input encoded as the mode name optionally followed by the swap marker."`
	FileOpenDir string `json:"file-open-dir,omitempty" jsonschema:"description=Directory of the last opened file."`
}

// VideoRecord is the per-file preference group.
type VideoRecord struct {
	StereoLayout string `json:"stereo-layout,omitempty" jsonschema:"description=Input layout encoded as the layout name optionally followed by the swap marker."`
	AudioStream  string `json:"audio-stream,omitempty" jsonschema:"description=Zero based audio stream index."`
	Parallax     string `json:"parallax,omitempty" jsonschema:"description=Parallax adjustment in the range -1 to 1."`
	Ghostbust    string `json:"ghostbust,omitempty" jsonschema:"description=Ghostbusting amount in the range 0 to 1."`
}

// Export is the whole store grouped into records.
type Export struct {
	Session SessionRecord          `json:"session" jsonschema:"description=Session wide preferences."`
	Videos  map[string]VideoRecord `json:"videos" jsonschema:"description=Per file preferences keyed by the SHA-1 of the file name."`
}

// Dump groups every stored preference into an Export. Unknown keys are skipped.
func Dump(store Store) (Export, error) {
	all, err := store.All()
	if err != nil {
		return Export{}, err
	}

	export := Export{Videos: make(map[string]VideoRecord)}
	for k, v := range all {
		parts := strings.Split(k, "/")
		switch {
		case len(parts) == 2 && parts[0] == groupSession:
			setSession(&export.Session, k, v)
		case len(parts) == 3 && parts[0] == groupVideo:
			record := export.Videos[parts[1]]
			setVideo(&record, parts[2], v)
			export.Videos[parts[1]] = record
		}
	}
	return export, nil
}

func setSession(r *SessionRecord, k, v string) {
	switch k {
	case CrosstalkR:
		r.CrosstalkR = v
	case CrosstalkG:
		r.CrosstalkG = v
	case CrosstalkB:
		r.CrosstalkB = v
	case Mode2D:
		r.Mode2D = v
	case Mode3D:
		r.Mode3D = v
	case FileOpenDir:
		r.FileOpenDir = v
	}
}

func setVideo(r *VideoRecord, name, v string) {
	switch name {
	case StereoLayout:
		r.StereoLayout = v
	case AudioStream:
		r.AudioStream = v
	case Parallax:
		r.Parallax = v
	case Ghostbust:
		r.Ghostbust = v
	}
}
