package train

import (
	"github.com/matzehuels/capview/pkg/geom"
	"github.com/matzehuels/capview/pkg/load"
)

// CarriageInfo describes one laid-out carriage.
type CarriageInfo struct {
	Number int        `json:"number"`
	Type   Type       `json:"type"`
	Load   float64    `json:"load"`
	Level  load.Level `json:"level"`
	Hue    float64    `json:"hue"`
	Color  string     `json:"color"`
	Frame  geom.Rect  `json:"frame"`
}

// Description is a data view of a train, for export.
type Description struct {
	Layout    Layout         `json:"layout"`
	Carriages []CarriageInfo `json:"carriages"`
}

// Describe returns the train's layout and per-carriage values.
func (t *Train) Describe() Description {
	d := Description{Layout: t.layout, Carriages: make([]CarriageInfo, len(t.carriages))}
	for i, c := range t.carriages {
		d.Carriages[i] = CarriageInfo{
			Number: c.number,
			Type:   c.kind,
			Load:   c.load,
			Level:  c.Level(),
			Hue:    load.Hue(c.load),
			Color:  load.Color(c.load).Hex(),
			Frame:  c.frame,
		}
	}
	return d
}
