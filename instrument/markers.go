package instrument

var markerFrets = []int{3, 5, 7, 9, 12, 15, 17, 19, 21, 24}

type Marker struct {
	Fret   int  `json:"fret"`
	Octave bool `json:"octave"`
}

// FretMarkers lists the inlay positions up to and including frets.
func FretMarkers(frets int) []Marker {
	var res []Marker
	for _, f := range markerFrets {
		if f > frets {
			break
		}
		res = append(res, Marker{Fret: f, Octave: f%12 == 0})
	}
	return res
}
