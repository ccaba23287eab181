package router

// SegmentKind tags the variant carried by a Segment.
type SegmentKind uint8

const (
	// KindWait is time spent at a stop before boarding.
	KindWait SegmentKind = iota + 1
	// KindRide is one boarding of a bus across SpanCount hops.
	KindRide
)

// String returns the wire name of the kind ("Wait" or "Bus").
func (k SegmentKind) String() string {
	switch k {
	case KindWait:
		return "Wait"
	case KindRide:
		return "Bus"
	default:
		return "Unknown"
	}
}

// Segment is one step of an itinerary. Which fields are meaningful depends
// on Kind:
//
//	KindWait: Stop, Time
//	KindRide: Bus, From, To, SpanCount, Time
type Segment struct {
	Kind      SegmentKind
	Stop      string
	Bus       string
	From      string
	To        string
	SpanCount int
	// Time is the duration of the segment in minutes.
	Time float64
}

// Wait builds a KindWait segment.
func Wait(stop string, minutes float64) Segment {
	return Segment{Kind: KindWait, Stop: stop, Time: minutes}
}

// Ride builds a KindRide segment.
func Ride(bus, from, to string, span int, minutes float64) Segment {
	return Segment{Kind: KindRide, Bus: bus, From: from, To: to, SpanCount: span, Time: minutes}
}

// Itinerary is an ordered list of segments. An empty itinerary means the
// origin is the destination.
type Itinerary struct {
	Segments []Segment
}

// TotalTime sums the segment durations. It is recomputed on every call;
// segments are the authoritative data.
func (it Itinerary) TotalTime() float64 {
	var total float64
	for _, s := range it.Segments {
		total += s.Time
	}

	return total
}

// Boardings counts the ride segments.
func (it Itinerary) Boardings() int {
	n := 0
	for _, s := range it.Segments {
		if s.Kind == KindRide {
			n++
		}
	}

	return n
}
