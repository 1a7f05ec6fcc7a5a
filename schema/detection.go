package schema

// Detection is the outcome of a zone lookup for one coordinate.
// Exactly one of the two shapes is populated: a match carries the zone
// and its town projection, a miss carries a user-facing message.
type Detection struct {
	Found    bool          `json:"delivery_available"`
	Location Location      `json:"location"`
	Zone     *DeliveryZone `json:"zone,omitempty"`
	Town     *Town         `json:"town,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// FoundDetection builds the matched variant.
func FoundDetection(loc Location, zone DeliveryZone) Detection {
	town := TownFromZone(zone)
	z := zone
	return Detection{
		Found:    true,
		Location: loc,
		Zone:     &z,
		Town:     &town,
	}
}

// NotFoundDetection builds the missed variant with its explanatory
// message. A miss is a normal result, not an error.
func NotFoundDetection(loc Location, message string) Detection {
	return Detection{
		Found:    false,
		Location: loc,
		Message:  message,
	}
}
