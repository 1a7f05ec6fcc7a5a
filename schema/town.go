package schema

// Town is the coarser service area shown to the user once a zone
// matches. The app does not persist towns; commercial terms live on
// the zone, so a Town is synthesized 1:1 from the matched zone.
type Town struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	State    string       `json:"state"`
	Active   bool         `json:"active"`
	Metadata ZoneMetadata `json:"metadata"`
}

// TownFromZone projects a matched delivery zone into its town view.
func TownFromZone(zone DeliveryZone) Town {
	return Town{
		ID:       zone.ID,
		Name:     zone.Name,
		State:    zone.State,
		Active:   zone.Active,
		Metadata: zone.Metadata,
	}
}
