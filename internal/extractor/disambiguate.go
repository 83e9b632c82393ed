package extractor

// disambiguate moves "with <Name>" spans that ended up as locations over
// to participants.
func disambiguate(s Snapshot) Delta {
	var d Delta
	for _, span := range withSpans(s.Doc) {
		if !s.Bundle.HasLocation(span) {
			continue
		}
		d.RemoveLocations = append(d.RemoveLocations, span)
		if !s.Bundle.HasParticipant(span) {
			d.AddParticipants = append(d.AddParticipants, span)
		}
	}
	return d
}
