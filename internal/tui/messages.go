package tui

import "github.com/MKhiriev/go-records-sync/models"

// progressEventMsg carries one event of the progress stream into Update.
type progressEventMsg struct {
	event models.ProgressEvent
}

// eventsClosedMsg is sent once the progress stream is closed.
type eventsClosedMsg struct{}
