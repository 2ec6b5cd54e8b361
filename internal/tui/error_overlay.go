package tui

import "github.com/MKhiriev/go-records-sync/models"

type errorOverlayModel struct {
	kind    models.ErrorKind
	message string
}

func (m errorOverlayModel) View() string {
	content := "Ошибка синхронизации (" + string(m.kind) + ")\n\n" + m.message + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(errorStyle.Render(content))
}
