// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-records-sync/models"
)

// humanizeSyncError turns an error event into a message for the user.
func humanizeSyncError(kind models.ErrorKind, message string) string {
	switch kind {
	case models.ErrorKindAuth:
		return "Токен недействителен или истёк, обновите ADAPTER_TOKEN"
	case models.ErrorKindAborted:
		return "Синхронизация прервана"
	case models.ErrorKindStorage:
		return "Ошибка локального хранилища: " + message
	}

	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return message
}
