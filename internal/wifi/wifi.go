// Package wifi подтверждает вердикт GPS точкой доступа, к которой подключено устройство.
package wifi

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"

	"github.com/shenikar/attendance_guard/internal/models"
)

// NormalizeBSSID приводит MAC-адрес к виду aa:bb:cc:dd:ee:ff. Принимаются
// разделители ':', '-' и запись через точки (aabb.ccdd.eeff).
func NormalizeBSSID(raw string) string {
	raw = strings.TrimSpace(raw)
	if mac, err := net.ParseMAC(raw); err == nil {
		return mac.String()
	}
	return strings.ReplaceAll(strings.ToLower(raw), "-", ":")
}

// HashBSSID возвращает hex SHA-256 нормализованного BSSID. Зоны хранят этот
// вид вместо исходных MAC-адресов.
func HashBSSID(raw string) string {
	sum := sha256.Sum256([]byte(NormalizeBSSID(raw)))
	return hex.EncodeToString(sum[:])
}

// Verify сверяет наблюдаемую сеть с ожидаемыми сетями зоны. Ожидаемые BSSID
// могут быть как исходными, так и захэшированными через HashBSSID.
//
// Без наблюдаемой сети результат определяется только GPS: принимается, если не strict.
// Совпадение BSSID - высокая уверенность. Совпадение SSID на другой точке доступа -
// средняя уверенность, принимается только без strict.
func Verify(observed *models.WiFiNetwork, expectedBSSIDs, expectedSSIDs []string, strict bool) models.WiFiMatch {
	if observed == nil {
		if strict {
			return models.WiFiMatch{Matched: false, Confidence: models.WiFiConfidenceLow}
		}
		return models.WiFiMatch{Matched: true, Confidence: models.WiFiConfidenceUnknown}
	}

	match := models.WiFiMatch{Confidence: models.WiFiConfidenceLow}
	if observed.SSID != "" {
		ssid := observed.SSID
		match.ObservedSSID = &ssid
	}

	if matchBSSID(observed.BSSID, expectedBSSIDs) {
		match.Matched = true
		match.Confidence = models.WiFiConfidenceHigh
		return match
	}

	if matchSSID(observed.SSID, expectedSSIDs) {
		match.Matched = !strict
		match.Confidence = models.WiFiConfidenceMedium
		return match
	}

	return match
}

func matchBSSID(observed string, expected []string) bool {
	if strings.TrimSpace(observed) == "" {
		return false
	}
	raw := NormalizeBSSID(observed)
	hashed := HashBSSID(observed)
	for _, e := range expected {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if NormalizeBSSID(e) == raw || e == hashed {
			return true
		}
	}
	return false
}

func matchSSID(observed string, expected []string) bool {
	observed = strings.ToLower(strings.TrimSpace(observed))
	if observed == "" {
		return false
	}
	for _, e := range expected {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" && strings.Contains(observed, e) {
			return true
		}
	}
	return false
}
