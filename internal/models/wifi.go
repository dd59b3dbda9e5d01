package models

type WiFiConfidence string

const (
	WiFiConfidenceHigh    WiFiConfidence = "high"
	WiFiConfidenceMedium  WiFiConfidence = "medium"
	WiFiConfidenceLow     WiFiConfidence = "low"
	WiFiConfidenceUnknown WiFiConfidence = "unknown"
)

// WiFiNetwork точка доступа, к которой подключено устройство
type WiFiNetwork struct {
	SSID  string `json:"ssid"`
	BSSID string `json:"bssid"`
}

type WiFiMatch struct {
	Matched      bool           `json:"matched"`
	Confidence   WiFiConfidence `json:"confidence"`
	ObservedSSID *string        `json:"observed_ssid,omitempty"`
}
