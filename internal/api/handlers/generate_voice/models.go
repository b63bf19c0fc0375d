package generate_voice

// GenerateVoiceRequest HTTP request model
type GenerateVoiceRequest struct {
	Text *string `json:"text"`
}
