package elevenlabs

// Fixed synthesis parameters used for every request
const (
	ModelMonolingualV1 = "eleven_monolingual_v1"

	DefaultStability       = 0.5
	DefaultSimilarityBoost = 0.5
)

// SynthesizeRequest payload синтеза речи
type SynthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// VoiceSettings параметры голоса
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}
