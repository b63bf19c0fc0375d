package generate_voice

// Request модель запроса на синтез речи
type Request struct {
	Text string // Текст для озвучивания
}

// Response модель ответа с синтезированным аудио
type Response struct {
	Audio []byte // MP3 аудио целиком
}
