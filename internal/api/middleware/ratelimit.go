package middleware

import (
	"time"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
)

// RateLimit ограничивает количество запросов с одного IP в минуту.
// Аутентификацией входящих вызовов занимается front door перед сервисом,
// здесь только защита от случайного шторма со стороны голосового бота
func RateLimit(requestsPerMinute int) mux.MiddlewareFunc {
	return httprate.LimitByIP(requestsPerMinute, time.Minute)
}
