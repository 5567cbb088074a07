package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	catalogHandler "github.com/FRANKMAKORI/your-revenue-ai/internal/handler/catalog"
	chatHandler "github.com/FRANKMAKORI/your-revenue-ai/internal/handler/chat"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/handler/stream"
	voiceHandler "github.com/FRANKMAKORI/your-revenue-ai/internal/handler/voice"
	middlewarePkg "github.com/FRANKMAKORI/your-revenue-ai/internal/middleware"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/assistant"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
	"github.com/FRANKMAKORI/your-revenue-ai/pkg/utils"
)

// NewRouter wires HTTP routes to core services. aiSvc may be nil when the
// gateway is not configured; the chat and stream endpoints then degrade.
func NewRouter(aiSvc *ai.Service, historyStore *history.Store, kv storage.KeyValue) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	var invoker assistant.Invoker
	if aiSvc != nil {
		invoker = aiSvc
	}

	catalogH := catalogHandler.New()
	chatH := chatHandler.New(invokerOrNil(aiSvc), historyStore)

	var streamH *stream.Handler
	if aiSvc != nil {
		streamH = stream.New(aiSvc, historyStore)
	}

	r.Route("/api", func(api chi.Router) {
		catalogH.RegisterRoutes(api)
		chatH.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			if streamH == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "ai streaming unavailable")
				return
			}

			q := r.URL.Query()
			message := q.Get("message")
			if message == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			p := stream.Params{
				SessionID:    chi.URLParam(r, "sessionID"),
				Message:      message,
				Language:     q.Get("language"),
				LanguageName: q.Get("languageName"),
				Modes: assistant.Modes{
					Search: q.Get("search") == "1",
					URL:    q.Get("url") == "1",
					TaxLaw: q.Get("taxlaw") == "1",
				},
			}
			if err := streamH.HandleStreamRequest(r.Context(), w, p); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})

		voiceH := voiceHandler.New(invoker, kv)
		voiceH.RegisterRoutes(api)
	})

	return r
}

// invokerOrNil avoids handing a typed-nil *ai.Service to an interface field.
func invokerOrNil(aiSvc *ai.Service) chatHandler.Invoker {
	if aiSvc == nil {
		return nil
	}
	return aiSvc
}
