package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"psy211-course-service/internal/app"
	"psy211-course-service/internal/domain"
)

var (
	errInvalidPayload  = errors.New("invalid message payload")
	errUnsupportedType = errors.New("unsupported message type")
)

// ServiceFactory builds one CourseService per connection. Each learner gets
// an isolated navigation and session state machine over the shared stores.
type ServiceFactory func(ctx context.Context) (*app.CourseService, error)

type WSHandler struct {
	newService ServiceFactory
	upgrader   websocket.Upgrader
}

func NewWSHandler(factory ServiceFactory) *WSHandler {
	return &WSHandler{
		newService: factory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type openUnitPayload struct {
	UnitID int `json:"unitId"`
}

type setTabPayload struct {
	Tab string `json:"tab"`
}

type answerPayload struct {
	Choice string `json:"choice"`
}

type setKeyPayload struct {
	Key string `json:"key"`
}

type toggleAnalysisPayload struct {
	CaseID string `json:"caseId"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request to a websocket and drives one course service
// for the lifetime of the connection. Every state change is pushed as a
// full "view" snapshot; intent failures come back as "error" messages.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	service, err := h.newService(r.Context())
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	updates, cancel := service.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case view, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "view", Payload: view}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r.Context(), service, inbound); err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func (h *WSHandler) dispatch(ctx context.Context, service *app.CourseService, inbound inboundMessage) error {
	switch inbound.Type {
	case "openUnit":
		var payload openUnitPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		return service.OpenUnit(ctx, payload.UnitID)
	case "setTab":
		var payload setTabPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		return service.SetTab(domain.SubTab(payload.Tab))
	case "goHome":
		service.GoHome()
		return nil
	case "startQuiz":
		return service.StartUnitQuiz(ctx)
	case "startExam":
		return service.StartFullExam(ctx)
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		return service.SubmitAnswer(payload.Choice)
	case "advance":
		return service.Advance()
	case "abandon":
		service.Abandon()
		return nil
	case "retry":
		return service.Retry(ctx)
	case "generateQuestions":
		return service.GenerateQuestions(ctx)
	case "generateGlossary":
		return service.GenerateGlossary(ctx)
	case "setApiKey":
		var payload setKeyPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		return service.SetAPIKey(payload.Key)
	case "toggleAnalysis":
		var payload toggleAnalysisPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		service.ToggleAnalysis(payload.CaseID)
		return nil
	default:
		return errUnsupportedType
	}
}
