package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"tripweave/internal/evaluation"
	"tripweave/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketController exposes the live evaluate-matrix progress stream.
// Best-effort: a slow client gets dropped rather than blocking the matrix.
type WebSocketController struct {
	stream  *service.EvaluationStream
	service service.Service
}

func NewWebSocketController(stream *service.EvaluationStream, svc service.Service) *WebSocketController {
	return &WebSocketController{stream: stream, service: svc}
}

func (wsc *WebSocketController) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/evaluate/stream", wsc.HandleStream)
		v1.POST("/evaluate/matrix", wsc.TriggerMatrix)
	}
}

// HandleStream upgrades to a websocket and registers the connection as a
// listener on the evaluation progress stream until it disconnects.
func (wsc *WebSocketController) HandleStream(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "Failed to upgrade connection")
		return
	}
	defer conn.Close()

	unregister := wsc.stream.Register(conn)
	defer unregister()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// TriggerMatrix runs the full 108-scenario matrix in the background,
// broadcasting one progress message per completed scenario to the stream.
func (wsc *WebSocketController) TriggerMatrix(ctx *gin.Context) {
	numSamples := 100
	if raw := ctx.Query("numRandomSolutions"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			numSamples = n
		}
	}

	go func() {
		summary := wsc.service.RunMatrix(numSamples, func(r evaluation.Report) {
			if payload, err := json.Marshal(r); err == nil {
				wsc.stream.Broadcast(payload)
			}
		})
		log.Info().Int("succeeded", summary.Succeeded).Int("total", summary.TotalScenarios).
			Msg("evaluation matrix run complete")
	}()

	ctx.JSON(http.StatusAccepted, gin.H{"message": "matrix run started"})
}
