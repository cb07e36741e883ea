package mux

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"handtype-server/pkg/handtype"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10
const sendBuffer = 256

type wsRequest struct {
	ID   string   `json:"id,omitempty"`
	Hand []string `json:"hand"`
}

type wsResponse struct {
	ID     string           `json:"id,omitempty"`
	Result *handtype.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func (m *Mux) getClassifyWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := logger(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		log.Debug("client connected")

		send := make(chan wsResponse, sendBuffer)
		writeLoopDone := make(chan bool)
		go func() {
			m.webSocketWriteLoop(conn, send, log)
			close(writeLoopDone)
		}()

		m.webSocketReadLoop(conn, send, log)
		close(send)

		// wait for the close frame
		select {
		case <-writeLoopDone:
		case <-time.After(time.Second):
		}

		_ = conn.Close()
		log.Debug("client disconnected")
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, send <-chan wsResponse, log logrus.FieldLogger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, send chan<- wsResponse, log logrus.FieldLogger) {
	for {
		var msg wsRequest
		if err := conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.WithError(err).Warn("could not read JSON")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Error("could not read message")
			}

			return
		}

		resp := wsResponse{ID: msg.ID}
		res, err := m.classifier.Evaluate(msg.Hand)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Result = res
		}

		select {
		case send <- resp:
		default:
			log.WithField("id", msg.ID).Warn("send buffer full, closing connection")
			return
		}
	}
}
