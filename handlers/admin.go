package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/BhanuPrakash-01/fake-news-detector/config"
	"github.com/BhanuPrakash-01/fake-news-detector/database"
	"github.com/BhanuPrakash-01/fake-news-detector/logger"
	"github.com/BhanuPrakash-01/fake-news-detector/services"

	"github.com/gorilla/websocket"
)

type AdminHandler struct {
	cfg      *config.Config
	analyzer *services.AnalyzerService
}

func NewAdminHandler(cfg *config.Config, analyzer *services.AnalyzerService) *AdminHandler {
	return &AdminHandler{
		cfg:      cfg,
		analyzer: analyzer,
	}
}

func (h *AdminHandler) Pause(w http.ResponseWriter, r *http.Request) {
	if h.analyzer != nil {
		h.analyzer.IsPaused.Store(true)
		log.Println("[ADMIN] ⏸ Analysis paused by administrator")
	}
	w.WriteHeader(http.StatusOK)
}

func (h *AdminHandler) Resume(w http.ResponseWriter, r *http.Request) {
	if h.analyzer != nil {
		h.analyzer.IsPaused.Store(false)
		log.Println("[ADMIN] ▶ Analysis resumed by administrator")
	}
	w.WriteHeader(http.StatusOK)
}

func (h *AdminHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	isPaused := false
	if h.analyzer != nil {
		isPaused = h.analyzer.IsPaused.Load()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"is_paused": isPaused,
	})
}

// AuthMiddleware checks the admin token header.
func (h *AdminHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if h.cfg.AdminToken == "" || token != h.cfg.AdminToken {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

type AdminStats struct {
	TotalRequests  int                `json:"total_requests"`
	FakeCount      int                `json:"fake_count"`
	RealCount      int                `json:"real_count"`
	UncertainCount int                `json:"uncertain_count"`
	RecentRequests []AdminHistoryItem `json:"recent_requests"`
}

type AdminHistoryItem struct {
	ID         int     `json:"id"`
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
	CreatedAt  string  `json:"created_at"`
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil {
		http.Error(w, "Database not available", http.StatusInternalServerError)
		return
	}

	stats := AdminStats{}

	err := database.DB.QueryRow("SELECT COUNT(*) FROM analysis_results").Scan(&stats.TotalRequests)
	if err != nil {
		log.Printf("[ADMIN] Error getting total count: %v", err)
	}

	database.DB.QueryRow("SELECT COUNT(*) FROM analysis_results WHERE verdict = 'FAKE'").Scan(&stats.FakeCount)
	database.DB.QueryRow("SELECT COUNT(*) FROM analysis_results WHERE verdict = 'REAL'").Scan(&stats.RealCount)
	stats.UncertainCount = stats.TotalRequests - stats.FakeCount - stats.RealCount

	rows, err := database.DB.Query(`
		SELECT id, verdict, confidence, created_at
		FROM analysis_results
		ORDER BY created_at DESC
		LIMIT 10
	`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			item := AdminHistoryItem{}
			rows.Scan(&item.ID, &item.Verdict, &item.Confidence, &item.CreatedAt)
			stats.RecentRequests = append(stats.RecentRequests, item)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // admin panel runs on a different origin in development
	},
}

// StreamLogs upgrades to a websocket and relays every broadcaster log line
// until the client disconnects.
func (h *AdminHandler) StreamLogs(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if h.cfg.AdminToken == "" || token != h.cfg.AdminToken {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ADMIN] WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	logsChan := logger.Instance.Subscribe()
	defer logger.Instance.Unsubscribe(logsChan)

	done := make(chan struct{})
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(done)
				return
			}
		}
	}()

	for {
		select {
		case msg := <-logsChan:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
