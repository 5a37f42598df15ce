// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mjreyes/flashlearn/internal/flashlearn"
)

func newWebCmd(app *App) *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the progress dashboard server",
		Long:  "Start a read-only web dashboard for the signed-in user's decks and progress.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireUser(app)
			if err != nil {
				return err
			}

			addr := fmt.Sprintf("%s:%d", bind, port)
			if app.Cfg.WebAddr != "" && !cmd.Flags().Changed("port") && !cmd.Flags().Changed("bind") {
				addr = app.Cfg.WebAddr
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/", handleIndex())
			mux.HandleFunc("/api/decks", handleAPIDecks(app, session.Username))
			mux.HandleFunc("/api/progress", handleAPIProgress(app, session.Username))
			mux.HandleFunc("/api/ranking", handleAPIRanking(app, session.Username))
			mux.HandleFunc("/api/weekly", handleAPIWeekly(app, session.Username))

			fmt.Printf("Starting flashlearn dashboard on http://%s\n", addr)
			fmt.Println("Press Ctrl+C to stop")

			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to serve on")
	cmd.Flags().StringVarP(&bind, "bind", "b", "127.0.0.1", "Address to bind to")

	return cmd
}

var indexTemplate = `<!DOCTYPE html>
<html>
<head>
	<title>FlashLearn</title>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<style>
		* { box-sizing: border-box; margin: 0; padding: 0; }
		body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 900px; margin: 0 auto; padding: 20px; }
		h1 { margin-bottom: 20px; color: #2c3e50; }
		h2 { margin: 24px 0 12px; color: #2c3e50; font-size: 18px; }
		.stats { display: flex; gap: 20px; margin-bottom: 20px; flex-wrap: wrap; }
		.stat { background: #f8f9fa; padding: 10px 20px; border-radius: 4px; }
		.stat-value { font-size: 24px; font-weight: bold; color: #3498db; }
		.stat-label { font-size: 12px; color: #666; text-transform: uppercase; }
		.decks { display: grid; gap: 12px; }
		.deck { background: white; border: 1px solid #e0e0e0; border-radius: 8px; padding: 16px; }
		.deck-title { font-size: 16px; font-weight: 600; }
		.deck-meta { color: #666; font-size: 13px; }
		.bar-row { display: flex; align-items: center; gap: 8px; font-size: 13px; margin: 2px 0; }
		.bar-label { width: 90px; color: #666; }
		.bar { background: #3498db; height: 14px; border-radius: 3px; }
		.loading { text-align: center; padding: 40px; color: #666; }
		.error { background: #fee; color: #c33; padding: 20px; border-radius: 4px; margin: 20px 0; }
	</style>
</head>
<body>
	<h1>FlashLearn</h1>

	<div class="stats" id="stats">
		<div class="stat">
			<div class="stat-value" id="stat-mastery">-</div>
			<div class="stat-label">Mastery</div>
		</div>
		<div class="stat">
			<div class="stat-value" id="stat-decks">-</div>
			<div class="stat-label">Decks</div>
		</div>
		<div class="stat">
			<div class="stat-value" id="stat-cards">-</div>
			<div class="stat-label">Cards</div>
		</div>
	</div>

	<h2>Weekly activity</h2>
	<div id="weekly"><div class="loading">Loading...</div></div>

	<h2>Decks by mastery</h2>
	<div class="decks" id="decks">
		<div class="loading">Loading...</div>
	</div>

	<script>
		async function loadProgress() {
			try {
				const res = await fetch('/api/progress');
				const p = await res.json();
				document.getElementById('stat-mastery').textContent = Math.round(p.percentage) + '%';
				document.getElementById('stat-cards').textContent = p.total_cards;
			} catch (e) {
				console.error('Failed to load progress:', e);
			}
		}

		async function loadWeekly() {
			const container = document.getElementById('weekly');
			try {
				const res = await fetch('/api/weekly');
				const counts = await res.json();
				const days = ['Mon','Tue','Wed','Thu','Fri','Sat','Sun'];
				const max = Math.max(1, ...days.map(function(d) { return counts[d] || 0; }));
				container.innerHTML = days.map(function(d) {
					const n = counts[d] || 0;
					return '<div class="bar-row"><span class="bar-label">' + d + '</span>' +
						'<div class="bar" style="width:' + (n * 100 / max) + '%"></div>' +
						'<span>' + n + '</span></div>';
				}).join('');
			} catch (e) {
				container.innerHTML = '<div class="error">Failed to load weekly activity</div>';
			}
		}

		async function loadDecks() {
			const container = document.getElementById('decks');
			try {
				const res = await fetch('/api/ranking');
				const rows = await res.json();
				document.getElementById('stat-decks').textContent = rows.length;
				if (rows.length === 0) {
					container.innerHTML = '<div class="loading">No decks yet</div>';
					return;
				}
				container.innerHTML = rows.map(function(r) {
					var html = '<div class="deck">';
					html += '<div class="deck-title">' + escapeHtml(r.title) + '</div>';
					html += '<div class="deck-meta">' + r.correct_answers + ' of ' + r.card_count +
						' cards · ' + Math.round(r.percentage) + '%</div>';
					html += '</div>';
					return html;
				}).join('');
			} catch (e) {
				container.innerHTML = '<div class="error">Failed to load decks</div>';
			}
		}

		function escapeHtml(text) {
			const div = document.createElement('div');
			div.textContent = text;
			return div.innerHTML;
		}

		loadProgress();
		loadWeekly();
		loadDecks();
	</script>
</body>
</html>
`

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(indexTemplate))
	}
}

func handleAPIDecks(app *App, username string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decks := app.Decks.Load(username)
		writeJSON(w, app.Decks.Filter(decks, username, flashlearn.FilterAll))
	}
}

func handleAPIProgress(app *App, username string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Progress.Overall(username, app.Decks.Load(username)))
	}
}

func handleAPIRanking(app *App, username string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Progress.Ranking(username, app.Decks.Load(username)))
	}
}

func handleAPIWeekly(app *App, username string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Progress.WeeklyActivity(username))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
