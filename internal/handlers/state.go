package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the edge length of the share code in pixels
const qrSize = 256

// HandleState returns the session snapshot as JSON
func (ctx *Context) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	table, err := ctx.getTable(r)
	if err != nil {
		noSession(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(table.Game.Snapshot()); err != nil {
		log.Printf("HandleState: encoding snapshot: %v", err)
	}
}

// HandleQR serves a QR code pointing at the public URL, to open the game on a phone
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(ctx.Config.PublicURL, qrcode.Medium, qrSize)
	if err != nil {
		log.Printf("HandleQR: encoding %q: %v", ctx.Config.PublicURL, err)
		http.Error(w, "Could not generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
