package handlers

import "net/http"

// Routes registers every endpoint on a new mux
func (ctx *Context) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ctx.HandleIndex)
	mux.HandleFunc("/events", ctx.HandleSSE)
	mux.HandleFunc("/play/", ctx.HandlePlay)
	mux.HandleFunc("/reset", ctx.HandleReset)
	mux.HandleFunc("/audio/", ctx.HandleAudio)
	mux.HandleFunc("/state", ctx.HandleState)
	mux.HandleFunc("/qr.png", ctx.HandleQR)

	// Static files
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(ctx.Config.StaticDir))))
	return mux
}
